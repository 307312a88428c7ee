package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics_api/internal/model"
	"logistics_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeVehicleService captures the last patch it received
type fakeVehicleService struct {
	createErr error
	lastPatch model.UpdateVehicleRequest
}

func (f *fakeVehicleService) ListVehicles(context.Context) ([]model.Vehicle, error) {
	return nil, nil
}

func (f *fakeVehicleService) CreateVehicle(_ context.Context, req model.CreateVehicleRequest) (*model.Vehicle, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Vehicle{ID: 1, VehicleNumber: req.VehicleNumber}, nil
}

func (f *fakeVehicleService) UpdateVehicle(_ context.Context, _ int, patch model.UpdateVehicleRequest) error {
	f.lastPatch = patch
	return nil
}

func (f *fakeVehicleService) DeleteVehicle(context.Context, int) error { return nil }

func newVehicleRouter(svc service.VehicleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewVehicleHandler(svc, zap.NewNop().Sugar())
	h.RegisterVehicleRoutes(r.Group("/api"), asUser(1, model.RoleOwner))
	return r
}

func TestVehicleHandler_ListVehicles_EmptyIsArray(t *testing.T) {
	r := newVehicleRouter(&fakeVehicleService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"vehicles":[]}`, w.Body.String())
}

func TestVehicleHandler_CreateVehicle_MissingModel(t *testing.T) {
	r := newVehicleRouter(&fakeVehicleService{})

	w := postJSON(r, "/api/vehicles", `{"vehicle_number":"KA01AB1234","vehicle_type":"truck"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestVehicleHandler_CreateVehicle_DuplicateNumber(t *testing.T) {
	r := newVehicleRouter(&fakeVehicleService{createErr: service.ErrVehicleNumberExists})

	w := postJSON(r, "/api/vehicles", `{"vehicle_number":"KA01AB1234","vehicle_type":"truck","model":"Tata 407"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Vehicle number already exists")
}

func TestVehicleHandler_UpdateVehicle_NullDriverIsPresent(t *testing.T) {
	svc := &fakeVehicleService{}
	r := newVehicleRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/vehicles/4", strings.NewReader(`{"driver_id":null,"status":"available"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The explicit null survives binding as "present but invalid"
	require.True(t, svc.lastPatch.DriverID.Set)
	assert.False(t, svc.lastPatch.DriverID.Valid)
	assert.False(t, svc.lastPatch.Capacity.Set)
	assert.Equal(t, "available", svc.lastPatch.Status)
}
