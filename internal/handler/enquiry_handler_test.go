package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics_api/internal/mailer"
	"logistics_api/internal/model"
	"logistics_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeMailer records calls and returns a canned error
type fakeMailer struct {
	calls int
	err   error
}

func (f *fakeMailer) SendEnquiry(_ context.Context, _ model.Enquiry) error {
	f.calls++
	return f.err
}

func newEnquiryRouter(m mailer.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEnquiryHandler(service.NewEnquiryService(m), zap.NewNop().Sugar())
	h.RegisterEnquiryRoutes(r)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestEnquiryHandler_Submit(t *testing.T) {
	m := &fakeMailer{}
	r := newEnquiryRouter(m)

	w := postJSON(r, "/send", `{"name":"Asha","phone":"9876543210","pickup":"Warehouse A"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, 1, m.calls)
}

func TestEnquiryHandler_RootPathAlsoAccepts(t *testing.T) {
	m := &fakeMailer{}
	r := newEnquiryRouter(m)

	w := postJSON(r, "/", `{"name":"Asha","phone":"9876543210"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, m.calls)
}

func TestEnquiryHandler_MissingPhone(t *testing.T) {
	m := &fakeMailer{}
	r := newEnquiryRouter(m)

	w := postJSON(r, "/send", `{"name":"Asha"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name and Phone are required")
	// Validation fails before any outbound call
	assert.Equal(t, 0, m.calls)
}

func TestEnquiryHandler_UpstreamFailureSurfacesDetails(t *testing.T) {
	m := &fakeMailer{err: &mailer.UpstreamError{StatusCode: 502, Body: "domain not verified"}}
	r := newEnquiryRouter(m)

	w := postJSON(r, "/send", `{"name":"Asha","phone":"9876543210"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send email via provider")
	assert.Contains(t, w.Body.String(), "domain not verified")
}
