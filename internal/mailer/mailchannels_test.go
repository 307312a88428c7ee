package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	return Config{
		Endpoint:  endpoint,
		ToEmail:   "enquiries@example.com",
		ToName:    "Enquiries",
		FromEmail: "no-reply@example.com",
		FromName:  "Web Form",
	}
}

func TestClient_SendEnquiry(t *testing.T) {
	var captured sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	err := client.SendEnquiry(context.Background(), model.Enquiry{
		Name:   "Asha",
		Phone:  "9876543210",
		Pickup: "Warehouse A",
	})

	assert.NoError(t, err)
	require.Len(t, captured.Personalizations, 1)
	require.Len(t, captured.Personalizations[0].To, 1)
	assert.Equal(t, "enquiries@example.com", captured.Personalizations[0].To[0].Email)
	assert.Equal(t, "no-reply@example.com", captured.From.Email)
	assert.Equal(t, "New Inquiry from Asha", captured.Subject)
	require.Len(t, captured.Content, 1)
	assert.Equal(t, "text/plain", captured.Content[0].Type)
	assert.Contains(t, captured.Content[0].Value, "Name: Asha")
	assert.Contains(t, captured.Content[0].Value, "Phone: 9876543210")
	assert.Contains(t, captured.Content[0].Value, "Pickup: Warehouse A")
	// Optional fields that were not supplied fall back to N/A
	assert.Contains(t, captured.Content[0].Value, "Drop: N/A")
	assert.Contains(t, captured.Content[0].Value, "Message: N/A")
}

func TestClient_SendEnquiry_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"errors":["domain not verified"]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	err := client.SendEnquiry(context.Background(), model.Enquiry{Name: "Asha", Phone: "9876543210"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "domain not verified")
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	client := NewClient(Config{ToEmail: "a@b.c", FromEmail: "d@e.f"})
	assert.Equal(t, DefaultEndpoint, client.cfg.Endpoint)
}
