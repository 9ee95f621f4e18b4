// internal/server/handlers_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrier-sales-api/internal/carriers"
	apierrors "carrier-sales-api/internal/common/errors"
	"carrier-sales-api/internal/common/logger"
	"carrier-sales-api/internal/loads"
)

func newTestServer(t *testing.T, registry carriers.Registry) *Server {
	store, err := loads.NewMemoryStore([]loads.Load{
		{
			ReferenceNumber: "REF09460",
			Origin:          "Denver, CO",
			Destination:     "Detroit, MI",
			EquipmentType:   "Dry Van",
			Rate:            868,
			Commodity:       "Automotive Parts",
			MCNumber:        "MC123456",
			IsPartial:       true,
			PickupTime:      "15:00",
			DeliveryTime:    "Friday, July 12th",
		},
		{
			ReferenceNumber: "REF04684",
			Origin:          "Dallas, TX",
			Destination:     "Chicago, IL",
			EquipmentType:   "Dry Van or Flatbed",
			Rate:            570,
			Commodity:       "Agricultural Products",
			MCNumber:        "MC789012",
		},
	})
	require.NoError(t, err)

	if registry == nil {
		registry = carriers.DefaultStaticRegistry()
	}
	verifier := carriers.NewVerifier(registry, logger.NewNoOpLogger())

	return New(store, verifier, logger.NewNoOpLogger(), nil)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected error envelope, got %s", rec.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

// ==========================
// Load Lookup
// ==========================

func TestHandleLookupLoad(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name      string
		reference string
	}{
		{name: "exact reference", reference: "REF09460"},
		{name: "lowercase prefix", reference: "ref09460"},
		{name: "no prefix no zeros", reference: "9460"},
		{name: "leading zeros only", reference: "0009460"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/loads",
				map[string]string{"reference_number": tt.reference})
			require.Equal(t, http.StatusOK, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, "REF09460", body["reference_number"])
			assert.Equal(t, "Denver, CO", body["origin"])
			assert.Equal(t, "Detroit, MI", body["destination"])
			assert.Equal(t, "Dry Van", body["equipment_type"])
			assert.Equal(t, 868.0, body["rate"])
			assert.Equal(t, "Automotive Parts", body["commodity"])
		})
	}
}

func TestHandleLookupLoad_NotFound(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/loads",
		map[string]string{"reference_number": "REF99999"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(apierrors.ErrCodeLoadNotFound), errorCode(t, rec))
}

func TestHandleLookupLoad_InvalidInput(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "missing field", body: map[string]string{}},
		{name: "empty reference", body: map[string]string{"reference_number": ""}},
		{name: "wrong type", body: map[string]int{"reference_number": 9460}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/loads", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, string(apierrors.ErrCodeInvalidInput), errorCode(t, rec))
		})
	}
}

func TestHandleGetLoad(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/loads/REF04684", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "REF04684", body["reference_number"])
	assert.Equal(t, "Dry Van or Flatbed", body["equipment_type"])

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/loads/REF99999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ==========================
// Carrier Verification
// ==========================

func TestHandleVerifyCarrier(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name         string
		mcNumber     string
		expectedName string
	}{
		{name: "with prefix", mcNumber: "MC123456", expectedName: "ABC Trucking"},
		{name: "without prefix", mcNumber: "789012", expectedName: "XYZ Freight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/verify-carrier",
				map[string]string{"mc_number": tt.mcNumber})
			require.Equal(t, http.StatusOK, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, true, body["verified"])
			assert.Equal(t, tt.expectedName, body["carrier_name"])
		})
	}
}

func TestHandleVerifyCarrier_NotFound(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/verify-carrier",
		map[string]string{"mc_number": "MC000001"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(apierrors.ErrCodeCarrierNotFound), errorCode(t, rec))
}

type failingRegistry struct{}

func (failingRegistry) Lookup(_ context.Context, _ string) (*carriers.CarrierRecord, error) {
	return nil, apierrors.NewRegistryUnavailableError(assert.AnError)
}

func TestHandleVerifyCarrier_UpstreamFailure(t *testing.T) {
	// An unreachable registry must surface as 502, never as verified:false.
	srv := newTestServer(t, failingRegistry{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/verify-carrier",
		map[string]string{"mc_number": "MC123456"})

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, string(apierrors.ErrCodeRegistryUnavailable), errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), `"verified"`)
}

func TestHandleVerifyCarrier_InvalidInput(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/verify-carrier", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(apierrors.ErrCodeInvalidInput), errorCode(t, rec))
}

// ==========================
// Offer Evaluation
// ==========================

func TestHandleEvaluateOffer(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name          string
		body          map[string]interface{}
		expected      map[string]interface{}
		expectedFinal bool
	}{
		{
			name: "accept above",
			body: map[string]interface{}{"carrier_offer": 750, "our_last_offer": 700, "offer_attempt": 1},
			expected: map[string]interface{}{
				"result":    "accept",
				"new_offer": 750.0,
				"message":   "Offer accepted.",
			},
		},
		{
			name: "accept equal",
			body: map[string]interface{}{"carrier_offer": 700, "our_last_offer": 700, "offer_attempt": 1},
			expected: map[string]interface{}{
				"result":    "accept",
				"new_offer": 700.0,
			},
		},
		{
			name: "counter midpoint",
			body: map[string]interface{}{"carrier_offer": 600, "our_last_offer": 700, "offer_attempt": 1},
			expected: map[string]interface{}{
				"result":    "counter",
				"new_offer": 650.0,
				"message":   "We can go as low as 650 on this load.",
			},
		},
		{
			name: "final counter on second attempt",
			body: map[string]interface{}{"carrier_offer": 600, "our_last_offer": 700, "offer_attempt": 2},
			expected: map[string]interface{}{
				"result":    "counter",
				"new_offer": 650.0,
				"message":   "This is our final counter at 650.",
			},
			expectedFinal: true,
		},
		{
			name: "attempt defaults to first round",
			body: map[string]interface{}{"carrier_offer": 600, "our_last_offer": 700},
			expected: map[string]interface{}{
				"result":    "counter",
				"new_offer": 650.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/evaluate-offer", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			body := decodeBody(t, rec)
			for key, want := range tt.expected {
				assert.Equal(t, want, body[key], key)
			}
			if tt.expectedFinal {
				assert.Equal(t, true, body["final"])
			} else {
				assert.NotContains(t, body, "final")
			}
		})
	}
}

func TestHandleEvaluateOffer_InvalidInput(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "missing carrier_offer", body: map[string]interface{}{"our_last_offer": 700, "offer_attempt": 1}},
		{name: "missing our_last_offer", body: map[string]interface{}{"carrier_offer": 600, "offer_attempt": 1}},
		{name: "string offer", body: map[string]interface{}{"carrier_offer": "600", "our_last_offer": 700}},
		{name: "fractional attempt", body: map[string]interface{}{"carrier_offer": 600, "our_last_offer": 700, "offer_attempt": 1.5}},
		{name: "zero attempt", body: map[string]interface{}{"carrier_offer": 600, "our_last_offer": 700, "offer_attempt": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv.Handler(), http.MethodPost, "/evaluate-offer", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, string(apierrors.ErrCodeInvalidInput), errorCode(t, rec))
		})
	}
}

func TestHandleEvaluateOffer_Idempotent(t *testing.T) {
	srv := newTestServer(t, nil)
	body := map[string]interface{}{"carrier_offer": 612, "our_last_offer": 845, "offer_attempt": 2}

	first := doJSON(t, srv.Handler(), http.MethodPost, "/evaluate-offer", body)
	second := doJSON(t, srv.Handler(), http.MethodPost, "/evaluate-offer", body)

	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

// ==========================
// Infrastructure
// ==========================

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 2.0, body["loads"])
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec2 := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec2, req)
	assert.Equal(t, "fixed-id", rec2.Header().Get("X-Request-ID"))
}
