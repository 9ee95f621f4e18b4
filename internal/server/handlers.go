// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "carrier-sales-api/internal/common/errors"
	"carrier-sales-api/internal/negotiation"
)

const maxBodyBytes = 1 << 20

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, apierrors.NewInvalidInputError("failed to read request body")
	}
	return body, nil
}

// POST /loads
func (s *Server) handleLookupLoad(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := validateBody(body, lookupLoadSchema); err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		ReferenceNumber string `json:"reference_number"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, apierrors.NewInvalidInputError("request body is not valid JSON"))
		return
	}

	load, err := s.store.Lookup(req.ReferenceNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, load)
}

// GET /loads/{reference_number} is the path-parameter variant of the lookup,
// matching how dialer tools address a single load.
func (s *Server) handleGetLoad(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference_number")
	if reference == "" {
		writeError(w, apierrors.NewInvalidInputError("reference_number is required"))
		return
	}

	load, err := s.store.Lookup(reference)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, load)
}

// POST /verify-carrier
func (s *Server) handleVerifyCarrier(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := validateBody(body, verifyCarrierSchema); err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		MCNumber string `json:"mc_number"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, apierrors.NewInvalidInputError("request body is not valid JSON"))
		return
	}

	verification, err := s.verifier.Verify(r.Context(), req.MCNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, verification)
}

// POST /evaluate-offer
func (s *Server) handleEvaluateOffer(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := validateBody(body, evaluateOfferSchema); err != nil {
		writeError(w, err)
		return
	}

	var req negotiation.Input
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, apierrors.NewInvalidInputError("request body is not valid JSON"))
		return
	}
	if req.OfferAttempt == 0 {
		// offer_attempt defaults to the first round when omitted
		req.OfferAttempt = 1
	}

	output, err := negotiation.Evaluate(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"loads":  len(s.store.All()),
	})
}
