// internal/server/respond.go
package server

import (
	"encoding/json"
	"net/http"

	apierrors "carrier-sales-api/internal/common/errors"
)

// errorEnvelope is the JSON error surface: every failure propagates to the
// caller as a structured body with an explanatory message.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	apiErr := apierrors.AsAPIError(err)
	writeJSON(w, apiErr.HTTPStatus(), errorEnvelope{
		Error: errorBody{
			Code:    string(apiErr.Code),
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}
