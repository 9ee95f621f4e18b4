// internal/server/schemas.go
package server

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apierrors "carrier-sales-api/internal/common/errors"
)

// Request schemas, validated before any handler logic runs. Missing or
// mistyped fields surface as INVALID_INPUT with the schema messages attached.

var lookupLoadSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"reference_number": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
	},
	"required": []interface{}{"reference_number"},
}

var verifyCarrierSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"mc_number": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
	},
	"required": []interface{}{"mc_number"},
}

var evaluateOfferSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"carrier_offer": map[string]interface{}{
			"type": "number",
		},
		"our_last_offer": map[string]interface{}{
			"type": "number",
		},
		"offer_attempt": map[string]interface{}{
			"type":    "integer",
			"minimum": 1,
		},
	},
	"required": []interface{}{"carrier_offer", "our_last_offer"},
}

// validateBody checks raw JSON against a schema map.
func validateBody(body []byte, schema map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apierrors.NewInvalidInputError(fmt.Sprintf("request body is not valid JSON: %v", err))
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return apierrors.NewInvalidInputError(strings.Join(msgs, "; "))
	}

	return nil
}
