package api

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/askr-api/internal/api/shared"
)

// decodeAndValidate reads the JSON body into req and runs struct
// validation. On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err), "")
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}

	return true
}
