package req

import (
	"encoding/json"
	"net/http"

	"query-gateway/pkg/res"
)

// HandleBody decodes the request body into T. On a malformed body it writes
// the uniform error envelope with the raw decode error and returns the error,
// so callers can simply bail out.
func HandleBody[T any](w *http.ResponseWriter, r *http.Request) (*T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		res.Json(*w, map[string]any{
			"status":  "error",
			"message": err.Error(),
		}, http.StatusBadRequest)
		return nil, err
	}
	return &body, nil
}
