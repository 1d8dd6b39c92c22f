package query

type ExecuteRequest struct {
	Query string `json:"query"`
}

// ExecuteResponse is the envelope returned for every successful request.
// Columns and Data are always present, empty slices when not applicable.
type ExecuteResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
