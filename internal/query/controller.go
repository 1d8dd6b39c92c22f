package query

import (
	"net/http"

	"query-gateway/pkg/req"
	"query-gateway/pkg/res"
)

type ControllerDeps struct {
	*Service
}

type Controller struct {
	*Service
}

// NewController registers the gateway endpoint. The path is registered
// without a method so non-POST requests get the JSON envelope instead of
// ServeMux's plain-text 405.
func NewController(router *http.ServeMux, deps ControllerDeps) *Controller {
	c := &Controller{Service: deps.Service}
	router.Handle("/query", c.Execute())
	return c
}

func (c *Controller) Execute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			res.Json(w, ErrorResponse{
				Status:  "error",
				Message: "Invalid request",
			}, http.StatusMethodNotAllowed)
			return
		}

		body, err := req.HandleBody[ExecuteRequest](&w, r)
		if err != nil {
			return
		}

		out, err := c.Service.Execute(r.Context(), body)
		if err != nil {
			// Raw engine error text is forwarded on purpose; this service
			// is a trusted-caller query runner with no error shaping.
			res.Json(w, ErrorResponse{
				Status:  "error",
				Message: err.Error(),
			}, http.StatusBadRequest)
			return
		}

		res.Json(w, out, http.StatusOK)
	}
}
