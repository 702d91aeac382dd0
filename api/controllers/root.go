package controllers

import (
	"net/http"

	"github.com/ballinwear/assistant-backend/api/responses"
	"github.com/ballinwear/assistant-backend/pkg/types"
)

// Root answers GET / with an empty response; the storefront uses it as a
// wake-up probe.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, types.RootResponse{Response: ""})
	}
}
