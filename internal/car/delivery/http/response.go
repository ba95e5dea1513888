package http

import (
	"encoding/json"
	"net/http"

	"github.com/tair/electric-cars/internal/car/usecase/query"
	"github.com/tair/electric-cars/pkg/apperror"
	"github.com/tair/electric-cars/pkg/logger"
)

// Response is the JSON envelope of every API reply
type Response struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Count      *int              `json:"count,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	IsFavorite *bool             `json:"isFavorite,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError writes err as an envelope. Server side failures carry the
// cause in the error field.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)

	resp := Response{Success: false, Message: appErr.Message}
	if appErr.StatusCode >= http.StatusInternalServerError {
		resp.Error = appErr.Cause()
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg(appErr.Message)
	}
	respondJSON(w, appErr.StatusCode, resp)
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }
