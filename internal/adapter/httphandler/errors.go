package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/techreviews/backend/pkg/apperr"
)

type errorResponse struct {
	Code             string `json:"code"`
	Message          string `json:"message"`
	LocalizedMessage string `json:"localizedMessage"`
}

// writeError renders any failure as the API's error envelope. The
// locale decides the user-facing message. Programming faults log the
// full chain and surface only the generic fallback.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	const op = "httphandler.writeError"
	log := slog.With("op", op)

	appErr := apperr.From(err)
	l := localeOf(r)

	if !appErr.Operational {
		log.Error("internal failure",
			"method", r.Method, "path", r.URL.Path, "err", err)
	}

	body := errorResponse{
		Code:             string(appErr.Code),
		Message:          appErr.Message,
		LocalizedMessage: appErr.UserMessage(l),
	}
	if !appErr.Operational {
		body.Message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		log.Error("failed to write error response", "err", encodeErr)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}
