package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a domain error kind onto an HTTP status.
func statusFor(err error) int {
	var (
		nodeNotFound  *model.NodeNotFoundError
		posNotFound   *model.PosNotFoundError
		missingFields *model.NodeMissingFieldsError
		duplicate     *model.DuplicateNameError
	)
	switch {
	case errors.As(err, &nodeNotFound), errors.As(err, &posNotFound):
		return http.StatusNotFound
	case errors.As(err, &missingFields):
		return http.StatusBadRequest
	case errors.As(err, &duplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
