package http

import (
	"net/http"

	"github.com/vaantra/vaantra-server/internal/utils"
	"github.com/vaantra/vaantra-server/models"
)

// errKind classifies a failed request so the response writer can pick the
// conventional status code when StrictStatusCodes is enabled.
type errKind int

const (
	errKindValidation errKind = iota
	errKindAuth
	errKindNotFound
	errKindConflict
	errKindUpstream
	errKindInternal
)

// statusFor maps an error classification to its conventional HTTP status.
func statusFor(kind errKind) int {
	switch kind {
	case errKindValidation:
		return http.StatusBadRequest
	case errKindAuth:
		return http.StatusUnauthorized
	case errKindNotFound:
		return http.StatusNotFound
	case errKindConflict:
		return http.StatusConflict
	case errKindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeSuccess writes a success envelope with HTTP 200.
func (h *Handler) writeSuccess(w http.ResponseWriter, envelope models.Envelope) {
	envelope.Success = true
	utils.WriteJSON(w, envelope, http.StatusOK)
}

// writeError writes a failure envelope.
//
// Under the default wire contract every failure is still HTTP 200 and the
// caller inspects the success flag. With StrictStatusCodes enabled the
// response carries the conventional status for the error's classification.
func (h *Handler) writeError(w http.ResponseWriter, kind errKind, message string) {
	statusCode := http.StatusOK
	if h.server.StrictStatusCodes {
		statusCode = statusFor(kind)
	}

	utils.WriteJSON(w, models.Envelope{Success: false, Message: message}, statusCode)
}
