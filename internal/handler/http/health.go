package http

import (
	"net/http"

	"github.com/vaantra/vaantra-server/internal/utils"
)

type healthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{
		Message: "Vaantra Backend Server is running",
		Status:  "OK",
	}, http.StatusOK)
}
