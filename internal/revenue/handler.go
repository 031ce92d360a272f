package revenue

import (
	"log/slog"
	"net/http"

	"github.com/acme-dashboard/acme-dashboard/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if rows == nil {
		rows = []Revenue{}
	}
	httpx.JSON(w, http.StatusOK, rows)
}
