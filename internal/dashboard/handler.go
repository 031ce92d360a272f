package dashboard

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

func (h *Handler) Cards(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.CardMetrics(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, metrics)
}
