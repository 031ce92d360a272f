package customers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/acme-dashboard/acme-dashboard/internal/platform/httpx"
)

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if rows == nil {
		rows = []CustomerField{}
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) Filtered(w http.ResponseWriter, r *http.Request) {
	req := FilterCustomersRequest{Query: r.URL.Query().Get("query")}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	rows, err := h.service.Filtered(r.Context(), req.Query)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	views := make([]CustomerSummaryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toSummaryView(row))
	}
	httpx.JSON(w, http.StatusOK, views)
}
