package invoices

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

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

func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Latest(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	views := make([]LatestInvoiceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toLatestView(row))
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := ListInvoicesRequest{
		Query: r.URL.Query().Get("query"),
		Page:  1,
	}
	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "page must be an integer")
			return
		}
		req.Page = parsed
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	rows, err := h.service.Filtered(r.Context(), req.Query, req.Page)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	views := make([]InvoiceRowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRowView(row))
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) Pages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.service.Pages(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, PagesView{TotalPages: pages})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid invoice id")
		return
	}

	form, err := h.service.ByID(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if form == nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "invoice not found")
		return
	}
	httpx.JSON(w, http.StatusOK, form)
}
