package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

type PageHandler struct {
	service ports.PageService
}

func NewPageHandler(service ports.PageService) *PageHandler {
	return &PageHandler{
		service: service,
	}
}

func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	params := domain.ParseParams(r.URL.RawQuery)
	slog.Info("Received request", "method", r.Method, "query", r.URL.RawQuery)

	page, err := h.service.Render(r.Context(), params)
	if err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}
