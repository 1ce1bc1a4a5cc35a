package handlers

import (
	"net/http"
	"sort"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const apiTitle = "The Epilepsy App's API"

type IndexHandler struct {
	routes chi.Routes
	logger *zap.Logger
}

// NewIndexHandler lists the routes registered on routes. The walk happens per
// request, so routes added after construction are included.
func NewIndexHandler(routes chi.Routes, logger *zap.Logger) *IndexHandler {
	return &IndexHandler{routes: routes, logger: logger}
}

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type IndexResponse struct {
	Title     string     `json:"title"`
	Endpoints []Endpoint `json:"endpoints"`
}

func (h *IndexHandler) List(w http.ResponseWriter, r *http.Request) {
	endpoints := []Endpoint{}
	err := chi.Walk(h.routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		endpoints = append(endpoints, Endpoint{Method: method, Path: route})
		return nil
	})
	if err != nil {
		writeError(w, h.logger, "index.List", err, "Could not list endpoints")
		return
	}

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})

	respond.JSON(w, http.StatusOK, IndexResponse{Title: apiTitle, Endpoints: endpoints})
}
