package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ventureworks/hustle-engine/pkg/catalog"
)

// CitySummary is the listing view of one playable city.
type CitySummary struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Goods     int    `json:"goods"`
	Locations int    `json:"locations"`
}

// CatalogHandler serves the read-only content catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewCatalogHandler(cat *catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		logger:  logger,
	}
}

// ServeHTTP handles catalog queries.
// Routes:
// GET /v1/catalog/cities - List playable cities
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Method not allowed"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if r.URL.Path != "/v1/catalog/cities" {
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Not found"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	cities := h.catalog.Cities()
	summaries := make([]CitySummary, 0, len(cities))
	for _, city := range cities {
		summaries = append(summaries, CitySummary{
			Key:       city.Key,
			Name:      city.Name,
			ShortName: city.ShortName,
			Goods:     len(city.Goods),
			Locations: len(city.Locations),
		})
	}
	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		h.logger.Error("Failed to encode city list", "error", err)
	}
}
