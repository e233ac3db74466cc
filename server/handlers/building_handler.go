package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"building-query/api"
	"building-query/models"

	"github.com/gorilla/mux"
)

const CITY_PATH_VAR = "city"

// BuildingFetcher is the part of the building query service the handler needs.
type BuildingFetcher interface {
	Catalog() models.CityCatalog
	FetchBuildings(ctx context.Context, city string) (*models.OverpassResponse, error)
}

// CityEntry is one element of the GET /v1/cities response.
type CityEntry struct {
	Name        string             `json:"name"`
	BoundingBox models.BoundingBox `json:"bbox"`
}

type BuildingHandler struct {
	service BuildingFetcher
	logger  *slog.Logger
}

func NewBuildingHandler(service BuildingFetcher, logger *slog.Logger) *BuildingHandler {
	return &BuildingHandler{service: service, logger: logger}
}

// GetCities handles GET /v1/cities
func (h *BuildingHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Catalog()
	cities := make([]CityEntry, 0, len(catalog))
	for _, name := range catalog.Names() {
		cities = append(cities, CityEntry{Name: name, BoundingBox: catalog[name]})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(cities); err != nil {
		h.logger.Error("encode cities", "error", err)
	}
}

// GetBuildings handles GET /v1/cities/{city}/buildings. The Overpass body
// is passed through untouched.
func (h *BuildingHandler) GetBuildings(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)[CITY_PATH_VAR]

	res, err := h.service.FetchBuildings(r.Context(), city)
	if err != nil {
		h.writeFetchError(w, city, err)
		return
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Body); err != nil {
		h.logger.Error("write buildings", "city", city, "error", err)
	}
}

func (h *BuildingHandler) writeFetchError(w http.ResponseWriter, city string, err error) {
	if errors.Is(err, models.ErrUnknownCity) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if remoteErr, ok := api.AsRemoteRequestFailed(err); ok {
		h.logger.Warn("overpass rejected query", "city", city, "status", remoteErr.StatusCode)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Overpass-Status", remoteErr.Status)
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(remoteErr.BodyText()))
		return
	}

	h.logger.Error("overpass request failed", "city", city, "error", err)
	if errors.Is(err, context.DeadlineExceeded) {
		http.Error(w, "Overpass API timed out", http.StatusGatewayTimeout)
		return
	}
	http.Error(w, "Overpass API unavailable", http.StatusBadGateway)
}

// Ping handles GET /ping
func (h *BuildingHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
