package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// BuildingRoutes is implemented by handlers.BuildingHandler.
type BuildingRoutes interface {
	GetCities(w http.ResponseWriter, r *http.Request)
	GetBuildings(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	buildingHandler BuildingRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	buildingHandler BuildingRoutes,
	router *mux.Router) *Router {
	return &Router{
		buildingHandler: buildingHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/cities", r.buildingHandler.GetCities).Methods("GET")
	r.router.HandleFunc("/v1/cities/{city}/buildings", r.buildingHandler.GetBuildings).Methods("GET")

	r.router.HandleFunc("/ping", r.buildingHandler.Ping).Methods("GET")
}
