package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paulajardimf/poo-1-exercicios/internal/api/handlers"
	"github.com/paulajardimf/poo-1-exercicios/internal/api/middleware"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/repository"
)

// NewRouter wires the HTTP surface: liveness ping, the video CRUD routes
// and the metrics endpoint, wrapped in CORS, request logging and metrics
// collection.
func NewRouter(videoRepo *repository.VideoRepository, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	r.HandleFunc("/ping", handlers.Ping).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	videoHandler := handlers.NewVideoHandler(videoRepo)

	videos := r.PathPrefix("/videos").Subrouter()
	videos.HandleFunc("", videoHandler.ListVideos).Methods(http.MethodGet)
	videos.HandleFunc("", videoHandler.CreateVideo).Methods(http.MethodPost)
	videos.HandleFunc("/{id}", videoHandler.UpdateVideo).Methods(http.MethodPut)
	videos.HandleFunc("/{id}", videoHandler.DeleteVideo).Methods(http.MethodDelete)

	// CORS wraps the router itself so preflight requests are answered even
	// for unmatched methods.
	return middleware.CORS(allowedOrigins)(r)
}
