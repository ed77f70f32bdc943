package http

import (
	"net/http"

	"inventory-tracker/internal/delivery/http/handler"
	"inventory-tracker/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	productHandler      *handler.ProductHandler
	importExportHandler *handler.ImportExportHandler
	corsMiddleware      *middleware.CORSMiddleware
	recoveryMiddleware  *middleware.RecoveryMiddleware
	uploadDir           string
}

func NewRouter(
	productHandler *handler.ProductHandler,
	importExportHandler *handler.ImportExportHandler,
	corsMiddleware *middleware.CORSMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
	uploadDir string,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		productHandler:      productHandler,
		importExportHandler: importExportHandler,
		corsMiddleware:      corsMiddleware,
		recoveryMiddleware:  recoveryMiddleware,
		uploadDir:           uploadDir,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product routes. Import/export are registered before the {id}
	// routes so mux does not swallow them as path variables.
	api.HandleFunc("/products/import", r.importExportHandler.Import).Methods(http.MethodPost)
	api.HandleFunc("/products/export", r.importExportHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/products", r.productHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/products", r.productHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", r.productHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.productHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", r.productHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/products/{id}/history", r.productHandler.GetHistory).Methods(http.MethodGet)

	// Product images uploaded through the UI
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))),
	)

	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
