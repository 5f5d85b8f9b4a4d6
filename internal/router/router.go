package router

import (
	"context"
	"net/http"
	"time"

	_ "pet-api/docs"
	"pet-api/internal/domain/pets"
	"pet-api/internal/middleware"
	"pet-api/internal/platform/httpjson"
	"pet-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger lo cumple *sql.DB; nil en modo in-memory.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	PetRepo pets.Repository
	Logger  logger.Logger

	// Opcional: si viene, /health también verifica la DB.
	DB Pinger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteNotFound(w, "The requested URL was not found on the server")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteError(w, http.StatusMethodNotAllowed, httpjson.ErrCodeMethodNotAllowed,
			"The method is not allowed for the requested URL")
	})

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/", homeHandler)
	r.Get("/health", healthHandler(opts.DB, log))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petsSvc := pets.NewService(opts.PetRepo)
	pets.RegisterRoutes(r, petsSvc, log)

	return r
}

type homeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// homeHandler godoc
// @Summary Descubrimiento del servicio
// @Description Describe las rutas disponibles.
// @Tags meta
// @Produce json
// @Success 200 {object} homeResponse
// @Router / [get]
func homeHandler(w http.ResponseWriter, _ *http.Request) {
	httpjson.WriteJSON(w, http.StatusOK, homeResponse{
		Message: "Welcome to the Pet API",
		Endpoints: map[string]string{
			"GET /pets":             "List all pets",
			"GET /pets/<pet_id>":    "Get a pet by ID",
			"POST /pets":            "Create a new pet",
			"PUT /pets/<pet_id>":    "Update a pet by ID",
			"DELETE /pets/<pet_id>": "Delete a pet by ID",
		},
	})
}

type healthResponse struct {
	Status string `json:"status"`
}

// healthHandler godoc
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func healthHandler(db Pinger, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				log.Warn("health: db ping failed", map[string]any{
					"request_id": middleware.GetRequestID(r.Context()),
					"error":      err.Error(),
				})
				httpjson.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
				return
			}
		}

		httpjson.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
