package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/openquiz/trivia-api/internal/catalog"
	"github.com/openquiz/trivia-api/internal/config"
)

// Routes builds the catalog route table. Split out from NewHTTPServer so
// handler tests can exercise routing without a listening server.
func Routes(h *catalog.HTTPHandlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /categories", h.GetCategories)
	mux.HandleFunc("GET /categories/{id}/questions", h.CategoryQuestions)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /questions/results", h.SearchQuestions)
	mux.HandleFunc("POST /quizzes", h.PlayQuiz)

	return mux
}

// NewHTTPServer wires the catalog routes plus operational endpoints behind
// the middleware chain.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, handlers *catalog.HTTPHandlers) *http.Server {
	mux := Routes(handlers)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDatabase(r.Context(), pool); err != nil {
			logger.Error().Err(err).Msg("readiness ping failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	handler := CORS(cfg.CORS)(RequestLogger(logger)(Metrics(JSONErrors(mux))))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}
