package api

import (
	"encoding/json"
	"log"
	"net/http"

	"ai-safety-tribune/internal/article"
	"ai-safety-tribune/internal/ingest"

	"github.com/gorilla/mux"
)

// Server is the externally facing REST surface. It holds no state of its own:
// reads go straight to the store, the webhook goes to the ingest service.
type Server struct {
	store  article.Store
	ingest *ingest.Service
	logger *log.Logger
}

func NewServer(store article.Store, ingestSvc *ingest.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	return &Server{
		store:  store,
		ingest: ingestSvc,
		logger: logger,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/articles", s.handleListArticles).Methods(http.MethodGet)
	r.HandleFunc("/api/articles/{id}", s.handleGetArticle).Methods(http.MethodGet)
	r.HandleFunc("/api/articles/{id}/like", s.handleLike).Methods(http.MethodPost)
	r.HandleFunc("/api/articles/{id}/dislike", s.handleDislike).Methods(http.MethodPost)
	r.HandleFunc("/api/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/api/github/webhook", s.handleWebhook).Methods(http.MethodPost)
	r.HandleFunc("/api/test/create-article", s.handleTestCreateArticle).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"message": message})
}
