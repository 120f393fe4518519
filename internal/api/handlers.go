package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"ai-safety-tribune/internal/article"
	"ai-safety-tribune/internal/ingest"

	"github.com/gorilla/mux"
)

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := article.Filter{
		Search:   q.Get("search"),
		Severity: q.Get("severity"),
	}
	if categories := q.Get("categories"); categories != "" {
		filter.Categories = strings.Split(categories, ",")
	}
	// unparseable numbers fall back to the defaults, not to an error
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil {
		filter.Offset = offset
	}

	articles, err := s.store.List(r.Context(), filter)
	if err != nil {
		s.logger.Printf("list articles: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	s.respondJSON(w, http.StatusOK, articles)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	_, ok, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Printf("get article %d: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "Article not found")
		return
	}

	// reading the detail page counts as a view; the response carries the
	// already incremented counter
	if err := s.store.RecordView(r.Context(), id); err != nil {
		s.logger.Printf("record view for %d: %v", id, err)
	}
	a, _, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Printf("get article %d: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}
	s.respondJSON(w, http.StatusOK, a)
}

type reactionRequest struct {
	Increment *bool `json:"increment"`
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	s.handleReaction(w, r, "likes")
}

func (s *Server) handleDislike(w http.ResponseWriter, r *http.Request) {
	s.handleReaction(w, r, "dislikes")
}

func (s *Server) handleReaction(w http.ResponseWriter, r *http.Request, kind string) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	var req reactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Increment == nil {
		s.respondError(w, http.StatusBadRequest, "Increment must be a boolean")
		return
	}

	_, ok, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Printf("get article %d: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to update "+kind)
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "Article not found")
		return
	}

	if kind == "likes" {
		err = s.store.AdjustLikes(r.Context(), id, *req.Increment)
	} else {
		err = s.store.AdjustDislikes(r.Context(), id, *req.Increment)
	}
	if err != nil {
		s.logger.Printf("adjust %s for %d: %v", kind, id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to update "+kind)
		return
	}

	updated, _, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Printf("get article %d: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to update "+kind)
		return
	}

	if kind == "likes" {
		s.respondJSON(w, http.StatusOK, map[string]int{"likes": updated.Likes})
	} else {
		s.respondJSON(w, http.StatusOK, map[string]int{"dislikes": updated.Dislikes})
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.logger.Printf("stats: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload ingest.PushEvent
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.logger.Printf("webhook: undecodable payload: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to process webhook")
		return
	}

	result := s.ingest.ProcessPush(r.Context(), payload)
	if result.Ignored {
		s.respondJSON(w, http.StatusOK, map[string]string{"message": result.Message})
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

type testCreateRequest struct {
	RepoFullName string `json:"repoFullName"`
	FilePath     string `json:"filePath"`
}

// handleTestCreateArticle runs one fetch+validate+create cycle outside the
// webhook flow, for manual verification against a real repository.
func (s *Server) handleTestCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req testCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RepoFullName == "" || req.FilePath == "" {
		s.respondError(w, http.StatusBadRequest, "repoFullName and filePath are required")
		return
	}

	created, err := s.ingest.CreateFromFile(r.Context(), req.RepoFullName, req.FilePath)
	if err != nil {
		s.logger.Printf("test create from %s/%s: %v", req.RepoFullName, req.FilePath, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Article created successfully",
		"article": created,
	})
}
