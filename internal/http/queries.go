package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type listResponse struct {
	Items []string `json:"items"`
}

type topGenreResponse struct {
	UserID   string `json:"userId"`
	TopGenre string `json:"topGenre"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Movies      int    `json:"movies"`
	RatedMovies int    `json:"ratedMovies"`
}

func (s *Server) handleTopMovies(w http.ResponseWriter, r *http.Request) {
	n, err := s.parseTopN(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, toListResponse(s.engine.TopMovies(n)))
}

func (s *Server) handleTopGenres(w http.ResponseWriter, r *http.Request) {
	n, err := s.parseTopN(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, toListResponse(s.engine.TopGenres(n)))
}

func (s *Server) handleTopMoviesInGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := decodePathParam(r, "genre")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	n, err := s.parseTopN(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, toListResponse(s.engine.TopMoviesInGenre(n, genre)))
}

func (s *Server) handleUserTopGenre(w http.ResponseWriter, r *http.Request) {
	userID, err := decodePathParam(r, "userID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	resp := topGenreResponse{
		UserID:   userID,
		TopGenre: s.engine.UserTopGenre(userID),
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := decodePathParam(r, "userID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, toListResponse(s.engine.RecommendMovies(userID)))
}

// parseTopN reads the n query parameter, falling back to the configured
// default and clamping to the configured maximum. Negative values pass
// through; the engine answers them with empty results.
func (s *Server) parseTopN(query url.Values) (int, error) {
	val := strings.TrimSpace(query.Get("n"))
	if val == "" {
		return s.cfg.TopDefaultN, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid n value")
	}
	if n > s.cfg.TopMaxN {
		n = s.cfg.TopMaxN
	}
	return n, nil
}

func decodePathParam(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		return "", fmt.Errorf("missing %s parameter", key)
	}
	val, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s parameter", key)
	}
	return strings.TrimSpace(val), nil
}

func toListResponse(names []string) listResponse {
	if names == nil {
		names = []string{}
	}
	return listResponse{Items: names}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Printf("failed to encode response: %v", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
