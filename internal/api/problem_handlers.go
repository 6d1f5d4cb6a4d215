package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/leetrecall/internal/errors"
	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/services"
)

const defaultSampleSize = 3

type addProblemRequest struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Topic      string `json:"topic"`
	URL        string `json:"url"`
}

type bestTimeRequest struct {
	Seconds *int `json:"seconds"`
}

// titleParam returns the {title} path segment. chi matches on RawPath when
// the request carries one, and the segment is then still escaped.
func titleParam(r *http.Request) (string, error) {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(title)
		if err != nil {
			return "", errors.NewBadRequestError("invalid problem title in path")
		}
		title = unescaped
	}
	if title == "" {
		return "", errors.NewBadRequestError("invalid problem title in path")
	}
	return title, nil
}

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("search")
	logger.FromContext(ctx).Debug("listing problems: search=%q", query)

	problems, err := s.Problems.AllRecords(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, services.Search(problems, query))
}

func (s *Server) handleAddProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req addProblemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	added, err := s.Problems.Add(ctx, req.Title, models.Difficulty(req.Difficulty), models.Topic(req.Topic), req.URL)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !added {
		handleError(w, r, errors.NewDuplicateTitleError(req.Title))
		return
	}

	p, err := s.Problems.Find(ctx, req.Title)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("problem added via api: title=%q", req.Title)
	writeJSON(w, r, http.StatusCreated, p)
}

func (s *Server) handleDueProblems(w http.ResponseWriter, r *http.Request) {
	due, err := s.Problems.DueToday(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, due)
}

func (s *Server) handleSampleProblems(w http.ResponseWriter, r *http.Request) {
	n := defaultSampleSize
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			handleError(w, r, errors.NewValidationError("n", "must be a non-negative integer"))
			return
		}
		n = parsed
	}

	sample, err := s.Problems.RandomSample(r.Context(), n)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sample)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Problems.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

func (s *Server) handleReviewProblem(w http.ResponseWriter, r *http.Request) {
	title, err := titleParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Problems.MarkReviewed(r.Context(), title)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := result.Err(title); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleResetProblem(w http.ResponseWriter, r *http.Request) {
	title, err := titleParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Problems.ResetProblem(r.Context(), title)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := result.Err(title); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleBestTime(w http.ResponseWriter, r *http.Request) {
	title, err := titleParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req bestTimeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Seconds == nil {
		handleError(w, r, errors.NewValidationError("seconds", "is required"))
		return
	}

	result, err := s.Problems.UpdateBestTime(r.Context(), title, *req.Seconds)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !result.Found {
		handleError(w, r, errors.NewNotFoundError("problem", title))
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
