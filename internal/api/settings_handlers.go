package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/leetrecall/internal/errors"
)

type settingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type putSettingRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, ok, err := s.Settings.Get(r.Context(), key)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewNotFoundError("setting", key))
		return
	}
	writeJSON(w, r, http.StatusOK, settingResponse{Key: key, Value: value})
}

func (s *Server) handlePutSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req putSettingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.Settings.Set(r.Context(), key, req.Value); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, settingResponse{Key: key, Value: req.Value})
}
