package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/chat"
	"github.com/wilbanksalexis/Powering/internal/mapview"
)

type companiesResponse struct {
	Options []mapview.FilterOption `json:"options"`
}

type legendResponse struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
	Total   int    `json:"total"` // loaded locations, not the rendered count
}

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Response string `json:"response"`
	Place    string `json:"place"`
}

type messagesResponse struct {
	SessionID string         `json:"session_id"`
	Messages  []chat.Message `json:"messages"`
}

func (d *Dashboard) handleCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, companiesResponse{Options: d.state.FilterOptions()})
}

func (d *Dashboard) handleView(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("company")
	if filter == "" {
		filter = mapview.FilterAll
	}
	writeJSON(w, http.StatusOK, d.state.Render(filter))
}

func (d *Dashboard) handleLegend(w http.ResponseWriter, r *http.Request) {
	legend := d.state.Legend()
	writeJSON(w, http.StatusOK, legendResponse{
		Message: legend.Message,
		Error:   legend.Error,
		Total:   len(d.state.Locations()),
	})
}

func (d *Dashboard) handleChat(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	reply := chat.Answer(req.Query)
	writeJSON(w, http.StatusOK, askResponse{
		Response: reply.Text,
		Place:    string(reply.Classification.Place),
	})
}

func (d *Dashboard) handleSessionMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session")

	msgs, err := d.store.GetMessages(r.Context(), sessionID)
	if errors.Is(err, chat.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		d.log.Error("loading chat messages", zap.String("session_id", sessionID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messagesResponse{SessionID: sessionID, Messages: msgs})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
