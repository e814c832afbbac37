package dashboard

import (
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/chat"
	"github.com/wilbanksalexis/Powering/internal/mapview"
)

// Dashboard serves the map page, its JSON API and the chat socket.
type Dashboard struct {
	state   *mapview.State
	store   *chat.Store
	pageCfg PageConfig
	delay   time.Duration
	log     *zap.Logger
}

// New creates a Dashboard over a loaded (or failed) map state. Chat
// transcripts of live sockets are kept in store.
func New(state *mapview.State, store *chat.Store, pageCfg PageConfig, delay time.Duration, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dashboard{
		state:   state,
		store:   store,
		pageCfg: pageCfg,
		delay:   delay,
		log:     log,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/companies", d.handleCompanies)
	r.Get("/api/view", d.handleView)
	r.Get("/api/legend", d.handleLegend)
	r.Post("/api/chat", d.handleChat)
	r.Get("/api/chat/{session}/messages", d.handleSessionMessages)
	r.Get("/ws/chat", d.handleWebSocket)
}
