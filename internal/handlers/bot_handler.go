package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
)

// BotHandler exposes the runtime's status and reload surface to the API
// layer. Authentication happens upstream.
type BotHandler struct {
	runtime contract.BotRuntime
}

func New(runtime contract.BotRuntime) *BotHandler {
	return &BotHandler{runtime: runtime}
}

func (h *BotHandler) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.handleHealth)
	r.Get("/api/bot/status", h.handleStatus)
	r.Post("/api/bot/reload-forwarders", h.handleReloadForwarders)

	return r
}

func (h *BotHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (h *BotHandler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.runtime.Status()); err != nil {
		http.Error(w, "failed to encode status", http.StatusInternalServerError)
	}
}

func (h *BotHandler) handleReloadForwarders(w http.ResponseWriter, _ *http.Request) {
	h.runtime.ReloadForwarders()
	w.WriteHeader(http.StatusAccepted)
}
