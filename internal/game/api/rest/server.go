// Package rest exposes the game service over a thin JSON HTTP API. The
// layer parses primitives, forwards to the service and renders results;
// no game logic lives here.
package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/app"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// Server routes HTTP requests to the game service.
type Server struct {
	service   *app.Service
	jwtSecret []byte
}

// NewServer constructs the REST server. The JWT secret guards the admin
// endpoints; leaving it empty disables them.
func NewServer(service *app.Service, jwtSecret []byte) *Server {
	return &Server{service: service, jwtSecret: jwtSecret}
}

// Handler returns the routed HTTP handler with tracing applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/pathways", s.handleListPathways)
	mux.HandleFunc("GET /v1/recipes", s.handleRecipeBook)
	mux.HandleFunc("GET /v1/items/{query}", s.handleItemInfo)
	mux.HandleFunc("GET /v1/npc", s.handleNPC)

	mux.HandleFunc("GET /v1/players/{id}", s.handleProfile)
	mux.HandleFunc("GET /v1/players/{id}/inventory", s.handleInventory)
	mux.HandleFunc("GET /v1/players/{id}/abilities", s.handleAbilities)

	mux.HandleFunc("POST /v1/players/{id}/pathway", s.handleChoosePathway)
	mux.HandleFunc("POST /v1/players/{id}/stats/allocate", s.handleAllocateStat)
	mux.HandleFunc("POST /v1/players/{id}/stats/refund", s.handleRefundStat)
	mux.HandleFunc("POST /v1/players/{id}/work", s.handleWork)
	mux.HandleFunc("POST /v1/players/{id}/daily", s.handleDaily)
	mux.HandleFunc("POST /v1/players/{id}/casino", s.handleCasino)
	mux.HandleFunc("POST /v1/players/{id}/expedition", s.handleExpedition)
	mux.HandleFunc("POST /v1/players/{id}/act", s.handleAct)
	mux.HandleFunc("POST /v1/players/{id}/advance", s.handleAdvance)
	mux.HandleFunc("POST /v1/players/{id}/craft", s.handleCraft)

	mux.HandleFunc("POST /v1/admin/reset", s.requireAdmin(s.handleReset))

	return traced(mux)
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.Wrap(apperrors.CodeUnknown, "decode request body", err)
	}
	return nil
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.service.Profile(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.service.InventorySummary(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (s *Server) handleAbilities(w http.ResponseWriter, r *http.Request) {
	abilities, err := s.service.Abilities(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, abilities)
}

func (s *Server) handleListPathways(w http.ResponseWriter, r *http.Request) {
	names, err := s.service.ListPathways(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pathways": names})
}

func (s *Server) handleItemInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.service.ItemInfo(r.Context(), r.PathValue("query"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleRecipeBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.service.RecipeBook(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": book})
}

func (s *Server) handleNPC(w http.ResponseWriter, r *http.Request) {
	npc, err := s.service.NPCSnapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, npc)
}

func (s *Server) handleChoosePathway(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.service.ChoosePathway(r.Context(), r.PathValue("id"), body.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAllocateStat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stat string `json:"stat"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.service.AllocateStat(r.Context(), r.PathValue("id"), body.Stat)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRefundStat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stat string `json:"stat"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.service.RefundStat(r.Context(), r.PathValue("id"), body.Stat)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWork(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Work(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Daily(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCasino(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Wager int  `json:"wager"`
		AllIn bool `json:"all_in"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.service.Casino(r.Context(), r.PathValue("id"), body.Wager, body.AllIn)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleExpedition(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Expedition(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAct(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Act(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Advance(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCraft(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
		Recipe   string `json:"recipe"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.service.Craft(r.Context(), r.PathValue("id"), body.Category, body.Recipe)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Reset(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
