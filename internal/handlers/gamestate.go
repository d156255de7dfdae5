package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/ventureworks/hustle-engine/internal/storage"
	"github.com/ventureworks/hustle-engine/pkg/catalog"
	"github.com/ventureworks/hustle-engine/pkg/sim"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateGameStateRequest starts a session in the chosen city.
type CreateGameStateRequest struct {
	City string `json:"city"`
}

// CommandRequest is one player action against a session. Action selects
// the operation; the remaining fields are read per action.
type CommandRequest struct {
	Action string `json:"action"`

	GoodsID    int    `json:"goods_id,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	Points     int    `json:"points,omitempty"`
	WorkTypeID string `json:"work_type_id,omitempty"`
	HouseType  string `json:"house_type_id,omitempty"`
	City       string `json:"city,omitempty"`
	Mode       string `json:"mode,omitempty"`
	LocationID int    `json:"location_id,omitempty"`
	Amount     int    `json:"amount,omitempty"`
	EventID    string `json:"event_id,omitempty"`
	OptionID   string `json:"option_id,omitempty"`
}

// CommandResponse reports the outcome of one command: whether it took
// effect, the narration it produced, and the resulting state.
type CommandResponse struct {
	OK       bool             `json:"ok"`
	Messages []string         `json:"messages"`
	Sounds   []string         `json:"sounds,omitempty"`
	State    *state.GameState `json:"state"`
}

type GameStateHandler struct {
	storage     storage.Storage
	catalog     *catalog.Catalog
	logger      *slog.Logger
	bankHacking bool
}

func NewGameStateHandler(storage storage.Storage, cat *catalog.Catalog, logger *slog.Logger, bankHacking bool) *GameStateHandler {
	return &GameStateHandler{
		storage:     storage,
		catalog:     cat,
		logger:      logger,
		bankHacking: bankHacking,
	}
}

// ServeHTTP handles game session operations.
// Routes:
// POST /v1/gamestate              - Create new game state
// GET /v1/gamestate/{id}          - Read game state by ID
// DELETE /v1/gamestate/{id}       - Delete game state by ID
// POST /v1/gamestate/{id}/command - Execute a player command
func (h *GameStateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.TrimPrefix(r.URL.Path, "/v1/gamestate")
	path = strings.Trim(path, "/")

	if path == "" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Create sessions with POST")
			return
		}
		h.handleCreate(w, r)
		return
	}

	idStr, rest, _ := strings.Cut(path, "/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("Invalid game state ID", "id", idStr, "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid game state ID format")
		return
	}

	switch {
	case rest == "command":
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Commands must be POSTed")
			return
		}
		h.handleCommand(w, r, id)
	case rest == "":
		switch r.Method {
		case http.MethodGet:
			h.handleRead(w, r, id)
		case http.MethodDelete:
			h.handleDelete(w, r, id)
		default:
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, DELETE")
		}
	default:
		h.writeError(w, http.StatusNotFound, "Not found")
	}
}

func (h *GameStateHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateGameStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.City == "" {
		h.writeError(w, http.StatusBadRequest, "city is required")
		return
	}

	gs, ok := state.NewGameState(h.catalog, req.City)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Unknown city: "+req.City)
		return
	}

	// Open the starting market so the first screen has prices.
	h.newEngine(gs, &sim.Recorder{}).RefreshPrices()

	if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save new gamestate", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to save game state")
		return
	}

	h.logger.Info("Game session created", "uuid", gs.ID, "city", req.City)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(gs); err != nil {
		h.logger.Error("Failed to encode gamestate", "error", err)
	}
}

func (h *GameStateHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load gamestate", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		h.writeError(w, http.StatusNotFound, "Game state not found")
		return
	}
	if err := json.NewEncoder(w).Encode(gs); err != nil {
		h.logger.Error("Failed to encode gamestate", "error", err)
	}
}

func (h *GameStateHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.storage.DeleteGameState(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete gamestate", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to delete game state")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameStateHandler) handleCommand(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load gamestate", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		h.writeError(w, http.StatusNotFound, "Game state not found")
		return
	}

	rec := &sim.Recorder{}
	engine := h.newEngine(gs, rec)

	ok, known := dispatch(engine, req)
	if !known {
		h.writeError(w, http.StatusBadRequest, "Unknown action: "+req.Action)
		return
	}

	if err := h.storage.SaveGameState(r.Context(), id, gs); err != nil {
		h.logger.Error("Failed to save gamestate", "uuid", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to save game state")
		return
	}

	resp := CommandResponse{
		OK:       ok,
		Messages: rec.Messages,
		Sounds:   rec.Sounds,
		State:    gs,
	}
	if resp.Messages == nil {
		resp.Messages = []string{}
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode command response", "error", err)
	}
}

func (h *GameStateHandler) newEngine(gs *state.GameState, rec *sim.Recorder) *sim.Engine {
	return sim.NewEngine(h.catalog, gs, sim.NewRNG(), rec, rec, h.logger,
		sim.WithBankHacking(h.bankHacking))
}

// dispatch maps a command to its engine operation. The second return is
// false for an unknown action.
func dispatch(engine *sim.Engine, req CommandRequest) (ok, known bool) {
	switch req.Action {
	case "buy":
		return engine.BuyGoods(req.GoodsID, req.Quantity), true
	case "sell":
		return engine.SellGoods(req.GoodsID, req.Quantity), true
	case "next":
		return engine.NextTime(), true
	case "hospital":
		return engine.HospitalTreatment(req.Points), true
	case "work":
		return engine.DoWork(req.WorkTypeID), true
	case "restaurant":
		return engine.EatAtRestaurant(), true
	case "rent_house":
		return engine.RentHouse(req.HouseType), true
	case "switch_city":
		return engine.SwitchCity(req.City, req.Mode), true
	case "subway":
		return engine.TakeSubway(req.LocationID), true
	case "deposit":
		return engine.BankDeposit(req.Amount), true
	case "withdraw":
		return engine.BankWithdraw(req.Amount), true
	case "repay_debt":
		return engine.RepayDebt(req.Amount), true
	case "place_bet":
		return engine.PlaceBet(req.EventID, req.OptionID, req.Amount), true
	default:
		return false, false
	}
}

func (h *GameStateHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
