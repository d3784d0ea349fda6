package httpapi

import (
	"net/http"

	"github.com/suappstudio/matchday/internal/domain/goal"
	"github.com/suappstudio/matchday/internal/domain/lineup"
)

type goalCreateRequest struct {
	MatchID        int64   `json:"partita_id" validate:"required,min=1"`
	PlayerID       string  `json:"giocatore_id" validate:"required"`
	Minute         int     `json:"minuto" validate:"min=0"`
	Side           string  `json:"squadra" validate:"required,oneof=A B"`
	Type           string  `json:"tipo_gol" validate:"omitempty,oneof=normale rigore autorete punizione"`
	AssistPlayerID *string `json:"assist_giocatore_id"`
}

type goalDTO struct {
	ID             int64   `json:"id"`
	MatchID        int64   `json:"partita_id"`
	PlayerID       string  `json:"giocatore_id"`
	Minute         int     `json:"minuto"`
	Side           string  `json:"squadra"`
	Type           string  `json:"tipo_gol"`
	AssistPlayerID *string `json:"assist_giocatore_id"`
}

func goalToDTO(g goal.Goal) goalDTO {
	return goalDTO{
		ID:             g.ID,
		MatchID:        g.MatchID,
		PlayerID:       g.PlayerID,
		Minute:         g.Minute,
		Side:           string(g.Side),
		Type:           string(g.Type),
		AssistPlayerID: g.AssistPlayerID,
	}
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGoal")
	defer span.End()

	var req goalCreateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		writeError(ctx, w, err)
		return
	}
	goalType := goal.Type(req.Type)
	if req.Type == "" {
		goalType = goal.TypeNormale
	}

	created, err := h.goalService.Create(ctx, goal.Goal{
		MatchID:        req.MatchID,
		PlayerID:       req.PlayerID,
		Minute:         req.Minute,
		Side:           lineup.Side(req.Side),
		Type:           goalType,
		AssistPlayerID: req.AssistPlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create goal failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, goalToDTO(created))
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoals")
	defer span.End()

	skip, limit, err := listWindow(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	goals, err := h.goalService.List(ctx, skip, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list goals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		items = append(items, goalToDTO(g))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoal")
	defer span.End()

	goalID, err := pathInt64(r, "goalID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	g, err := h.goalService.Get(ctx, goalID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, goalToDTO(g))
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGoal")
	defer span.End()

	goalID, err := pathInt64(r, "goalID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.goalService.Delete(ctx, goalID); err != nil {
		h.logger.WarnContext(ctx, "delete goal failed", "goal_id", goalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Gol deleted successfully"})
}

func (h *Handler) ListMatchGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchGoals")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	goals, err := h.goalService.ListByMatch(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		items = append(items, goalToDTO(g))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}
