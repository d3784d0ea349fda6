package httpapi

import (
	"net/http"

	"github.com/suappstudio/matchday/internal/domain/lineup"
)

type lineupEntryRequest struct {
	MatchID     int64  `json:"partita_id" validate:"required,min=1"`
	PlayerID    string `json:"giocatore_id" validate:"required"`
	Side        string `json:"squadra" validate:"required,oneof=A B"`
	ShirtNumber *int   `json:"numero_maglia" validate:"omitempty,min=1"`
	Captain     bool   `json:"capitano"`
}

func (req lineupEntryRequest) toEntry() lineup.Entry {
	return lineup.Entry{
		MatchID:     req.MatchID,
		PlayerID:    req.PlayerID,
		Side:        lineup.Side(req.Side),
		ShirtNumber: req.ShirtNumber,
		Captain:     req.Captain,
	}
}

type lineupEntryDTO struct {
	ID          int64  `json:"id"`
	MatchID     int64  `json:"partita_id"`
	PlayerID    string `json:"giocatore_id"`
	Side        string `json:"squadra"`
	ShirtNumber *int   `json:"numero_maglia"`
	Captain     bool   `json:"capitano"`
}

type lineupEntryDetailDTO struct {
	lineupEntryDTO
	Player playerDTO `json:"giocatore"`
}

func lineupEntryToDTO(e lineup.Entry) lineupEntryDTO {
	return lineupEntryDTO{
		ID:          e.ID,
		MatchID:     e.MatchID,
		PlayerID:    e.PlayerID,
		Side:        string(e.Side),
		ShirtNumber: e.ShirtNumber,
		Captain:     e.Captain,
	}
}

func (h *Handler) CreateLineupEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLineupEntries")
	defer span.End()

	var reqs []lineupEntryRequest
	if err := h.decodeJSON(r, &reqs); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]lineup.Entry, 0, len(reqs))
	for _, req := range reqs {
		if err := h.validateStruct(req); err != nil {
			writeError(ctx, w, err)
			return
		}
		entries = append(entries, req.toEntry())
	}

	created, err := h.lineupService.CreateBatch(ctx, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "create lineup entries failed", "created", len(created), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupEntryDTO, 0, len(created))
	for _, e := range created {
		items = append(items, lineupEntryToDTO(e))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLineupEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineupEntries")
	defer span.End()

	skip, limit, err := listWindow(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.lineupService.List(ctx, skip, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list lineup entries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, lineupEntryToDTO(e))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLineupEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupEntry")
	defer span.End()

	entryID, err := pathInt64(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	e, err := h.lineupService.Get(ctx, entryID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, lineupEntryToDTO(e))
}

func (h *Handler) DeleteLineupEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLineupEntry")
	defer span.End()

	entryID, err := pathInt64(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.lineupService.Delete(ctx, entryID); err != nil {
		h.logger.WarnContext(ctx, "delete lineup entry failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Formazione deleted successfully"})
}

func (h *Handler) GetMatchLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchLineup")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detailed, err := h.lineupService.ListByMatchDetailed(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupEntryDetailDTO, 0, len(detailed))
	for _, d := range detailed {
		items = append(items, lineupEntryDetailDTO{
			lineupEntryDTO: lineupEntryToDTO(d.Entry),
			Player:         playerToDTO(d.Player),
		})
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) ReplaceMatchLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceMatchLineup")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var reqs []lineupEntryRequest
	if err := h.decodeJSON(r, &reqs); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]lineup.Entry, 0, len(reqs))
	for _, req := range reqs {
		if err := h.validateStruct(req); err != nil {
			writeError(ctx, w, err)
			return
		}
		entries = append(entries, req.toEntry())
	}

	replaced, err := h.lineupService.ReplaceForMatch(ctx, matchID, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "replace match lineup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupEntryDTO, 0, len(replaced))
	for _, e := range replaced {
		items = append(items, lineupEntryToDTO(e))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}
