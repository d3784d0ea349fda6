package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/suappstudio/matchday/internal/domain/match"
	"github.com/suappstudio/matchday/internal/usecase"
)

const (
	matchDateLayout    = "2006-01-02"
	kickoffTimeLayout  = "15:04:05"
	kickoffShortLayout = "15:04"
)

type matchCreateRequest struct {
	Date        string  `json:"data_partita" validate:"required"`
	KickoffTime *string `json:"ora_inizio"`
	TeamAName   *string `json:"nome_squadra_a"`
	TeamBName   *string `json:"nome_squadra_b"`
	TeamAGoals  int     `json:"gol_squadra_a" validate:"min=0"`
	TeamBGoals  int     `json:"gol_squadra_b" validate:"min=0"`
	Venue       *string `json:"stadio"`
	Referee     *string `json:"arbitro"`
	Notes       *string `json:"note"`
	SquadSize   *int    `json:"numero_giocatori_squadra" validate:"omitempty,min=1"`
}

type matchUpdateRequest struct {
	Date        *string `json:"data_partita"`
	KickoffTime *string `json:"ora_inizio"`
	TeamAName   *string `json:"nome_squadra_a"`
	TeamBName   *string `json:"nome_squadra_b"`
	TeamAGoals  *int    `json:"gol_squadra_a" validate:"omitempty,min=0"`
	TeamBGoals  *int    `json:"gol_squadra_b" validate:"omitempty,min=0"`
	Venue       *string `json:"stadio"`
	Referee     *string `json:"arbitro"`
	Notes       *string `json:"note"`
	SquadSize   *int    `json:"numero_giocatori_squadra" validate:"omitempty,min=1"`
}

type matchDTO struct {
	ID          int64   `json:"id"`
	Date        string  `json:"data_partita"`
	KickoffTime *string `json:"ora_inizio"`
	TeamAName   *string `json:"nome_squadra_a"`
	TeamBName   *string `json:"nome_squadra_b"`
	TeamAGoals  int     `json:"gol_squadra_a"`
	TeamBGoals  int     `json:"gol_squadra_b"`
	Venue       *string `json:"stadio"`
	Referee     *string `json:"arbitro"`
	Notes       *string `json:"note"`
	SquadSize   *int    `json:"numero_giocatori_squadra"`
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:          m.ID,
		Date:        m.Date.Format(matchDateLayout),
		KickoffTime: optionalString(m.KickoffTime),
		TeamAName:   optionalString(m.TeamAName),
		TeamBName:   optionalString(m.TeamBName),
		TeamAGoals:  m.TeamAGoals,
		TeamBGoals:  m.TeamBGoals,
		Venue:       optionalString(m.Venue),
		Referee:     optionalString(m.Referee),
		Notes:       optionalString(m.Notes),
		SquadSize:   m.SquadSize,
	}
}

func parseMatchDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(matchDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data_partita must be formatted as YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return parsed, nil
}

// parseKickoffTime normalizes ora_inizio to HH:MM:SS. Seconds may be
// omitted on input; anything that is not a clock time is rejected.
func parseKickoffTime(raw string) (string, error) {
	for _, layout := range []string{kickoffTimeLayout, kickoffShortLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(kickoffTimeLayout), nil
		}
	}
	return "", fmt.Errorf("%w: ora_inizio must be formatted as HH:MM:SS", usecase.ErrInvalidInput)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	skip, limit, err := listWindow(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.List(ctx, skip, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchCreateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := parseMatchDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	kickoff := ""
	if req.KickoffTime != nil && *req.KickoffTime != "" {
		kickoff, err = parseKickoffTime(*req.KickoffTime)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	created, err := h.matchService.Create(ctx, match.Match{
		Date:        date,
		KickoffTime: kickoff,
		TeamAName:   stringOrEmpty(req.TeamAName),
		TeamBName:   stringOrEmpty(req.TeamBName),
		TeamAGoals:  req.TeamAGoals,
		TeamBGoals:  req.TeamBGoals,
		Venue:       stringOrEmpty(req.Venue),
		Referee:     stringOrEmpty(req.Referee),
		Notes:       stringOrEmpty(req.Notes),
		SquadSize:   req.SquadSize,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchToDTO(created))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchUpdateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.KickoffTime != nil && *req.KickoffTime != "" {
		normalized, err := parseKickoffTime(*req.KickoffTime)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		req.KickoffTime = &normalized
	}

	input := match.Update{
		KickoffTime: req.KickoffTime,
		TeamAName:   req.TeamAName,
		TeamBName:   req.TeamBName,
		TeamAGoals:  req.TeamAGoals,
		TeamBGoals:  req.TeamBGoals,
		Venue:       req.Venue,
		Referee:     req.Referee,
		Notes:       req.Notes,
		SquadSize:   req.SquadSize,
	}
	if req.Date != nil {
		date, err := parseMatchDate(*req.Date)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.Date = &date
	}

	updated, err := h.matchService.Update(ctx, matchID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Partita deleted successfully"})
}
