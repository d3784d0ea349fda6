package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/suappstudio/matchday/internal/domain/player"
	"github.com/suappstudio/matchday/internal/usecase"
)

type skillsRequestDTO struct {
	Speed       *int `json:"speed" validate:"omitempty,min=1,max=10"`
	Passing     *int `json:"passing" validate:"omitempty,min=1,max=10"`
	Attack      *int `json:"attack" validate:"omitempty,min=1,max=10"`
	Defense     *int `json:"defense" validate:"omitempty,min=1,max=10"`
	Technique   *int `json:"technique" validate:"omitempty,min=1,max=10"`
	Goalkeeping *int `json:"goalkeeping" validate:"omitempty,min=1,max=10"`
	Heading     *int `json:"heading" validate:"omitempty,min=1,max=10"`
	Stamina     *int `json:"stamina" validate:"omitempty,min=1,max=10"`
	Leadership  *int `json:"leadership" validate:"omitempty,min=1,max=10"`
}

// resolve fills every omitted attribute with the default rating.
func (d *skillsRequestDTO) resolve() player.Skills {
	skills := player.DefaultSkills()
	if d == nil {
		return skills
	}
	assign := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&skills.Speed, d.Speed)
	assign(&skills.Passing, d.Passing)
	assign(&skills.Attack, d.Attack)
	assign(&skills.Defense, d.Defense)
	assign(&skills.Technique, d.Technique)
	assign(&skills.Goalkeeping, d.Goalkeeping)
	assign(&skills.Heading, d.Heading)
	assign(&skills.Stamina, d.Stamina)
	assign(&skills.Leadership, d.Leadership)

	return skills
}

type skillsDTO struct {
	Speed       int `json:"speed"`
	Passing     int `json:"passing"`
	Attack      int `json:"attack"`
	Defense     int `json:"defense"`
	Technique   int `json:"technique"`
	Goalkeeping int `json:"goalkeeping"`
	Heading     int `json:"heading"`
	Stamina     int `json:"stamina"`
	Leadership  int `json:"leadership"`
}

func skillsToDTO(s player.Skills) skillsDTO {
	return skillsDTO{
		Speed:       s.Speed,
		Passing:     s.Passing,
		Attack:      s.Attack,
		Defense:     s.Defense,
		Technique:   s.Technique,
		Goalkeeping: s.Goalkeeping,
		Heading:     s.Heading,
		Stamina:     s.Stamina,
		Leadership:  s.Leadership,
	}
}

type playerCreateRequest struct {
	Name         string            `json:"name" validate:"required"`
	Role         string            `json:"role" validate:"required"`
	Skills       *skillsRequestDTO `json:"skills"`
	GoalsScored  int               `json:"goals_scored" validate:"min=0"`
	Assists      int               `json:"assists" validate:"min=0"`
	GoldMedals   int               `json:"gold_medals" validate:"min=0"`
	SilverMedals int               `json:"silver_medals" validate:"min=0"`
	BronzeMedals int               `json:"bronze_medals" validate:"min=0"`
}

type playerUpdateRequest struct {
	Name         *string           `json:"name"`
	Role         *string           `json:"role"`
	Skills       *skillsRequestDTO `json:"skills"`
	GoalsScored  *int              `json:"goals_scored" validate:"omitempty,min=0"`
	Assists      *int              `json:"assists" validate:"omitempty,min=0"`
	GoldMedals   *int              `json:"gold_medals" validate:"omitempty,min=0"`
	SilverMedals *int              `json:"silver_medals" validate:"omitempty,min=0"`
	BronzeMedals *int              `json:"bronze_medals" validate:"omitempty,min=0"`
}

type playerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PhotoURL     *string   `json:"photo_url"`
	Skills       skillsDTO `json:"skills"`
	GoalsScored  int       `json:"goals_scored"`
	Assists      int       `json:"assists"`
	GoldMedals   int       `json:"gold_medals"`
	SilverMedals int       `json:"silver_medals"`
	BronzeMedals int       `json:"bronze_medals"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type playerDetailDTO struct {
	playerDTO
	OverallRating int `json:"overall_rating"`
}

func playerToDTO(p player.Player) playerDTO {
	var photoURL *string
	if p.PhotoURL != "" {
		photoURL = &p.PhotoURL
	}

	return playerDTO{
		ID:           p.ID,
		Name:         p.Name,
		Role:         string(p.Role),
		PhotoURL:     photoURL,
		Skills:       skillsToDTO(p.Skills),
		GoalsScored:  p.GoalsScored,
		Assists:      p.Assists,
		GoldMedals:   p.GoldMedals,
		SilverMedals: p.SilverMedals,
		BronzeMedals: p.BronzeMedals,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func playerToDetailDTO(p player.Player) playerDetailDTO {
	return playerDetailDTO{
		playerDTO:     playerToDTO(p),
		OverallRating: p.OverallRating(),
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	skip, limit, err := listWindow(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	role := player.Role(strings.TrimSpace(r.URL.Query().Get("role")))

	players, err := h.playerService.List(ctx, usecase.ListPlayersInput{
		Skip:  skip,
		Limit: limit,
		Role:  role,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerCreateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		Name:         req.Name,
		Role:         player.Role(req.Role),
		Skills:       req.Skills.resolve(),
		GoalsScored:  req.GoalsScored,
		Assists:      req.Assists,
		GoldMedals:   req.GoldMedals,
		SilverMedals: req.SilverMedals,
		BronzeMedals: req.BronzeMedals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDTO(created))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDetailDTO(p))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req playerUpdateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdatePlayerInput{
		Name:         req.Name,
		GoalsScored:  req.GoalsScored,
		Assists:      req.Assists,
		GoldMedals:   req.GoldMedals,
		SilverMedals: req.SilverMedals,
		BronzeMedals: req.BronzeMedals,
	}
	if req.Role != nil {
		role := player.Role(*req.Role)
		input.Role = &role
	}
	if req.Skills != nil {
		skills := req.Skills.resolve()
		input.Skills = &skills
	}

	updated, err := h.playerService.Update(ctx, playerID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDetailDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Player deleted successfully"})
}

func (h *Handler) UploadPlayerPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadPlayerPhoto")
	defer span.End()

	playerID := r.PathValue("playerID")

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: multipart field 'file' is required", usecase.ErrInvalidInput))
		return
	}
	defer file.Close()

	photoURL, err := h.playerService.UploadPhoto(ctx, playerID, header.Filename, file)
	if err != nil {
		h.logger.WarnContext(ctx, "upload player photo failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"photo_url": photoURL,
		"message":   "Photo uploaded successfully",
	})
}

type statisticsDTO struct {
	TotalPlayers  int                `json:"total_players"`
	PlayersByRole map[string]int     `json:"players_by_role"`
	AverageSkills map[string]float64 `json:"average_skills"`
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatistics")
	defer span.End()

	stats, err := h.playerService.Statistics(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	byRole := make(map[string]int, len(player.AllRoles))
	for _, role := range player.AllRoles {
		byRole[string(role)] = stats.PlayersByRole[role]
	}

	averages := map[string]float64{}
	if stats.TotalPlayers > 0 {
		averages = map[string]float64{
			"speed":       stats.SkillAverages.Speed,
			"passing":     stats.SkillAverages.Passing,
			"attack":      stats.SkillAverages.Attack,
			"defense":     stats.SkillAverages.Defense,
			"technique":   stats.SkillAverages.Technique,
			"goalkeeping": stats.SkillAverages.Goalkeeping,
			"heading":     stats.SkillAverages.Heading,
			"stamina":     stats.SkillAverages.Stamina,
			"leadership":  stats.SkillAverages.Leadership,
		}
	}

	writeJSON(ctx, w, http.StatusOK, statisticsDTO{
		TotalPlayers:  stats.TotalPlayers,
		PlayersByRole: byRole,
		AverageSkills: averages,
	})
}
