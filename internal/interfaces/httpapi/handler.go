package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/suappstudio/matchday/internal/platform/logging"
	"github.com/suappstudio/matchday/internal/usecase"
)

const apiVersion = "1.0.0"

// DBPinger reports whether the backing database answers.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	playerService *usecase.PlayerService
	matchService  *usecase.MatchService
	lineupService *usecase.LineupService
	goalService   *usecase.GoalService
	db            DBPinger
	environment   string
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	lineupService *usecase.LineupService,
	goalService *usecase.GoalService,
	db DBPinger,
	environment string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		matchService:  matchService,
		lineupService: lineupService,
		goalService:   goalService,
		db:            db,
		environment:   environment,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "Match Day API",
		"version": apiVersion,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	database := "connected"
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			database = "disconnected"
		}
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": h.environment,
		"database":    database,
	})
}

func (h *Handler) decodeJSON(r *http.Request, target any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateStruct(v any) error {
	if err := h.validator.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// listWindow reads the skip/limit query pair shared by every listing
// endpoint.
func listWindow(r *http.Request) (int, int, error) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return 0, 0, err
	}

	return skip, limit, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %s must be an integer", usecase.ErrInvalidInput, name)
	}

	return out, nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	out, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: path parameter %s must be an integer", usecase.ErrInvalidInput, name)
	}

	return out, nil
}
