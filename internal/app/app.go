package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/suappstudio/matchday/external/cloudinary"
	"github.com/suappstudio/matchday/internal/config"
	"github.com/suappstudio/matchday/internal/infrastructure/media"
	"github.com/suappstudio/matchday/internal/infrastructure/repository/postgres"
	"github.com/suappstudio/matchday/internal/interfaces/httpapi"
	idgen "github.com/suappstudio/matchday/internal/platform/id"
	"github.com/suappstudio/matchday/internal/platform/logging"
	"github.com/suappstudio/matchday/internal/usecase"
)

// NewHTTPServer wires repositories, services and the router into a
// ready-to-run server. The returned cleanup releases the DB pool and
// the media worker pool.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	playerRepo := postgres.NewPlayerRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	lineupRepo := postgres.NewLineupRepository(db)
	goalRepo := postgres.NewGoalRepository(db)

	var remote media.RemoteUploader
	if cfg.CloudinaryConfigured() {
		remote = cloudinary.NewClient(cloudinary.ClientConfig{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Timeout:   cfg.CloudinaryTimeout,
			Logger:    logger,
		})
	} else {
		logger.Warn("cloudinary credentials missing, player photos will be stored locally")
	}

	photoStore, err := media.NewStore(media.StoreConfig{
		Remote:  remote,
		BaseDir: cfg.UploadDir,
		Workers: cfg.MediaUploadWorkers,
		Logger:  logger,
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("build media store: %w", err)
	}

	playerSvc := usecase.NewPlayerService(playerRepo, photoStore, idgen.NewUUIDGenerator(), logger)
	matchSvc := usecase.NewMatchService(matchRepo, logger)
	lineupSvc := usecase.NewLineupService(lineupRepo, matchRepo, playerRepo, logger)
	goalSvc := usecase.NewGoalService(goalRepo, matchRepo, playerRepo, logger)

	handler := httpapi.NewHandler(playerSvc, matchSvc, lineupSvc, goalSvc, db, cfg.Environment, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.UploadDir)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func() {
		photoStore.Close()
		_ = db.Close()
	}

	return server, cleanup, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
