package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kinoline/kinoline/internal/arena"
	"github.com/kinoline/kinoline/internal/config"
	"github.com/kinoline/kinoline/internal/db"
	"github.com/kinoline/kinoline/internal/lock"
	"github.com/kinoline/kinoline/internal/migration"
	"github.com/kinoline/kinoline/internal/playlist"
	"github.com/kinoline/kinoline/internal/random"
	"github.com/kinoline/kinoline/internal/schedule"
	"github.com/kinoline/kinoline/internal/selector"
	"github.com/kinoline/kinoline/internal/service/catalog"
	"github.com/kinoline/kinoline/internal/service/faceoff"
	"github.com/kinoline/kinoline/internal/service/screening"
	"github.com/kinoline/kinoline/internal/tmdb"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4"
	"go-micro.dev/v4/logger"

	// Plugins
	_ "github.com/go-micro/plugins/v4/registry/etcd"
)

var Version = "v0.0.0"

const serviceName = "kinoline"

func main() {
	logger.Infof("%s %s", serviceName, Version)
	defer logger.Info("DONE.")

	useDebug := false

	service := micro.NewService(
		micro.Name(serviceName),
		micro.Version(Version),
		micro.Flags(
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"debug"},
				Usage:       "debug log level",
				Value:       false,
				Destination: &useDebug,
			},
		),
	)

	service.Init(
		micro.Action(func(context *cli.Context) error {
			configFile := fmt.Sprintf("/etc/kinoline/%s.json", serviceName)
			if context.IsSet("config") {
				configFile = context.String("config")
			}
			return config.Load(configFile)
		}),
	)

	if useDebug {
		_ = logger.Init(logger.WithLevel(logger.DebugLevel))
	}

	cfg := config.Config()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Fatalf("Connect to database failed: %s", err)
	}
	logger.Info("Connected to database")

	m := migration.Migrator{
		CurrentVersion: Version,
		Database:       database,
	}
	if err = m.Run(); err != nil {
		logger.Fatalf("Migration failed: %s", err)
	}

	lk := lock.NewLocker()
	sched := schedule.New()
	defer sched.Stop()

	var draws arena.Source
	if cfg.Randomizer.Mode == "pseudo" {
		draws = random.NewPseudo()
	} else {
		draws = random.NewRemote(cfg.Randomizer.URL, time.Duration(cfg.Randomizer.TimeoutSec)*time.Second)
	}

	var metadata catalog.Metadata
	if cfg.Tmdb.Token != "" {
		var cache *tmdb.Cache
		if cfg.Tmdb.CacheFile != "" {
			cache, err = tmdb.OpenCache(cfg.Tmdb.CacheFile, time.Duration(cfg.Tmdb.CacheTTLHours)*time.Hour)
			if err != nil {
				logger.Warnf("Cannot open metadata cache: %s", err)
			} else {
				defer cache.Close()
			}
		}
		metadata = tmdb.NewClient(cfg.Tmdb.Token, cfg.Tmdb.BaseURL, cache)
	}

	retention := time.Duration(cfg.Retention.PurgeAfterDays) * 24 * time.Hour
	sweepInterval := time.Duration(cfg.Retention.SweepIntervalMin) * time.Minute
	purge := schedule.NewTask("catalog-purge", func(ctx context.Context) schedule.Result {
		purged, err := database.PurgeDeleted(ctx, retention)
		if err != nil {
			logger.Warnf("Purge removed items failed: %s", err)
			return schedule.Result{Result: schedule.OpResultRetryAfter, After: sweepInterval}
		}
		if purged > 0 {
			logger.Infof("Purged %d removed items", purged)
		}
		return schedule.Result{Result: schedule.OpResultRetryAfter, After: sweepInterval}
	})
	sched.Add(purge.After(sweepInterval))

	catalogService := &catalog.Catalog{
		Database: database,
		Metadata: metadata,
		Selector: selector.Default(),
		Locker:   lk,
	}

	screeningService := &screening.Screening{
		Queue:   playlist.New(database),
		Catalog: database,
		Locker:  lk,
	}

	faceoffService := &faceoff.Faceoff{
		Arena:   arena.New(database, draws, database),
		Catalog: database,
		Locker:  lk,
	}

	srv := service.Server()
	if err = srv.Handle(srv.NewHandler(catalogService)); err != nil {
		logger.Fatalf("Register catalog service failed: %s", err)
	}

	if err = srv.Handle(srv.NewHandler(screeningService)); err != nil {
		logger.Fatalf("Register screening service failed: %s", err)
	}

	if err = srv.Handle(srv.NewHandler(faceoffService)); err != nil {
		logger.Fatalf("Register faceoff service failed: %s", err)
	}

	if err = service.Run(); err != nil {
		logger.Fatalf("Run service failed: %s", err)
	}
}
