package cmd

import (
	"errors"
	"fmt"
	"strings"

	"forum-provider/core/config"
	"forum-provider/core/data"
	"forum-provider/core/database"
	"forum-provider/core/functions"
	"forum-provider/core/logger"
	"forum-provider/core/provider"
	"forum-provider/core/registry"
	"forum-provider/core/scripts"
	"forum-provider/core/storage"
	"forum-provider/feature/providers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errNoFunctions = errors.New("provider has no specific functions")

// application is the wired process: configuration, logger, the selected provider and,
// when connected, the database registered in the access registry.
type application struct {
	cfg      *config.Config
	log      *zap.Logger
	provider provider.Provider
	db       *gorm.DB
	registry *registry.Registry[data.Access]
}

// bootstrap loads configuration and selects the provider. The dialect is fixed here,
// before anything touches the ORM. With connect set it also opens and registers the
// database.
func bootstrap(connect bool) (*application, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	p, err := providers.Select(&cfg.Database)
	if err != nil {
		return nil, err
	}

	app := &application{
		cfg:      cfg,
		log:      logg.With(zap.String("provider", p.Name)),
		provider: p,
		registry: registry.New[data.Access](),
	}
	if connect {
		if err := app.connect(); err != nil {
			return nil, err
		}
	}
	return app, nil
}

func (a *application) connect() error {
	dsn, err := a.provider.Information.ConnectionString()
	if err != nil {
		return err
	}

	db, err := database.Connect(a.cfg.Database, a.provider.Dialect, dsn)
	if err != nil {
		return err
	}
	if err := a.provider.Register(a.registry, db); err != nil {
		return err
	}

	a.db = db
	a.log.Info("Connected to database", zap.String("dialect", a.provider.Dialect.Name()))
	return nil
}

// executor builds a function executor over a fresh unit-of-work scope.
func (a *application) executor() (*functions.Executor, error) {
	if !a.provider.HasFunctions() {
		return nil, fmt.Errorf("%s: %w", a.provider.Name, errNoFunctions)
	}
	access, err := a.registry.NewScope().Resolve(a.provider.Name)
	if err != nil {
		return nil, err
	}
	return functions.NewExecutor(access, a.provider.Functions, a.log), nil
}

// scriptSource returns the configured script source. source overrides cfg.Scripts.Source
// when not empty.
func (a *application) scriptSource(source string) (scripts.Source, error) {
	sc := a.cfg.Scripts
	if source != "" {
		sc.Source = source
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if sc.Source == scripts.SourceDir {
		return scripts.DirSource{Root: sc.Dir}, nil
	}

	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, err
	}
	return scripts.BucketSource{Client: client, Bucket: a.cfg.Storage.Bucket, Prefix: a.cfg.Storage.Prefix}, nil
}

func (a *application) close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.log.Sync()
}

// parseAssignments splits name=value arguments. Only the first '=' separates.
func parseAssignments(args []string) ([]provider.Param, error) {
	out := make([]provider.Param, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", arg)
		}
		out = append(out, provider.Param{Name: name, Value: value})
	}
	return out, nil
}
