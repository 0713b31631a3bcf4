package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/yazanstore/storefront/config"
	"github.com/yazanstore/storefront/internal/backoffice"
	"github.com/yazanstore/storefront/internal/shopfront"
	"github.com/yazanstore/storefront/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Application wires configuration, logging, the embedded store and the two
// state managers.
type Application struct {
	appConfig *config.AppConfig
	database  *store.Database
	shop      *shopfront.Manager
	admin     *backoffice.Manager
}

// Ensure Application implements all provider interfaces
var (
	_ ConfigProvider     = (*Application)(nil)
	_ DatabaseProvider   = (*Application)(nil)
	_ ShopfrontProvider  = (*Application)(nil)
	_ BackofficeProvider = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Database() *store.Database {
	return a.database
}

// OverrideDatabase replaces the application's store handle (used in tests).
func (a *Application) OverrideDatabase(db *store.Database) {
	a.database = db
	a.shop = shopfront.NewManager(db)
	a.admin = backoffice.NewManager(db)
}

func (a *Application) Shopfront() *shopfront.Manager {
	return a.shop
}

func (a *Application) Backoffice() *backoffice.Manager {
	return a.admin
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	if cfg.System.Workdir != "" {
		if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
			zap.S().Warnf("create workdir failed: %v", err)
		}
	}

	a.database, err = store.OpenDatabase(cfg.Store.Path)
	if err != nil {
		return err
	}
	zap.S().Infof("store opened, path: %s", cfg.Store.Path)

	// First-run seed data, then the state managers over the shared store.
	a.database.Initialize()
	a.shop = shopfront.NewManager(a.database)
	a.admin = backoffice.NewManager(a.database)

	return nil
}

// Release releases application resources
func (a *Application) Release() {
	if a.database != nil {
		if err := a.database.Close(); err != nil {
			zap.S().Errorf("close store: %v", err)
		}
	}
	_ = zap.L().Sync()
}
