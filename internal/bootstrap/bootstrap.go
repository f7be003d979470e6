package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/GregMSThompson/dashboard-layout/internal/config"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/internal/store"
	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

// StateStore persists the layout state for the configured backend.
type StateStore interface {
	Load(ctx context.Context) (*models.LayoutState, error)
	Save(ctx context.Context, state models.LayoutState) error
}

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Redis     *redis.Client
	Store     StateStore

	logFile *lumberjack.Logger
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log, bs.logFile = NewLogger(cfg)
	if err := bs.InitStore(applicationCtx, cfg); err != nil {
		return bs, err
	}
	return bs, nil
}

// NewLogger builds the Cloud Run JSON logger. When cfg.LogFile is set records are
// also written to a size-rotated file.
func NewLogger(cfg *config.Config) (*slog.Logger, *lumberjack.Logger) {
	if cfg.LogFile == "" {
		return logger.New(cfg.LogLevel, logger.NewCloudRunHandler), nil
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}
	out := io.MultiWriter(os.Stdout, lj)
	return logger.New(cfg.LogLevel, logger.NewCloudRunHandlerTo(out)), lj
}

// InitStore connects the storage backend named by cfg.StorageBackend.
func (bs *Bootstrap) InitStore(ctx context.Context, cfg *config.Config) error {
	var err error
	switch cfg.StorageBackend {
	case config.BackendFile:
		bs.Store, err = store.NewFileStore(cfg.DataDir)
	case config.BackendFirestore:
		bs.Firestore, err = InitFirestore(ctx, cfg.ProjectID)
		if err == nil {
			bs.Store = store.NewFirestoreStore(bs.Firestore)
		}
	case config.BackendRedis:
		bs.Redis, err = InitRedis(ctx, cfg)
		if err == nil {
			bs.Store = store.NewRedisStore(bs.Redis)
		}
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	if err != nil {
		return fmt.Errorf("init %s store: %w", cfg.StorageBackend, err)
	}
	if bs.Log != nil {
		bs.Log.Info("layout store ready", "backend", cfg.StorageBackend)
	}
	return nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		bs.Firestore.Close()
	}
	if bs.Redis != nil {
		bs.Redis.Close()
	}
	if bs.logFile != nil {
		bs.logFile.Close()
	}
}
