package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Freeeeeet/mergington_activities/internal/config"
	"github.com/Freeeeeet/mergington_activities/internal/controller/handlers"
	"github.com/Freeeeeet/mergington_activities/internal/repository"
	"github.com/Freeeeeet/mergington_activities/internal/service"
)

// App собранное приложение
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	pool    *pgxpool.Pool // nil, если журнал в памяти
	handler http.Handler
}

// New собирает все компоненты из конфига
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg.InsecureSessionSecret {
		logger.Warn("SESSION_SECRET_KEY is not set, using insecure development secret")
	}

	teacherRepo, err := repository.LoadTeacherRepository(cfg.TeachersFile)
	if err != nil {
		return nil, fmt.Errorf("load teachers: %w", err)
	}
	logger.Info("Teacher credentials loaded",
		zap.String("file", cfg.TeachersFile),
		zap.Int("count", teacherRepo.Count()))

	a := &App{cfg: cfg, logger: logger}

	events, err := a.openEventStore(ctx)
	if err != nil {
		return nil, err
	}

	activityRepo := repository.NewActivityRepository(repository.DefaultActivities())
	logger.Info("Activity directory seeded", zap.Strings("activities", activityRepo.Names()))

	h := handlers.NewHandlers(
		service.NewActivityService(activityRepo, events, logger),
		service.NewAuthService(teacherRepo, logger),
		logger,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.handler = h.InitRoutes(handlers.RouterOptions{
		SessionSecret:  cfg.SessionSecret,
		SecureCookie:   cfg.IsProduction(),
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return a, nil
}

// openEventStore выбирает журнал: PostgreSQL при DB_DSN, иначе память
func (a *App) openEventStore(ctx context.Context) (service.EventStore, error) {
	if !a.cfg.JournalEnabled() {
		a.logger.Info("DB_DSN is not set, enrollment journal is kept in memory")
		return repository.NewMemoryEventRepository(repository.DefaultMemoryEventCapacity), nil
	}

	pool, err := pgxpool.New(ctx, a.cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	migrator, err := NewMigrator(pool, a.logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	a.pool = pool
	return repository.NewEventRepository(pool), nil
}

// Handler HTTP обработчик приложения
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run запускает сервер и ждёт SIGINT/SIGTERM
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	srv := NewServer(a.cfg.HTTPAddr, a.handler)
	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server started", zap.String("addr", a.cfg.HTTPAddr))
		serverErrors <- srv.Run()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("Gracefully shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	a.logger.Info("Server stopped gracefully")
	return nil
}

func (a *App) close() {
	if a.pool != nil {
		a.pool.Close()
		a.logger.Info("Database pool closed")
	}
}
