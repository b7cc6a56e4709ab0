package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/config"
	sermexhttp "github.com/SERMEX0/sermex-backend/internal/http"
	"github.com/SERMEX0/sermex-backend/internal/http/handler"
	"github.com/SERMEX0/sermex-backend/internal/http/middleware"
	"github.com/SERMEX0/sermex-backend/internal/mail"
	"github.com/SERMEX0/sermex-backend/internal/password"
	"github.com/SERMEX0/sermex-backend/internal/repository"
	"github.com/SERMEX0/sermex-backend/internal/server"
	"github.com/SERMEX0/sermex-backend/internal/service"
	"github.com/SERMEX0/sermex-backend/internal/telemetry"
	"github.com/SERMEX0/sermex-backend/internal/token"
	"github.com/SERMEX0/sermex-backend/migrations"
)

func main() {
	app := fx.New(
		fx.Provide(
			newConfig,
			newLogger,
			newTelemetry,
			newPGXPool,
			newUserRepository,
			newProductRepository,
			newEvaluationRepository,
			newLogisticsRepository,
			newHasher,
			newTokenIssuer,
			newDispatcher,
			newAuthService,
			newReviewService,
			newLogisticsService,
			newNotificationService,
			newVendorDirectory,
			handler.NewAuthHandler,
			handler.NewReviewHandler,
			handler.NewLogisticsHandler,
			handler.NewNotifyHandler,
			newAuthMiddleware,
			sermexhttp.NewRouter,
			server.NewHTTPServer,
		),
		fx.Invoke(runMigrations, startHTTPServer),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Load()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.New(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

func newPGXPool(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.DatabaseMaxConns)

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("database connected", zap.Int("max_conns", cfg.DatabaseMaxConns))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func runMigrations(cfg config.Config, logger *zap.Logger, _ *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.UpContext(context.Background(), db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied")
	return nil
}

func newUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return repository.NewPostgresUserRepo(pool)
}

func newProductRepository(pool *pgxpool.Pool) repository.ProductRepository {
	return repository.NewPostgresProductRepo(pool)
}

func newEvaluationRepository(pool *pgxpool.Pool) repository.EvaluationRepository {
	return repository.NewPostgresEvaluationRepo(pool)
}

func newLogisticsRepository(pool *pgxpool.Pool) repository.LogisticsRepository {
	return repository.NewPostgresLogisticsRepo(pool)
}

func newHasher(cfg config.Config) password.Hasher {
	return password.NewBcryptHasher(cfg.BcryptCost)
}

func newTokenIssuer(cfg config.Config) *token.Issuer {
	return token.NewIssuer([]byte(cfg.JWTSecret), cfg.AccessTokenTTL)
}

func newDispatcher(cfg config.Config, logger *zap.Logger) mail.Dispatcher {
	dispatcher, err := mail.NewSMTPDispatcher(cfg)
	if err != nil {
		logger.Fatal("smtp client", zap.Error(err))
	}
	return dispatcher
}

func newAuthService(users repository.UserRepository, hasher password.Hasher, tokens *token.Issuer, logger *zap.Logger) *service.AuthService {
	return service.NewAuthService(users, hasher, tokens, logger)
}

func newReviewService(products repository.ProductRepository, evaluations repository.EvaluationRepository, logger *zap.Logger) *service.ReviewService {
	return service.NewReviewService(products, evaluations, logger)
}

func newLogisticsService(tickets repository.LogisticsRepository, logger *zap.Logger) *service.LogisticsService {
	return service.NewLogisticsService(tickets, logger)
}

func newNotificationService(cfg config.Config, dispatcher mail.Dispatcher, logger *zap.Logger) *service.NotificationService {
	return service.NewNotificationService(dispatcher, cfg, logger)
}

func newVendorDirectory() *service.VendorDirectory {
	return service.NewVendorDirectory()
}

func newAuthMiddleware(tokens *token.Issuer) *middleware.Auth {
	return middleware.NewAuth(tokens)
}

func startHTTPServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, srv *server.HTTPServer, _ *telemetry.Provider, logger *zap.Logger) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				addr := ":" + cfg.HTTPPort
				if err := srv.Run(runCtx, addr); err != nil {
					logger.Error("http server", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		},
	})
}
