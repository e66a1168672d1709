// Command crm-server starts the Epic Events CRM gRPC server.
package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/epic-events/gen/go/crm/v1"
	"github.com/and161185/epic-events/internal/config"
	"github.com/and161185/epic-events/internal/crypto"
	"github.com/and161185/epic-events/internal/limiter"
	"github.com/and161185/epic-events/internal/migrate"
	"github.com/and161185/epic-events/internal/notify"
	"github.com/and161185/epic-events/internal/repository/postgres"
	grpcserver "github.com/and161185/epic-events/internal/server/grpc"
	"github.com/and161185/epic-events/internal/service"
	"github.com/and161185/epic-events/internal/session"
	"github.com/and161185/epic-events/internal/validate"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const notifyQueue = 256

// main parses configuration, runs migrations, and serves crm.v1.CRM until SIGINT/SIGTERM.
func main() {
	if err := config.LoadDotenv(".env"); err != nil {
		_, _ = os.Stderr.WriteString("load .env: " + err.Error() + "\n")
		os.Exit(2)
	}
	cfg, err := config.Parse(os.Args[1:], os.Getenv)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	logger := newLogger(cfg.Dev)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	defer db.Close()

	// Notifications and login limiting go to Redis when configured.
	var (
		sinks notify.Multi
		lim   limiter.Limiter
	)
	sinks = append(sinks, notify.NewLogger(logger))
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("redis ping", zap.Error(err))
		}
		rs, err := notify.NewRedis(rdb, notify.RedisOptions{})
		if err != nil {
			logger.Fatal("redis sink", zap.Error(err))
		}
		sinks = append(sinks, rs)
		lim = limiter.NewRedis(rdb, cfg.Limiter)
	} else {
		lim = limiter.NewPG(db.Pool, cfg.Limiter)
	}
	sink := notify.NewAsync(sinks, notifyQueue, logger)

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	contractRepo := postgres.NewContractRepo(db)
	eventRepo := postgres.NewEventRepo(db)

	// Services
	hasher := crypto.NewHasher(crypto.DefaultParams)
	codec := session.NewCodec(cfg.SessionKey, cfg.SessionTTL)
	v := validate.New()
	svc := grpcserver.Services{
		Auth:      service.NewAuthService(userRepo, hasher, codec, lim, sink, logger.Named("auth")),
		Users:     service.NewUserService(userRepo, hasher, v, sink, logger.Named("users")),
		Clients:   service.NewClientService(clientRepo, v, logger.Named("clients")),
		Contracts: service.NewContractService(contractRepo, clientRepo, sink, logger.Named("contracts")),
		Events:    service.NewEventService(eventRepo, contractRepo, userRepo, logger.Named("events")),
	}

	if b := cfg.Bootstrap; b.Email != "" {
		u, created, err := svc.Users.Bootstrap(ctx, b.Email, b.Password, b.Name)
		if err != nil {
			logger.Fatal("bootstrap superuser", zap.Error(err))
		}
		logger.Info("bootstrap superuser", zap.String("email", u.Email), zap.Bool("created", created))
	}

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary(svc.Auth, logger),
		),
	}
	if cfg.TLS() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("serving without TLS")
	}
	s := grpc.NewServer(opts...)

	pb.RegisterCRMServer(s, grpcserver.New(svc, logger))

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLS()))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		if !errors.Is(err, grpc.ErrServerStopped) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sink.Close(flushCtx); err != nil {
		logger.Warn("notification flush", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func newLogger(dev bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}
