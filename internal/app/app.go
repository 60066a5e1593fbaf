package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ctl "support-desk/internal/controller"
	complaintService "support-desk/internal/service/complaint"
	csrfService "support-desk/internal/service/csrf"
	"support-desk/pkg/config"
	"support-desk/pkg/email"
	"support-desk/pkg/logger"
	"support-desk/pkg/ratelimit"
	"support-desk/pkg/redis"
	"support-desk/pkg/token"
)

type appServer struct {
	config     *config.Config
	controller ctl.ControllerProvider
	limiter    ratelimit.Limiter
}

// NewAppServer creates a new instance of appServer with the provided configuration.
func NewAppServer(cfg *config.Config) *appServer {
	// the token store and rate limiter share one Redis connection when
	// configured; otherwise both fall back to in-memory, single instance
	var tokenStore token.Store
	var limiter ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			logger.Fatalf("failed to initialize redis client: %v", err)
		}
		tokenStore = token.NewRedisStore(redisClient)
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	} else {
		tokenStore = token.NewMemoryStore()
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	// shared pkgs
	emailService, err := email.NewEmailProvider(context.Background(), &cfg.Email)
	if err != nil {
		logger.Fatalf("failed to initialize email provider: %v", err)
	}
	err = emailService.ValidateProvider(context.Background())
	if err != nil {
		logger.Fatalf("invalid email provider configuration: %v", err)
	}

	// initialize services
	csrfSvc := csrfService.NewService(tokenStore, cfg.CSRF.TokenTTL)
	complaintSvc := complaintService.NewService(emailService, cfg.Email.SupportInbox)

	// initialize controller
	controller := ctl.NewController(csrfSvc, complaintSvc, cfg.CSRF.Enabled, cfg.IsProduction())

	return &appServer{
		config:     cfg,
		controller: controller,
		limiter:    limiter,
	}
}

func (a *appServer) Serve() {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.Port),
		Handler: a.RegisterHandlers(),
	}

	// serve the server
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	logger.Infof("server started on port %s", a.config.Port)

	a.gracefulShutdown(server)

	logger.Info("server shutdown complete")
}

func (a *appServer) gracefulShutdown(server *http.Server) {
	ctx, stopCtx := context.WithCancel(context.Background())

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP) // wait for the sigterm
		<-signals

		// we received an os signal, shut down.
		err := server.Shutdown(ctx)
		if err != nil {
			logger.Error(err, "server shutdown error")
		} else {
			logger.Info("server graceful shutdown")
		}

		stopCtx()
	}()

	<-ctx.Done()
}
