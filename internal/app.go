package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tienda-admin/config"
	"tienda-admin/internal/application/ports"
	"tienda-admin/internal/application/services"
	"tienda-admin/internal/infrastructure/db/postgres"
	"tienda-admin/internal/infrastructure/db/postgres/activity"
	"tienda-admin/internal/infrastructure/db/postgres/user"
	"tienda-admin/internal/infrastructure/hasher"
	"tienda-admin/internal/infrastructure/jwt"
	"tienda-admin/internal/infrastructure/metrics"
	"tienda-admin/internal/infrastructure/mq"
	"tienda-admin/internal/interface/web"
	"tienda-admin/internal/interface/web/flash"
	"tienda-admin/internal/interface/web/middleware"
	"tienda-admin/internal/interface/web/session"
	"tienda-admin/pkg/rmqconsumer"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *postgres.PoolGateway
	hasher     *hasher.Hasher
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	events     ports.EventPublisher
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	envErr := godotenv.Load(".env")
	cfg := config.Load()

	// logger
	newLogger := zap.NewProduction
	if cfg.App.Env == config.EnvDevelopment {
		newLogger = zap.NewDevelopment
	}
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	if envErr != nil {
		logger.Info("no .env file loaded, using process environment", zap.Error(envErr))
	}
	if err = cfg.Validate(); err != nil {
		logger.Fatal("config error", zap.Error(err))
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))
	if err = web.LoadTemplates(r); err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	h := hasher.New(cfg.Admin.BcryptCost)
	adminDigest, err := h.Hash(cfg.Admin.Password)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}
	db, err := postgres.New(ctx, logger, cfg)
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	if err = postgres.EnsureSchema(ctx, logger, db, postgres.SchemaConfig{
		Database:    cfg.DB.Name,
		AdminEmail:  cfg.Admin.Email,
		AdminDigest: adminDigest,
	}); err != nil {
		logger.Fatal("failed to initialize database schema", zap.Error(err))
	}
	if err = db.Ping(ctx); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	app := &App{
		logger:   logger,
		cfg:      cfg,
		db:       db,
		hasher:   h,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		events:   mq.Nop{},
	}

	if cfg.MQ.Enabled {
		app.initMQ(ctx)
	}

	return app, nil
}

func (a *App) initMQ(ctx context.Context) {
	rabbitDsn, err := a.cfg.AMQPDSN()
	if err != nil {
		a.logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(a.cfg.MQ, a.logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		a.logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		a.logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	a.mq = rbMQ
	a.events = rbMQ

	if !a.cfg.MQ.ConsumerEnabled {
		return
	}
	rmqConsumer := rmqconsumer.New(a.cfg.MQ, a.logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		a.logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		a.logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}
	a.mqConsumer = rmqConsumer
}

func (a *App) Close() {
	if a.mqConsumer != nil {
		a.mqConsumer.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run serves HTTP and the optional broker workers under one context and
// stops them together on SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)
	activityRepo := activity.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.SessionSecret)
	authService := services.NewAuthService(userRepo, a.hasher, a.mCounter)
	userService := services.NewUserService(userRepo, a.hasher, a.events, a.mCounter)
	activityService := services.NewActivityService(activityRepo, a.logger, a.mCounter)

	// session & notices
	secure := a.cfg.IsProduction()
	sessions := session.NewStore(jwtService, a.cfg.App.SessionTTL, secure)
	flashes := flash.New(jwtService, a.logger, secure)
	a.router.Use(middleware.LoadSession(sessions))

	// controllers
	web.NewAuthController(a.router, a.logger, authService, userService, activityService, sessions, flashes)
	web.NewUserController(a.router, a.logger, userService, activityService, flashes)
	web.NewActivityController(a.router, a.logger, activityService, flashes)

	// ops
	a.router.GET(web.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(web.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
