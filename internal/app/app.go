package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/StayBooker/internal/config"
	"github.com/stpnv0/StayBooker/internal/events"
	"github.com/stpnv0/StayBooker/internal/gateway"
	"github.com/stpnv0/StayBooker/internal/handler"
	"github.com/stpnv0/StayBooker/internal/metrics"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stpnv0/StayBooker/internal/notification"
	"github.com/stpnv0/StayBooker/internal/repository"
	"github.com/stpnv0/StayBooker/internal/router"
	"github.com/stpnv0/StayBooker/internal/scheduler"
	"github.com/stpnv0/StayBooker/internal/service"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "StayBooker"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	nc         *nats.Conn
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initPublisher() (ports.EventPublisher, error) {
	if a.cfg.NATS.URL == "" {
		a.log.Warn("nats url is empty, domain events disabled")
		return events.NopPublisher{}, nil
	}

	nc, err := events.Connect(a.cfg.NATS.URL, appName+" events", a.log)
	if err != nil {
		return nil, err
	}
	a.nc = nc

	a.log.Info("nats connected", logger.String("url", nc.ConnectedUrl()))
	return events.NewPublisher(nc, a.cfg.NATS.SubjectPrefix), nil
}

func (a *App) initGateway() ports.PaymentGateway {
	if a.cfg.Payment.GatewayMode == "http" {
		a.log.Info("payment gateway: http", logger.String("url", a.cfg.Payment.GatewayURL))
		return gateway.NewHTTPClient(
			a.cfg.Payment.GatewayURL,
			a.cfg.Payment.GatewayAPIKey,
			a.cfg.Payment.GatewayTimeout,
		)
	}

	a.log.Warn("payment gateway: sandbox, charges stay pending until a callback arrives")
	return gateway.NewSandbox()
}

func (a *App) initServices() error {
	txOpts := repository.TxOptions{
		Timeout:     a.cfg.Postgres.TxTimeout,
		LockTimeout: a.cfg.Postgres.LockTimeout,
	}

	userRepo := repository.NewUserRepo(a.db, txOpts)
	listingRepo := repository.NewListingRepo(a.db, txOpts)
	reviewRepo := repository.NewReviewRepo(a.db, txOpts)
	bookingRepo := repository.NewBookingRepo(a.db, txOpts)
	paymentRepo := repository.NewPaymentRepo(a.db, txOpts)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	publisher, err := a.initPublisher()
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}

	var m *metrics.Metrics
	if a.cfg.Metrics.Enabled {
		m = metrics.New(a.cfg.Metrics.Namespace)
	}

	userService := service.NewUserService(userRepo)
	listingService := service.NewListingService(listingRepo, userRepo, a.log)
	reviewService := service.NewReviewService(reviewRepo, listingRepo, userRepo)
	availabilityService := service.NewAvailabilityService(listingRepo, bookingRepo, a.cfg.Booking.AllowPastStart)
	bookingService := service.NewBookingService(
		bookingRepo, listingRepo, userRepo,
		n, publisher, m, a.log,
		a.cfg.Booking.AllowPastStart,
	)
	paymentService := service.NewPaymentService(
		paymentRepo, userRepo, a.initGateway(),
		n, publisher, m, a.log,
		service.PaymentOptions{
			PollMinAge:    a.cfg.Payment.PollMinAge,
			PollBatch:     a.cfg.Payment.PollBatch,
			UnattachedTTL: a.cfg.Payment.UnattachedTTL,
		},
	)

	if a.cfg.Scheduler.Interval > 0 {
		a.scheduler = scheduler.New(
			paymentService,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	h := handler.NewHandler(
		userService,
		listingService,
		reviewService,
		availabilityService,
		bookingService,
		paymentService,
	)

	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
	}
	var metricsHandler http.Handler
	if m != nil {
		mw = append(mw, middleware.Metrics(m))
		metricsHandler = m.Handler()
	}
	mw = append(mw, middleware.Recovery(a.log))

	r := router.InitRouter(a.cfg.Gin.Mode, h, metricsHandler, mw...)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.nc != nil {
		if err := a.nc.Drain(); err != nil {
			a.log.Warn("nats drain failed", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
