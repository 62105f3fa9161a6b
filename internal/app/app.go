package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/config"
	"github.com/GlebRadaev/unitedpets/internal/handlers"
	"github.com/GlebRadaev/unitedpets/internal/metrics"
	"github.com/GlebRadaev/unitedpets/internal/notify"
	"github.com/GlebRadaev/unitedpets/internal/payment"
	"github.com/GlebRadaev/unitedpets/internal/pg"
	"github.com/GlebRadaev/unitedpets/internal/repo"
	"github.com/GlebRadaev/unitedpets/internal/service"
	"github.com/GlebRadaev/unitedpets/pkg/auth"
	"github.com/GlebRadaev/unitedpets/pkg/clients"
	"github.com/GlebRadaev/unitedpets/pkg/logger"
)

const (
	shutdownTimeout = 5 * time.Second
	mailSendTimeout = 15 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	pool       *pgxpool.Pool
	dispatcher *notify.Dispatcher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	mailer := notify.NewSMTPSender(notify.SMTPConfig{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		User:     cfg.MailUser,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
	})

	a.cfg = cfg
	a.pool = pool
	a.dispatcher = notify.NewDispatcher(mailer, cfg.MailWorkers, mailSendTimeout)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(
		a.repo,
		a.dispatcher,
		payment.NewStripeClient(cfg.StripeSecretKey),
		metrics.DonationRecorder{},
		cfg.PaymentCurrency,
	)
	a.api = handlers.New(a.srv, newVerifier(cfg), mailer, cfg.RequestTimeout)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func newVerifier(cfg *config.Config) auth.Verifier {
	if cfg.IdentityVerifyURL != "" {
		zap.L().Info("using remote identity verifier", zap.String("url", cfg.IdentityVerifyURL))
		return auth.NewRemoteVerifier(cfg.IdentityVerifyURL, cfg.IdentityAPIKey, clients.NewHTTPClient(cfg.RequestTimeout))
	}
	return auth.NewJWTService(cfg.IdentitySecret, cfg.IdentityIssuer)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: a.cfg.RequestTimeout,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("can't shut down http server", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// close releases process-wide resources once the server has stopped.
func (a *Application) close() {
	if a.dispatcher != nil {
		a.dispatcher.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	a.ready = false
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.close()

	return appErr
}
