package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/storefront/internal/config"
	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/pgrepo"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/fsdevblog/storefront/internal/service/psswd"
	"github.com/fsdevblog/storefront/internal/transport/api"
	"github.com/fsdevblog/storefront/internal/transport/mpesa"
	"github.com/fsdevblog/storefront/internal/transport/notify"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout     = 5 * time.Second
	tokenPurgeInterval  = time.Hour
	readHeaderTimeout   = 5 * time.Second
	startupTaskDeadline = 10 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":  a.Config.RunAddress,
		"mpesaEnv": a.Config.Mpesa.Environment,
		"email":    a.Config.EmailEnabled(),
		"webhook":  a.Config.WebhookEnabled(),
		"kafka":    a.Config.KafkaEnabled(),
		"workers":  a.Config.Dispatch.Workers,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	jwtSecret := []byte(a.Config.JWTSecret)
	gateway := mpesa.New(mpesa.Config{
		ConsumerKey:    a.Config.Mpesa.ConsumerKey,
		ConsumerSecret: a.Config.Mpesa.ConsumerSecret,
		ShortCode:      a.Config.Mpesa.ShortCode,
		Passkey:        a.Config.Mpesa.Passkey,
		CallbackURL:    a.Config.Mpesa.CallbackURL,
		Environment:    a.Config.Mpesa.Environment,
	})

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret: jwtSecret,
		Hasher:    psswd.Bcrypt{},
		Gateway:   gateway,
		Notifications: service.Notifications{
			Email:   a.Config.EmailEnabled(),
			Webhook: a.Config.WebhookEnabled(),
			Kafka:   a.Config.KafkaEnabled(),
		},
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if seedErr := a.seedAdmin(notifyCtx, services.CustomerService); seedErr != nil {
		return fmt.Errorf("app run: %s", seedErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:           a.Logger,
		CustomerService:  services.CustomerService,
		OrderService:     services.OrderService,
		PaymentService:   services.PaymentService,
		CatalogService:   services.CatalogService,
		RepairService:    services.RepairService,
		SettingService:   services.SettingService,
		AnalyticsService: services.AnalyticsService,
		JWTSecretKey:     jwtSecret,
		AuthRateLimit:    a.Config.AuthRateLimit,
		AuthRateBurst:    a.Config.AuthRateBurst,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	dispatcher, closeDispatcher, dErr := a.newDispatcher(services.OutboxService)
	if dErr != nil {
		return fmt.Errorf("app run: %s", dErr.Error())
	}
	defer closeDispatcher()

	go dispatcher.Run(notifyCtx)
	go a.purgeRevokedTokens(notifyCtx, services.CustomerService)

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// seedAdmin создает администратора из конфигурации, если заданы email и пароль.
func (a *App) seedAdmin(ctx context.Context, customerService *service.CustomerService) error {
	if a.Config.AdminEmail == "" || a.Config.AdminPassword == "" {
		return nil
	}
	seedCtx, cancel := context.WithTimeout(ctx, startupTaskDeadline)
	defer cancel()

	admin, err := customerService.EnsureAdmin(seedCtx, a.Config.AdminEmail, a.Config.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	a.Logger.WithField("customerID", admin.ID).Info("admin account ensured")
	return nil
}

// newDispatcher собирает доставщиков outbox по включенным каналам. Возвращаемая функция закрывает
// соединения доставщиков.
func (a *App) newDispatcher(outboxService *service.OutboxService) (*notify.Dispatcher, func(), error) {
	dispatcher := notify.NewDispatcher(outboxService, a.Logger).
		SetWorkers(a.Config.Dispatch.Workers).
		SetLimitPerIteration(a.Config.Dispatch.Batch)
	closeFn := func() {}

	if a.Config.EmailEnabled() {
		mailer, mailerErr := notify.NewResendMailer(a.Config.Mail.ResendAPIKey, a.Config.Mail.From)
		if mailerErr != nil {
			return nil, nil, fmt.Errorf("init mailer: %w", mailerErr)
		}
		dispatcher.Register(domain.OutboxKindEmail, mailer)
	}
	if a.Config.WebhookEnabled() {
		dispatcher.Register(domain.OutboxKindWebhook, notify.NewWebhookSender(a.Config.OutboundWebhookURL))
	}
	if a.Config.KafkaEnabled() {
		publisher := notify.NewKafkaPublisher(a.Config.Kafka.Brokers, a.Config.Kafka.Topic)
		dispatcher.Register(domain.OutboxKindKafka, publisher)
		closeFn = func() {
			if err := publisher.Close(); err != nil {
				a.Logger.WithError(err).Error("close kafka publisher")
			}
		}
	}
	return dispatcher, closeFn, nil
}

// purgeRevokedTokens периодически удаляет истекшие записи об отозванных токенах.
func (a *App) purgeRevokedTokens(ctx context.Context, customerService *service.CustomerService) {
	l := a.Logger.WithFields(logrus.Fields{
		"component": "app",
		"module":    "token_purge",
	})
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purgeCtx, cancel := context.WithTimeout(ctx, startupTaskDeadline)
			n, err := customerService.PurgeRevokedTokens(purgeCtx)
			cancel()
			if err != nil {
				l.WithError(err).Error("purge revoked tokens")
				continue
			}
			l.WithField("purged", n).Debug("revoked tokens purged")
		}
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.CustomerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCustomerRepository(dbtx)
		},
		repoargs.TokenRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTokenRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
		repoargs.ProductRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProductRepository(dbtx)
		},
		repoargs.CategoryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCategoryRepository(dbtx)
		},
		repoargs.SubcategoryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewSubcategoryRepository(dbtx)
		},
		repoargs.RepairRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewRepairRepository(dbtx)
		},
		repoargs.SettingRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewSettingRepository(dbtx)
		},
		repoargs.OutboxRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOutboxRepository(dbtx)
		},
		repoargs.AnalyticsRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAnalyticsRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
