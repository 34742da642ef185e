package cmd

import (
	"log/slog"

	httpadapter "shasanseva/internal/adapters/in/http"
	"shasanseva/internal/adapters/out/payment"
	"shasanseva/internal/adapters/out/postgres"
	"shasanseva/internal/adapters/out/postgres/notificationrepo"
	"shasanseva/internal/core/application/usecases/commands"
	"shasanseva/internal/core/application/usecases/queries"
	"shasanseva/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *notificationrepo.GormNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		notifier:   notificationrepo.NewGormNotifier(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateOrderCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(
		c.orderUoWFactory(),
		payment.NewHMACVerifier(c.config.PaymentWebhookSecret),
		c.logger,
	)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateAdminNotesCommandHandler() commands.UpdateAdminNotesCommandHandler {
	return commands.NewUpdateAdminNotesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddProofCommandHandler() commands.AddProofCommandHandler {
	var f commands.ProofUoWFactory = FuncProofUoWFactory(func() commands.ProofUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProofCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateListAdminQueueQueryHandler() queries.ListAdminQueueQueryHandler {
	return queries.NewListAdminQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ConfirmPayment:        c.CreateConfirmPaymentCommandHandler(),
		TransitionOrderStatus: c.CreateTransitionOrderStatusCommandHandler(),
		CompleteOrder:         c.CreateCompleteOrderCommandHandler(),
		UpdateAdminNotes:      c.CreateUpdateAdminNotesCommandHandler(),
		AddProof:              c.CreateAddProofCommandHandler(),
		ListAdminQueue:        c.CreateListAdminQueueQueryHandler(),
	})
}

func (c *CompositionRoot) CreateAuthenticator() *httpadapter.Authenticator {
	return httpadapter.NewAuthenticator(c.config.JWTSecret)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.notifier, jobs.Config{
		NotificationPurgeSchedule: c.config.NotificationPurgeSchedule,
		NotificationRetention:     c.config.NotificationRetention,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncProofUoWFactory func() commands.ProofUoW

func (f FuncProofUoWFactory) Create() commands.ProofUoW {
	return f()
}
