package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/supporthub/api/internal/api/http"
	"github.com/supporthub/api/internal/api/http/handlers"
	"github.com/supporthub/api/internal/config"
	"github.com/supporthub/api/internal/events"
	"github.com/supporthub/api/internal/observability"
	"github.com/supporthub/api/internal/persistence"
	"github.com/supporthub/api/internal/repository"
	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	tenantRepo := repository.NewTenantRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	escalationTypeRepo := repository.NewEscalationTypeRepository(pool)
	templateRepo := repository.NewTemplateRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	chatRepo := repository.NewChatRepository(pool)
	chatMessageRepo := repository.NewChatMessageRepository(pool)
	recordingRepo := repository.NewRecordingRepository(pool)
	communicationRepo := repository.NewCommunicationRepository(pool)
	escalationRepo := repository.NewEscalationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tenantService := service.NewTenantService(tenantRepo)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	escalationTypeService := service.NewEscalationTypeService(escalationTypeRepo)
	templateService := service.NewTemplateService(templateRepo, categoryRepo)
	ticketService := service.NewTicketService(ticketRepo, categoryRepo, userRepo, dispatcher)
	chatService := service.NewChatService(chatRepo, ticketRepo, userRepo, dispatcher)
	chatMessageService := service.NewChatMessageService(chatMessageRepo, chatRepo, userRepo)
	recordingService := service.NewRecordingService(recordingRepo, ticketRepo, chatRepo)
	communicationService := service.NewCommunicationService(communicationRepo, ticketRepo, chatRepo, userRepo, dispatcher)
	escalationService := service.NewEscalationService(escalationRepo, ticketRepo, userRepo, escalationTypeRepo, dispatcher)
	activityService := service.NewActivityService(ticketRepo, chatRepo, escalationRepo, communicationRepo, userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.IsProduction())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(pg, redis),
		Tenants:         handlers.NewTenantsHandler(tenantService),
		Users:           handlers.NewUsersHandler(userService),
		Categories:      handlers.NewCategoriesHandler(categoryService),
		EscalationTypes: handlers.NewEscalationTypesHandler(escalationTypeService),
		Templates:       handlers.NewTemplatesHandler(templateService),
		Tickets:         handlers.NewTicketsHandler(ticketService),
		Chats:           handlers.NewChatsHandler(chatService),
		ChatMsgs:        handlers.NewChatMsgsHandler(chatMessageService),
		Recordings:      handlers.NewRecordingsHandler(recordingService),
		Communications:  handlers.NewCommunicationsHandler(communicationService),
		Escalations:     handlers.NewEscalationsHandler(escalationService),
		Activities:      handlers.NewActivitiesHandler(activityService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
