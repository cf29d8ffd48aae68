// Package bot wires the full application together and runs it until a
// shutdown signal arrives.
package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	adminuc "deskbot/internal/application/admin/usecases"
	"deskbot/internal/application/conversation"
	faquc "deskbot/internal/application/faq/usecases"
	"deskbot/internal/application/notification"
	"deskbot/internal/application/ticket/services"
	ticketuc "deskbot/internal/application/ticket/usecases"
	topicuc "deskbot/internal/application/topic/usecases"
	useruc "deskbot/internal/application/user/usecases"
	"deskbot/internal/infrastructure/cache"
	"deskbot/internal/infrastructure/config"
	"deskbot/internal/infrastructure/database"
	"deskbot/internal/infrastructure/migration"
	"deskbot/internal/infrastructure/repository"
	"deskbot/internal/infrastructure/scheduler"
	"deskbot/internal/infrastructure/telegram"
	httpServer "deskbot/internal/interfaces/http"
	"deskbot/internal/shared/biztime"
	sharedDB "deskbot/internal/shared/db"
	"deskbot/internal/shared/goroutine"
	"deskbot/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Start the support bot",
		Long:  `Start the Telegram support bot in polling or webhook mode, as configured.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		if errors.Is(err, config.ErrFirstRun) {
			fmt.Println("A config template was written to ./configs/config.yaml. Fill in the bot token and restart.")
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting bot", "environment", env, "mode", cfg.Telegram.Mode)

	if err := biztime.Init(cfg.Bot.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	db := database.Get()

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	txManager := sharedDB.NewTransactionManager(db)

	botService := telegram.NewBotService(cfg.Telegram, log)

	dispatcher := notification.NewDispatcher(botService, userRepo, adminRepo, cfg.Bot.BroadcastWorkers, log)
	dispatcher.SetSendTimeout(time.Duration(cfg.Bot.SendTimeoutSeconds) * time.Second)

	quota := services.NewUrgentQuota(userRepo, cfg.Bot.MaxUrgentPerDay, log)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	if err := topicuc.NewSeedTopicsUseCase(topicRepo, log).Execute(startupCtx); err != nil {
		return fmt.Errorf("failed to seed topics: %w", err)
	}

	if cfg.Bot.BootstrapAdminID != 0 {
		bootstrap := adminuc.NewEnsureBootstrapAdminUseCase(adminRepo, userRepo, log)
		if err := bootstrap.Execute(startupCtx, cfg.Bot.BootstrapAdminID); err != nil {
			return fmt.Errorf("failed to ensure bootstrap admin: %w", err)
		}
	} else {
		log.Warnw("no bootstrap admin configured, admin features unreachable until one is granted manually")
	}

	deps := conversation.Deps{
		RegisterUser: useruc.NewRegisterUserUseCase(userRepo, log),
		GetProfile:   useruc.NewGetProfileUseCase(userRepo, cfg.Bot.MaxUrgentPerDay, log),
		SetLanguage:  useruc.NewSetLanguageUseCase(userRepo, log),
		SetBanned:    useruc.NewSetBannedUseCase(userRepo, log),
		AddNote:      useruc.NewAddNoteUseCase(noteRepo, userRepo, adminRepo, log),
		AddRating:    useruc.NewAddRatingUseCase(ratingRepo, ticketRepo, replyRepo, log),

		CreateTicket:    ticketuc.NewCreateTicketUseCase(ticketRepo, historyRepo, topicRepo, txManager, log),
		AppendReply:     ticketuc.NewAppendReplyUseCase(ticketRepo, replyRepo, txManager, log),
		ChangeStatus:    ticketuc.NewChangeStatusUseCase(ticketRepo, historyRepo, txManager, log),
		AssignTicket:    ticketuc.NewAssignTicketUseCase(ticketRepo, adminRepo, log),
		GetTicket:       ticketuc.NewGetTicketUseCase(ticketRepo, replyRepo, attachmentRepo, historyRepo, noteRepo, log),
		ListTickets:     ticketuc.NewListTicketsUseCase(ticketRepo, log),
		ListUserTickets: ticketuc.NewListUserTicketsUseCase(ticketRepo, log),
		AddAttachment:   ticketuc.NewAddAttachmentUseCase(ticketRepo, attachmentRepo, cfg.Bot.MaxAttachments, log),

		GrantAdmin:  adminuc.NewGrantAdminUseCase(adminRepo, userRepo, log),
		RevokeAdmin: adminuc.NewRevokeAdminUseCase(adminRepo, log),
		ListAdmins:  adminuc.NewListAdminsUseCase(adminRepo, userRepo, log),

		CreateTopic: topicuc.NewCreateTopicUseCase(topicRepo, adminRepo, log),
		DeleteTopic: topicuc.NewDeleteTopicUseCase(topicRepo, ticketRepo, adminRepo, log),
		ListTopics:  topicuc.NewListTopicsUseCase(topicRepo, log),

		AddFAQ:      faquc.NewAddEntryUseCase(faqRepo, adminRepo, log),
		RemoveFAQ:   faquc.NewRemoveEntryUseCase(faqRepo, adminRepo, log),
		ListFAQ:     faquc.NewListEntriesUseCase(faqRepo, log),
		SearchFAQ:   faquc.NewSearchEntriesUseCase(faqRepo, log),
		GetFAQEntry: faquc.NewGetEntryUseCase(faqRepo, log),

		Quota:    quota,
		Notifier: dispatcher,
		Admins:   adminRepo,

		PageSize:       cfg.Bot.UserPageSize,
		AdminPageSize:  cfg.Bot.AdminPageSize,
		MaxAttachments: cfg.Bot.MaxAttachments,
	}

	controller := conversation.NewController(deps, botService, log)
	adapter := telegram.NewUpdateAdapter(controller)

	var offsetStore telegram.OffsetStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		offsetStore = cache.NewPollingOffsetStore(redisClient)
		log.Infow("redis offset store enabled", "addr", cfg.Redis.GetAddr())
	}

	schedManager, err := scheduler.NewManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	syncProfiles := useruc.NewSyncProfilesUseCase(userRepo, botService, log)
	if err := schedManager.RegisterProfileSyncJob(syncProfiles); err != nil {
		return fmt.Errorf("failed to register profile sync job: %w", err)
	}
	schedManager.Start()
	defer func() {
		if err := schedManager.Stop(); err != nil {
			log.Errorw("failed to stop scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Telegram.Mode {
	case "webhook":
		return runWebhook(ctx, cfg, botService, adapter, log)
	default:
		return runPolling(ctx, cfg, botService, adapter, offsetStore, log)
	}
}

func runPolling(
	ctx context.Context,
	cfg *config.Config,
	botService *telegram.BotService,
	adapter *telegram.UpdateAdapter,
	offsetStore telegram.OffsetStore,
	log logger.Interface,
) error {
	poller := telegram.NewPollingService(botService, adapter, log, offsetStore, cfg.Telegram.PollTimeout)
	if err := poller.Start(ctx); err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	log.Infow("bot running in polling mode")
	<-ctx.Done()

	log.Infow("shutdown signal received")
	poller.Stop()
	return nil
}

func runWebhook(
	ctx context.Context,
	cfg *config.Config,
	botService *telegram.BotService,
	adapter *telegram.UpdateAdapter,
	log logger.Interface,
) error {
	if cfg.Telegram.WebhookURL == "" {
		return fmt.Errorf("webhook mode requires telegram.webhook_url")
	}

	if err := botService.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	server := httpServer.NewServer(&cfg.Server, &cfg.Telegram, adapter, log)
	goroutine.SafeGo(log, "http-server", func() {
		if err := server.Start(); err != nil {
			log.Errorw("http server failed", "error", err)
		}
	})

	log.Infow("bot running in webhook mode", "url", cfg.Telegram.WebhookURL)
	<-ctx.Done()

	log.Infow("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
