package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminusecases "helperdesk/internal/application/admin/usecases"
	appaudit "helperdesk/internal/application/audit"
	auditusecases "helperdesk/internal/application/audit/usecases"
	helperusecases "helperdesk/internal/application/helper/usecases"
	ticketusecases "helperdesk/internal/application/ticket/usecases"
	"helperdesk/internal/infrastructure/auth"
	"helperdesk/internal/infrastructure/backup"
	"helperdesk/internal/infrastructure/config"
	"helperdesk/internal/infrastructure/repository"
	"helperdesk/internal/interfaces/http/handlers"
	"helperdesk/internal/interfaces/http/middleware"
	"helperdesk/internal/shared/db"
	"helperdesk/internal/shared/logger"
)

// NewRouter builds the full dependency graph: repositories over the
// database handle, use cases over the repositories, handlers over the
// use cases.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	helperRepo := repository.NewHelperRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	accountRepo := repository.NewAdminAccountRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	auditRepo := repository.NewAuditRepository(database)

	txManager := db.NewTransactionManager(database)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	recorder := appaudit.NewRecorder(auditRepo, log.With("component", "audit.recorder"))
	backupRunner := backup.NewRunner(&cfg.Backup, &cfg.Database)

	authHandler := handlers.NewAuthHandler(
		adminusecases.NewLoginUseCase(accountRepo, sessionRepo, hasher, cfg.Auth.Session.ExpiresHours, log),
		adminusecases.NewLogoutUseCase(sessionRepo, log),
		cfg.Auth.Cookie,
		log,
	)

	helperHandler := handlers.NewHelperHandler(
		helperusecases.NewCreateHelperUseCase(helperRepo, txManager, recorder, log),
		helperusecases.NewGetHelperUseCase(helperRepo, log),
		helperusecases.NewListHelpersUseCase(helperRepo, log),
		helperusecases.NewUpdateHelperUseCase(helperRepo, txManager, recorder, log),
		helperusecases.NewAdjustWarningsUseCase(helperRepo, txManager, recorder, log),
		helperusecases.NewDeleteHelperUseCase(helperRepo, txManager, recorder, log),
		helperusecases.NewExportHelpersUseCase(helperRepo, log),
		log,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, helperRepo, txManager, recorder, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, txManager, recorder, log),
		ticketusecases.NewExportTicketsUseCase(ticketRepo, log),
		log,
	)

	adminHandler := handlers.NewAdminHandler(
		adminusecases.NewCreateAdminUseCase(accountRepo, hasher, txManager, recorder, log),
		adminusecases.NewListAdminsUseCase(accountRepo, log),
		adminusecases.NewUpdateAdminUseCase(accountRepo, hasher, txManager, recorder, log),
		adminusecases.NewDeleteAdminUseCase(accountRepo, sessionRepo, txManager, recorder, log),
		log,
	)

	auditHandler := handlers.NewAuditHandler(
		auditusecases.NewListAuditUseCase(auditRepo, log),
		log,
	)

	backupHandler := handlers.NewBackupHandler(backupRunner, recorder, log)

	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		logger:         log,
		authMiddleware: middleware.NewSessionAuthMiddleware(sessionRepo, accountRepo, log.With("component", "http.auth")),
		authHandler:    authHandler,
		helperHandler:  helperHandler,
		ticketHandler:  ticketHandler,
		adminHandler:   adminHandler,
		auditHandler:   auditHandler,
		backupHandler:  backupHandler,
	}
}
