package main

import (
	"log"

	api "b4nkd-backend/cmd/api"
	auditdomain "b4nkd-backend/internal/audit/domain"
	auditRepo "b4nkd-backend/internal/audit/repository"
	auditUsecase "b4nkd-backend/internal/audit/usecase"
	categoryUsecase "b4nkd-backend/internal/category/usecase"
	devicedomain "b4nkd-backend/internal/device/domain"
	deviceRepo "b4nkd-backend/internal/device/repository"
	deviceUsecase "b4nkd-backend/internal/device/usecase"
	ledgerdomain "b4nkd-backend/internal/ledger/domain"
	ledgerRepo "b4nkd-backend/internal/ledger/repository"
	notificationdomain "b4nkd-backend/internal/notification/domain"
	notificationRepo "b4nkd-backend/internal/notification/repository"
	notificationUsecase "b4nkd-backend/internal/notification/usecase"
	userdomain "b4nkd-backend/internal/user/domain"
	userRepo "b4nkd-backend/internal/user/repository"
	"b4nkd-backend/pkg/config"
	"b4nkd-backend/pkg/database"
	"b4nkd-backend/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&devicedomain.DeviceToken{},
		&notificationdomain.Notification{},
		&ledgerdomain.Transaction{},
		&userdomain.UserProfile{},
		&auditdomain.SystemLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	deviceTokenRepo := deviceRepo.NewGormDeviceTokenRepository(db)
	notifRepo := notificationRepo.NewGormNotificationRepository(db)
	transactionRepo := ledgerRepo.NewGormTransactionRepository(db)
	profileRepo := userRepo.NewGormProfileRepository(db)
	systemLogRepo := auditRepo.NewGormSystemLogRepository(db)

	// Initialize audit logger
	auditLogger := auditUsecase.NewLogger(systemLogRepo)

	// Initialize FCM client (delivery endpoints fail without it, the rest of
	// the API still works)
	var gateway notificationUsecase.Gateway
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push delivery disabled): %v", err)
		} else {
			gateway = fcmClient
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, push delivery disabled")
	}

	// Initialize use cases (dependency injection)
	deviceUc := deviceUsecase.NewDeviceUsecase(deviceTokenRepo, auditLogger)
	categoryUc := categoryUsecase.NewCategoryUsecase(transactionRepo, profileRepo, deviceUc)
	notificationUc := notificationUsecase.NewNotificationUsecase(
		notifRepo, deviceUc, categoryUc, transactionRepo, profileRepo,
		gateway, auditLogger, cfg.DispatchWorkers, cfg.DispatchTimeout)

	// Initialize HTTP handler
	handler := api.NewHandler(cfg, deviceUc, categoryUc, notificationUc)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
