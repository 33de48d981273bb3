package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"unihostel/internal/adapter/api"
	"unihostel/internal/adapter/api/handler"
	apimiddleware "unihostel/internal/adapter/api/middleware"
	"unihostel/internal/adapter/api/router"
	"unihostel/internal/adapter/repository"
	"unihostel/internal/infrastructure/firebase"
	"unihostel/internal/infrastructure/storage"
	"unihostel/internal/infrastructure/websocket"
	"unihostel/internal/usecase"
	"unihostel/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	hostelRepo := repository.NewFirestoreHostelRepository(firestoreClient)
	ratingRepo := repository.NewFirestoreRatingRepository(firestoreClient)
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	verificationRepo := repository.NewFirestoreVerificationRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactMessageRepository(firestoreClient)
	universityRepo := repository.NewFirestoreUniversityRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	notifier := websocket.NewNotifier(wsManager)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	hostelUseCase := usecase.NewHostelUseCase(hostelRepo, notifier)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, hostelRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, hostelRepo, notifier, cfg.MaxInlineImageKB)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, hostelRepo)
	verificationUseCase := usecase.NewVerificationUseCase(verificationRepo, userRepo, notifier, cfg.MaxInlineImageKB)
	contactUseCase := usecase.NewContactUseCase(contactRepo)
	universityUseCase := usecase.NewUniversityUseCase(universityRepo)

	handler.Setup(
		authUseCase,
		hostelUseCase,
		ratingUseCase,
		bookingUseCase,
		wishlistUseCase,
		verificationUseCase,
		contactUseCase,
		universityUseCase,
	)
	handler.SetupFileHandler(storageClient)
	handler.SetupWebSocketHandler(wsManager)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupFileRouter(e, authMiddleware)
	router.SetupWebSocketRouter(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
