package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"github.com/strataworks/website-api/internal/config"
	"github.com/strataworks/website-api/internal/db"
	"github.com/strataworks/website-api/internal/gelf"
	"github.com/strataworks/website-api/internal/handler"
	"github.com/strataworks/website-api/internal/mailer"
	"github.com/strataworks/website-api/internal/middleware"
	"github.com/strataworks/website-api/internal/repository"
	"github.com/strataworks/website-api/internal/router"
	"github.com/strataworks/website-api/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Site content store
	conn, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open site database: %v", err)
	}
	defer conn.Close()
	log.Printf("Site database ready at %s", cfg.DatabasePath)

	// Rate-limit record store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	// Resume object storage
	mc, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageSecure,
		Region: cfg.StorageRegion,
	})
	if err != nil {
		log.Fatalf("Failed to init object storage client: %v", err)
	}

	// SMTP
	mailClient, err := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err != nil {
		log.Fatalf("Failed to init mail client: %v", err)
	}

	// Repositories
	contentRepo := repository.NewContentRepo(conn)
	attemptRepo := repository.NewAttemptRepo(rdb)
	blobRepo := repository.NewBlobRepo(mc, cfg.StorageEndpoint, cfg.StorageBucket, cfg.StorageRegion, cfg.StorageSecure)

	// Services
	contentSvc := service.NewContentService(contentRepo)
	limiter := service.NewRateLimitService(attemptRepo)
	attachments := service.NewAttachmentService(blobRepo)
	notifier := service.NewNotifyService(mailClient, cfg.SenderAddress, cfg.CareersAddress)
	submissions := service.NewSubmissionService(limiter, attachments, notifier)

	// Handlers
	careersH := handler.NewCareersHandler(submissions, contentSvc)
	contentH := handler.NewContentHandler(contentSvc)
	intranetH := handler.NewIntranetHandler(contentSvc)

	// Public throttle
	throttle := middleware.NewLimiterStore(cfg.ThrottleRPS, cfg.ThrottleBurst)
	throttle.StartJanitor(context.Background())

	r := router.New(cfg.AllowedOrigin, cfg.IntranetSecret, throttle, careersH, contentH, intranetH)

	// Storage setup runs in background so a slow or unreachable bucket check
	// never delays serving the read endpoints.
	go func() {
		log.Printf("Background init: ensuring resume bucket...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := blobRepo.EnsureBucket(ctx); err != nil {
			log.Printf("Warning: resume bucket init failed: %v", err)
			return
		}
		log.Printf("Background init: resume bucket ready")
	}()

	log.Printf("website-api starting on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
