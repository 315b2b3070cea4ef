package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/httpserver"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/mykafka"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/pkg/config"
	pkgdb "github.com/Skotchmaster/marketplace/pkg/db"
	"github.com/Skotchmaster/marketplace/pkg/logging"
	middleware "github.com/Skotchmaster/marketplace/pkg/middleware/auth"
	"github.com/Skotchmaster/marketplace/pkg/middleware/csrf"
	loggingmw "github.com/Skotchmaster/marketplace/pkg/middleware/logging"
	"github.com/Skotchmaster/marketplace/pkg/middleware/ratelimit"
	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

func main() {
	adminUser := flag.String("create-admin", "", "create a staff account with this username and exit")
	adminPass := flag.String("admin-password", "", "password for -create-admin")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustOneOf(cfg.OrderTotalPolicy, "ORDER_TOTAL_POLICY", config.TotalPolicyTrust, config.TotalPolicyVerify)

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := &repo.GormRepo{DB: db}
	authSvc := &service.AuthService{Repo: store, JWTSecret: cfg.JWTSecret, TTL: cfg.JWTTTL}

	if *adminUser != "" {
		user, err := authSvc.RegisterStaff(context.Background(), *adminUser, *adminPass)
		if err != nil {
			log.Fatalf("create admin: %v", err)
		}
		logger.Info("admin_created", "user_id", user.ID, "username", user.Username)
		closeDB(db)
		return
	}

	var publisher service.Publisher = service.NopPublisher{}
	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		if err := mykafka.EnsureTopic(cfg.KafkaBrokers[0], cfg.KafkaTopic); err != nil {
			logger.Warn("kafka_topic_error", "topic", cfg.KafkaTopic, "error", err)
		}
		producer = mykafka.NewProducer(cfg.KafkaBrokers)
		publisher = producer
	} else {
		logger.Info("kafka_disabled", "reason", "KAFKA_BROKERS is empty")
	}
	events := &service.Events{Pub: publisher, Topic: cfg.KafkaTopic}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Secure())
	e.Use(loggingmw.RequestLogger(logger, middleware.UserIDKey))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSOrigins, AllowCredentials: true}))
	} else {
		e.Use(echomw.CORS())
	}
	e.Use(csrf.Middleware(csrf.Config{SessionCookie: tokens.AccessCookie, Secure: true}))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: store}},
		ProfileHandler: &httpserver.ProfileHTTP{Svc: &service.ProfileService{Repo: store}},
		OrderHandler: &httpserver.OrderHTTP{Svc: &service.OrderService{
			Repo:        store,
			Events:      events,
			TotalPolicy: cfg.OrderTotalPolicy,
		}},
		RatingHandler: &httpserver.RatingHTTP{Svc: &service.RatingService{Repo: store, Events: events}},
		JWTSecret:     cfg.JWTSecret,
		Limiter:       ratelimit.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Ready: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Warn("kafka_close_error", "error", err)
		}
	}
	closeDB(db)

	logger.Info("stopped")
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
