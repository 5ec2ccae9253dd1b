package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/facultyportal/config"
	"github.com/yoockh/facultyportal/internal/api/handlers"
	"github.com/yoockh/facultyportal/internal/api/middleware"
	"github.com/yoockh/facultyportal/internal/api/routes"
	"github.com/yoockh/facultyportal/internal/auth"
	"github.com/yoockh/facultyportal/internal/cache"
	"github.com/yoockh/facultyportal/internal/logger"
	mongorepo "github.com/yoockh/facultyportal/internal/repositories/mongo"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/storage"
)

func main() {
	_ = godotenv.Load()

	settings := config.Load()
	log := logger.NewWithLevel(settings.LogLevel)

	if settings.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.InitDatabase(); err != nil {
		log.WithError(err).Fatal("database init error")
	}
	if err := config.Migrate(); err != nil {
		log.WithError(err).Fatal("database migration error")
	}
	log.Info("database connected")

	var (
		marksCache cache.Cache  = cache.Noop{}
		locker     cache.Locker = cache.NewLocalLocker(settings.LockWait)
	)
	switch err := config.InitRedis(); {
	case err == nil:
		marksCache = cache.NewRedisCache(config.RedisClient, "facultyportal:")
		locker = cache.NewRedisLocker(config.RedisClient, settings.LockTTL, settings.LockWait)
		log.Info("redis connected")
	case errors.Is(err, config.ErrNotConfigured):
		log.Warn("redis not configured; using in-process lock and no cache")
	default:
		log.WithError(err).Fatal("redis init error")
	}

	var history mongorepo.MarksHistoryRepository = mongorepo.NoopHistory{}
	switch err := config.InitMongo(); {
	case err == nil:
		if err := config.EnsureMongoIndexes(); err != nil {
			log.WithError(err).Warn("mongo index creation failed")
		}
		db, _ := config.MongoDatabase()
		history = mongorepo.NewMarksHistoryRepo(db)
		log.Info("mongo connected")
	case errors.Is(err, config.ErrNotConfigured):
		log.Warn("mongo not configured; marks history disabled")
	default:
		log.WithError(err).Fatal("mongo init error")
	}

	var uploader storage.Uploader
	if settings.GCSBucket != "" {
		gcsUploader, err := storage.NewGCSUploader(context.Background(), settings.GCSBucket, settings.GCSPublic)
		if err != nil {
			log.WithError(err).Fatal("gcs init error")
		}
		defer gcsUploader.Close()
		uploader = gcsUploader
	}

	// Repositories
	userRepo := sqlrepo.NewUserRepo(config.DB)
	personalRepo := sqlrepo.NewPersonalRepo(config.DB)
	educationRepo := sqlrepo.NewEducationRepo(config.DB)
	experienceRepo := sqlrepo.NewExperienceRepo(config.DB)
	publicationRepo := sqlrepo.NewPublicationRepo(config.DB)
	phdRepo := sqlrepo.NewPhDRepo(config.DB)
	courseRepo := sqlrepo.NewCourseRepo(config.DB)
	userInfoRepo := sqlrepo.NewUserInfoRepo(config.DB)
	marksRepo := sqlrepo.NewMarksRepo(config.DB)

	// Services
	tokens := auth.NewIssuer(settings.JWTSecret, settings.JWTIssuer, settings.JWTTTL)
	inputs := services.NewScoringInputsLoader(educationRepo, experienceRepo, publicationRepo, phdRepo)
	marksSvc := services.NewMarksService(inputs, marksRepo, history, locker, marksCache, log)
	appSvc := services.NewApplicationService(userRepo, marksSvc)

	gin.SetMode(settings.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log), middleware.CORS(settings.CORSOrigins))
	r.MaxMultipartMemory = 8 << 20

	routes.RegisterRoutes(r, routes.Deps{
		Tokens:      tokens,
		Auth:        handlers.NewAuthHandler(services.NewAuthService(userRepo, tokens, settings.AdminEmails)),
		Personal:    handlers.NewPersonalHandler(services.NewPersonalService(personalRepo, uploader)),
		Education:   handlers.NewEducationHandler(services.NewEducationService(educationRepo)),
		Experience:  handlers.NewExperienceHandler(services.NewExperienceService(experienceRepo)),
		Publication: handlers.NewPublicationHandler(services.NewPublicationService(publicationRepo)),
		PhD:         handlers.NewPhDHandler(services.NewPhDService(phdRepo)),
		Course:      handlers.NewCourseHandler(services.NewCourseService(courseRepo, userInfoRepo)),
		Marks:       handlers.NewMarksHandler(marksSvc, appSvc),
	})

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", settings.Port).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdown(srv, log)
}

func shutdown(srv *http.Server, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("http server shutdown error")
	}
	if config.RedisClient != nil {
		_ = config.RedisClient.Close()
	}
	if config.MongoClient != nil {
		_ = config.MongoClient.Disconnect(ctx)
	}
	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
