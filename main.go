package main

import (
	"clubhub/auth"
	"clubhub/client"
	"clubhub/config"
	"clubhub/controller"
	"clubhub/docs"
	"clubhub/repository"
	"clubhub/service"
	"clubhub/utils"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Club Registration API
// @version         1.0
// @description     Event catalog, competition registration and participant review for the club.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()
	cfg := config.Env()
	setupLogging()

	db, err := config.InitDB(
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.DatabaseName,
		repository.Models()...,
	)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	dispatcher := service.NewRegistrationDispatcher()
	feed := controller.NewRegistrationFeed()
	dispatcher.AddListener(feed)
	kafkaPublisher := addKafka(cfg, dispatcher)
	addDiscord(cfg, dispatcher)

	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatalf("Failed to set trusted proxies: %v", err)
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r, cfg.CorsOrigins)
	r.Use(controller.RequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))
	controller.SetRoutes(r, &controller.Dependencies{
		DB:            db,
		CacheStore:    persistence.NewInMemoryStore(60 * time.Second),
		Authenticator: auth.NewAuthenticator(cfg.JWTSecret),
		Dispatcher:    dispatcher,
		Feed:          feed,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.WithField("port", cfg.Port).Infof("Server started in %s", time.Since(t))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	feed.Close()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	dispatcher.Wait()
	if kafkaPublisher != nil {
		utils.Closer(kafkaPublisher)()
	}
	if sqlDB, err := db.DB(); err == nil {
		utils.Closer(sqlDB)()
	}
	log.Info("Server exited gracefully")
}

func setupLogging() {
	if config.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		log.SetLevel(log.DebugLevel)
	}
}

func addKafka(cfg *config.Config, dispatcher *service.RegistrationDispatcher) *client.KafkaPublisher {
	if cfg.KafkaBroker == "" {
		log.Info("KAFKA_BROKER not set, registration messages are not published")
		return nil
	}
	writer, err := config.GetWriter(cfg.KafkaBroker, cfg.KafkaTopic)
	if err != nil {
		log.WithError(err).Warn("Failed to set up kafka writer, registration messages are not published")
		return nil
	}
	publisher := client.NewKafkaPublisher(writer)
	dispatcher.AddListener(publisher)
	return publisher
}

func addDiscord(cfg *config.Config, dispatcher *service.RegistrationDispatcher) {
	if cfg.DiscordBotToken == "" || cfg.DiscordChannelID == "" {
		log.Info("Discord not configured, new registrations are not announced")
		return
	}
	notifier, err := client.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordChannelID)
	if err != nil {
		log.WithError(err).Warn("Failed to set up discord notifier")
		return
	}
	dispatcher.AddListener(notifier)
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
		Skip: func(c *gin.Context) bool {
			return c.Request.URL.Query().Get("token") != ""
		},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	uuidRe := regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = uuidRe.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine, origins []string) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	getOptions := cors.New(corsConfigGetOptions)
	otherMethods := cors.New(corsConfigOtherMethods)

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// the preflight is answered for the method it announces
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				getOptions(c)
			} else {
				otherMethods(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			getOptions(c)
		} else {
			otherMethods(c)
		}
	})
}
