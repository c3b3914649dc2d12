package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rafaelqm2/outreach-hub/internal/config"
	"github.com/rafaelqm2/outreach-hub/internal/infra/database"
	"github.com/rafaelqm2/outreach-hub/internal/infra/http/handlers"
	"github.com/rafaelqm2/outreach-hub/internal/infra/http/middleware"
	"github.com/rafaelqm2/outreach-hub/internal/infra/integration/unipile"
	"github.com/rafaelqm2/outreach-hub/internal/infra/mail"
	"github.com/rafaelqm2/outreach-hub/internal/infra/queue"
	"github.com/rafaelqm2/outreach-hub/internal/infra/webhook"
	"github.com/rafaelqm2/outreach-hub/internal/logger"
	"github.com/rafaelqm2/outreach-hub/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		zlog.Fatal("rabbitmq connection failed", zap.Error(err))
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	settingsRepo := database.NewSettingsRepository(db)
	emailRepo := database.NewEmailRepository(db)

	// 2. Gateways and adapters
	unipileClient := unipile.NewClient(cfg.UnipileDSN, cfg.UnipileAPIKey, cfg.PublicBaseURL)
	dispatcher := webhook.NewDispatcher(zlog)
	mailSender := mail.NewSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	// 3. Worker consuming email outcome events from the automation pipeline
	worker := queue.NewWorker(rabbitMQ.Ch, emailRepo, zlog)
	go func() {
		if err := worker.Start(queue.QueueName); err != nil {
			zlog.Error("outcome worker stopped", zap.Error(err))
		}
	}()

	// 4. Use cases
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	linkUC := usecase.NewLinkAccountUseCase(unipileClient)
	templateTestUC := usecase.NewTemplateTestUseCase(settingsUC, mailSender)
	reviewUC := usecase.NewEmailReviewUseCase(emailRepo)

	campaignFlows := usecase.NewCampaignFlows(settingsUC, dispatcher, cfg.MaxCampaignLeads, zlog)
	defer campaignFlows.Close()
	searchFlows := usecase.NewSearchFlows(settingsUC, dispatcher, zlog)
	defer searchFlows.Close()

	// 5. Handlers
	settingsHandler := handlers.NewSettingsHandler(settingsUC, templateTestUC)
	authHandler := handlers.NewLinkedInAuthHandler(linkUC)
	campaignHandler := handlers.NewCampaignHandler(campaignFlows, settingsUC)
	searchHandler := handlers.NewSearchHandler(searchFlows, settingsUC)
	emailHandler := handlers.NewEmailHandler(emailRepo, reviewUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, unipileClient.Configured())

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-ID"},
	}))

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth)

		r.Get("/settings", settingsHandler.HandleGet)
		r.Put("/settings", settingsHandler.HandleUpdate)
		r.Get("/settings/webhook-status", settingsHandler.HandleWebhookStatus)
		r.Post("/settings/template/test", settingsHandler.HandleTemplateTest)

		r.Post("/auth/linkedin/link", authHandler.HandleLink)

		r.Get("/campaign", campaignHandler.HandleGet)
		r.Put("/campaign/leads", campaignHandler.HandleSetLeads)
		r.Put("/campaign/template", campaignHandler.HandleSetTemplate)
		r.Put("/campaign/details", campaignHandler.HandleSetDetails)
		r.Post("/campaign/submit", campaignHandler.HandleSubmit)

		r.Get("/search", searchHandler.HandleGet)
		r.Post("/search/trigger", searchHandler.HandleTrigger)

		r.Get("/emails", emailHandler.HandleList)
		r.Get("/emails/{id}", emailHandler.HandleGet)
		r.Put("/emails/{id}/review", emailHandler.HandleReview)
	})

	addr := ":" + cfg.Port
	zlog.Info("🔥 outreach-hub API listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
