package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/client"
	"coverly.com/claimflow/internal/config"
	"coverly.com/claimflow/internal/core/service"
	"coverly.com/claimflow/internal/infrastructure/amqp"
	"coverly.com/claimflow/internal/mailbox"
	"coverly.com/claimflow/internal/queue"
	"coverly.com/claimflow/internal/server"
	"coverly.com/claimflow/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	cursorStorage := storage.NewCursorStorage(db)
	fulfillmentStorage := storage.NewFulfillmentStorage(db)
	artifactStorage := storage.NewArtifactStorage(db)

	// Create AMQP client and set up topology (exchange, queue, bindings)
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	validate := validator.New()
	events := client.NewAMQPEventPublisher(amqp.NewPublisher(amqpClient), validate)

	// Remote collaborators share one HTTP client.
	httpClient := &http.Client{Timeout: cfg.RemoteTimeout}
	reasoning := client.NewReasoningHTTPClient(cfg.ReasoningURL, cfg.ReasoningModel, httpClient)
	directory := client.NewDirectoryHTTPClient(cfg.DirectoryURL, httpClient)
	notifier := client.NewMailServiceClient(cfg.MailServiceURL, httpClient)

	inbox, err := mailbox.Dial(cfg.IMAPAddr, cfg.IMAPUsername, cfg.IMAPPassword)
	if err != nil {
		log.Fatalf("Failed to connect to mailbox: %v", err)
	}
	defer inbox.Close()

	workQueue := queue.New()
	templates := service.NewTemplateSet(cfg.TemplatesDir)
	classifier := service.NewClassificationService(reasoning)
	ingestion := service.NewIngestionService(inbox, cursorStorage, classifier, events, workQueue, cfg.SpoolDir)
	fulfillment := service.NewFulfillmentService(reasoning, fulfillmentStorage, artifactStorage, notifier, events, templates)
	processor := service.NewQueueProcessor(workQueue, directory, notifier, fulfillment, templates, cfg.RecordDelay)
	monitor := service.NewMonitor(ingestion, processor, workQueue, cfg.SpoolDir, cfg.PollInterval, cfg.SweepInterval, cfg.SweepMaxAge)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpServer := server.NewHTTPServer(monitor, amqpClient, workQueue)
	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	go monitor.Run(runCtx)

	log.Info("Claim monitor service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down claim monitor service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}
}
