package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/queue"
)

// PollRunner is the slice of the monitor the ops server needs: trigger one
// cycle, report the last one.
type PollRunner interface {
	RunOnce(ctx context.Context)
	LastPoll() time.Time
}

// BrokerStatus reports whether the event broker connection is up.
type BrokerStatus interface {
	Connected() bool
}

type HTTPServer struct {
	echo    *echo.Echo
	monitor PollRunner
	broker  BrokerStatus
	queue   *queue.Queue
}

func NewHTTPServer(monitor PollRunner, broker BrokerStatus, q *queue.Queue) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo:    e,
		monitor: monitor,
		broker:  broker,
		queue:   q,
	}

	// Routes
	e.GET("/health", server.healthCheck)
	e.GET("/livez", server.liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/v1/poll", server.triggerPoll)

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "claimflow",
	})
}

func (s *HTTPServer) liveness(c echo.Context) error {
	lastPoll := ""
	if t := s.monitor.LastPoll(); !t.IsZero() {
		lastPoll = t.Format(time.RFC3339)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":           "alive",
		"last_poll_time":   lastPoll,
		"queue_depth":      s.queue.Len(),
		"broker_connected": s.broker.Connected(),
	})
}

// triggerPoll starts one out-of-schedule poll cycle. The cycle runs in the
// background; the endpoint only acknowledges the trigger.
func (s *HTTPServer) triggerPoll(c echo.Context) error {
	go s.monitor.RunOnce(context.Background())

	return c.JSON(http.StatusAccepted, map[string]string{
		"status": "poll triggered",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
