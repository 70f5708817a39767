// Package server exposes the tutor capabilities over HTTP and serves the
// single-page client.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jmath/jmath/internal/tutor"
)

// Server wraps a gin router around a tutor.Service.
type Server struct {
	Router *gin.Engine

	svc  *tutor.Service
	log  logrus.FieldLogger
	http *http.Server
}

// New wires middleware and routes and returns the server. It does not
// start listening.
func New(svc *tutor.Service, log logrus.FieldLogger) *Server {
	router := gin.New()
	router.Use(
		requestID(),
		accessLog(log),
		gin.CustomRecovery(recoverPanic(log)),
	)

	s := &Server{
		Router: router,
		svc:    svc,
		log:    log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.Router.GET("/", s.indexPage)
	s.Router.GET("/healthz", s.healthz)

	api := s.Router.Group("/api")
	api.POST("/solve", s.solve)
	api.POST("/explain", s.explain)
	api.POST("/generate-similar", s.generateSimilar)
	api.POST("/visualize-concepts", s.visualizeConcepts)
}

// Run starts listening on addr in the background. The returned channel
// receives the listener's error, or nil after a clean Shutdown.
func (s *Server) Run(addr string) <-chan error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("web UI listening on %s", addr)
		err := s.http.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()
	return errCh
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

// GET /healthz
func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
