package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/service"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Addr           string
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// Server exposes the schedule generator over HTTP. Handlers share only
// the immutable service, so requests never see each other's state.
type Server struct {
	cfg     Config
	svc     *service.Service
	metrics *Metrics
	http    *http.Server
}

func New(cfg Config, svc *service.Service, metrics *Metrics) *Server {
	if cfg.Addr == "" {
		cfg.Addr = constants.DefaultServerAddr
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = constants.DefaultRequestTimeout
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	s := &Server{cfg: cfg, svc: svc, metrics: metrics}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the full middleware chain: access log, CORS, routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Handle("/generate-schedule", s.metrics.WrapHandler("generate_schedule", http.HandlerFunc(s.generateSchedule))).Methods(http.MethodPost)
	api.Handle("/generate-schedule.ics", s.metrics.WrapHandler("generate_schedule_ics", http.HandlerFunc(s.generateCalendar))).Methods(http.MethodPost)
	api.Handle("/assessment", s.metrics.WrapHandler("assessment", http.HandlerFunc(s.scoreAssessment))).Methods(http.MethodPost)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.cfg.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return handlers.CombinedLoggingHandler(logger.Writer(), cors(r))
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", ln.Addr().String(), "sink", s.svc.SinkPath())
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
