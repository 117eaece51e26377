// Package webserver provides the local HTTP server behind `qreport report
// open`: it serves a directory of rendered reports and exposes a small
// health endpoint.
package webserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"time"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port      int
	ReportDir string
	NoBrowser bool
	Logger    *slog.Logger
}

// Server wraps the HTTP server with configuration.
type Server struct {
	cfg    Config
	srv    *http.Server
	logger *slog.Logger
}

// New creates a new HTTP server with the given configuration.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Port == 0 {
		cfg.Port = 4173
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "."
	}

	mux := http.NewServeMux()
	registerRoutes(mux, cfg)

	return &Server{
		cfg:    cfg,
		logger: cfg.Logger,
		srv: &http.Server{
			Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// ListenAndServe starts the HTTP server and optionally opens a browser.
func (s *Server) ListenAndServe(ctx context.Context) error {
	url := fmt.Sprintf("http://localhost:%d", s.cfg.Port)
	s.logger.Info("report server starting", "address", s.srv.Addr, "dir", s.cfg.ReportDir)
	fmt.Printf("serving reports at %s\n", url)

	if !s.cfg.NoBrowser {
		// Open browser in background after a short delay.
		go func() {
			time.Sleep(500 * time.Millisecond)
			if err := openBrowser(url); err != nil {
				s.logger.Debug("failed to open browser", "error", err)
			}
		}()
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down report server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("report server shutdown error", "error", err)
		}
	}()

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("report server error: %w", err)
	}
	return nil
}

// Handler returns the underlying http.Handler (useful for testing).
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
