// Package server wires the HTTP routes and their lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xtding233/draw-odds-backend/internal/api"
	"github.com/xtding233/draw-odds-backend/internal/game"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	addr   string
	router *gin.Engine
	http   *http.Server
	log    *zap.SugaredLogger
}

// Options carries what the router needs beyond the preset resolver.
type Options struct {
	APIKey string
}

// NewRouter builds the gin engine with CORS, the optional API key check and
// every endpoint.
func NewRouter(presets game.Resolver, log *zap.SugaredLogger, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"X-API-KEY", "Accept", "Accept-Language"},
		AllowAllOrigins:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handlers := api.NewHandlers(presets, log)
	router.GET("/health", handlers.Health)

	authed := router.Group("/", api.CheckHeader("X-API-KEY", opts.APIKey))
	authed.GET("/table", handlers.Table)
	authed.GET("/hand", handlers.Hand)
	authed.GET("/mulligan", handlers.Mulligan)
	authed.GET("/turn", handlers.Turn)
	authed.GET("/simulate", handlers.Simulate)
	authed.GET("/presets/:game", handlers.Preset)

	return router
}

func New(addr string, presets game.Resolver, log *zap.SugaredLogger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(presets, log, opts)
	return &Server{
		addr:   addr,
		router: router,
		http: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on addr until ctx ends, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	s.log.Infow("http listening", "addr", ln.Addr().String())
	go func() {
		serveErr <- s.http.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.http.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
