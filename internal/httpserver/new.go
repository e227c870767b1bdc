package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-todo/internal/middleware"
	"voice-todo/internal/voicetask"
	"voice-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	timezone    string
	mw          middleware.Middleware

	// Voice task domain
	voiceTaskUC voicetask.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// Timezone is reported by the health routes.
	Timezone string

	RateLimitPerMin int

	// Voice task domain
	VoiceTaskUseCase voicetask.UseCase
}

// New creates a new HTTPServer instance and maps all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		timezone:    cfg.Timezone,
		voiceTaskUC: cfg.VoiceTaskUseCase,
	}

	if err := srv.validate(cfg); err != nil {
		return nil, err
	}
	srv.mw = middleware.New(logger, cfg.RateLimitPerMin)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate(cfg Config) error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if cfg.RateLimitPerMin <= 0 {
		return errors.New("rate limit is required")
	}
	if srv.voiceTaskUC == nil {
		return errors.New("voice task use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
