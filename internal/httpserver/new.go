package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-to-jira/internal/extraction"
	"voice-to-jira/internal/session"
	"voice-to-jira/internal/tracker"
	"voice-to-jira/internal/transcribe"
	"voice-to-jira/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	sessionUC    session.UseCase
	extractionUC extraction.UseCase
	trackerUC    tracker.UseCase
	transcribeUC transcribe.UseCase

	project string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	SessionUC    session.UseCase
	ExtractionUC extraction.UseCase
	TrackerUC    tracker.UseCase
	TranscribeUC transcribe.UseCase

	// Project is the default tracker project key for submissions.
	Project string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		sessionUC:    cfg.SessionUC,
		extractionUC: cfg.ExtractionUC,
		trackerUC:    cfg.TrackerUC,
		transcribeUC: cfg.TranscribeUC,
		project:      cfg.Project,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionUC == nil || srv.extractionUC == nil || srv.trackerUC == nil {
		return errors.New("session, extraction and tracker usecases are required")
	}
	return nil
}
