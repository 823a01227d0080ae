package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-to-jira/internal/middleware"
	"voice-to-jira/internal/model"
	sessionHTTP "voice-to-jira/internal/session/delivery/http"
	transcribeHTTP "voice-to-jira/internal/transcribe/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(gin.Recovery(), mw.RequestLog())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI stays off in production.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	sessionHandler := sessionHTTP.New(srv.l, srv.sessionUC, srv.extractionUC, srv.trackerUC, srv.project)
	sessionHTTP.RegisterRoutes(api, sessionHandler)
	srv.l.Infof(ctx, "Session domain registered")

	if srv.transcribeUC != nil {
		transcribeHandler := transcribeHTTP.New(srv.l, srv.transcribeUC)
		transcribeHTTP.RegisterRoutes(api, transcribeHandler)
		srv.l.Infof(ctx, "Transcribe domain registered")
	} else {
		srv.l.Warnf(ctx, "Transcription endpoint not configured, skipping /transcribe route")
	}

	return nil
}
