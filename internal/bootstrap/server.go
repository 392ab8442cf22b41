package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/skypath/api"
	"github.com/Domenick1991/skypath/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, searchHandler *api.SearchHandler, airportHandler *api.AirportHandler) error {
	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	apiGroup := router.Group("/api")
	searchHandler.Register(apiGroup.Group("/flights"))
	airportHandler.Register(apiGroup.Group("/airports"))

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
