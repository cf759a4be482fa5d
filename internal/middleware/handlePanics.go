package middleware

import (
	"net/http"

	"github.com/dfryer1193/masterblog/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HandlePanics recovers a panicking handler, logs the cause and answers with
// a generic error so internals never reach the client.
func HandlePanics() gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")

		c.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{Error: "Internal server error"})
	}
}
