package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EverGlassServices/rdv-tracker/internal/config"
)

const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware guards every technician operation with the shared
// secret. A server without a configured secret refuses all technician
// calls outright: misconfiguration must never mean open mutation, and
// it is reported distinctly from a wrong key.
func APIKeyMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.TechAPIKey == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error_code": "server_not_configured",
				"message":    "Serveur non configuré (TECH_API_KEY manquant).",
			})
			return
		}

		key := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.TechAPIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "unauthorized",
				"message":    "Clé API invalide.",
			})
			return
		}

		c.Next()
	}
}
