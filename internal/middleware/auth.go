package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/config"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextPatientID = "patientID"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, okID := claims["sub"].(float64)
		role, okRole := claims["role"].(string)
		if !okID || !okRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)

		// patientId is only present on patient tokens.
		if patientID, okPatient := claims["patientId"].(float64); okPatient {
			c.Set(ContextPatientID, uint(patientID))
		}

		c.Next()
	}
}

// ActorFromContext rebuilds the authenticated caller from the values the
// auth middleware stored. Must only be called on routes behind it.
func ActorFromContext(c *gin.Context) authz.Actor {
	actor := authz.Actor{
		UserID: c.MustGet(ContextUserID).(uint),
		Role:   authz.Role(c.MustGet(ContextUserRole).(string)),
	}

	if v, ok := c.Get(ContextPatientID); ok {
		if id, okID := v.(uint); okID {
			actor.PatientID = &id
		}
	}

	return actor
}
