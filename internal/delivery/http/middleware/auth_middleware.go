package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// tokenFromRequest extracts the session token from the Authorization header
// or the auth_token cookie.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	cookie, err := c.Cookie("auth_token")
	if err == nil && cookie != "" {
		return cookie
	}
	return ""
}

func parseToken(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// AuthMiddleware requires a valid session token. The role comes fresh from
// the database rather than the token, so a stale claim never grants access.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase, profileRepo domain.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString, cfg)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		if _, err := authUC.GetCurrentUser(c.Request.Context(), sub); err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)

		if profile, err := profileRepo.GetByUserID(c.Request.Context(), sub); err == nil {
			c.Set(string(domain.KeyUserRole), string(profile.Role))
		}

		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a token is
// present but lets anonymous requests through. Used on public pages that
// personalize when a session exists.
func OptionalAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString, cfg)
		if err != nil {
			c.Next()
			return
		}

		if sub, ok := claims["sub"].(string); ok && sub != "" {
			c.Set(string(domain.KeyUserID), sub)
		}
		c.Next()
	}
}
