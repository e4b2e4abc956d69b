package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// JWTMiddleware authenticates requests with a session token sent either as a
// Bearer header or as the session cookie.
type JWTMiddleware struct {
	secret      string
	rateLimiter *InvalidAuthRateLimiter
}

func NewJWTMiddleware(secret string, rateLimiter *InvalidAuthRateLimiter) *JWTMiddleware {
	return &JWTMiddleware{secret: secret, rateLimiter: rateLimiter}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(contract.SessionCookie)
		}
		if token == "" {
			m.reject(c, utils.CodeUnauthorized, "Missing session token")
			return
		}

		claims, err := utils.ValidateJWT(token, m.secret)
		if err != nil {
			m.reject(c, utils.CodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set("seller_id", claims.SellerID)
		c.Next()
	}
}

func (m *JWTMiddleware) reject(c *gin.Context, code, message string) {
	if m.rateLimiter != nil && !m.rateLimiter.Allow(c.ClientIP()) {
		utils.Error(c, 429, utils.CodeRateLimited, "Too many invalid authentication attempts")
		c.Abort()
		return
	}
	utils.Error(c, 401, code, message)
	c.Abort()
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
