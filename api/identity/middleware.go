package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextAccountClaims is the key used to store account claims in the Gin context.
	ContextAccountClaims = "accountClaims"
)

// Authoriz rejects requests without a valid bearer token and stores its claims in the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextAccountClaims, claims)
		c.Next()
	}
}

// AccountID returns the id of the authorized account, if any.
func AccountID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(ContextAccountClaims)
	if !ok {
		return uuid.Nil, false
	}
	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}
	raw, ok := claims[i.ClaimAccountID].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
