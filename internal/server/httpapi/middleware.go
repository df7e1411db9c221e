package httpapi

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/server/auth"
)

const claimsContextKey = "bearerClaims"

var errUnauthorizedBearer = fmt.Errorf("%w: missing or invalid bearer token", common.ErrUnauthorized)

// requireBearer verifies the Authorization header and stores the token
// claims on the request context for the handler.
func (s *Server) requireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.fail(c, errUnauthorizedBearer)
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			s.fail(c, err)
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
