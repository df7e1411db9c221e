package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loangate/loangate/internal/server/models"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type federatedRequest struct {
	Assertion string `json:"assertion"`
}

// accountPayload is the public shape of an account. Credentials never
// appear in responses.
type accountPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email"`
	CredentialKind string `json:"credentialKind"`
}

func toAccountPayload(a *models.Account) accountPayload {
	return accountPayload{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		CredentialKind: string(a.CredentialKind),
	}
}

func (s *Server) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	account, err := s.identity.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": toAccountPayload(account)})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	token, account, err := s.identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": toAccountPayload(account)})
}

func (s *Server) federatedSignUp(c *gin.Context) {
	var req federatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	token, account, err := s.identity.FederatedSignUp(c.Request.Context(), req.Assertion)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": toAccountPayload(account)})
}

func (s *Server) federatedLogin(c *gin.Context) {
	var req federatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	token, account, err := s.identity.FederatedLogin(c.Request.Context(), req.Assertion)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": toAccountPayload(account)})
}

// accountEmail returns the email embedded in the verified bearer token.
func (s *Server) accountEmail(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil {
		s.fail(c, errUnauthorizedBearer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": claims.Email})
}
