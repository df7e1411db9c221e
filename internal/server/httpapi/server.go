// Package httpapi exposes the application services over HTTP. It owns the
// gin router, request/response payload shapes, the bearer-token middleware
// and the single place where service errors map to status codes.
package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/loangate/loangate/internal/logging"
	"github.com/loangate/loangate/internal/server/auth"
	"github.com/loangate/loangate/internal/server/models"
	"github.com/loangate/loangate/internal/server/services"
)

// IdentityService is the credential-verification surface the handlers need.
type IdentityService interface {
	SignUp(ctx context.Context, name, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, *models.Account, error)
	FederatedSignUp(ctx context.Context, assertion string) (string, *models.Account, error)
	FederatedLogin(ctx context.Context, assertion string) (string, *models.Account, error)
}

// TokenVerifier checks bearer tokens for the protected routes.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// ProfileService is the profile-registry surface the handlers need.
type ProfileService interface {
	Fetch(ctx context.Context, email string) (*models.Profile, error)
	Upsert(ctx context.Context, email string, patch *models.ProfilePatch) (*models.Profile, error)
}

// LoanService manages loan application records.
type LoanService interface {
	CreateApplication(ctx context.Context, form *models.LoanForm) (*models.LoanForm, error)
	Get(ctx context.Context, applicationID string) (*models.LoanForm, error)
	UpdateStatus(ctx context.Context, applicationID, status string) (*models.LoanForm, error)
}

// DocumentService records document bundles and presigns object-store URLs.
type DocumentService interface {
	Submit(ctx context.Context, applicationID, email string) (*models.LoanDocuments, []services.DocumentUpload, error)
	Fetch(ctx context.Context, applicationID string) (*models.LoanDocuments, *services.DocumentLinks, error)
}

// Server binds the application services to the HTTP routes.
type Server struct {
	identity  IdentityService
	tokens    TokenVerifier
	profiles  ProfileService
	loans     LoanService
	documents DocumentService
	logger    logging.Logger
}

func NewServer(identity IdentityService, tokens TokenVerifier, profiles ProfileService,
	loans LoanService, documents DocumentService, logger logging.Logger) *Server {
	return &Server{
		identity:  identity,
		tokens:    tokens,
		profiles:  profiles,
		loans:     loans,
		documents: documents,
		logger:    logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	user := r.Group("/api/user")
	{
		user.POST("/signup", s.signUp)
		user.POST("/login", s.login)
		user.POST("/federated-signup", s.federatedSignUp)
		user.POST("/federated-login", s.federatedLogin)
		user.GET("/profile", s.fetchProfile)
		user.PUT("/profile", s.upsertProfile)
		user.GET("/email", s.requireBearer(), s.accountEmail)
	}

	r.POST("/api/loan/eligibility", s.eligibility)

	loans := r.Group("/api/loans")
	{
		loans.POST("", s.createLoan)
		loans.GET("/:id", s.getLoan)
		loans.PATCH("/:id", s.updateLoanStatus)
		loans.POST("/:id/documents", s.submitDocuments)
		loans.GET("/:id/documents", s.fetchDocuments)
	}

	return r
}
