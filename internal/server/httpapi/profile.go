package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/server/models"
)

// profilePayload mirrors the stored profile for responses.
type profilePayload struct {
	AccountID     string  `json:"accountId"`
	Email         string  `json:"email"`
	FullName      string  `json:"fullName,omitempty"`
	Age           int     `json:"age,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Address       string  `json:"address,omitempty"`
	JobExperience string  `json:"jobExperience,omitempty"`
	AnnualIncome  float64 `json:"annualIncome,omitempty"`
	LoanAmount    float64 `json:"loanAmount,omitempty"`
	CreditScore   int     `json:"creditScore,omitempty"`
	LoanStatus    string  `json:"loanStatus"`
}

func toProfilePayload(p *models.Profile) profilePayload {
	return profilePayload{
		AccountID:     p.AccountID,
		Email:         p.Email,
		FullName:      p.FullName,
		Age:           p.Age,
		Phone:         p.Phone,
		Address:       p.Address,
		JobExperience: p.JobExperience,
		AnnualIncome:  p.AnnualIncome,
		LoanAmount:    p.LoanAmount,
		CreditScore:   p.CreditScore,
		LoanStatus:    string(p.LoanStatus),
	}
}

// profilePatchRequest carries a partial update; absent fields stay as-is.
type profilePatchRequest struct {
	Email         string   `json:"email"`
	FullName      *string  `json:"fullName"`
	Age           *int     `json:"age"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	JobExperience *string  `json:"jobExperience"`
	AnnualIncome  *float64 `json:"annualIncome"`
	LoanAmount    *float64 `json:"loanAmount"`
	CreditScore   *int     `json:"creditScore"`
	LoanStatus    *string  `json:"loanStatus"`
}

func (r *profilePatchRequest) patch() *models.ProfilePatch {
	p := &models.ProfilePatch{
		FullName:      r.FullName,
		Age:           r.Age,
		Phone:         r.Phone,
		Address:       r.Address,
		JobExperience: r.JobExperience,
		AnnualIncome:  r.AnnualIncome,
		LoanAmount:    r.LoanAmount,
		CreditScore:   r.CreditScore,
	}
	if r.LoanStatus != nil {
		status := models.LoanStatus(*r.LoanStatus)
		p.LoanStatus = &status
	}
	return p
}

func (s *Server) fetchProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		s.fail(c, common.ErrValidation)
		return
	}

	profile, err := s.profiles.Fetch(c.Request.Context(), email)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": toProfilePayload(profile)})
}

func (s *Server) upsertProfile(c *gin.Context) {
	var req profilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	profile, err := s.profiles.Upsert(c.Request.Context(), req.Email, req.patch())
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": toProfilePayload(profile)})
}
