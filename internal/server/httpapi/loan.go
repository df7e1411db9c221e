package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loangate/loangate/internal/server/models"
	"github.com/loangate/loangate/internal/server/services"
)

type createLoanRequest struct {
	Email        string  `json:"email"`
	LoanAmount   float64 `json:"loanAmount"`
	CreditScore  int     `json:"creditScore"`
	AnnualIncome float64 `json:"annualIncome"`
	MonthlyDebts float64 `json:"monthlyDebts"`
	HouseStatus  string  `json:"houseStatus"`
	YearsInJob   int     `json:"yearsInJob"`
}

type updateLoanRequest struct {
	Status string `json:"status"`
}

type loanFormPayload struct {
	ApplicationID string  `json:"applicationId"`
	Email         string  `json:"email"`
	LoanAmount    float64 `json:"loanAmount"`
	CreditScore   int     `json:"creditScore"`
	AnnualIncome  float64 `json:"annualIncome"`
	MonthlyDebts  float64 `json:"monthlyDebts"`
	HouseStatus   string  `json:"houseStatus,omitempty"`
	YearsInJob    int     `json:"yearsInJob"`
	Status        string  `json:"status"`
}

func toLoanFormPayload(f *models.LoanForm) loanFormPayload {
	return loanFormPayload{
		ApplicationID: f.ApplicationID,
		Email:         f.Email,
		LoanAmount:    f.LoanAmount,
		CreditScore:   f.CreditScore,
		AnnualIncome:  f.AnnualIncome,
		MonthlyDebts:  f.MonthlyDebts,
		HouseStatus:   f.HouseStatus,
		YearsInJob:    f.YearsInJob,
		Status:        f.Status,
	}
}

// eligibility evaluates the stateless threshold rule. No state is read or
// written; the verdict depends only on the request body.
func (s *Server) eligibility(c *gin.Context) {
	var in services.EligibilityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, services.Eligibility(in))
}

func (s *Server) createLoan(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	form, err := s.loans.CreateApplication(c.Request.Context(), &models.LoanForm{
		Email:        req.Email,
		LoanAmount:   req.LoanAmount,
		CreditScore:  req.CreditScore,
		AnnualIncome: req.AnnualIncome,
		MonthlyDebts: req.MonthlyDebts,
		HouseStatus:  req.HouseStatus,
		YearsInJob:   req.YearsInJob,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": toLoanFormPayload(form)})
}

func (s *Server) getLoan(c *gin.Context) {
	form, err := s.loans.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": toLoanFormPayload(form)})
}

func (s *Server) updateLoanStatus(c *gin.Context) {
	var req updateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	form, err := s.loans.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": toLoanFormPayload(form)})
}
