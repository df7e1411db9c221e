package services

import "fmt"

// EligibilityInput are the loan parameters of the threshold rule.
type EligibilityInput struct {
	LoanAmount         float64 `json:"loanAmount"`
	CreditScore        int     `json:"creditScore"`
	AnnualIncome       float64 `json:"annualIncome"`
	YearsInJob         int     `json:"yearsInJob"`
	LoanTenure         int     `json:"loanTenure"`
	NumberOfOtherLoans int     `json:"numberOfOtherLoans"`
	Bankruptcy         bool    `json:"bankruptcy"`
}

// EligibilityResult is the evaluator's verdict.
type EligibilityResult struct {
	MaxLoanAmount float64 `json:"maxLoanAmount"`
	LoanTerms     string  `json:"loanTerms"`
}

// Eligibility is the stateless threshold rule over loan parameters. When the
// thresholds pass but the tenure is under five years, the requested amount is
// still granted while the terms report ineligibility; this mirrors the
// upstream rule exactly and is kept as-is.
func Eligibility(in EligibilityInput) EligibilityResult {
	out := EligibilityResult{MaxLoanAmount: 0, LoanTerms: "Not eligible"}

	if in.CreditScore >= 600 && in.AnnualIncome >= 20000 && in.YearsInJob >= 2 &&
		in.LoanTenure <= 30 && in.NumberOfOtherLoans <= 2 && !in.Bankruptcy {
		out.MaxLoanAmount = in.LoanAmount
		if in.LoanTenure >= 5 {
			out.LoanTerms = fmt.Sprintf("%d years", in.LoanTenure)
		} else {
			out.LoanTerms = "Not eligible for this loan tenure"
		}
	}

	return out
}
