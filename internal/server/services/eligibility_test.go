package services

import "testing"

func TestEligibility(t *testing.T) {
	tests := []struct {
		name string
		in   EligibilityInput
		want EligibilityResult
	}{
		{
			name: "all thresholds pass",
			in: EligibilityInput{
				LoanAmount:         5000,
				CreditScore:        650,
				AnnualIncome:       30000,
				YearsInJob:         3,
				LoanTenure:         10,
				NumberOfOtherLoans: 1,
			},
			want: EligibilityResult{MaxLoanAmount: 5000, LoanTerms: "10 years"},
		},
		{
			name: "credit score below threshold",
			in: EligibilityInput{
				LoanAmount:   5000,
				CreditScore:  500,
				AnnualIncome: 30000,
				YearsInJob:   3,
				LoanTenure:   10,
			},
			want: EligibilityResult{MaxLoanAmount: 0, LoanTerms: "Not eligible"},
		},
		{
			name: "short tenure still grants the amount",
			in: EligibilityInput{
				LoanAmount:   5000,
				CreditScore:  700,
				AnnualIncome: 50000,
				YearsInJob:   4,
				LoanTenure:   3,
			},
			want: EligibilityResult{MaxLoanAmount: 5000, LoanTerms: "Not eligible for this loan tenure"},
		},
		{
			name: "tenure at the five year boundary",
			in: EligibilityInput{
				LoanAmount:   1000,
				CreditScore:  600,
				AnnualIncome: 20000,
				YearsInJob:   2,
				LoanTenure:   5,
			},
			want: EligibilityResult{MaxLoanAmount: 1000, LoanTerms: "5 years"},
		},
		{
			name: "tenure over thirty years",
			in: EligibilityInput{
				LoanAmount:   5000,
				CreditScore:  700,
				AnnualIncome: 50000,
				YearsInJob:   4,
				LoanTenure:   31,
			},
			want: EligibilityResult{MaxLoanAmount: 0, LoanTerms: "Not eligible"},
		},
		{
			name: "bankruptcy disqualifies",
			in: EligibilityInput{
				LoanAmount:   5000,
				CreditScore:  700,
				AnnualIncome: 50000,
				YearsInJob:   4,
				LoanTenure:   10,
				Bankruptcy:   true,
			},
			want: EligibilityResult{MaxLoanAmount: 0, LoanTerms: "Not eligible"},
		},
		{
			name: "too many other loans",
			in: EligibilityInput{
				LoanAmount:         5000,
				CreditScore:        700,
				AnnualIncome:       50000,
				YearsInJob:         4,
				LoanTenure:         10,
				NumberOfOtherLoans: 3,
			},
			want: EligibilityResult{MaxLoanAmount: 0, LoanTerms: "Not eligible"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Eligibility(tt.in)
			if got != tt.want {
				t.Fatalf("Eligibility(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
