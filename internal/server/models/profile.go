package models

import "time"

// LoanStatus enumerates the state of an applicant's loan request.
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "Pending"
	LoanStatusApproved LoanStatus = "Approved"
	LoanStatusRejected LoanStatus = "Rejected"
)

// Profile holds the applicant's personal and financial data. Profiles are
// keyed by the owning account's immutable id (unique, at most one per
// account); Email is a denormalized snapshot kept for lookups only.
type Profile struct {
	ID            string
	AccountID     string
	Email         string
	FullName      string
	Age           int
	Phone         string
	Address       string
	JobExperience string
	AnnualIncome  float64
	LoanAmount    float64
	CreditScore   int
	LoanStatus    LoanStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched by an upsert; set fields overwrite the stored values.
type ProfilePatch struct {
	FullName      *string
	Age           *int
	Phone         *string
	Address       *string
	JobExperience *string
	AnnualIncome  *float64
	LoanAmount    *float64
	CreditScore   *int
	LoanStatus    *LoanStatus
}

// Empty reports whether the patch sets no fields at all.
func (p *ProfilePatch) Empty() bool {
	return p.FullName == nil && p.Age == nil && p.Phone == nil &&
		p.Address == nil && p.JobExperience == nil && p.AnnualIncome == nil &&
		p.LoanAmount == nil && p.CreditScore == nil && p.LoanStatus == nil
}
