package models

import "time"

// LoanForm is a loan application record. ApplicationID is the shared
// identifier a LoanDocuments bundle may reference; the relation is weak, so
// either side can exist without the other.
type LoanForm struct {
	ID            string
	ApplicationID string
	Email         string
	LoanAmount    float64
	CreditScore   int
	AnnualIncome  float64
	MonthlyDebts  float64
	HouseStatus   string
	YearsInJob    int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LoanDocuments records the storage keys of a submitted document bundle.
// The files themselves live in the object store; only keys are persisted.
type LoanDocuments struct {
	ID                string
	ApplicationID     string
	Email             string
	IDCardKey         string
	AddressProofKey   string
	BankStatementsKey string
	CreatedAt         time.Time
}
