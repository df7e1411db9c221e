package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/dbx"
	"github.com/loangate/loangate/internal/server/models"
)

const uniqueViolation = "23505"

const profileColumns = `id, account_id, email, COALESCE(full_name, ''), COALESCE(age, 0),
	 COALESCE(phone, ''), COALESCE(address, ''), COALESCE(job_experience, ''),
	 COALESCE(annual_income, 0), COALESCE(loan_amount, 0), COALESCE(credit_score, 0),
	 loan_status, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateScaffold(ctx context.Context, accountID, email string) (*models.Profile, error) {

	query :=
		`INSERT INTO profiles (account_id, email)
		 VALUES ($1, $2)
		 RETURNING ` + profileColumns

	row := r.db.QueryRowContext(ctx, query, accountID, email)

	profile, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateProfile
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return profile, nil
}

func (r *PostgresRepository) GetByAccountID(ctx context.Context, accountID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return profile, nil
}

// Upsert is the single atomic find-or-create-and-merge statement the registry
// relies on under concurrency: the unique constraint on account_id prevents a
// second row, and COALESCE keeps stored values for fields the patch leaves
// unset. Whichever statement applies last wins for overlapping fields.
func (r *PostgresRepository) Upsert(ctx context.Context, accountID, email string, patch *models.ProfilePatch) (*models.Profile, error) {

	query :=
		`INSERT INTO profiles (account_id, email, full_name, age, phone, address, job_experience,
		                       annual_income, loan_amount, credit_score, loan_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, 'Pending'))
		 ON CONFLICT (account_id) DO UPDATE SET
		     full_name      = COALESCE(EXCLUDED.full_name, profiles.full_name),
		     age            = COALESCE(EXCLUDED.age, profiles.age),
		     phone          = COALESCE(EXCLUDED.phone, profiles.phone),
		     address        = COALESCE(EXCLUDED.address, profiles.address),
		     job_experience = COALESCE(EXCLUDED.job_experience, profiles.job_experience),
		     annual_income  = COALESCE(EXCLUDED.annual_income, profiles.annual_income),
		     loan_amount    = COALESCE(EXCLUDED.loan_amount, profiles.loan_amount),
		     credit_score   = COALESCE(EXCLUDED.credit_score, profiles.credit_score),
		     loan_status    = CASE WHEN $11 IS NULL THEN profiles.loan_status ELSE EXCLUDED.loan_status END,
		     updated_at     = now()
		 RETURNING ` + profileColumns

	var status *string
	if patch.LoanStatus != nil {
		s := string(*patch.LoanStatus)
		status = &s
	}

	row := r.db.QueryRowContext(ctx, query, accountID, email,
		patch.FullName, patch.Age, patch.Phone, patch.Address, patch.JobExperience,
		patch.AnnualIncome, patch.LoanAmount, patch.CreditScore, status)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return profile, nil
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	var status string

	err := row.Scan(&p.ID, &p.AccountID, &p.Email, &p.FullName, &p.Age,
		&p.Phone, &p.Address, &p.JobExperience,
		&p.AnnualIncome, &p.LoanAmount, &p.CreditScore,
		&status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.LoanStatus = models.LoanStatus(status)
	return p, nil
}
