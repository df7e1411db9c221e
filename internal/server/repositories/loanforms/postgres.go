package loanforms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/dbx"
	"github.com/loangate/loangate/internal/server/models"
)

const formColumns = `id, application_id, email, COALESCE(loan_amount, 0), COALESCE(credit_score, 0),
	 COALESCE(annual_income, 0), COALESCE(monthly_debts, 0), COALESCE(house_status, ''),
	 COALESCE(years_in_job, 0), status, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, form *models.LoanForm) (*models.LoanForm, error) {

	query :=
		`INSERT INTO loan_forms (application_id, email, loan_amount, credit_score, annual_income,
		                         monthly_debts, house_status, years_in_job, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING ` + formColumns

	row := r.db.QueryRowContext(ctx, query,
		form.ApplicationID, form.Email, form.LoanAmount, form.CreditScore, form.AnnualIncome,
		form.MonthlyDebts, form.HouseStatus, form.YearsInJob, form.Status)

	created, err := scanForm(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return created, nil
}

func (r *PostgresRepository) GetByApplicationID(ctx context.Context, applicationID string) (*models.LoanForm, error) {
	query := `SELECT ` + formColumns + ` FROM loan_forms WHERE application_id = $1`

	form, err := scanForm(r.db.QueryRowContext(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return form, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, applicationID, status string) (*models.LoanForm, error) {
	query :=
		`UPDATE loan_forms SET status = $2, updated_at = now()
		 WHERE application_id = $1
		 RETURNING ` + formColumns

	form, err := scanForm(r.db.QueryRowContext(ctx, query, applicationID, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return form, nil
}

func scanForm(row *sql.Row) (*models.LoanForm, error) {
	f := &models.LoanForm{}

	err := row.Scan(&f.ID, &f.ApplicationID, &f.Email, &f.LoanAmount, &f.CreditScore,
		&f.AnnualIncome, &f.MonthlyDebts, &f.HouseStatus, &f.YearsInJob,
		&f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return f, nil
}
