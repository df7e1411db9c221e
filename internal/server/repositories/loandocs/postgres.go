package loandocs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/loangate/loangate/internal/common"
	"github.com/loangate/loangate/internal/dbx"
	"github.com/loangate/loangate/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, docs *models.LoanDocuments) (*models.LoanDocuments, error) {

	query :=
		`INSERT INTO loan_documents (application_id, email, id_card_key, address_proof_key, bank_statements_key)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		docs.ApplicationID, docs.Email, docs.IDCardKey, docs.AddressProofKey, docs.BankStatementsKey).
		Scan(&docs.ID, &docs.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return docs, nil
}

func (r *PostgresRepository) GetByApplicationID(ctx context.Context, applicationID string) (*models.LoanDocuments, error) {
	query :=
		`SELECT id, application_id, email, id_card_key, address_proof_key, bank_statements_key, created_at
		 FROM loan_documents
		 WHERE application_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1
		 `

	d := &models.LoanDocuments{}
	err := r.db.QueryRowContext(ctx, query, applicationID).
		Scan(&d.ID, &d.ApplicationID, &d.Email, &d.IDCardKey, &d.AddressProofKey, &d.BankStatementsKey, &d.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return d, nil
}
