package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/premiafi/finance-terms/internal/domain"

	"github.com/jmoiron/sqlx"
)

// SortColumns maps the legitimate sort field names to their SQL column
// expressions. Anything not present here must never reach an ORDER BY.
var SortColumns = map[string]string{
	"id":                `id`,
	"insurancePolicies": `"insurancePolicies"`,
	"downpayment":       `downpayment`,
	"dueDate":           `"dueDate"`,
	"amountFinanced":    `"amountFinanced"`,
	"status":            `status`,
}

const selectColumns = `id, "insurancePolicies", downpayment, "dueDate", "amountFinanced", status`

type financeTermRepository struct {
	db *sqlx.DB
}

func NewFinanceTermRepository(db *sqlx.DB) FinanceTermRepository {
	return &financeTermRepository{db: db}
}

func (r *financeTermRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS "FinanceTerms" (
			id BIGSERIAL PRIMARY KEY,
			"insurancePolicies" TEXT,
			downpayment DOUBLE PRECISION,
			"dueDate" TEXT,
			"amountFinanced" DOUBLE PRECISION,
			status TEXT
		)
	`

	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *financeTermRepository) Create(ctx context.Context, term *domain.FinanceTerm) error {
	query := `
		INSERT INTO "FinanceTerms" ("insurancePolicies", downpayment, "dueDate", "amountFinanced", status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.GetContext(ctx, &term.ID, query,
		term.InsurancePolicies,
		term.Downpayment,
		term.DueDate,
		term.AmountFinanced,
		term.Status,
	)
}

func (r *financeTermRepository) GetByID(ctx context.Context, id int64) (*domain.FinanceTerm, error) {
	query := `SELECT ` + selectColumns + ` FROM "FinanceTerms" WHERE id = $1`

	var term domain.FinanceTerm
	err := r.db.GetContext(ctx, &term, query, id)
	if err != nil {
		return nil, err
	}

	return &term, nil
}

func (r *financeTermRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	query := `UPDATE "FinanceTerms" SET status = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *financeTermRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.FinanceTerm, error) {
	var (
		clauses []string
		args    []interface{}
	)

	if filter.Downpayment != nil {
		switch filter.Downpayment.Op {
		case ">", "<", "=":
		default:
			return nil, fmt.Errorf("unsupported comparison operator: %q", filter.Downpayment.Op)
		}
		args = append(args, filter.Downpayment.Value)
		clauses = append(clauses, fmt.Sprintf("downpayment %s $%d", filter.Downpayment.Op, len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + selectColumns + ` FROM "FinanceTerms"`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	if filter.Sort != nil {
		column, ok := SortColumns[filter.Sort.Field]
		if !ok {
			return nil, fmt.Errorf("unsortable field: %s", filter.Sort.Field)
		}
		query += " ORDER BY " + column
		if filter.Sort.Desc {
			query += " DESC"
		} else {
			query += " ASC"
		}
	} else {
		// Insertion order; the serial id is monotonic
		query += " ORDER BY id ASC"
	}

	terms := []*domain.FinanceTerm{}
	if err := r.db.SelectContext(ctx, &terms, query, args...); err != nil {
		return nil, err
	}

	return terms, nil
}

func (r *financeTermRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query := `SELECT status, COUNT(*) AS count FROM "FinanceTerms" GROUP BY status`

	rows := []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *financeTermRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM "FinanceTerms"`)
	return err
}
