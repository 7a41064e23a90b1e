// Package lead implements the operator inbox repository using PostgreSQL.
// Rows are insert-only and keyed by the lead's external id.
package lead

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/lead-intake/internal/adapter/postgres"
	"github.com/heartmarshall/lead-intake/internal/domain"
)

const table = "leads"

var (
	psql    = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns = []string{"id", "received_at", "name", "phone", "message", "source", "meta", "created_at"}
)

// Repo provides inbox lead persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new inbox lead repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// meta is the JSONB column: provenance and context tags.
type meta struct {
	ClientIP      string  `json:"client_ip,omitempty"`
	UserAgent     string  `json:"user_agent,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	CategoryTitle *string `json:"category_title,omitempty"`
	IssueTitle    *string `json:"issue_title,omitempty"`
}

// Insert stores l unless a row with the same id exists.
// Reports whether a new row was written.
func (r *Repo) Insert(ctx context.Context, l domain.Lead) (bool, error) {
	m, err := json.Marshal(meta{
		ClientIP:      l.ClientIP,
		UserAgent:     l.UserAgent,
		CategoryID:    l.CategoryID,
		CategoryTitle: l.CategoryTitle,
		IssueTitle:    l.IssueTitle,
	})
	if err != nil {
		return false, fmt.Errorf("marshal lead meta: %w", err)
	}

	sql, args, err := psql.Insert(table).
		Columns("id", "received_at", "name", "phone", "message", "source", "meta").
		Values(l.ExternalID, l.ReceivedAt, l.Name, l.Phone, l.Message, l.Source, m).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert lead: %w", err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "lead", l.ExternalID)
	}

	return tag.RowsAffected() == 1, nil
}

// List returns leads ordered by received_at DESC with pagination, plus the
// total row count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.InboxLead, int, error) {
	var total int
	countSQL, _, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count leads: %w", err)
	}
	if err := r.q.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	sql, args, err := psql.Select(columns...).
		From(table).
		OrderBy("received_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list leads: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}

	leads, err := pgx.CollectRows(rows, scanLead)
	if err != nil {
		return nil, 0, fmt.Errorf("scan leads: %w", err)
	}

	return leads, total, nil
}

func scanLead(row pgx.CollectableRow) (domain.InboxLead, error) {
	var (
		l       domain.InboxLead
		rawMeta []byte
	)
	err := row.Scan(&l.ExternalID, &l.ReceivedAt, &l.Name, &l.Phone, &l.Message, &l.Source, &rawMeta, &l.CreatedAt)
	if err != nil {
		return l, err
	}

	var m meta
	if len(rawMeta) > 0 {
		if err := json.Unmarshal(rawMeta, &m); err != nil {
			return l, fmt.Errorf("decode meta of lead %s: %w", l.ExternalID, err)
		}
	}
	l.ClientIP = m.ClientIP
	l.UserAgent = m.UserAgent
	l.CategoryID = m.CategoryID
	l.CategoryTitle = m.CategoryTitle
	l.IssueTitle = m.IssueTitle
	l.ReceivedAt = l.ReceivedAt.UTC()

	return l, nil
}
