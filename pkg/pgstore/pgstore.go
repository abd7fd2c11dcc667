package pgstore

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier is the minimal query surface the store needs. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so slug probing can run inside the caller's
// transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements the autoslug Storage interface against a PostgreSQL
// table. Filter keys are record attribute names and resolve to columns via
// the configured mapping (snake_case by default).
type Store struct {
	q                Querier
	table            string
	pkColumn         string
	softDeleteColumn string
	overrides        map[string]string
	columnFn         func(string) string
}

// New builds a Store bound to a table.
func New(q Querier, table string, opts ...Option) (*Store, error) {
	if q == nil {
		return nil, ErrNilQuerier
	}
	if strings.TrimSpace(table) == "" {
		return nil, ErrMissingTable
	}

	s := &Store{
		q:        q,
		table:    table,
		pkColumn: "id",
		columnFn: SnakeCase,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Exists reports whether a row matches every attribute in filter, skipping
// soft-deleted rows when a soft-delete column is configured and the row
// identified by excludePK when it is non-nil.
func (s *Store) Exists(ctx context.Context, filter map[string]any, excludePK any) (bool, error) {
	query, args := s.buildQuery(filter, excludePK)

	var exists bool
	if err := s.q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, errors.Join(ErrQueryFailed, err)
	}
	return exists, nil
}

// buildQuery renders a deterministic EXISTS query; filter keys are sorted
// so the same filter always produces the same SQL for the statement cache.
func (s *Store) buildQuery(filter map[string]any, excludePK any) (string, []any) {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("SELECT EXISTS (SELECT 1 FROM ")
	b.WriteString(quoteIdent(s.table))

	args := make([]any, 0, len(keys)+1)
	written := 0
	and := func() {
		if written == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		written++
	}
	for _, k := range keys {
		and()
		args = append(args, filter[k])
		b.WriteString(quoteIdent(s.column(k)))
		b.WriteString(" = $")
		b.WriteString(strconv.Itoa(len(args)))
	}
	if s.softDeleteColumn != "" {
		and()
		b.WriteString(quoteIdent(s.softDeleteColumn))
		b.WriteString(" IS NULL")
	}
	if excludePK != nil {
		and()
		args = append(args, excludePK)
		b.WriteString(quoteIdent(s.pkColumn))
		b.WriteString(" <> $")
		b.WriteString(strconv.Itoa(len(args)))
	}

	b.WriteString(")")
	return b.String(), args
}

func (s *Store) column(attr string) string {
	if col, ok := s.overrides[attr]; ok {
		return col
	}
	return s.columnFn(attr)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// SnakeCase converts a Go attribute name to the conventional PostgreSQL
// column form: OrgID becomes org_id, URLPath becomes url_path.
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (!isUpper(runes[i-1]) || (i+1 < len(runes) && isLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
