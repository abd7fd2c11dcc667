package pgstore

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuerier struct {
	sql    string
	args   []any
	exists bool
	err    error
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return fakeRow{exists: q.exists, err: q.err}
}

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.exists
	return nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil querier", func(t *testing.T) {
		t.Parallel()
		_, err := New(nil, "articles")
		assert.ErrorIs(t, err, ErrNilQuerier)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		_, err := New(&fakeQuerier{}, "  ")
		assert.ErrorIs(t, err, ErrMissingTable)
	})
}

func TestExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("single attribute", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{exists: true}
		s, err := New(q, "articles")
		require.NoError(t, err)

		taken, err := s.Exists(ctx, map[string]any{"Slug": "hello-world"}, nil)
		require.NoError(t, err)
		assert.True(t, taken)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "articles" WHERE "slug" = $1)`, q.sql)
		assert.Equal(t, []any{"hello-world"}, q.args)
	})

	t.Run("filter keys sorted for stable SQL", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{}
		s, err := New(q, "articles")
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{"Slug": "guide", "OrgID": int64(7)}, nil)
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "articles" WHERE "org_id" = $1 AND "slug" = $2)`, q.sql)
		assert.Equal(t, []any{int64(7), "guide"}, q.args)
	})

	t.Run("primary key exclusion", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{}
		s, err := New(q, "articles")
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{"Slug": "guide"}, int64(42))
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "articles" WHERE "slug" = $1 AND "id" <> $2)`, q.sql)
		assert.Equal(t, []any{"guide", int64(42)}, q.args)
	})

	t.Run("custom pk and soft delete column", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{}
		s, err := New(q, "articles",
			WithPKColumn("article_id"),
			WithSoftDeleteColumn("deleted_at"),
		)
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{"Slug": "guide"}, int64(42))
		require.NoError(t, err)
		assert.Equal(t,
			`SELECT EXISTS (SELECT 1 FROM "articles" WHERE "slug" = $1 AND "deleted_at" IS NULL AND "article_id" <> $2)`,
			q.sql)
	})

	t.Run("empty filter with soft delete only", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{}
		s, err := New(q, "articles", WithSoftDeleteColumn("deleted_at"))
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{}, nil)
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "articles" WHERE "deleted_at" IS NULL)`, q.sql)
	})

	t.Run("column override beats mapper", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{}
		s, err := New(q, "articles", WithColumn("Slug", "url_slug"))
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{"Slug": "guide"}, nil)
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "articles" WHERE "url_slug" = $1)`, q.sql)
	})

	t.Run("custom column mapper", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{}
		s, err := New(q, "articles", WithColumnMapper(func(attr string) string {
			return "f_" + SnakeCase(attr)
		}))
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{"Slug": "guide"}, nil)
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "articles" WHERE "f_slug" = $1)`, q.sql)
	})

	t.Run("query error wrapped", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("relation does not exist")
		q := &fakeQuerier{err: cause}
		s, err := New(q, "articles")
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{"Slug": "guide"}, nil)
		assert.ErrorIs(t, err, ErrQueryFailed)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("quotes embedded in identifiers doubled", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{}
		s, err := New(q, `weird"table`)
		require.NoError(t, err)

		_, err = s.Exists(ctx, map[string]any{"Slug": "x"}, nil)
		require.NoError(t, err)
		assert.Contains(t, q.sql, `"weird""table"`)
	})
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Title":     "title",
		"Slug":      "slug",
		"ID":        "id",
		"OrgID":     "org_id",
		"URLPath":   "url_path",
		"CreatedAt": "created_at",
		"HTMLBody":  "html_body",
		"lower":     "lower",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, SnakeCase(in))
		})
	}
}
