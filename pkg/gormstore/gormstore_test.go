package gormstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/gorm/utils/tests"

	"github.com/dmitrymomot/autoslug"
)

type project struct {
	ID     uint   `gorm:"primarykey"`
	OrgID  uint   `gorm:"uniqueIndex:idx_project_org_slug"`
	Slug   string `gorm:"uniqueIndex:idx_project_org_slug"`
	Region string `gorm:"uniqueIndex:idx_project_region_name"`
	Name   string `gorm:"uniqueIndex:idx_project_region_name"`
	Code   string `gorm:"uniqueIndex"`
}

type plainPost struct {
	ID    uint `gorm:"primarykey"`
	Title string
	Slug  string
}

func parseSchema(t *testing.T, model any) *schema.Schema {
	t.Helper()
	sch, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return sch
}

func newDummyDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil db", func(t *testing.T) {
		t.Parallel()
		_, err := New(nil, &project{})
		assert.ErrorIs(t, err, ErrNilDB)
	})

	t.Run("nil model", func(t *testing.T) {
		t.Parallel()
		_, err := New(newDummyDB(t), nil)
		assert.ErrorIs(t, err, ErrNilModel)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		s, err := New(newDummyDB(t), &project{})
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}

func TestExistsUnknownAttribute(t *testing.T) {
	t.Parallel()

	s, err := New(newDummyDB(t), &project{})
	require.NoError(t, err)

	_, err = s.Exists(context.Background(), map[string]any{"Nope": 1}, nil)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestUniqueGroups(t *testing.T) {
	t.Parallel()

	t.Run("composite index containing slug", func(t *testing.T) {
		t.Parallel()
		sch := parseSchema(t, &project{})

		groups := uniqueGroups(sch, "Slug")
		require.Len(t, groups, 1, "single-column and slug-free indexes are dropped")
		assert.Equal(t, []string{"OrgID", "Slug"}, groups[0])
	})

	t.Run("slug not in any composite index", func(t *testing.T) {
		t.Parallel()
		sch := parseSchema(t, &project{})

		assert.Empty(t, uniqueGroups(sch, "Code"))
	})

	t.Run("model without indexes", func(t *testing.T) {
		t.Parallel()
		sch := parseSchema(t, &plainPost{})

		assert.Empty(t, uniqueGroups(sch, "Slug"))
	})
}

func TestPluginRegister(t *testing.T) {
	t.Parallel()

	field, err := autoslug.New("Slug", autoslug.PopulateFrom("Name"))
	require.NoError(t, err)

	p := NewPlugin()
	assert.Same(t, p, p.Register(&project{}, field), "Register chains")
	assert.Equal(t, "autoslug", p.Name())

	// Pointer and value registrations address the same model type.
	other, err := autoslug.New("Slug", autoslug.PopulateFrom("Region"))
	require.NoError(t, err)
	p.Register(project{}, other)
	assert.Same(t, other, p.fields[modelType(&project{})])
}

func TestPluginInitialize(t *testing.T) {
	t.Parallel()

	db := newDummyDB(t)
	p := NewPlugin()
	require.NoError(t, db.Use(p))

	assert.NotNil(t, db.Callback().Create().Get("autoslug:create"))
	assert.NotNil(t, db.Callback().Update().Get("autoslug:update"))
}

// emptyStorage reports every candidate as free, standing in for a table
// the pending batch has not been written to yet.
type emptyStorage struct{}

func (emptyStorage) Exists(context.Context, map[string]any, any) (bool, error) {
	return false, nil
}

type note struct {
	ID      uint
	SpaceID uint
	Title   string
	Slug    string
}

func TestBatchStoreOverlay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	field, err := autoslug.New("Slug",
		autoslug.PopulateFrom("Title"),
		autoslug.UniqueTogether([]string{"SpaceID", "Slug"}),
	)
	require.NoError(t, err)

	assignAll := func(t *testing.T, recs []*note) []string {
		t.Helper()
		bs := &batchStore{base: emptyStorage{}}
		slugs := make([]string, 0, len(recs))
		for _, rec := range recs {
			s, err := field.Assign(ctx, bs, rec, autoslug.OpInsert)
			require.NoError(t, err)
			bs.commit()
			slugs = append(slugs, s)
		}
		return slugs
	}

	t.Run("duplicates inside one batch get suffixes", func(t *testing.T) {
		t.Parallel()
		slugs := assignAll(t, []*note{
			{SpaceID: 1, Title: "Release Notes"},
			{SpaceID: 1, Title: "Release Notes"},
			{SpaceID: 1, Title: "Release Notes"},
		})
		assert.Equal(t, []string{"release-notes", "release-notes-2", "release-notes-3"}, slugs)
	})

	t.Run("scope separates batch elements", func(t *testing.T) {
		t.Parallel()
		slugs := assignAll(t, []*note{
			{SpaceID: 1, Title: "Release Notes"},
			{SpaceID: 2, Title: "Release Notes"},
		})
		assert.Equal(t, []string{"release-notes", "release-notes"}, slugs,
			"different scopes never collide within a batch")
	})

	t.Run("distinct titles untouched", func(t *testing.T) {
		t.Parallel()
		slugs := assignAll(t, []*note{
			{SpaceID: 1, Title: "Alpha"},
			{SpaceID: 1, Title: "Beta"},
		})
		assert.Equal(t, []string{"alpha", "beta"}, slugs)
	})
}

func TestPluginFieldFor(t *testing.T) {
	t.Parallel()

	field, err := autoslug.New("Slug", autoslug.PopulateFrom("Name"))
	require.NoError(t, err)

	p := NewPlugin().Register(&project{}, field)

	db := newDummyDB(t)
	require.NoError(t, db.Statement.Parse(&project{}))

	t.Run("unregistered model", func(t *testing.T) {
		assert.Nil(t, p.fieldFor(modelType(&plainPost{}), db))
	})

	t.Run("merges discovered unique groups", func(t *testing.T) {
		got := p.fieldFor(modelType(&project{}), db)
		require.NotNil(t, got)
		assert.NotSame(t, field, got, "schema discovery derives a scoped copy")
	})

	t.Run("derived field is cached", func(t *testing.T) {
		first := p.fieldFor(modelType(&project{}), db)
		second := p.fieldFor(modelType(&project{}), db)
		assert.Same(t, first, second)
	})
}
