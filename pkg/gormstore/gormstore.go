package gormstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Store implements the autoslug Storage interface for a single GORM model.
// Filter keys are Go attribute names and resolve to columns through the
// model's parsed schema, so custom column tags and naming strategies are
// honored. Soft-deleted rows are excluded by GORM's default scope.
type Store struct {
	db    *gorm.DB
	model any
}

// New builds a Store for the given model. model is a struct or struct
// pointer of the persisted record type.
func New(db *gorm.DB, model any) (*Store, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if model == nil {
		return nil, ErrNilModel
	}
	return &Store{db: db, model: model}, nil
}

// Exists reports whether a record matches every attribute in filter,
// excluding the row identified by excludePK when it is non-nil.
func (s *Store) Exists(ctx context.Context, filter map[string]any, excludePK any) (bool, error) {
	sch, err := s.schema()
	if err != nil {
		return false, err
	}

	attrs := make([]string, 0, len(filter))
	for attr := range filter {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	q := s.db.WithContext(ctx).Model(s.model)
	for _, attr := range attrs {
		f := sch.LookUpField(attr)
		if f == nil {
			return false, errors.Join(ErrUnknownAttribute, fmt.Errorf("attribute %q on %s", attr, sch.Name))
		}
		q = q.Where(fmt.Sprintf("%s = ?", f.DBName), filter[attr])
	}
	if excludePK != nil {
		pk := sch.PrioritizedPrimaryField
		if pk == nil {
			return false, errors.Join(ErrNoPrimaryKey, fmt.Errorf("model %s", sch.Name))
		}
		q = q.Where(fmt.Sprintf("%s <> ?", pk.DBName), excludePK)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, errors.Join(ErrQueryFailed, err)
	}
	return count > 0, nil
}

func (s *Store) schema() (*schema.Schema, error) {
	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(s.model); err != nil {
		return nil, errors.Join(ErrSchemaParse, err)
	}
	return stmt.Schema, nil
}

// uniqueGroups extracts jointly-unique attribute groups from the model's
// composite unique indexes. Groups that do not involve the slug attribute
// are irrelevant to the probe and dropped; index names are sorted so
// discovery order is stable.
func uniqueGroups(sch *schema.Schema, slugAttr string) [][]string {
	indexes := sch.ParseIndexes()
	names := make([]string, 0, len(indexes))
	for name := range indexes {
		names = append(names, name)
	}
	sort.Strings(names)

	var groups [][]string
	for _, name := range names {
		ix := indexes[name]
		if ix.Class != "UNIQUE" || len(ix.Fields) < 2 {
			continue
		}
		group := make([]string, 0, len(ix.Fields))
		hasSlug := false
		for _, f := range ix.Fields {
			group = append(group, f.Name)
			if f.Name == slugAttr {
				hasSlug = true
			}
		}
		if hasSlug {
			groups = append(groups, group)
		}
	}
	return groups
}
