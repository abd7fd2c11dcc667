package gormstore

import (
	"context"
	"maps"
	"reflect"

	"github.com/dmitrymomot/autoslug"
)

// batchStore overlays a Storage with the slugs already handed out earlier
// in the same statement. The probe filter carries the candidate slug plus
// its unique-together scope, so matching a recorded filter means the two
// records would collide once written.
type batchStore struct {
	base     autoslug.Storage
	assigned []map[string]any
	pending  map[string]any
}

func (s *batchStore) Exists(ctx context.Context, filter map[string]any, excludePK any) (bool, error) {
	s.pending = nil
	for _, prev := range s.assigned {
		if sameFilter(prev, filter) {
			return true, nil
		}
	}
	taken, err := s.base.Exists(ctx, filter, excludePK)
	if err != nil || taken {
		return taken, err
	}
	// The probe stops at the first free candidate, so the filter of the
	// last negative answer is the one the record keeps.
	s.pending = maps.Clone(filter)
	return false, nil
}

// commit records the filter of the last successful probe so subsequent
// batch elements see it as taken.
func (s *batchStore) commit() {
	if s.pending != nil {
		s.assigned = append(s.assigned, s.pending)
		s.pending = nil
	}
}

func sameFilter(prev, filter map[string]any) bool {
	if len(prev) != len(filter) {
		return false
	}
	for k, v := range filter {
		pv, ok := prev[k]
		if !ok || !reflect.DeepEqual(pv, v) {
			return false
		}
	}
	return true
}
