package autoslug

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Assign computes the slug for rec and writes it onto the record's slug
// attribute before returning it. rec must be a non-nil struct pointer.
//
// On OpUpdate without the Overwrite option the stored slug is returned
// untouched and no queries run. Otherwise the base slug is built from the
// populate_from attributes and, unless AllowDuplicates is set, probed
// against store until a free candidate is found: first the base itself,
// then base-2, base-3, and so on. The probe is scoped by every
// jointly-unique group containing the slug attribute and excludes the
// record's own primary key once persisted.
//
// Assign performs no locking; concurrent saves with the same base slug can
// both pass the existence check. The database unique index remains the
// final arbiter.
func (f *Field) Assign(ctx context.Context, store Storage, rec any, op Op) (string, error) {
	r, err := newRecord(rec)
	if err != nil {
		return "", err
	}

	if op == OpUpdate && !f.overwrite {
		return r.slug(f.slugField)
	}

	base, err := f.baseSlug(r)
	if err != nil {
		return "", err
	}

	if f.allowDuplicates {
		if err := r.setSlug(f.slugField, base); err != nil {
			return "", err
		}
		return base, nil
	}

	if store == nil {
		return "", ErrNilStorage
	}

	filter, err := f.constraintFilter(rec, r)
	if err != nil {
		return "", err
	}
	excludePK := r.pk()

	candidate := base
	for attempt := 1; attempt < maxUniqueAttempts; attempt++ {
		if candidate != "" {
			filter[f.slugField] = candidate
			taken, err := store.Exists(ctx, filter, excludePK)
			if err != nil {
				return "", errors.Join(ErrExistsCheckFailed, err)
			}
			if !taken {
				if err := r.setSlug(f.slugField, candidate); err != nil {
					return "", err
				}
				return candidate, nil
			}
			f.log.DebugContext(ctx, "slug candidate taken",
				"slug", candidate,
				"attempt", attempt,
			)
		}
		candidate = f.suffixed(base, attempt+1)
	}

	return "", errors.Join(ErrMaxAttempts, fmt.Errorf("base slug %q after %d attempts", base, maxUniqueAttempts))
}

// baseSlug joins the normalized populate_from values, enforces max length,
// strips separator runs, and applies uppercasing.
func (f *Field) baseSlug(r *record) (string, error) {
	parts := make([]string, 0, len(f.populateFrom))
	for _, name := range f.populateFrom {
		v, err := r.stringValue(name)
		if err != nil {
			return "", err
		}
		if v == "" {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, f.slugify(v))
	}

	base := strings.Join(parts, f.separator)
	if f.maxLength > 0 {
		base = truncateRunes(base, f.maxLength)
	}
	base = f.slugStrip(base)
	if f.uppercase {
		base = strings.ToUpper(base)
	}
	return base, nil
}

// suffixed appends the numeric disambiguation suffix, trimming the base so
// the candidate still fits maxLength. Stripping the joined result keeps the
// no-leading-separator invariant when the base collapses to nothing.
func (f *Field) suffixed(base string, n int) string {
	end := f.separator + strconv.Itoa(n)
	if f.maxLength > 0 && utf8.RuneCountInString(base)+utf8.RuneCountInString(end) > f.maxLength {
		keep := max(f.maxLength-utf8.RuneCountInString(end), 0)
		base = f.slugStrip(truncateRunes(base, keep))
	}
	return f.slugStrip(base + end)
}

// truncateRunes cuts s to at most n runes, never splitting a multi-byte
// sequence.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// constraintFilter collects the current values of every attribute that
// shares a jointly-unique group with the slug attribute. Groups come from
// the UniqueTogether option merged with the record's own Constrained
// declaration.
func (f *Field) constraintFilter(rec any, r *record) (map[string]any, error) {
	groups := f.uniqueTogether
	if c, ok := rec.(Constrained); ok {
		groups = append(slices.Clone(groups), c.UniqueTogether()...)
	}

	filter := make(map[string]any, len(groups)+1)
	for _, group := range groups {
		if !slices.Contains(group, f.slugField) {
			continue
		}
		for _, name := range group {
			if name == f.slugField {
				continue
			}
			v, err := r.value(name)
			if err != nil {
				return nil, err
			}
			filter[name] = v
		}
	}
	return filter, nil
}
