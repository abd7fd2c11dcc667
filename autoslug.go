package autoslug

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/autoslug/pkg/slug"
)

// maxUniqueAttempts caps the uniqueness probe. The base slug counts as the
// first attempt; numbered suffixes run from 2 up to, but not including, this
// value. Exhausting the budget is treated as a configuration or data anomaly
// and surfaces ErrMaxAttempts.
const maxUniqueAttempts = 100

const defaultSeparator = "-"

// SlugifyFunc normalizes a single source value into slug form. The default
// implementation is [slug.Make] from pkg/slug.
type SlugifyFunc func(string) string

// Op tells Assign whether the record is being inserted or updated. Updates
// keep their stored slug unless the field was configured with Overwrite.
type Op int

const (
	OpInsert Op = iota
	OpUpdate
)

// Storage is the existence-check collaborator. Exists reports whether a
// persisted record matches every attribute in filter, excluding the record
// identified by excludePK when it is non-nil. Filter keys are record
// attribute (Go field) names; adapters translate them to column names.
type Storage interface {
	Exists(ctx context.Context, filter map[string]any, excludePK any) (bool, error)
}

// Constrained is implemented by record types that declare jointly-unique
// attribute groups. Groups containing the slug attribute scope the
// uniqueness probe by the other members' current values.
type Constrained interface {
	UniqueTogether() [][]string
}

// Field is a configured auto-slug descriptor. A single Field is safe for
// concurrent use; all configuration is fixed at construction.
type Field struct {
	slugField       string
	populateFrom    []string
	separator       string
	overwrite       bool
	uppercase       bool
	allowDuplicates bool
	maxLength       int
	uniqueTogether  [][]string
	slugify         SlugifyFunc
	log             *slog.Logger

	// Both the configured separator and a literal "-" count as separator
	// characters, so output from any slugify function normalizes cleanly.
	reSepRun  *regexp.Regexp
	reSepTrim *regexp.Regexp
}

// New builds a Field that writes to the named slug attribute of a record.
// PopulateFrom is required; all other options have defaults matching the
// conventional slug behavior (separator "-", lowercase, unique).
func New(slugField string, opts ...Option) (*Field, error) {
	if strings.TrimSpace(slugField) == "" {
		return nil, ErrMissingSlugField
	}

	f := &Field{
		slugField: slugField,
		separator: defaultSeparator,
		slugify:   func(s string) string { return slug.Make(s) },
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	if len(f.populateFrom) == 0 {
		return nil, ErrMissingPopulateFrom
	}
	for _, name := range f.populateFrom {
		if strings.TrimSpace(name) == "" {
			return nil, ErrEmptyFieldName
		}
	}
	for _, group := range f.uniqueTogether {
		for _, name := range group {
			if strings.TrimSpace(name) == "" {
				return nil, ErrEmptyFieldName
			}
		}
	}

	f.compileStripPatterns()
	return f, nil
}

// WithUniqueTogether returns a copy of the field with extra jointly-unique
// groups merged in. Storage adapters use it to attach constraint metadata
// discovered from schema introspection without mutating the shared Field.
func (f *Field) WithUniqueTogether(groups ...[]string) *Field {
	if len(groups) == 0 {
		return f
	}
	clone := *f
	clone.uniqueTogether = make([][]string, 0, len(f.uniqueTogether)+len(groups))
	clone.uniqueTogether = append(clone.uniqueTogether, f.uniqueTogether...)
	clone.uniqueTogether = append(clone.uniqueTogether, groups...)
	return &clone
}

// SlugField returns the name of the record attribute the field writes to.
func (f *Field) SlugField() string { return f.slugField }

func (f *Field) compileStripPatterns() {
	sep := "-"
	if f.separator != "" && f.separator != "-" {
		sep = "(?:-|" + regexp.QuoteMeta(f.separator) + ")"
	}
	f.reSepRun = regexp.MustCompile(sep + "+")
	f.reSepTrim = regexp.MustCompile("^" + sep + "+|" + sep + "+$")
}

// slugStrip collapses runs of separator characters into a single configured
// separator and removes them from both ends.
func (f *Field) slugStrip(value string) string {
	value = f.reSepRun.ReplaceAllString(value, f.separator)
	return f.reSepTrim.ReplaceAllString(value, "")
}
