package autoslug

import "log/slog"

// Option configures a Field at construction time.
type Option func(*Field)

// PopulateFrom sets the ordered list of record attributes whose normalized
// values are joined into the base slug. Required.
func PopulateFrom(fields ...string) Option {
	return func(f *Field) {
		f.populateFrom = fields
	}
}

// Separator sets the character sequence placed between slug tokens and
// before numeric disambiguation suffixes.
// Default: "-".
func Separator(sep string) Option {
	return func(f *Field) {
		f.separator = sep
	}
}

// Overwrite regenerates the slug on every save instead of only on insert.
// Default: false.
func Overwrite(overwrite bool) Option {
	return func(f *Field) {
		f.overwrite = overwrite
	}
}

// Uppercase converts the finished slug to upper case.
// Default: false.
func Uppercase(uppercase bool) Option {
	return func(f *Field) {
		f.uppercase = uppercase
	}
}

// AllowDuplicates skips the uniqueness probe entirely; the base slug is
// assigned even when another record already carries it.
// Default: false.
func AllowDuplicates(allow bool) Option {
	return func(f *Field) {
		f.allowDuplicates = allow
	}
}

// MaxLength bounds the slug length in runes, including any numeric
// disambiguation suffix. Zero means unbounded.
// Default: 0.
func MaxLength(n int) Option {
	return func(f *Field) {
		f.maxLength = max(n, 0)
	}
}

// UniqueTogether declares jointly-unique attribute groups on top of any the
// record type reports through the [Constrained] interface.
func UniqueTogether(groups ...[]string) Option {
	return func(f *Field) {
		f.uniqueTogether = append(f.uniqueTogether, groups...)
	}
}

// WithSlugify replaces the text normalizer used for each source value.
// Default: [slug.Make].
func WithSlugify(fn SlugifyFunc) Option {
	return func(f *Field) {
		if fn != nil {
			f.slugify = fn
		}
	}
}

// WithLogger sets the logger for debug-level probe diagnostics.
// Default: discard.
func WithLogger(log *slog.Logger) Option {
	return func(f *Field) {
		if log != nil {
			f.log = log
		}
	}
}
