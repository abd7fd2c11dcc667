package slug

import "strings"

// defaultSuffixLength is used for ReservedSlugs collisions and MinLength
// padding when no explicit suffix length was requested.
const defaultSuffixLength = 6

// Option configures a single Make call.
type Option func(*options)

type options struct {
	separator    string
	lowercase    bool
	maxLength    int
	minLength    int
	suffixLength int
	stripChars   string
	replacements map[string]string
	reserved     map[string]struct{}
}

func defaultOptions() *options {
	return &options{
		separator: "-",
		lowercase: true,
	}
}

func (o *options) isReserved(s string) bool {
	if len(o.reserved) == 0 {
		return false
	}
	_, ok := o.reserved[strings.ToLower(s)]
	return ok
}

// Separator sets the token separator. May be empty or multi-character.
// Default: "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Lowercase controls case folding of the output.
// Default: true.
func Lowercase(lowercase bool) Option {
	return func(o *options) {
		o.lowercase = lowercase
	}
}

// MaxLength limits the slug length in runes. Zero means unbounded.
// Default: 0.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = max(n, 0)
	}
}

// MinLength pads slugs shorter than n runes with a random suffix.
// Default: 0 (no padding).
func MinLength(n int) Option {
	return func(o *options) {
		o.minLength = max(n, 0)
	}
}

// StripChars removes the listed characters before slugification.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies string substitutions before slugification, longest
// key first.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length for
// collision resistance. Zero disables the suffix.
func WithSuffix(length int) Option {
	return func(o *options) {
		o.suffixLength = max(length, 0)
	}
}

// ReservedSlugs rejects the listed slugs (case-insensitive) by forcing a
// random suffix whenever the result matches one of them.
func ReservedSlugs(slugs ...string) Option {
	return func(o *options) {
		if o.reserved == nil {
			o.reserved = make(map[string]struct{}, len(slugs))
		}
		for _, s := range slugs {
			o.reserved[strings.ToLower(s)] = struct{}{}
		}
	}
}
