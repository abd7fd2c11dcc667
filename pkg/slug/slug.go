package slug

import (
	"crypto/rand"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	suffixLower = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixMixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Make converts s into a URL-safe slug. It never fails: unusable input
// produces an empty string (or a bare random suffix when one is requested).
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s = applyReplacements(s, o.replacements)
	if o.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}
	s = foldDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			if o.lowercase {
				r += 'a' - 'A'
			}
		default:
			// Everything else separates tokens; runs collapse and the
			// result never starts with a separator.
			if b.Len() > 0 {
				pendingSep = true
			}
			continue
		}
		if pendingSep {
			b.WriteString(o.separator)
			pendingSep = false
		}
		b.WriteRune(r)
	}
	result := b.String()

	suffixLen := o.suffixLength
	if suffixLen <= 0 && o.isReserved(result) {
		suffixLen = defaultSuffixLength
	}

	if suffixLen > 0 {
		result = joinSuffix(result, generateSuffix(suffixLen, o.lowercase), o)
	} else if o.maxLength > 0 && runeLen(result) > o.maxLength {
		result = trimSeparatorSuffix(truncate(result, o.maxLength), o.separator)
	}

	if o.minLength > 0 && runeLen(result) < o.minLength {
		result = padSuffix(result, generateSuffix(defaultSuffixLength, o.lowercase), o)
	}

	return result
}

// applyReplacements runs the custom substitutions longest-key-first so
// compound keys like "C++" win over their substrings.
func applyReplacements(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		s = strings.ReplaceAll(s, k, replacements[k])
	}
	return s
}

// foldTable covers Latin runes that NFD cannot decompose into base letter
// plus combining marks.
var foldTable = map[rune]string{
	'ß': "s", 'ẞ': "S",
	'æ': "a", 'Æ': "A",
	'œ': "o", 'Œ': "O",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "t", 'Þ': "T",
	'ł': "l", 'Ł': "L",
}

func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if folded, ok := foldTable[r]; ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// joinSuffix appends a requested random suffix, shrinking the base so the
// full suffix survives a MaxLength limit. When even the bare suffix does
// not fit, the suffix itself is truncated and the base dropped.
func joinSuffix(base, suffix string, o *options) string {
	sep := o.separator
	if base == "" {
		sep = ""
	}
	if o.maxLength <= 0 {
		return base + sep + suffix
	}

	avail := o.maxLength - runeLen(o.separator) - runeLen(suffix)
	if base == "" || avail < 1 {
		if runeLen(suffix) > o.maxLength {
			suffix = truncate(suffix, o.maxLength)
		}
		return suffix
	}
	if runeLen(base) > avail {
		base = trimSeparatorSuffix(truncate(base, avail), o.separator)
	}
	return base + o.separator + suffix
}

// padSuffix appends the MinLength padding, truncating the padding rather
// than the base when MaxLength leaves less room.
func padSuffix(base, pad string, o *options) string {
	sep := o.separator
	if base == "" {
		sep = ""
	}
	if o.maxLength > 0 {
		avail := o.maxLength - runeLen(base) - runeLen(sep)
		if avail < 1 {
			return base
		}
		if runeLen(pad) > avail {
			pad = truncate(pad, avail)
		}
	}
	return base + sep + pad
}

func generateSuffix(n int, lowercase bool) string {
	if n <= 0 {
		return ""
	}
	alphabet := suffixLower
	if !lowercase {
		alphabet = suffixMixed
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// Fallback: time-based entropy (degraded but functional).
		seed := uint64(time.Now().UnixNano())
		for i := range buf {
			seed = seed*6364136223846793005 + 1442695040888963407
			buf[i] = byte(seed >> 33)
		}
	}

	out := make([]byte, n)
	for i, c := range buf {
		out[i] = alphabet[int(c)%len(alphabet)]
	}
	return string(out)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func trimSeparatorSuffix(s, sep string) string {
	if sep == "" {
		return s
	}
	for strings.HasSuffix(s, sep) {
		s = strings.TrimSuffix(s, sep)
	}
	return s
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
