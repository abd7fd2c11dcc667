// Package slug generates URL-safe slugs from arbitrary strings with Unicode
// normalization.
//
// The package converts text to web-friendly identifiers by folding
// diacritics to ASCII, replacing everything else non-alphanumeric with a
// separator, and offering configurable length limits and collision-resistant
// suffixes.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/autoslug/pkg/slug"
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
//	s = slug.Make("Long Article Title",
//		slug.MaxLength(20),
//		slug.WithSuffix(6),
//	)
//	// Output: "long-article-x3k7f9"
//
// # Configuration Options
//
// MaxLength limits the slug length (rune-based); MinLength pads short slugs
// with a random suffix:
//
//	slug.Make("Very long title", slug.MaxLength(15))
//	// Output: "very-long-title"
//
//	slug.Make("hi", slug.MinLength(10))
//	// Output: "hi-a3f7k2" style padding
//
// Separator and Lowercase control the output shape:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product-Name"
//
// StripChars removes characters before processing and CustomReplace applies
// substitutions first:
//
//	slug.Make("Price: $100", slug.StripChars("$:"))
//	// Output: "price-100"
//
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// Output: "fish-and-chips"
//
// WithSuffix appends a random alphanumeric suffix, and ReservedSlugs forces
// one whenever the result matches a reserved word (case-insensitive):
//
//	slug.Make("admin", slug.ReservedSlugs("admin", "api"))
//	// Output: "admin-k7x2m4"
//
// # Unicode Support
//
// Common Latin diacritics normalize to ASCII equivalents:
//
//	slug.Make("München straße")    // "munchen-strase"
//	slug.Make("naïve résumé")      // "naive-resume"
//	slug.Make("Zażółć gęślą")      // "zazolc-gesla"
//
// Unsupported character sets (Cyrillic, CJK, emoji) are treated as
// separators.
//
// Make never returns an error: empty or all-special input yields an empty
// string, and crypto/rand failures fall back to time-based entropy.
package slug
