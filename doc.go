// Package autoslug provides an auto-populated, optionally-unique slug field
// for Go persistence layers.
//
// A slug is a URL-safe identifier derived from human-readable text. The
// package binds a small deterministic algorithm - normalize the source
// fields, join them, then probe the persistence layer for a free candidate -
// to any ORM or query layer through two hooks: a text normalizer and a
// Storage existence check. Ready-made adapters for GORM and pgx live in
// pkg/gormstore and pkg/pgstore.
//
// # Quick Start
//
// Configure a Field once and invoke Assign from your save path:
//
//	field, err := autoslug.New("Slug",
//	    autoslug.PopulateFrom("Title"),
//	    autoslug.MaxLength(80),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	article := &Article{Title: "Hello World!"}
//	s, err := field.Assign(ctx, store, article, autoslug.OpInsert)
//	// article.Slug == "hello-world"
//
// A second article with the same title receives "hello-world-2", then
// "hello-world-3", and so on. After 100 attempts Assign gives up with
// [ErrMaxAttempts]; that many collisions signals a configuration or data
// problem, not a transient condition.
//
// # Records
//
// Records are plain struct pointers. Attributes are addressed by Go field
// name; the primary key is the field tagged `autoslug:"pk"` or, without the
// tag, one named ID. A zero-valued key marks the record as not yet
// persisted, so its own row is never counted as a collision once saved:
//
//	type Article struct {
//	    ID    int64 `autoslug:"pk"`
//	    Title string
//	    Slug  string
//	}
//
// # Update Semantics
//
// On OpUpdate the stored slug is kept as-is unless the field was built with
// Overwrite(true). This keeps published URLs stable by default.
//
// # Scoped Uniqueness
//
// Jointly-unique attribute groups scope the probe: when a group contains
// the slug attribute, the other members' current values become additional
// filter criteria, so two tenants can both own "getting-started":
//
//	field, _ := autoslug.New("Slug",
//	    autoslug.PopulateFrom("Title"),
//	    autoslug.UniqueTogether([]string{"OrgID", "Slug"}),
//	)
//
// Record types may declare the same through the [Constrained] interface,
// and the GORM adapter discovers groups from composite uniqueIndex tags.
//
// # Storage
//
// Storage is a single-method interface:
//
//	type Storage interface {
//	    Exists(ctx context.Context, filter map[string]any, excludePK any) (bool, error)
//	}
//
// Filter keys are record attribute names; each adapter maps them to its own
// column naming. Assign issues one existence query per candidate and takes
// no locks, so concurrent saves can race past the check - the database
// unique index stays the final arbiter.
//
// # Serialization
//
// Deconstruct re-emits the non-default configuration as a map, mirroring
// how migration frameworks serialize field definitions:
//
//	field.Deconstruct()
//	// map[populate_from:[Title] max_length:80]
package autoslug
