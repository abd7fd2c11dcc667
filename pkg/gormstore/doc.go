// Package gormstore binds autoslug to GORM: a Storage implementation over
// *gorm.DB and a gorm.Plugin that assigns slugs inside the save lifecycle.
//
// # Plugin
//
// Register a model with its field and install the plugin; every Create and
// Save then populates the slug automatically:
//
//	field, err := autoslug.New("Slug",
//		autoslug.PopulateFrom("Title"),
//		autoslug.MaxLength(80),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := db.Use(gormstore.NewPlugin().Register(&Article{}, field)); err != nil {
//		log.Fatal(err)
//	}
//
//	db.Create(&Article{Title: "Hello World!"})
//	// article.Slug == "hello-world"
//
// Updates keep the stored slug unless the field was configured with
// autoslug.Overwrite(true).
//
// # Scoped Uniqueness
//
// Composite unique indexes on the model become unique-together groups
// automatically, so a model declared as
//
//	type Project struct {
//		ID    uuid.UUID `gorm:"primaryKey" autoslug:"pk"`
//		OrgID uuid.UUID `gorm:"uniqueIndex:idx_org_slug"`
//		Name  string
//		Slug  string    `gorm:"uniqueIndex:idx_org_slug"`
//	}
//
// probes uniqueness per organization: two organizations can both own the
// slug "getting-started".
//
// # Standalone Store
//
// The Store can also be used without the plugin, wherever an
// autoslug.Storage is expected:
//
//	store, err := gormstore.New(db, &Article{})
//	s, err := field.Assign(ctx, store, article, autoslug.OpInsert)
//
// Existence checks run through GORM's default scopes, so soft-deleted rows
// do not count as collisions.
package gormstore
