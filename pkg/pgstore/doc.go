// Package pgstore implements the autoslug Storage interface on top of
// pgx.
//
// The store issues a single EXISTS query per uniqueness probe:
//
//	SELECT EXISTS (SELECT 1 FROM "articles" WHERE "slug" = $1 AND "org_id" = $2 AND "id" <> $3)
//
// Record attribute names map to columns through a configurable mapping;
// the default converts Go names to snake_case (OrgID -> org_id).
//
// # Usage
//
//	pool, err := db.Open(ctx, os.Getenv("DATABASE_CONN_URL"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store, err := pgstore.New(pool, "articles",
//		pgstore.WithSoftDeleteColumn("deleted_at"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	field, _ := autoslug.New("Slug", autoslug.PopulateFrom("Title"))
//	_, err = field.Assign(ctx, store, article, autoslug.OpInsert)
//
// Because [Querier] is satisfied by both *pgxpool.Pool and pgx.Tx, the
// probe can run inside the same transaction as the insert so it sees rows
// written earlier in the transaction.
package pgstore
