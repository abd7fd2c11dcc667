package pgstore

// Option configures a Store.
type Option func(*Store)

// WithPKColumn sets the primary-key column used for self-exclusion.
// Default: "id".
func WithPKColumn(column string) Option {
	return func(s *Store) {
		s.pkColumn = column
	}
}

// WithSoftDeleteColumn makes the existence check ignore soft-deleted rows
// by requiring the column to be NULL.
// Default: none.
func WithSoftDeleteColumn(column string) Option {
	return func(s *Store) {
		s.softDeleteColumn = column
	}
}

// WithColumn pins a single attribute to an explicit column name,
// overriding the column mapper.
func WithColumn(attr, column string) Option {
	return func(s *Store) {
		if s.overrides == nil {
			s.overrides = make(map[string]string)
		}
		s.overrides[attr] = column
	}
}

// WithColumnMapper replaces the attribute-to-column mapping.
// Default: [SnakeCase].
func WithColumnMapper(fn func(string) string) Option {
	return func(s *Store) {
		if fn != nil {
			s.columnFn = fn
		}
	}
}
