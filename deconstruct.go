package autoslug

import "slices"

// Deconstruct re-emits the field configuration for migration and schema
// tooling. populate_from is always present; every other option appears only
// when it differs from its default, so serialized field definitions stay
// minimal and stable across versions.
func (f *Field) Deconstruct() map[string]any {
	out := map[string]any{
		"populate_from": slices.Clone(f.populateFrom),
	}
	if f.separator != defaultSeparator {
		out["separator"] = f.separator
	}
	if f.overwrite {
		out["overwrite"] = true
	}
	if f.uppercase {
		out["uppercase"] = true
	}
	if f.allowDuplicates {
		out["allow_duplicates"] = true
	}
	if f.maxLength > 0 {
		out["max_length"] = f.maxLength
	}
	if len(f.uniqueTogether) > 0 {
		groups := make([][]string, len(f.uniqueTogether))
		for i, g := range f.uniqueTogether {
			groups[i] = slices.Clone(g)
		}
		out["unique_together"] = groups
	}
	return out
}
