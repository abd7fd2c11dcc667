package autoslug

import (
	"errors"
	"fmt"
	"reflect"
)

// pkTag marks the primary-key attribute of a record struct. Without the tag
// a field named "ID" is assumed.
const pkTag = "pk"

// record wraps a struct pointer and resolves attributes by Go field name,
// including promoted fields from embedded structs.
type record struct {
	v reflect.Value // the struct value, addressable
}

func newRecord(rec any) (*record, error) {
	rv := reflect.ValueOf(rec)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, ErrInvalidRecord
	}
	return &record{v: rv.Elem()}, nil
}

func (r *record) field(name string) (reflect.Value, error) {
	fv := r.v.FieldByName(name)
	if !fv.IsValid() {
		return reflect.Value{}, errors.Join(ErrUnknownField, fmt.Errorf("field %q on %s", name, r.v.Type()))
	}
	return fv, nil
}

// stringValue renders an attribute for slugification. Non-string kinds are
// formatted with fmt so numeric and Stringer sources work as populate_from
// inputs.
func (r *record) stringValue(name string) (string, error) {
	fv, err := r.field(name)
	if err != nil {
		return "", err
	}
	if fv.Kind() == reflect.String {
		return fv.String(), nil
	}
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return "", nil
		}
		fv = fv.Elem()
	}
	return fmt.Sprint(fv.Interface()), nil
}

func (r *record) value(name string) (any, error) {
	fv, err := r.field(name)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

func (r *record) slug(name string) (string, error) {
	fv, err := r.field(name)
	if err != nil {
		return "", err
	}
	if fv.Kind() != reflect.String {
		return "", errors.Join(ErrUnknownField, fmt.Errorf("slug field %q on %s is not a string", name, r.v.Type()))
	}
	return fv.String(), nil
}

func (r *record) setSlug(name, value string) error {
	fv, err := r.field(name)
	if err != nil {
		return err
	}
	if fv.Kind() != reflect.String || !fv.CanSet() {
		return errors.Join(ErrUnknownField, fmt.Errorf("slug field %q on %s is not a settable string", name, r.v.Type()))
	}
	fv.SetString(value)
	return nil
}

// pk returns the primary-key value, or nil when the record has not been
// persisted yet (zero-valued key). The key attribute is the struct field
// tagged `autoslug:"pk"`, falling back to one named "ID".
func (r *record) pk() any {
	var fv reflect.Value
	for _, sf := range reflect.VisibleFields(r.v.Type()) {
		if sf.Tag.Get("autoslug") == pkTag {
			fv = r.v.FieldByIndex(sf.Index)
			break
		}
	}
	if !fv.IsValid() {
		fv = r.v.FieldByName("ID")
	}
	if !fv.IsValid() || fv.IsZero() {
		return nil
	}
	return fv.Interface()
}
