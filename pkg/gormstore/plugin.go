package gormstore

import (
	"reflect"
	"sync"

	"gorm.io/gorm"

	"github.com/dmitrymomot/autoslug"
)

// Plugin wires autoslug fields into GORM's save lifecycle. Registered
// models get their slug assigned inline before create and update, the
// same place GORM runs its own hooks.
type Plugin struct {
	mu      sync.RWMutex
	fields  map[reflect.Type]*autoslug.Field
	derived map[reflect.Type]*autoslug.Field
}

// NewPlugin creates an empty plugin. Register models before or after
// installing it with db.Use; registration is safe for concurrent use.
func NewPlugin() *Plugin {
	return &Plugin{
		fields:  make(map[reflect.Type]*autoslug.Field),
		derived: make(map[reflect.Type]*autoslug.Field),
	}
}

// Register binds a field to a model type and returns the plugin for
// chaining.
func (p *Plugin) Register(model any, field *autoslug.Field) *Plugin {
	t := modelType(model)

	p.mu.Lock()
	p.fields[t] = field
	delete(p.derived, t)
	p.mu.Unlock()
	return p
}

// Name implements gorm.Plugin.
func (p *Plugin) Name() string { return "autoslug" }

// Initialize implements gorm.Plugin.
func (p *Plugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register("autoslug:create", p.beforeCreate); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").Register("autoslug:update", p.beforeUpdate)
}

func (p *Plugin) beforeCreate(db *gorm.DB) { p.assign(db, autoslug.OpInsert) }
func (p *Plugin) beforeUpdate(db *gorm.DB) { p.assign(db, autoslug.OpUpdate) }

func (p *Plugin) assign(db *gorm.DB, op autoslug.Op) {
	stmt := db.Statement
	if stmt.Schema == nil {
		return
	}
	field := p.fieldFor(stmt.Schema.ModelType, db)
	if field == nil {
		return
	}

	// A clean session keeps probe queries from inheriting the pending
	// statement's clauses.
	store := &Store{
		db:    db.Session(&gorm.Session{NewDB: true}),
		model: reflect.New(stmt.Schema.ModelType).Interface(),
	}

	rv := stmt.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// Batch creates run this callback once, before the multi-row
		// INSERT, so the database cannot see slugs assigned to earlier
		// elements of the same statement. The overlay records every
		// assignment and reports it as taken to later probes.
		bs := &batchStore{base: store}
		for i := range rv.Len() {
			if rec, ok := recordPointer(rv.Index(i)); ok {
				if _, err := field.Assign(stmt.Context, bs, rec, op); err != nil {
					_ = db.AddError(err)
					return
				}
				bs.commit()
			}
		}
	case reflect.Struct:
		if rec, ok := recordPointer(rv); ok {
			if _, err := field.Assign(stmt.Context, store, rec, op); err != nil {
				_ = db.AddError(err)
			}
		}
	}
}

// fieldFor returns the registered field for the model type, merged with
// the unique-together groups discovered from the model's composite unique
// indexes. The merged field is cached per type.
func (p *Plugin) fieldFor(t reflect.Type, db *gorm.DB) *autoslug.Field {
	p.mu.RLock()
	if f, ok := p.derived[t]; ok {
		p.mu.RUnlock()
		return f
	}
	base, ok := p.fields[t]
	p.mu.RUnlock()
	if !ok {
		return nil
	}

	f := base
	if db.Statement.Schema != nil {
		f = base.WithUniqueTogether(uniqueGroups(db.Statement.Schema, base.SlugField())...)
	}

	p.mu.Lock()
	p.derived[t] = f
	p.mu.Unlock()
	return f
}

func modelType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func recordPointer(v reflect.Value) (any, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		return v.Interface(), true
	}
	if !v.CanAddr() {
		return nil, false
	}
	return v.Addr().Interface(), true
}
