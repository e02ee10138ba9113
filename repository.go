package main

import (
	"strconv"
	"time"
)

// Record is one addressable entity inside a collection document. Every
// field in the data model is a string, so records stay schemaless the
// same way the documents on disk are.
type Record map[string]string

// newID returns the current time in milliseconds as a decimal string.
// Ids are assigned once at creation and never change afterwards; admin
// writes are assumed not to land within the same millisecond.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Collection addresses one list-shaped document by name. The fields list
// names every optional field of the record kind so that absent input is
// normalized to "" on write, never persisted as missing.
type Collection struct {
	store  *Store
	name   string
	fields []string
}

func NewCollection(store *Store, name string, fields ...string) *Collection {
	return &Collection{store: store, name: name, fields: fields}
}

// List returns the records in storage (insertion) order.
func (c *Collection) List() []Record {
	return Load(c.store, c.name, []Record{})
}

// Add appends a new record built from the given fields, with a fresh id
// and every known field defaulted to "", and persists the collection.
func (c *Collection) Add(fields Record) (Record, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	rec := Record{}
	for _, f := range c.fields {
		rec[f] = ""
	}
	for k, v := range fields {
		rec[k] = v
	}
	rec["id"] = newID()
	list := append(Load(c.store, c.name, []Record{}), rec)
	if err := Save(c.store, c.name, list); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateByID merges the given fields over the record with the matching
// id and persists the collection. Fields not present in the input keep
// their previous value; the id itself is never reassigned. Returns
// false without error when no record matches.
func (c *Collection) UpdateByID(id string, fields Record) (Record, bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	list := Load(c.store, c.name, []Record{})
	for i, rec := range list {
		if rec["id"] != id {
			continue
		}
		merged := Record{}
		for k, v := range rec {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}
		merged["id"] = id
		list[i] = merged
		if err := Save(c.store, c.name, list); err != nil {
			return nil, false, err
		}
		return merged, true, nil
	}
	return nil, false, nil
}

// RemoveByID drops the record with the matching id and persists the
// remainder. Removing an unknown id is a no-op.
func (c *Collection) RemoveByID(id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	list := Load(c.store, c.name, []Record{})
	kept := make([]Record, 0, len(list))
	for _, rec := range list {
		if rec["id"] != id {
			kept = append(kept, rec)
		}
	}
	return Save(c.store, c.name, kept)
}

// Singleton addresses a one-record document such as the home document.
type Singleton struct {
	store *Store
	name  string
	def   Record
}

func NewSingleton(store *Store, name string, def Record) *Singleton {
	return &Singleton{store: store, name: name, def: def}
}

func (s *Singleton) Get() Record {
	return Load(s.store, s.name, s.defaultRecord())
}

// SetField overwrites one field of the record and persists it.
func (s *Singleton) SetField(field, value string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	rec := Load(s.store, s.name, s.defaultRecord())
	rec[field] = value
	return Save(s.store, s.name, rec)
}

// defaultRecord copies def so callers never mutate the shared default.
func (s *Singleton) defaultRecord() Record {
	rec := Record{}
	for k, v := range s.def {
		rec[k] = v
	}
	return rec
}
