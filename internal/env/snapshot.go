package env

import (
	"maps"
	"os"
	"slices"

	"github.com/unrss/shenv/internal/value"
)

// Snapshot is a point-in-time copy of an environment with every value
// already classified. It is never modified after construction, so it can be
// shared between goroutines without locking.
//
// Lookups of names that were not present never fail; they yield an Absent
// value. A nil *Snapshot behaves like an empty one.
type Snapshot struct {
	raw     Env
	values  map[string]value.Value
	rawMode bool
}

// Option configures snapshot construction.
type Option func(*options)

type options struct {
	raw bool
}

// WithRaw stores every value verbatim as a string instead of classifying it.
func WithRaw() Option {
	return func(o *options) { o.raw = true }
}

// WithRawMode is WithRaw controlled by a flag.
func WithRawMode(raw bool) Option {
	return func(o *options) { o.raw = raw }
}

// New builds a snapshot of e. The map is copied; later changes to e are not
// observed.
func New(e Env, opts ...Option) *Snapshot {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Snapshot{
		raw:     make(Env, len(e)),
		values:  make(map[string]value.Value, len(e)),
		rawMode: o.raw,
	}
	for key, raw := range e {
		s.raw[key] = raw
		if o.raw {
			s.values[key] = value.Text(raw)
		} else {
			s.values[key] = value.ClassifyForKey(key, raw)
		}
	}
	return s
}

// FromProcess snapshots the current process environment.
func FromProcess(opts ...Option) *Snapshot {
	return New(FromGoEnv(os.Environ()), opts...)
}

// Lookup returns the value of name and whether name was present.
func (s *Snapshot) Lookup(name string) (value.Value, bool) {
	if s == nil {
		return value.Value{}, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Get returns the value of name, or an Absent value when name was not present.
func (s *Snapshot) Get(name string) value.Value {
	v, _ := s.Lookup(name)
	return v
}

// Has reports whether name was present, including with an empty value.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Raw returns the unclassified text of name.
func (s *Snapshot) Raw(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	raw, ok := s.raw[name]
	return raw, ok
}

// IsRaw reports whether the snapshot was built without classification.
func (s *Snapshot) IsRaw() bool {
	return s != nil && s.rawMode
}

// Len returns the number of variables in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Names returns the variable names in sorted order.
func (s *Snapshot) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Entry is a single variable of a snapshot.
type Entry struct {
	Name  string
	Raw   string
	Value value.Value
}

// Entries returns every variable sorted by name.
func (s *Snapshot) Entries() []Entry {
	names := s.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Name:  name,
			Raw:   s.raw[name],
			Value: s.values[name],
		})
	}
	return entries
}

// Env returns a copy of the raw environment the snapshot was built from.
func (s *Snapshot) Env() Env {
	if s == nil {
		return Env{}
	}
	return s.raw.Copy()
}
