package ast

// Entry represents a single key-value pair within a profile.
type Entry struct {
	Key      string   // Canonical key (normalized at parse time)
	Value    string   // Value with original casing preserved
	Location Location // Source location of the declaring line
}

// Profile represents a named section of a configuration file.
// Entries preserve insertion order; keys are unique within a profile.
// The index map backs constant-time lookup over the ordered entry slice.
type Profile struct {
	Name     string   // Canonical profile name
	Location Location // Source location of the first declaring header

	entries []*Entry
	index   map[string]int
}

// NewProfile creates an empty profile with the given canonical name.
func NewProfile(name string, loc Location) *Profile {
	return &Profile{
		Name:     name,
		Location: loc,
		index:    make(map[string]int),
	}
}

// Append adds a key-value entry to the profile, preserving insertion order.
// It returns false if the key is already present; the existing value is
// never overwritten.
func (p *Profile) Append(key, value string, loc Location) bool {
	if _, ok := p.index[key]; ok {
		return false
	}
	p.index[key] = len(p.entries)
	p.entries = append(p.entries, &Entry{Key: key, Value: value, Location: loc})
	return true
}

// Get returns the value for the given key and whether it exists.
func (p *Profile) Get(key string) (string, bool) {
	i, ok := p.index[key]
	if !ok {
		return "", false
	}
	return p.entries[i].Value, true
}

// Has returns true if the profile contains the given key.
func (p *Profile) Has(key string) bool {
	_, ok := p.index[key]
	return ok
}

// Keys returns the profile's keys in insertion order.
func (p *Profile) Keys() []string {
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the profile's entries in insertion order.
// The returned slice is shared; callers must not modify the entries.
func (p *Profile) Entries() []*Entry {
	return p.entries
}

// Len returns the number of entries in the profile.
func (p *Profile) Len() int {
	return len(p.entries)
}

// Map returns a copy of the profile as a plain key-value map.
// Insertion order is not representable in a map; use Keys or Entries
// where order matters.
func (p *Profile) Map() map[string]string {
	m := make(map[string]string, len(p.entries))
	for _, e := range p.entries {
		m[e.Key] = e.Value
	}
	return m
}

// Equal reports whether two profiles hold the same entries in the same
// order. Locations are ignored; equality is about content, not provenance.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil || p.Name != other.Name || len(p.entries) != len(other.entries) {
		return false
	}
	for i, e := range p.entries {
		o := other.entries[i]
		if e.Key != o.Key || e.Value != o.Value {
			return false
		}
	}
	return true
}
