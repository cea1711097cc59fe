package ast

// Document represents a fully parsed configuration file.
// Profiles preserve first-insertion order; names are unique after the
// parser's case normalization. A Document is built once per load and is
// not mutated afterwards.
type Document struct {
	Source string // Path (or synthetic source name) the document was parsed from

	profiles []*Profile
	index    map[string]int
}

// NewDocument creates an empty document for the given source.
func NewDocument(source string) *Document {
	return &Document{
		Source: source,
		index:  make(map[string]int),
	}
}

// GetOrCreate returns the profile with the given canonical name, creating
// it at the end of the document if it does not exist yet. Re-declared
// profiles keep their first-seen position.
func (d *Document) GetOrCreate(name string, loc Location) *Profile {
	if i, ok := d.index[name]; ok {
		return d.profiles[i]
	}
	p := NewProfile(name, loc)
	d.index[name] = len(d.profiles)
	d.profiles = append(d.profiles, p)
	return p
}

// Profile returns the profile with the given canonical name and whether
// it exists.
func (d *Document) Profile(name string) (*Profile, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.profiles[i], true
}

// Has returns true if the document contains a profile with the given name.
func (d *Document) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Names returns all profile names in first-insertion order.
func (d *Document) Names() []string {
	names := make([]string, len(d.profiles))
	for i, p := range d.profiles {
		names[i] = p.Name
	}
	return names
}

// Profiles returns the document's profiles in first-insertion order.
// The returned slice is shared; callers must not modify it.
func (d *Document) Profiles() []*Profile {
	return d.profiles
}

// Len returns the number of profiles in the document.
func (d *Document) Len() int {
	return len(d.profiles)
}

// Entries returns the total number of key-value entries across all profiles.
func (d *Document) Entries() int {
	n := 0
	for _, p := range d.profiles {
		n += p.Len()
	}
	return n
}

// Map returns a deep copy of the document as plain nested maps.
func (d *Document) Map() map[string]map[string]string {
	m := make(map[string]map[string]string, len(d.profiles))
	for _, p := range d.profiles {
		m[p.Name] = p.Map()
	}
	return m
}

// Equal reports whether two documents hold the same profiles with the
// same entries in the same order. Sources and locations are ignored.
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.profiles) != len(other.profiles) {
		return false
	}
	for i, p := range d.profiles {
		if !p.Equal(other.profiles[i]) {
			return false
		}
	}
	return true
}
