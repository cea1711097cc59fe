package ast

import (
	"reflect"
	"testing"
)

func TestProfile_AppendAndGet(t *testing.T) {
	p := NewProfile("production", Location{File: "config.ini", Line: 1})

	if !p.Append("region", "eu-west-1", Location{File: "config.ini", Line: 2}) {
		t.Fatal("Append() = false for new key, want true")
	}
	if !p.Append("endpoint", "https://api.example.com", Location{File: "config.ini", Line: 3}) {
		t.Fatal("Append() = false for new key, want true")
	}

	v, ok := p.Get("region")
	if !ok {
		t.Fatal("Get(region) not found")
	}
	if v != "eu-west-1" {
		t.Errorf("Get(region) = %q, want %q", v, "eu-west-1")
	}

	if _, ok := p.Get("missing"); ok {
		t.Error("Get(missing) found, want not found")
	}
}

func TestProfile_AppendDuplicate(t *testing.T) {
	p := NewProfile("production", Location{})

	if !p.Append("region", "eu-west-1", Location{}) {
		t.Fatal("first Append() = false, want true")
	}
	if p.Append("region", "us-east-1", Location{}) {
		t.Fatal("duplicate Append() = true, want false")
	}

	// Original value must survive
	v, _ := p.Get("region")
	if v != "eu-west-1" {
		t.Errorf("Get(region) = %q after duplicate Append, want %q", v, "eu-west-1")
	}
}

func TestProfile_KeysOrder(t *testing.T) {
	p := NewProfile("p", Location{})
	p.Append("zebra", "1", Location{})
	p.Append("alpha", "2", Location{})
	p.Append("mike", "3", Location{})

	want := []string{"zebra", "alpha", "mike"}
	if got := p.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestDocument_GetOrCreate_ReopensProfile(t *testing.T) {
	d := NewDocument("config.ini")

	first := d.GetOrCreate("alpha", Location{Line: 1})
	d.GetOrCreate("beta", Location{Line: 3})
	reopened := d.GetOrCreate("alpha", Location{Line: 5})

	if first != reopened {
		t.Error("GetOrCreate() returned a new profile for an existing name")
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}

	// First-seen position is kept
	want := []string{"alpha", "beta"}
	if got := d.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestDocument_Map(t *testing.T) {
	d := NewDocument("config.ini")
	p := d.GetOrCreate("profile1", Location{})
	p.Append("key1", "value1", Location{})
	p.Append("key2", "value2", Location{})

	want := map[string]map[string]string{
		"profile1": {"key1": "value1", "key2": "value2"},
	}
	if got := d.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestDocument_Entries(t *testing.T) {
	d := NewDocument("config.ini")
	d.GetOrCreate("a", Location{}).Append("k1", "v", Location{})
	b := d.GetOrCreate("b", Location{})
	b.Append("k1", "v", Location{})
	b.Append("k2", "v", Location{})

	if got := d.Entries(); got != 3 {
		t.Errorf("Entries() = %d, want 3", got)
	}
}

func TestDocument_Equal(t *testing.T) {
	build := func() *Document {
		d := NewDocument("a.ini")
		p := d.GetOrCreate("p", Location{Line: 1})
		p.Append("k", "v", Location{Line: 2})
		return d
	}

	a := build()
	b := build()
	b.Source = "b.ini" // source is ignored by Equal

	if !a.Equal(b) {
		t.Error("Equal() = false for documents with identical content")
	}

	b.GetOrCreate("p", Location{}).Append("extra", "x", Location{})
	if a.Equal(b) {
		t.Error("Equal() = true for documents with different entries")
	}

	if a.Equal(nil) {
		t.Error("Equal(nil) = true, want false")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"full", Location{File: "config.ini", Line: 7}, "config.ini:7"},
		{"file only", Location{File: "config.ini"}, "config.ini"},
		{"empty", Location{}, "<unknown>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
