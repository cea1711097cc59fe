package profiles

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	profErrors "mercator-hq/profiles/pkg/profiles/errors"
	"mercator-hq/profiles/pkg/profiles/parser"
	"mercator-hq/profiles/pkg/telemetry/metrics"
)

const fixtureContent = `
[profile1]
key1 = value1
key2 = value2

[profile2]
keyA = valueA
keyB = valueB

; This is a comment
# This is another comment

[profile3]
keyX = valueX
keyY = valueY
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFixtureHandler(t *testing.T, opts ...Option) *Handler {
	t.Helper()
	h, err := New(writeFixture(t, fixtureContent), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return h
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.ini"))
	if err == nil {
		t.Fatal("New() succeeded for missing file, want error")
	}
	if !errors.Is(err, profErrors.ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
}

func TestHandler_ListProfiles(t *testing.T) {
	h := newFixtureHandler(t)

	want := []string{"profile1", "profile2", "profile3"}
	if got := h.ListProfiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("ListProfiles() = %v, want %v", got, want)
	}
}

func TestHandler_GetProfile(t *testing.T) {
	h := newFixtureHandler(t)

	got, err := h.GetProfile("profile1")
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	want := map[string]string{"key1": "value1", "key2": "value2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetProfile() = %v, want %v", got, want)
	}

	// Argument whitespace is trimmed, casing is not re-normalized
	if _, err := h.GetProfile("  profile1  "); err != nil {
		t.Errorf("GetProfile() with padded name failed: %v", err)
	}
	if _, err := h.GetProfile("PROFILE1"); err == nil {
		t.Error("GetProfile(PROFILE1) succeeded, want literal-match failure")
	}
}

func TestHandler_GetProfile_NotFound(t *testing.T) {
	h := newFixtureHandler(t)

	_, err := h.GetProfile("nonexistent")
	if got := profErrors.KindOf(err); got != profErrors.KindProfileNotFound {
		t.Errorf("KindOf() = %q, want %q", got, profErrors.KindProfileNotFound)
	}
}

func TestHandler_GetValue(t *testing.T) {
	h := newFixtureHandler(t)

	v, err := h.GetValue("profile1", "key1")
	if err != nil {
		t.Fatalf("GetValue() failed: %v", err)
	}
	if v != "value1" {
		t.Errorf("GetValue() = %q, want %q", v, "value1")
	}
}

func TestHandler_GetValue_NotFoundKinds(t *testing.T) {
	h := newFixtureHandler(t)

	_, err := h.GetValue("missing-profile", "k")
	if got := profErrors.KindOf(err); got != profErrors.KindProfileNotFound {
		t.Errorf("KindOf() = %q, want %q", got, profErrors.KindProfileNotFound)
	}

	_, err = h.GetValue("profile1", "missing-key")
	if got := profErrors.KindOf(err); got != profErrors.KindKeyNotFound {
		t.Errorf("KindOf() = %q, want %q", got, profErrors.KindKeyNotFound)
	}
}

func TestHandler_Config_IsACopy(t *testing.T) {
	h := newFixtureHandler(t)

	cfg := h.Config()
	cfg["profile1"]["key1"] = "tampered"
	delete(cfg, "profile2")

	v, err := h.GetValue("profile1", "key1")
	if err != nil {
		t.Fatal(err)
	}
	if v != "value1" {
		t.Errorf("GetValue() = %q after mutating Config() copy, want %q", v, "value1")
	}
	if _, err := h.GetProfile("profile2"); err != nil {
		t.Error("profile2 lost after mutating Config() copy")
	}
}

func TestHandler_Config_PreserveCase(t *testing.T) {
	h, err := New(writeFixture(t, fixtureContent), WithPreserveCase(true))
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]map[string]string{
		"profile1": {"key1": "value1", "key2": "value2"},
		"profile2": {"keyA": "valueA", "keyB": "valueB"},
		"profile3": {"keyX": "valueX", "keyY": "valueY"},
	}
	if got := h.Config(); !reflect.DeepEqual(got, want) {
		t.Errorf("Config() = %v, want %v", got, want)
	}
}

func TestHandler_Render(t *testing.T) {
	h := newFixtureHandler(t)

	want := strings.Join([]string{
		"[profile1]",
		"key1 = value1",
		"key2 = value2",
		"",
		"[profile2]",
		"keya = valueA",
		"keyb = valueB",
		"",
		"[profile3]",
		"keyx = valueX",
		"keyy = valueY",
	}, "\n")

	if got := h.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestHandler_Render_RoundTrip(t *testing.T) {
	h := newFixtureHandler(t)

	rendered := h.Render()
	reparsed, err := parser.NewParser().ParseBytes([]byte(rendered), "rendered")
	if err != nil {
		t.Fatalf("re-parsing rendered output failed: %v", err)
	}

	if !h.Document().Equal(reparsed) {
		t.Errorf("round-trip document differs\nrendered:\n%s", rendered)
	}
}

func TestHandler_Reload_FailureKeepsPreviousState(t *testing.T) {
	path := writeFixture(t, fixtureContent)
	h, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	// Corrupt the file, then reload
	if err := os.WriteFile(path, []byte("[p]\na = 1\na = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := h.Reload(); err == nil {
		t.Fatal("Reload() succeeded on corrupt file, want error")
	}

	// Previous document must still be served
	want := []string{"profile1", "profile2", "profile3"}
	if got := h.ListProfiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("ListProfiles() after failed reload = %v, want %v", got, want)
	}
}

func TestHandler_Reload_PicksUpChanges(t *testing.T) {
	path := writeFixture(t, fixtureContent)
	h, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("[fresh]\nk = v\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := h.Reload(); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}

	want := []string{"fresh"}
	if got := h.ListProfiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("ListProfiles() = %v, want %v", got, want)
	}
}

func TestHandler_ExportYAML(t *testing.T) {
	h := newFixtureHandler(t)

	data, err := h.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML() failed: %v", err)
	}

	var decoded map[string]map[string]string
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("ExportYAML() produced invalid YAML: %v", err)
	}
	if !reflect.DeepEqual(decoded, h.Config()) {
		t.Errorf("decoded YAML = %v, want %v", decoded, h.Config())
	}

	// Insertion order is preserved in the emitted text
	text := string(data)
	if strings.Index(text, "profile1:") > strings.Index(text, "profile3:") {
		t.Errorf("ExportYAML() lost profile order:\n%s", text)
	}
}

// counterValue reads a single labeled counter from the registry.
func counterValue(t *testing.T, registry *prometheus.Registry, name, labelValue string) float64 {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetValue() == labelValue {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestHandler_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	lm := metrics.NewLoaderMetrics(registry)

	path := writeFixture(t, fixtureContent)
	h, err := New(path, WithMetrics(lm))
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Reload(); err != nil {
		t.Fatal(err)
	}

	// Two successful loads: New and Reload
	if got := counterValue(t, registry, "profiles_loads_total", "success"); got != 2 {
		t.Errorf("loads_total{outcome=success} = %v, want 2", got)
	}

	// A failing reload records the error kind
	if err := os.WriteFile(path, []byte("garbage line\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_ = h.Reload()

	if got := counterValue(t, registry, "profiles_load_errors_total", "malformed_line"); got != 1 {
		t.Errorf("load_errors_total{kind=malformed_line} = %v, want 1", got)
	}
}
