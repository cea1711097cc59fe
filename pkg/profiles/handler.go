package profiles

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"mercator-hq/profiles/pkg/profiles/ast"
	profErrors "mercator-hq/profiles/pkg/profiles/errors"
	"mercator-hq/profiles/pkg/profiles/parser"
	"mercator-hq/profiles/pkg/telemetry/metrics"
)

// Handler manages a profile-based configuration file: loading, lookup,
// and rendering. Each handler owns its own document built from its own
// file path; handlers share no state.
//
// The document is replaced wholesale on Reload and never mutated in
// place, so reads are cheap and a failed reload leaves the previous
// document untouched.
type Handler struct {
	path    string
	parser  *parser.Parser
	logger  *slog.Logger
	metrics *metrics.LoaderMetrics

	mu  sync.RWMutex
	doc *ast.Document
}

// Option configures a Handler.
type Option func(*Handler)

// WithPreserveCase keeps the original casing of profile names and keys.
// By default both are lowercased at parse time.
func WithPreserveCase(preserve bool) Option {
	return func(h *Handler) {
		h.parser.WithPreserveCase(preserve)
	}
}

// WithMaxFileSize sets the maximum config file size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(h *Handler) {
		h.parser.WithMaxFileSize(size)
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger.With("component", "profiles.handler")
	}
}

// WithMetrics wires load metrics into the handler.
func WithMetrics(m *metrics.LoaderMetrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// New creates a handler for the configuration file at path and loads it
// immediately. It returns an error if the file is missing or structurally
// invalid; no handler is returned on failure.
func New(path string, opts ...Option) (*Handler, error) {
	h := &Handler{
		path:   path,
		parser: parser.NewParser(),
		logger: slog.Default().With("component", "profiles.handler"),
	}

	for _, opt := range opts {
		opt(h)
	}

	if err := h.Reload(); err != nil {
		return nil, err
	}

	return h, nil
}

// Path returns the configuration file path the handler was built for.
func (h *Handler) Path() string {
	return h.path
}

// Reload re-parses the configuration file and swaps in the fresh document
// on success. On failure the previously loaded document (if any) stays
// live and the error is returned.
func (h *Handler) Reload() error {
	start := time.Now()

	doc, err := h.parser.Parse(h.path)
	duration := time.Since(start)

	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordLoad("error", duration)
			h.metrics.RecordError(string(profErrors.KindOf(err)))
		}
		h.logger.Error("configuration load failed",
			"path", h.path,
			"error", err,
		)
		return err
	}

	if h.metrics != nil {
		h.metrics.RecordLoad("success", duration)
		h.metrics.SetDocumentSize(doc.Len(), doc.Entries())
	}

	h.mu.Lock()
	h.doc = doc
	h.mu.Unlock()

	h.logger.Debug("configuration loaded",
		"path", h.path,
		"profiles", doc.Len(),
		"keys", doc.Entries(),
	)

	return nil
}

// Document returns the currently loaded document.
// The document is immutable; callers must not use its construction
// methods.
func (h *Handler) Document() *ast.Document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.doc
}

// ListProfiles returns all profile names in first-insertion order.
func (h *Handler) ListProfiles() []string {
	return h.Document().Names()
}

// GetProfile returns the key-value pairs of the named profile as a map
// copy. The name is matched literally against stored canonical names
// (surrounding whitespace is trimmed from the argument, but casing is not
// re-normalized).
func (h *Handler) GetProfile(name string) (map[string]string, error) {
	name = strings.TrimSpace(name)

	p, ok := h.Document().Profile(name)
	if !ok {
		return nil, profErrors.NewProfileNotFound(name)
	}
	return p.Map(), nil
}

// GetValue returns the value for a key within a profile. The error
// distinguishes a missing profile from a missing key.
func (h *Handler) GetValue(profile, key string) (string, error) {
	profile = strings.TrimSpace(profile)
	key = strings.TrimSpace(key)

	p, ok := h.Document().Profile(profile)
	if !ok {
		return "", profErrors.NewProfileNotFound(profile)
	}
	v, ok := p.Get(key)
	if !ok {
		return "", profErrors.NewKeyNotFound(profile, key)
	}
	return v, nil
}

// Config returns the entire configuration as a deep copy of nested maps.
func (h *Handler) Config() map[string]map[string]string {
	return h.Document().Map()
}
