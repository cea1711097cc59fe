package manager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"mercator-hq/profiles/pkg/profiles"
)

// Config contains configuration for the reload manager.
type Config struct {
	// DebounceInterval is passed through to the file watcher
	// (default: 100ms).
	DebounceInterval time.Duration

	// ReloadSchedule is an optional cron expression for periodic reloads
	// independent of file events (e.g. "*/5 * * * *" for every five
	// minutes). Empty disables scheduled reloads.
	ReloadSchedule string
}

// DefaultConfig returns the default manager configuration.
func DefaultConfig() *Config {
	return &Config{
		DebounceInterval: 100 * time.Millisecond,
	}
}

// Snapshot identifies one successfully loaded configuration generation.
type Snapshot struct {
	// ID uniquely identifies this load
	ID string

	// LoadedAt is when the load completed
	LoadedAt time.Time

	// Profiles is the profile list of the loaded configuration,
	// in first-insertion order
	Profiles []string
}

// Manager keeps a profiles.Handler fresh: it reloads the handler when the
// underlying file changes (fsnotify, debounced) and optionally on a cron
// schedule, and publishes a Snapshot to subscribers after every
// successful reload.
//
// Reloads are serialized; a failed reload keeps the previous configuration
// live, so subscribers only ever observe valid generations.
type Manager struct {
	handler *profiles.Handler
	config  *Config
	logger  *slog.Logger
	watcher *FileWatcher
	cron    *cron.Cron

	mu      sync.Mutex
	running bool
	stopped bool
	current Snapshot
	subs    []chan Snapshot
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewManager creates a reload manager for the given handler.
// The cron expression in config.ReloadSchedule, if set, is validated here.
func NewManager(handler *profiles.Handler, config *Config, logger *slog.Logger) (*Manager, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	if config.ReloadSchedule != "" {
		if _, err := cron.ParseStandard(config.ReloadSchedule); err != nil {
			return nil, fmt.Errorf("invalid reload schedule %q: %w", config.ReloadSchedule, err)
		}
	}

	return &Manager{
		handler: handler,
		config:  config,
		logger:  logger.With("component", "profiles.manager"),
	}, nil
}

// Start begins watching the handler's file and, if configured, the
// scheduled reloads. It returns once the watcher goroutine is running.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return fmt.Errorf("manager already running")
	}

	watcher, err := NewFileWatcher(&FileWatcherConfig{
		Path:             m.handler.Path(),
		DebounceInterval: m.config.DebounceInterval,
	}, m.logger)
	if err != nil {
		return err
	}
	m.watcher = watcher

	ctx, m.cancel = context.WithCancel(ctx)

	// A fresh cron per Start; reusing one across Stop/Start cycles would
	// accumulate duplicate reload jobs.
	m.cron = cron.New()
	m.stopped = false

	// Seed the current snapshot from the handler's initial load.
	m.current = m.newSnapshot()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.watcher.Watch(ctx, m.reload); err != nil {
			m.logger.Error("file watcher exited", "error", err)
		}
	}()

	if m.config.ReloadSchedule != "" {
		if _, err := m.cron.AddFunc(m.config.ReloadSchedule, func() {
			m.logger.Info("scheduled configuration reload", "schedule", m.config.ReloadSchedule)
			_ = m.reload()
		}); err != nil {
			return fmt.Errorf("failed to schedule reload: %w", err)
		}
		m.cron.Start()
	}

	m.running = true
	m.logger.Info("reload manager started",
		"path", m.handler.Path(),
		"schedule", m.config.ReloadSchedule,
	)

	return nil
}

// Stop stops the watcher, the scheduler, and closes all subscriber
// channels.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	cancel := m.cancel
	m.mu.Unlock()

	cancel()
	<-m.cron.Stop().Done()
	m.wg.Wait()

	if err := m.watcher.Stop(); err != nil {
		return err
	}

	m.mu.Lock()
	m.stopped = true
	for _, ch := range m.subs {
		close(ch)
	}
	m.subs = nil
	m.mu.Unlock()

	m.logger.Info("reload manager stopped")
	return nil
}

// Subscribe returns a channel that receives a Snapshot after every
// successful reload. The channel is buffered; slow subscribers miss
// intermediate snapshots rather than blocking reloads. It is closed by
// Stop; subscribing to an already stopped manager yields a closed
// channel.
func (m *Manager) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		close(ch)
		return ch
	}
	m.subs = append(m.subs, ch)

	return ch
}

// Current returns the snapshot of the most recent successful load.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// reload re-parses the configuration and publishes a fresh snapshot on
// success. On failure the handler keeps its previous document and no
// snapshot is published.
func (m *Manager) reload() error {
	if err := m.handler.Reload(); err != nil {
		return err
	}

	snapshot := m.newSnapshot()

	m.mu.Lock()
	m.current = snapshot
	subs := make([]chan Snapshot, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snapshot:
		default:
			// Drop stale snapshot so the latest one fits.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}

	m.logger.Info("configuration reloaded",
		"snapshot_id", snapshot.ID,
		"profiles", len(snapshot.Profiles),
	)

	return nil
}

// newSnapshot captures the handler's current state under a fresh ID.
func (m *Manager) newSnapshot() Snapshot {
	return Snapshot{
		ID:       uuid.New().String(),
		LoadedAt: time.Now().UTC(),
		Profiles: m.handler.ListProfiles(),
	}
}
