// Package manager provides hot reloading for profile configuration
// handlers.
//
// A Manager watches the handler's configuration file (fsnotify with
// debouncing) and optionally reloads on a cron schedule. Every successful
// reload produces a uuid-tagged Snapshot that is published to
// subscribers; failed reloads keep the previous configuration live and
// publish nothing.
//
// # Basic Usage
//
// Watch a configuration file for changes:
//
//	handler, err := profiles.New("config.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mgr, err := manager.NewManager(handler, nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := mgr.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer mgr.Stop()
//
//	for snapshot := range mgr.Subscribe() {
//	    fmt.Println("reloaded:", snapshot.ID, snapshot.Profiles)
//	}
//
// # Scheduled Reloads
//
// Combine file watching with a periodic reload:
//
//	mgr, err := manager.NewManager(handler, &manager.Config{
//	    DebounceInterval: 100 * time.Millisecond,
//	    ReloadSchedule:   "*/5 * * * *", // every five minutes
//	}, logger)
//
// The core handler stays synchronous and lock-light; all goroutines are
// confined to this package.
package manager
