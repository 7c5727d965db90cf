package game

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Watcher polls the preset tree and calls onChange when a YAML file is
// added, modified or removed.
type Watcher struct {
	Root     string
	Interval time.Duration

	onChange  func(path string)
	log       *zap.SugaredLogger
	lastMTime map[string]time.Time
}

// NewWatcher watches every *.yaml under root. A nil logger disables logging.
func NewWatcher(root string, interval time.Duration, log *zap.SugaredLogger, onChange func(path string)) *Watcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Watcher{
		Root:      root,
		Interval:  interval,
		onChange:  onChange,
		log:       log,
		lastMTime: make(map[string]time.Time),
	}
}

// WatchLoader returns a Watcher that clears l's cache whenever a preset
// under l's base directory changes.
func WatchLoader(l *Loader, interval time.Duration, log *zap.SugaredLogger) *Watcher {
	w := NewWatcher(l.Paths().GamesDir(), interval, log, nil)
	w.onChange = func(path string) {
		w.log.Infow("preset changed, reloading", "path", path)
		l.Invalidate()
	}
	return w
}

// Run polls until ctx is done. The first scan only records the current state.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.Scan(true)
	for {
		select {
		case <-ticker.C:
			w.Scan(false)
		case <-ctx.Done():
			return nil
		}
	}
}

// Scan compares modification times with the previous scan and reports the
// paths that changed. With prime set it only records them.
func (w *Watcher) Scan(prime bool) []string {
	seen := make(map[string]time.Time, len(w.lastMTime))
	err := filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable entries are skipped, a missing root is an empty tree
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".yaml") {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		seen[path] = fi.ModTime()
		return nil
	})
	if err != nil {
		w.log.Warnw("preset scan failed", "root", w.Root, "error", err)
	}

	var changed []string
	for p, mt := range seen {
		last, ok := w.lastMTime[p]
		if !ok || !mt.Equal(last) {
			changed = append(changed, p)
		}
	}
	for p := range w.lastMTime {
		if _, ok := seen[p]; !ok {
			changed = append(changed, p)
		}
	}
	w.lastMTime = seen

	if prime {
		return nil
	}
	for _, p := range changed {
		if w.onChange != nil {
			w.onChange(p)
		}
	}
	return changed
}
