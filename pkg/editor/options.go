package editor

import "log/slog"

// Option configures an Editor.
type Option func(*Editor)

// WithConfig sets the element ids the editor drives.
func WithConfig(cfg Config) Option {
	return func(e *Editor) {
		if cfg.SaveButtonID != "" {
			e.cfg.SaveButtonID = cfg.SaveButtonID
		}
		if cfg.StatusID != "" {
			e.cfg.StatusID = cfg.StatusID
		}
		if cfg.ContentID != "" {
			e.cfg.ContentID = cfg.ContentID
		}
	}
}

// WithState uses state instead of reading it from the document.
func WithState(state *State) Option {
	return func(e *Editor) {
		if state != nil {
			e.state = state
		}
	}
}

// WithSnapshotLoader sets where compiledJsonPath snapshots are read from.
func WithSnapshotLoader(l SnapshotLoader) Option {
	return func(e *Editor) {
		e.snapshots = l
	}
}

// WithPage sets the initial active page.
func WithPage(page string) Option {
	return func(e *Editor) {
		e.page.Store(page)
	}
}

// WithPageRefresh registers a refresh routine for page.
func WithPageRefresh(page string, fn RefreshFunc) Option {
	return func(e *Editor) {
		e.pageRefresh[page] = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}
