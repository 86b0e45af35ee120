package editor

import (
	"encoding/json"
	"sync"

	"github.com/dmitrymomot/sitekit/pkg/contentpath"
)

// State is the editor's view of the site content: the compiled content with
// local edits applied, the dirty edits not yet acknowledged by the server,
// and the last version the server assigned.
type State struct {
	mu       sync.RWMutex
	compiled map[string]any
	dirty    map[string]Edit
	order    []string
	version  int64
}

// NewState creates a State. A nil compiled map starts empty.
func NewState(compiled map[string]any, version int64) *State {
	if compiled == nil {
		compiled = make(map[string]any)
	}
	return &State{
		compiled: compiled,
		dirty:    make(map[string]Edit),
		version:  version,
	}
}

// Apply records an edit of path and writes it into the compiled content.
// The first edit of a path fixes its position in the batch; later edits
// overwrite the value in place. It reports whether the compiled content was
// written, which is false for array-index paths.
func (s *State) Apply(path string, e Edit) bool {
	if path == "" {
		return false
	}
	if e.Type == "" {
		e.Type = TypeText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dirty[path]; !ok {
		s.order = append(s.order, path)
	}
	s.dirty[path] = e
	return contentpath.Set(s.compiled, path, e.Value)
}

// Updates returns the dirty edits in first-edit order.
func (s *State) Updates() []Update {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Update, 0, len(s.order))
	for _, path := range s.order {
		e := s.dirty[path]
		out = append(out, Update{Path: path, Type: string(e.Type), Value: e.Value})
	}
	return out
}

// DirtyCount returns the number of pending edits.
func (s *State) DirtyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Dirty returns the pending edit of path.
func (s *State) Dirty(path string) (Edit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.dirty[path]
	return e, ok
}

// ClearDirty drops every pending edit.
func (s *State) ClearDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = make(map[string]Edit)
	s.order = nil
}

// Compiled returns a deep copy of the compiled content.
func (s *State) Compiled() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMap(s.compiled)
}

// CompiledJSON returns the compiled content as JSON.
func (s *State) CompiledJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.compiled)
}

// Replace swaps the compiled content for compiled. Dirty edits are kept.
func (s *State) Replace(compiled map[string]any) {
	if compiled == nil {
		compiled = make(map[string]any)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compiled = copyMap(compiled)
}

// Version returns the last server-assigned version, 0 if none.
func (s *State) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// SetVersion adopts a server-assigned version.
func (s *State) SetVersion(v int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version = v
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
