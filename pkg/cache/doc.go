// Package cache provides a thread-safe, generic LRU cache with per-key
// loading.
//
//	workspaces := cache.NewLRU[string, *Workspace](128,
//		cache.WithEvictCallback(func(key string, ws *Workspace) { ws.Close() }),
//	)
//	ws, err := workspaces.GetOrLoad(key, func() (*Workspace, error) {
//		return openWorkspace(key)
//	})
//
// GetOrLoad runs at most one loader per key at a time; concurrent callers
// for the same key wait for that load and share its result. A failed load
// is not cached. Loaders run without the cache lock held, so slow loads of
// one key do not block other keys.
package cache
