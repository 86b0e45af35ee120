// Package contentpath writes values into a nested content tree addressed by a
// dotted path such as "bio.headline".
//
// The tree is a plain map[string]any graph as produced by encoding/json. Each
// dot-separated segment names a key; missing or non-mapping intermediates are
// replaced with a fresh map so the write always lands.
//
// Segments may carry a bracketed index ("gallery[2]"). Index segments are
// recognised but array writes are not supported: a path that contains one is
// skipped without touching the tree.
//
// # Usage
//
//	tree := map[string]any{}
//	contentpath.Set(tree, "hero.title", "Hello")
//	// tree == {"hero": {"title": "Hello"}}
//
//	ok := contentpath.Set(tree, "gallery[0].caption", "x")
//	// ok == false, tree unchanged
package contentpath
