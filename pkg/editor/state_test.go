package editor_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/editor"
)

func TestState_Apply(t *testing.T) {
	t.Parallel()

	t.Run("keeps first-edit order and overwrites in place", func(t *testing.T) {
		t.Parallel()
		s := editor.NewState(nil, 0)

		assert.True(t, s.Apply("title", editor.Edit{Type: editor.TypeText, Value: "A"}))
		assert.True(t, s.Apply("bio.headline", editor.Edit{Type: editor.TypeHTML, Value: "<b>X</b>"}))
		assert.True(t, s.Apply("title", editor.Edit{Type: editor.TypeText, Value: "Hi"}))

		assert.Equal(t, []editor.Update{
			{Path: "title", Type: "text", Value: "Hi"},
			{Path: "bio.headline", Type: "html", Value: "<b>X</b>"},
		}, s.Updates())
		assert.Equal(t, 2, s.DirtyCount())
		assert.Equal(t, map[string]any{
			"title": "Hi",
			"bio":   map[string]any{"headline": "<b>X</b>"},
		}, s.Compiled())
	})

	t.Run("index paths are dirty but not written", func(t *testing.T) {
		t.Parallel()
		s := editor.NewState(map[string]any{"items": []any{"a"}}, 0)

		assert.False(t, s.Apply("items[0]", editor.Edit{Value: "b"}))

		e, ok := s.Dirty("items[0]")
		require.True(t, ok)
		assert.Equal(t, editor.TypeText, e.Type)
		assert.Equal(t, map[string]any{"items": []any{"a"}}, s.Compiled())
	})

	t.Run("empty path is ignored", func(t *testing.T) {
		t.Parallel()
		s := editor.NewState(nil, 0)
		assert.False(t, s.Apply("", editor.Edit{Value: "x"}))
		assert.Zero(t, s.DirtyCount())
	})
}

func TestState_CompiledIsCopy(t *testing.T) {
	t.Parallel()

	s := editor.NewState(map[string]any{"hero": map[string]any{"title": "A"}}, 0)
	c := s.Compiled()
	c["hero"].(map[string]any)["title"] = "mutated"

	v, ok := s.Compiled()["hero"].(map[string]any)["title"]
	require.True(t, ok)
	assert.Equal(t, "A", v)
}

func TestState_ReplaceKeepsDirty(t *testing.T) {
	t.Parallel()

	s := editor.NewState(nil, 1)
	s.Apply("title", editor.Edit{Value: "A"})
	s.Replace(map[string]any{"title": "server"})
	s.SetVersion(2)

	assert.Equal(t, 1, s.DirtyCount())
	assert.Equal(t, int64(2), s.Version())

	raw, err := s.CompiledJSON()
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "server", got["title"])

	s.ClearDirty()
	assert.Zero(t, s.DirtyCount())
	assert.Empty(t, s.Updates())
}
