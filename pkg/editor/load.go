package editor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/sitekit/pkg/dom"
)

// CompiledStateID is the id of the script element carrying the initial
// compiled content of a rendered page:
//
//	<script type="application/json" id="compiled-state" data-version="3">{...}</script>
const CompiledStateID = "compiled-state"

// LoadState reads the initial state embedded in a rendered page. A page
// without the element yields an empty state at version 0.
func LoadState(doc *dom.Document) (*State, error) {
	el := doc.ByID(CompiledStateID)
	if el == nil {
		return NewState(nil, 0), nil
	}

	var version int64
	if raw, ok := el.Attr("data-version"); ok && strings.TrimSpace(raw) != "" {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: data-version %q: %w", ErrInvalidState, raw, err)
		}
		version = v
	}

	compiled := make(map[string]any)
	if body := strings.TrimSpace(el.Text()); body != "" {
		if err := json.Unmarshal([]byte(body), &compiled); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
	}
	return NewState(compiled, version), nil
}
