package requestid

import "net/http"

// Transport forwards the context request id on outbound requests.
// A zero Transport uses http.DefaultTransport.
type Transport struct {
	Base http.RoundTripper
}

// NewTransport wraps base; nil means http.DefaultTransport.
func NewTransport(base http.RoundTripper) *Transport {
	return &Transport{Base: base}
}

// RoundTrip sets the header when the request has no id of its own.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	id := FromContext(req.Context())
	if id == "" || req.Header.Get(Header) != "" {
		return base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set(Header, id)
	return base.RoundTrip(clone)
}
