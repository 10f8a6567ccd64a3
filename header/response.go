package header

import (
	"braces.dev/errtrace"
)

// ResponseHeaders is the header store of an HTTP response: the general
// headers by composition plus the response-role headers. Request and
// content header names are rejected.
type ResponseHeaders struct {
	*Store

	gen *GeneralHeaders

	acceptRanges *Collection[Token]
	server       *Collection[Product]
	vary         *Collection[Token]
}

// NewResponseHeaders creates an empty response header store.
func NewResponseHeaders(opts *StoreOptions) *ResponseHeaders {
	hdrs := NewStore(ResponseRegistry(), opts)
	return &ResponseHeaders{Store: hdrs, gen: newGeneralHeaders(hdrs)}
}

// General returns the general header view of the response.
func (resp *ResponseHeaders) General() *GeneralHeaders { return resp.gen }

// Clone returns a deep copy of the response headers.
func (resp *ResponseHeaders) Clone() *ResponseHeaders {
	hdrs := resp.Store.Clone()
	return &ResponseHeaders{Store: hdrs, gen: newGeneralHeaders(hdrs)}
}

// AddFrom merges headers from src: names absent here are copied, then the
// special value flags are filled in where this store has no knowledge.
func (resp *ResponseHeaders) AddFrom(src *ResponseHeaders) error {
	if src == nil {
		return nil
	}
	resp.Store.AddFrom(src.Store)
	return errtrace.Wrap(resp.gen.mergeFlagsFrom(src.gen))
}

// AcceptRanges returns the range units the server accepts.
func (resp *ResponseHeaders) AcceptRanges() *Collection[Token] {
	if resp.acceptRanges == nil {
		resp.acceptRanges = newCollection[Token](resp.Store, NameAcceptRanges)
	}
	return resp.acceptRanges
}

// Age returns the response age in seconds, nil when absent.
func (resp *ResponseHeaders) Age() (*Integer, error) {
	return errtrace.Wrap2(getSingle[Integer](resp.Store, NameAge))
}

// SetAge sets the response age. Nil removes it.
func (resp *ResponseHeaders) SetAge(n *Integer) error {
	return errtrace.Wrap(setSingle(resp.Store, NameAge, n))
}

// ETag returns the entity tag of the selected representation, nil when
// absent.
func (resp *ResponseHeaders) ETag() (*EntityTag, error) {
	return errtrace.Wrap2(getSingle[EntityTag](resp.Store, NameETag))
}

// SetETag sets the entity tag. Nil removes it.
func (resp *ResponseHeaders) SetETag(t *EntityTag) error {
	return errtrace.Wrap(setSingle(resp.Store, NameETag, t))
}

// Location returns the redirection target, nil when absent.
func (resp *ResponseHeaders) Location() (*URIRef, error) {
	return errtrace.Wrap2(getSingle[URIRef](resp.Store, NameLocation))
}

// SetLocation sets the redirection target. Nil removes it.
func (resp *ResponseHeaders) SetLocation(u *URIRef) error {
	return errtrace.Wrap(setSingle(resp.Store, NameLocation, u))
}

// ProxyAuthenticate returns the proxy challenge, nil when absent.
func (resp *ResponseHeaders) ProxyAuthenticate() (*Authentication, error) {
	return errtrace.Wrap2(getSingle[Authentication](resp.Store, NameProxyAuthenticate))
}

// SetProxyAuthenticate sets the proxy challenge. Nil removes it.
func (resp *ResponseHeaders) SetProxyAuthenticate(auth *Authentication) error {
	return errtrace.Wrap(setSingle(resp.Store, NameProxyAuthenticate, auth))
}

// RetryAfter returns the retry condition, nil when absent.
func (resp *ResponseHeaders) RetryAfter() (*RetryCondition, error) {
	return errtrace.Wrap2(getSingle[RetryCondition](resp.Store, NameRetryAfter))
}

// SetRetryAfter sets the retry condition. Nil removes it.
func (resp *ResponseHeaders) SetRetryAfter(rc *RetryCondition) error {
	return errtrace.Wrap(setSingle(resp.Store, NameRetryAfter, rc))
}

// Server returns the server product tokens.
func (resp *ResponseHeaders) Server() *Collection[Product] {
	if resp.server == nil {
		resp.server = newCollection[Product](resp.Store, NameServer)
	}
	return resp.server
}

// Vary returns the request header names the response varies on.
func (resp *ResponseHeaders) Vary() *Collection[Token] {
	if resp.vary == nil {
		resp.vary = newCollection[Token](resp.Store, NameVary)
	}
	return resp.vary
}

// WWWAuthenticate returns the origin server challenge, nil when absent.
func (resp *ResponseHeaders) WWWAuthenticate() (*Authentication, error) {
	return errtrace.Wrap2(getSingle[Authentication](resp.Store, NameWWWAuthenticate))
}

// SetWWWAuthenticate sets the origin server challenge. Nil removes it.
func (resp *ResponseHeaders) SetWWWAuthenticate(auth *Authentication) error {
	return errtrace.Wrap(setSingle(resp.Store, NameWWWAuthenticate, auth))
}
