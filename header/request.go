package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
)

// expectContinue is the distinguished Expect directive asking the server
// for a 100 (Continue) interim response.
var expectContinue = NameValue{Name: string(TokenContinue)}

// RequestHeaders is the header store of an HTTP request: the general
// headers by composition plus the request-role headers. Response and
// content header names are rejected.
type RequestHeaders struct {
	*Store

	gen *GeneralHeaders

	accept         *Collection[MediaRange]
	acceptCharset  *Collection[WeightedString]
	acceptEncoding *Collection[WeightedString]
	acceptLanguage *Collection[WeightedString]
	expect         *Collection[NameValue]
	ifMatch        *Collection[EntityTag]
	ifNoneMatch    *Collection[EntityTag]
	te             *Collection[TransferCoding]
	userAgent      *Collection[Product]
}

// NewRequestHeaders creates an empty request header store.
func NewRequestHeaders(opts *StoreOptions) *RequestHeaders {
	hdrs := NewStore(RequestRegistry(), opts)
	return &RequestHeaders{Store: hdrs, gen: newGeneralHeaders(hdrs)}
}

// General returns the general header view of the request.
func (req *RequestHeaders) General() *GeneralHeaders { return req.gen }

// Clone returns a deep copy of the request headers.
func (req *RequestHeaders) Clone() *RequestHeaders {
	hdrs := req.Store.Clone()
	return &RequestHeaders{Store: hdrs, gen: newGeneralHeaders(hdrs)}
}

// AddFrom merges headers from src: names absent here are copied, then the
// special value flags are filled in where this store has no knowledge.
func (req *RequestHeaders) AddFrom(src *RequestHeaders) error {
	if src == nil {
		return nil
	}
	req.Store.AddFrom(src.Store)
	if err := req.gen.mergeFlagsFrom(src.gen); err != nil {
		return errtrace.Wrap(err)
	}
	if req.ExpectContinue() == TernaryUnknown {
		if flag := src.ExpectContinue(); flag != TernaryUnknown {
			if err := req.SetExpectContinue(flag); err != nil {
				return errtrace.Wrap(err)
			}
		}
	}
	return nil
}

// Accept returns the acceptable media ranges.
func (req *RequestHeaders) Accept() *Collection[MediaRange] {
	if req.accept == nil {
		req.accept = newCollection[MediaRange](req.Store, NameAccept)
	}
	return req.accept
}

// AcceptCharset returns the acceptable character sets.
func (req *RequestHeaders) AcceptCharset() *Collection[WeightedString] {
	if req.acceptCharset == nil {
		req.acceptCharset = newCollection[WeightedString](req.Store, NameAcceptCharset)
	}
	return req.acceptCharset
}

// AcceptEncoding returns the acceptable content codings.
func (req *RequestHeaders) AcceptEncoding() *Collection[WeightedString] {
	if req.acceptEncoding == nil {
		req.acceptEncoding = newCollection[WeightedString](req.Store, NameAcceptEncoding)
	}
	return req.acceptEncoding
}

// AcceptLanguage returns the acceptable natural languages.
func (req *RequestHeaders) AcceptLanguage() *Collection[WeightedString] {
	if req.acceptLanguage == nil {
		req.acceptLanguage = newCollection[WeightedString](req.Store, NameAcceptLanguage)
	}
	return req.acceptLanguage
}

// Authorization returns the request credentials, nil when absent.
func (req *RequestHeaders) Authorization() (*Authentication, error) {
	return errtrace.Wrap2(getSingle[Authentication](req.Store, NameAuthorization))
}

// SetAuthorization sets the request credentials. Nil removes them.
func (req *RequestHeaders) SetAuthorization(auth *Authentication) error {
	return errtrace.Wrap(setSingle(req.Store, NameAuthorization, auth))
}

// Expect returns the Expect directives.
func (req *RequestHeaders) Expect() *Collection[NameValue] {
	if req.expect == nil {
		req.expect = newCollection[NameValue](req.Store, NameExpect)
	}
	return req.expect
}

// ExpectContinue reports the tri-state of the 100-continue expectation.
// Unparsed raw text is scanned for the directive, never parsed.
func (req *RequestHeaders) ExpectContinue() Ternary {
	return req.Store.specialFlag(NameExpect, expectContinue)
}

// SetExpectContinue moves the 100-continue expectation: TernaryTrue adds
// it, TernaryFalse retracts it explicitly and TernaryUnknown clears any
// record of it.
func (req *RequestHeaders) SetExpectContinue(flag Ternary) error {
	return errtrace.Wrap(req.Store.setSpecialFlag(NameExpect, expectContinue, flag))
}

// From returns the requesting user's mailbox, nil when absent.
func (req *RequestHeaders) From() (*Text, error) {
	return errtrace.Wrap2(getSingle[Text](req.Store, NameFrom))
}

// SetFrom sets the requesting user's mailbox. Nil removes it.
func (req *RequestHeaders) SetFrom(from *Text) error {
	return errtrace.Wrap(setSingle(req.Store, NameFrom, from))
}

// Host returns the target host, empty when absent.
func (req *RequestHeaders) Host() (string, error) {
	h, err := getSingle[Text](req.Store, NameHost)
	if err != nil || h == nil {
		return "", errtrace.Wrap(err)
	}
	return string(*h), nil
}

// SetHost sets the target host, validated against the host [":" port]
// production. An empty host removes the header.
func (req *RequestHeaders) SetHost(host string) error {
	if host == "" {
		req.Store.Remove(NameHost)
		return nil
	}
	if !grammar.IsHostPort(host) {
		return errtrace.Wrap(NewSyntaxError("%s: %q", NameHost, host))
	}
	return errtrace.Wrap(req.Store.SetValue(NameHost, Text(host)))
}

// IfMatch returns the entity tags the request is conditional on.
func (req *RequestHeaders) IfMatch() *Collection[EntityTag] {
	if req.ifMatch == nil {
		req.ifMatch = newCollection[EntityTag](req.Store, NameIfMatch)
	}
	return req.ifMatch
}

// IfModifiedSince returns the modification date the request is
// conditional on, nil when absent.
func (req *RequestHeaders) IfModifiedSince() (*Date, error) {
	return errtrace.Wrap2(getSingle[Date](req.Store, NameIfModifiedSince))
}

// SetIfModifiedSince sets the If-Modified-Since condition. Nil removes it.
func (req *RequestHeaders) SetIfModifiedSince(d *Date) error {
	return errtrace.Wrap(setSingle(req.Store, NameIfModifiedSince, d))
}

// IfNoneMatch returns the entity tags the request excludes.
func (req *RequestHeaders) IfNoneMatch() *Collection[EntityTag] {
	if req.ifNoneMatch == nil {
		req.ifNoneMatch = newCollection[EntityTag](req.Store, NameIfNoneMatch)
	}
	return req.ifNoneMatch
}

// IfRange returns the validator a partial request is conditional on, nil
// when absent.
func (req *RequestHeaders) IfRange() (*RangeCondition, error) {
	return errtrace.Wrap2(getSingle[RangeCondition](req.Store, NameIfRange))
}

// SetIfRange sets the If-Range condition. Nil removes it.
func (req *RequestHeaders) SetIfRange(rc *RangeCondition) error {
	return errtrace.Wrap(setSingle(req.Store, NameIfRange, rc))
}

// IfUnmodifiedSince returns the non-modification date the request is
// conditional on, nil when absent.
func (req *RequestHeaders) IfUnmodifiedSince() (*Date, error) {
	return errtrace.Wrap2(getSingle[Date](req.Store, NameIfUnmodifiedSince))
}

// SetIfUnmodifiedSince sets the If-Unmodified-Since condition. Nil
// removes it.
func (req *RequestHeaders) SetIfUnmodifiedSince(d *Date) error {
	return errtrace.Wrap(setSingle(req.Store, NameIfUnmodifiedSince, d))
}

// MaxForwards returns the remaining forward count, nil when absent.
func (req *RequestHeaders) MaxForwards() (*Integer, error) {
	return errtrace.Wrap2(getSingle[Integer](req.Store, NameMaxForwards))
}

// SetMaxForwards sets the remaining forward count. Nil removes it.
func (req *RequestHeaders) SetMaxForwards(n *Integer) error {
	return errtrace.Wrap(setSingle(req.Store, NameMaxForwards, n))
}

// ProxyAuthorization returns the proxy credentials, nil when absent.
func (req *RequestHeaders) ProxyAuthorization() (*Authentication, error) {
	return errtrace.Wrap2(getSingle[Authentication](req.Store, NameProxyAuthorization))
}

// SetProxyAuthorization sets the proxy credentials. Nil removes them.
func (req *RequestHeaders) SetProxyAuthorization(auth *Authentication) error {
	return errtrace.Wrap(setSingle(req.Store, NameProxyAuthorization, auth))
}

// Range returns the requested byte ranges, nil when absent.
func (req *RequestHeaders) Range() (*RangeValue, error) {
	return errtrace.Wrap2(getSingle[RangeValue](req.Store, NameRange))
}

// SetRange sets the requested byte ranges. Nil removes them.
func (req *RequestHeaders) SetRange(rng *RangeValue) error {
	return errtrace.Wrap(setSingle(req.Store, NameRange, rng))
}

// Referer returns the referring resource, nil when absent.
func (req *RequestHeaders) Referer() (*URIRef, error) {
	return errtrace.Wrap2(getSingle[URIRef](req.Store, NameReferer))
}

// SetReferer sets the referring resource. Nil removes it.
func (req *RequestHeaders) SetReferer(u *URIRef) error {
	return errtrace.Wrap(setSingle(req.Store, NameReferer, u))
}

// TE returns the acceptable transfer codings for the response.
func (req *RequestHeaders) TE() *Collection[TransferCoding] {
	if req.te == nil {
		req.te = newCollection[TransferCoding](req.Store, NameTE)
	}
	return req.te
}

// UserAgent returns the client product tokens.
func (req *RequestHeaders) UserAgent() *Collection[Product] {
	if req.userAgent == nil {
		req.userAgent = newCollection[Product](req.Store, NameUserAgent)
	}
	return req.userAgent
}
