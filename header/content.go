package header

import (
	"braces.dev/errtrace"
)

// LengthFunc reports the entity body length on demand. The second result
// is false when the length is unknown.
type LengthFunc func() (int64, bool)

// ContentHeadersOptions configures a content header store.
type ContentHeadersOptions struct {
	StoreOptions

	// Length is queried once, on the first ContentLength access that finds
	// no explicit header, and a known length is stored as the header.
	// Returning false leaves the header absent.
	Length LengthFunc
}

// ContentHeaders is the header store describing an entity body. General,
// request and response header names are rejected.
type ContentHeaders struct {
	*Store

	lengthFn      LengthFunc
	lengthQueried bool

	allow           *Collection[Token]
	contentEncoding *Collection[Token]
	contentLanguage *Collection[Token]
}

// NewContentHeaders creates an empty content header store.
func NewContentHeaders(opts *ContentHeadersOptions) *ContentHeaders {
	var sopts *StoreOptions
	var lengthFn LengthFunc
	if opts != nil {
		sopts = &opts.StoreOptions
		lengthFn = opts.Length
	}
	return &ContentHeaders{
		Store:    NewStore(ContentRegistry(), sopts),
		lengthFn: lengthFn,
	}
}

// Clone returns a deep copy of the content headers. The length hook and
// its queried state carry over.
func (cnt *ContentHeaders) Clone() *ContentHeaders {
	return &ContentHeaders{
		Store:         cnt.Store.Clone(),
		lengthFn:      cnt.lengthFn,
		lengthQueried: cnt.lengthQueried,
	}
}

// AddFrom merges headers from src: names absent here are copied. The
// length hook of this store stays in place.
func (cnt *ContentHeaders) AddFrom(src *ContentHeaders) {
	if src == nil {
		return
	}
	cnt.Store.AddFrom(src.Store)
}

// Allow returns the methods supported by the resource.
func (cnt *ContentHeaders) Allow() *Collection[Token] {
	if cnt.allow == nil {
		cnt.allow = newCollection[Token](cnt.Store, NameAllow)
	}
	return cnt.allow
}

// ContentDisposition returns the presentation disposition, nil when
// absent.
func (cnt *ContentHeaders) ContentDisposition() (*Disposition, error) {
	return errtrace.Wrap2(getSingle[Disposition](cnt.Store, NameContentDisposition))
}

// SetContentDisposition sets the presentation disposition. Nil removes it.
func (cnt *ContentHeaders) SetContentDisposition(d *Disposition) error {
	return errtrace.Wrap(setSingle(cnt.Store, NameContentDisposition, d))
}

// ContentEncoding returns the applied content codings in order.
func (cnt *ContentHeaders) ContentEncoding() *Collection[Token] {
	if cnt.contentEncoding == nil {
		cnt.contentEncoding = newCollection[Token](cnt.Store, NameContentEncoding)
	}
	return cnt.contentEncoding
}

// ContentLanguage returns the natural languages of the body.
func (cnt *ContentHeaders) ContentLanguage() *Collection[Token] {
	if cnt.contentLanguage == nil {
		cnt.contentLanguage = newCollection[Token](cnt.Store, NameContentLanguage)
	}
	return cnt.contentLanguage
}

// ContentLength returns the body length in bytes, nil when unknown. With
// no explicit header the configured length hook is queried, once ever,
// and a known length is stored as the header.
func (cnt *ContentHeaders) ContentLength() (*Integer, error) {
	n, err := getSingle[Integer](cnt.Store, NameContentLength)
	if err != nil || n != nil {
		return n, errtrace.Wrap(err)
	}
	if cnt.lengthFn == nil || cnt.lengthQueried {
		return nil, nil
	}
	cnt.lengthQueried = true
	v, ok := cnt.lengthFn()
	if !ok {
		return nil, nil
	}
	length := Integer(v)
	if err := cnt.Store.SetValue(NameContentLength, length); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &length, nil
}

// SetContentLength sets the body length. Nil removes the header; the
// length hook is not consulted again either way.
func (cnt *ContentHeaders) SetContentLength(n *Integer) error {
	cnt.lengthQueried = true
	return errtrace.Wrap(setSingle(cnt.Store, NameContentLength, n))
}

// ContentLocation returns the resource location of the body, nil when
// absent.
func (cnt *ContentHeaders) ContentLocation() (*URIRef, error) {
	return errtrace.Wrap2(getSingle[URIRef](cnt.Store, NameContentLocation))
}

// SetContentLocation sets the resource location of the body. Nil removes
// it.
func (cnt *ContentHeaders) SetContentLocation(u *URIRef) error {
	return errtrace.Wrap(setSingle(cnt.Store, NameContentLocation, u))
}

// ContentMD5 returns the body integrity check, nil when absent.
func (cnt *ContentHeaders) ContentMD5() (*Binary, error) {
	return errtrace.Wrap2(getSingle[Binary](cnt.Store, NameContentMD5))
}

// SetContentMD5 sets the body integrity check. Nil removes it.
func (cnt *ContentHeaders) SetContentMD5(b *Binary) error {
	return errtrace.Wrap(setSingle(cnt.Store, NameContentMD5, b))
}

// ContentRange returns the range carried by a partial body, nil when
// absent.
func (cnt *ContentHeaders) ContentRange() (*ContentRange, error) {
	return errtrace.Wrap2(getSingle[ContentRange](cnt.Store, NameContentRange))
}

// SetContentRange sets the range of a partial body. Nil removes it.
func (cnt *ContentHeaders) SetContentRange(cr *ContentRange) error {
	return errtrace.Wrap(setSingle(cnt.Store, NameContentRange, cr))
}

// ContentType returns the media type of the body, nil when absent.
func (cnt *ContentHeaders) ContentType() (*MediaType, error) {
	return errtrace.Wrap2(getSingle[MediaType](cnt.Store, NameContentType))
}

// SetContentType sets the media type of the body. Nil removes it.
func (cnt *ContentHeaders) SetContentType(mt *MediaType) error {
	return errtrace.Wrap(setSingle(cnt.Store, NameContentType, mt))
}

// Expires returns the staleness date of the body, nil when absent.
func (cnt *ContentHeaders) Expires() (*Date, error) {
	return errtrace.Wrap2(getSingle[Date](cnt.Store, NameExpires))
}

// SetExpires sets the staleness date. Nil removes it.
func (cnt *ContentHeaders) SetExpires(d *Date) error {
	return errtrace.Wrap(setSingle(cnt.Store, NameExpires, d))
}

// LastModified returns the last modification date of the resource, nil
// when absent.
func (cnt *ContentHeaders) LastModified() (*Date, error) {
	return errtrace.Wrap2(getSingle[Date](cnt.Store, NameLastModified))
}

// SetLastModified sets the last modification date. Nil removes it.
func (cnt *ContentHeaders) SetLastModified(d *Date) error {
	return errtrace.Wrap(setSingle(cnt.Store, NameLastModified, d))
}
