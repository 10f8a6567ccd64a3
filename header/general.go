package header

import (
	"braces.dev/errtrace"
)

// GeneralHeaders is a typed view over the headers shared by requests and
// responses: cache directives, connection management, the message date and
// the transfer properties. It is bound to the store of its owning
// [RequestHeaders] or [ResponseHeaders] and holds no header state of its
// own.
type GeneralHeaders struct {
	hdrs *Store

	cacheControl     *Collection[NameValue]
	connection       *Collection[Token]
	pragma           *Collection[NameValue]
	trailer          *Collection[Token]
	transferEncoding *Collection[TransferCoding]
	upgrade          *Collection[Product]
	via              *Collection[ViaEntry]
	warning          *Collection[WarningEntry]
}

func newGeneralHeaders(hdrs *Store) *GeneralHeaders {
	return &GeneralHeaders{hdrs: hdrs}
}

// CacheControl returns the Cache-Control directives.
func (gen *GeneralHeaders) CacheControl() *Collection[NameValue] {
	if gen.cacheControl == nil {
		gen.cacheControl = newCollection[NameValue](gen.hdrs, NameCacheControl)
	}
	return gen.cacheControl
}

// Connection returns the Connection options.
func (gen *GeneralHeaders) Connection() *Collection[Token] {
	if gen.connection == nil {
		gen.connection = newCollection[Token](gen.hdrs, NameConnection)
	}
	return gen.connection
}

// ConnectionClose reports the tri-state of the "close" connection option.
// Unparsed raw text is scanned for the token, never parsed.
func (gen *GeneralHeaders) ConnectionClose() Ternary {
	return gen.hdrs.specialFlag(NameConnection, TokenClose)
}

// SetConnectionClose moves the "close" connection option: TernaryTrue adds
// it, TernaryFalse retracts it explicitly and TernaryUnknown clears any
// record of it.
func (gen *GeneralHeaders) SetConnectionClose(flag Ternary) error {
	return errtrace.Wrap(gen.hdrs.setSpecialFlag(NameConnection, TokenClose, flag))
}

// Date returns the message origination date, nil when absent.
func (gen *GeneralHeaders) Date() (*Date, error) {
	return errtrace.Wrap2(getSingle[Date](gen.hdrs, NameDate))
}

// SetDate sets the Date header. A nil date removes it.
func (gen *GeneralHeaders) SetDate(d *Date) error {
	return errtrace.Wrap(setSingle(gen.hdrs, NameDate, d))
}

// Pragma returns the Pragma directives.
func (gen *GeneralHeaders) Pragma() *Collection[NameValue] {
	if gen.pragma == nil {
		gen.pragma = newCollection[NameValue](gen.hdrs, NamePragma)
	}
	return gen.pragma
}

// Trailer returns the names announced to arrive in the message trailer.
func (gen *GeneralHeaders) Trailer() *Collection[Token] {
	if gen.trailer == nil {
		gen.trailer = newCollection[Token](gen.hdrs, NameTrailer)
	}
	return gen.trailer
}

// TransferEncoding returns the applied transfer codings in order.
func (gen *GeneralHeaders) TransferEncoding() *Collection[TransferCoding] {
	if gen.transferEncoding == nil {
		gen.transferEncoding = newCollection[TransferCoding](gen.hdrs, NameTransferEncoding)
	}
	return gen.transferEncoding
}

// TransferEncodingChunked reports the tri-state of the chunked transfer
// coding. Unparsed raw text is scanned for the token, never parsed.
func (gen *GeneralHeaders) TransferEncodingChunked() Ternary {
	return gen.hdrs.specialFlag(NameTransferEncoding, TransferCodingChunked)
}

// SetTransferEncodingChunked moves the chunked transfer coding:
// TernaryTrue adds it, TernaryFalse retracts it explicitly and
// TernaryUnknown clears any record of it.
func (gen *GeneralHeaders) SetTransferEncodingChunked(flag Ternary) error {
	return errtrace.Wrap(gen.hdrs.setSpecialFlag(NameTransferEncoding, TransferCodingChunked, flag))
}

// Upgrade returns the protocols offered for switching.
func (gen *GeneralHeaders) Upgrade() *Collection[Product] {
	if gen.upgrade == nil {
		gen.upgrade = newCollection[Product](gen.hdrs, NameUpgrade)
	}
	return gen.upgrade
}

// Via returns the intermediaries the message passed through.
func (gen *GeneralHeaders) Via() *Collection[ViaEntry] {
	if gen.via == nil {
		gen.via = newCollection[ViaEntry](gen.hdrs, NameVia)
	}
	return gen.via
}

// Warning returns the carried warnings.
func (gen *GeneralHeaders) Warning() *Collection[WarningEntry] {
	if gen.warning == nil {
		gen.warning = newCollection[WarningEntry](gen.hdrs, NameWarning)
	}
	return gen.warning
}

// mergeFlagsFrom copies the special value flags that are unknown here and
// known in src.
func (gen *GeneralHeaders) mergeFlagsFrom(src *GeneralHeaders) error {
	if gen.ConnectionClose() == TernaryUnknown {
		if flag := src.ConnectionClose(); flag != TernaryUnknown {
			if err := gen.SetConnectionClose(flag); err != nil {
				return errtrace.Wrap(err)
			}
		}
	}
	if gen.TransferEncodingChunked() == TernaryUnknown {
		if flag := src.TransferEncodingChunked(); flag != TernaryUnknown {
			if err := gen.SetTransferEncodingChunked(flag); err != nil {
				return errtrace.Wrap(err)
			}
		}
	}
	return nil
}
