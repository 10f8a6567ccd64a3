// Package header provides facilities for working with HTTP/1.1 message headers
// defined by RFC 2616.
//
// This package offers typed representations, parsing, validation, normalization,
// comparison, rendering, and cloning of header values, together with role-scoped
// stores that enforce which headers may appear on requests, responses, and
// entity bodies. It exposes a generic Value interface implemented by concrete
// value types, a lazily parsing Store that keeps raw field text alongside parsed
// values, and adapters for JSON serialization.
//
// # Overview
//
// The package provides concrete value types for the standard HTTP/1.1 headers
// from RFC 2616, including Accept, Cache-Control, Content-Type, Date, ETag,
// Range, Transfer-Encoding, Via, and many others. Extension headers are handled
// as opaque [Text] values or through custom parsers installed in a [Registry].
//
// All value types implement the [Value] interface, which combines [fmt.Stringer]
// with Equal, IsValid, and Clone methods. This ensures consistent behavior
// across all value implementations for rendering, cloning, validation, and
// equality comparisons.
//
// # Stores and Roles
//
// A [Store] maps canonical header names to field values. Three role types wrap
// a store with typed accessors and role-specific name restrictions:
//
//   - [RequestHeaders] for headers sent by a client
//   - [ResponseHeaders] for headers sent by a server
//   - [ContentHeaders] for entity headers describing a message body
//
// Request and response stores expose their shared general headers (Connection,
// Date, Via and the rest of RFC 2616 Section 4.5) through [GeneralHeaders],
// a view bound to the same underlying store. Each role rejects the names that
// belong exclusively to the other roles, so a Content-Length set on a
// [RequestHeaders] store is an error rather than a silent pass-through.
//
// # Parsing
//
// Stores parse lazily. Raw field lines enter via [Store.AddRaw] and are kept
// verbatim until a typed accessor needs them:
//
//	hdrs := header.NewRequestHeaders(nil)
//	_ = hdrs.AddRaw(header.NameAccept, "text/html, application/json;q=0.8")
//	ranges, err := hdrs.Accept().Values()
//
// Parsed values are cached, and the raw text is retained so that rendering a
// store that was only ever read reproduces its input. Typed mutations drop the
// raw text for that name. A line that fails to parse stays in the store as raw
// text; the error is reported on every typed access until the value is replaced
// or removed.
//
// List-valued headers ignore empty list elements, so "a,, b" parses as two
// values. A line with no values at all, or with text left over after the last
// value, is a syntax error.
//
// # Header Naming and Canonicalization
//
// Header names are canonicalized using [textproto.CanonicalMIMEHeaderKey]
// combined with an internal mapping for HTTP-specific capitalization rules:
//
//	"Content-Md5" → "Content-MD5"
//	"Etag" → "ETag"
//	"Te" → "TE"
//	"Www-Authenticate" → "WWW-Authenticate"
//
// Use [CanonicName] to normalize any header name, or [Name.ToCanonic] as a
// convenient method alias. Stores canonicalize on every operation, so lookups
// are case-insensitive.
//
// # Special Values
//
// Three header values change message framing and are exposed as tri-state
// flags alongside the regular collections:
//
//   - "close" in Connection via [GeneralHeaders.ConnectionClose]
//   - "chunked" in Transfer-Encoding via [GeneralHeaders.TransferEncodingChunked]
//   - "100-continue" in Expect via [RequestHeaders.ExpectContinue]
//
// A flag reports [TernaryTrue] when the value is present, [TernaryFalse] when
// it was explicitly cleared through the setter, and [TernaryUnknown] otherwise.
// Reading a flag never forces the header line to be parsed; presence is
// detected in the raw comma-separated text. Merging stores with AddFrom copies
// a flag only when the destination has no opinion of its own.
//
// # Custom Parsers
//
// The role registries are fixed. Applications that need extension headers with
// typed values build their own [Registry] and store:
//
//	reg := header.NewRegistry(map[header.Name]header.Parser{
//		"X-Custom": myParser,
//	}, nil)
//	hdrs := header.NewStore(reg, nil)
//
// Parsers implement the [Parser] interface. A parser receives one raw field
// line at a time together with the values parsed from earlier lines of the
// same header, and reports whether the header admits multiple values and how
// they are joined when rendered. Names without a registered parser fall back
// to opaque [Text] values.
//
// # Parameters
//
// Many value types carry parameters (key-value pairs following the main value).
// Parameter rendering follows deterministic rules:
//
//   - Parameters are sorted alphabetically
//   - The "q" (quality) parameter always appears first
//
// Parameter comparison uses special semantics for value equality:
//
//   - Parameters present in both values must have matching values
//   - Non-special parameters present in only one value are ignored
//   - Special parameters (defined per value type) must be present in both or neither
//   - Unquoted parameter values are compared case-insensitively
//
// Parameter validation requires names to be valid tokens and values to be
// tokens or quoted strings.
//
// # Validation
//
// All value types provide an IsValid method that checks syntactic validity
// according to RFC 2616 grammar rules. Header names must be valid tokens; use
// [Name.IsValid] for explicit name validation. Stores reject invalid values at
// the door: [Store.SetValue] and [Store.AddValue] fail rather than store a
// value that could not be re-parsed.
//
// # Rendering
//
// Stores render to strings or write to an [io.Writer]:
//
//	str := hdrs.String()          // all field lines, CRLF terminated
//	n, err := hdrs.RenderTo(w)    // writes to io.Writer
//
// Each header renders as a single "Name: value" line. Multi-valued headers
// join their values with the parser's separator. Dates always render in the
// RFC 1123 fixed-length GMT form regardless of the format they were parsed
// from.
//
// # JSON Serialization
//
// Stores implement [encoding/json.Marshaler] and [encoding/json.Unmarshaler].
// The JSON format is an object of string arrays keyed by canonical name, one
// string per value or raw line:
//
//	{"Host":["example.com"],"Accept":["text/html, application/json;q=0.8"]}
//
// Unmarshaling validates names against the store's registry and replays each
// string through [Store.AddRaw], so a store round-trips through JSON with its
// raw text intact.
//
// # References
//
//   - RFC 2616 - Hypertext Transfer Protocol, HTTP/1.1
//   - RFC 1123 Section 5.2.14 - preferred date format
//   - RFC 2617 - HTTP Authentication
package header
