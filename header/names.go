package header

// General header names, valid on requests and responses.
const (
	NameCacheControl     Name = "Cache-Control"
	NameConnection       Name = "Connection"
	NameDate             Name = "Date"
	NamePragma           Name = "Pragma"
	NameTrailer          Name = "Trailer"
	NameTransferEncoding Name = "Transfer-Encoding"
	NameUpgrade          Name = "Upgrade"
	NameVia              Name = "Via"
	NameWarning          Name = "Warning"
)

// Request header names.
const (
	NameAccept             Name = "Accept"
	NameAcceptCharset      Name = "Accept-Charset"
	NameAcceptEncoding     Name = "Accept-Encoding"
	NameAcceptLanguage     Name = "Accept-Language"
	NameAuthorization      Name = "Authorization"
	NameExpect             Name = "Expect"
	NameFrom               Name = "From"
	NameHost               Name = "Host"
	NameIfMatch            Name = "If-Match"
	NameIfModifiedSince    Name = "If-Modified-Since"
	NameIfNoneMatch        Name = "If-None-Match"
	NameIfRange            Name = "If-Range"
	NameIfUnmodifiedSince  Name = "If-Unmodified-Since"
	NameMaxForwards        Name = "Max-Forwards"
	NameProxyAuthorization Name = "Proxy-Authorization"
	NameRange              Name = "Range"
	NameReferer            Name = "Referer"
	NameTE                 Name = "TE"
	NameUserAgent          Name = "User-Agent"
)

// Response header names.
const (
	NameAcceptRanges      Name = "Accept-Ranges"
	NameAge               Name = "Age"
	NameETag              Name = "ETag"
	NameLocation          Name = "Location"
	NameProxyAuthenticate Name = "Proxy-Authenticate"
	NameRetryAfter        Name = "Retry-After"
	NameServer            Name = "Server"
	NameVary              Name = "Vary"
	NameWWWAuthenticate   Name = "WWW-Authenticate"
)

// Content header names, describing the entity body.
const (
	NameAllow              Name = "Allow"
	NameContentDisposition Name = "Content-Disposition"
	NameContentEncoding    Name = "Content-Encoding"
	NameContentLanguage    Name = "Content-Language"
	NameContentLength      Name = "Content-Length"
	NameContentLocation    Name = "Content-Location"
	NameContentMD5         Name = "Content-MD5"
	NameContentRange       Name = "Content-Range"
	NameContentType        Name = "Content-Type"
	NameExpires            Name = "Expires"
	NameLastModified       Name = "Last-Modified"
)
