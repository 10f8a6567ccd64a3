package header

import (
	"maps"
	"sync"
)

// Registry binds the header names of one message role to their parsers
// and records the names that belong to other roles. Registries are built
// once per process and shared read-only between stores.
type Registry struct {
	parsers map[Name]Parser
	invalid map[Name]bool
}

// NewRegistry builds a registry from name to parser bindings plus the
// names to reject. Names are canonicalized. Custom registries serve
// stores of extension headers; the role registries of this package are
// fixed.
func NewRegistry(parsers map[Name]Parser, invalid []Name) *Registry {
	reg := &Registry{
		parsers: make(map[Name]Parser, len(parsers)),
		invalid: make(map[Name]bool, len(invalid)),
	}
	for name, p := range parsers {
		reg.parsers[CanonicName(name)] = p
	}
	for _, name := range invalid {
		reg.invalid[CanonicName(name)] = true
	}
	return reg
}

// Parser returns the parser bound to the canonical name, nil when the
// name is not known to this registry.
func (reg *Registry) Parser(name Name) Parser {
	if reg == nil {
		return nil
	}
	return reg.parsers[name]
}

// Forbids reports whether the canonical name belongs to another role and
// must be rejected by stores validating against this registry.
func (reg *Registry) Forbids(name Name) bool {
	if reg == nil {
		return false
	}
	return reg.invalid[name]
}

func generalParsers() map[Name]Parser {
	return map[Name]Parser{
		NameCacheControl:     nameValueListParser{},
		NameConnection:       tokenListParser{},
		NameDate:             dateParser{},
		NamePragma:           nameValueListParser{},
		NameTrailer:          tokenListParser{},
		NameTransferEncoding: transferCodingParser{},
		NameUpgrade:          productParser{},
		NameVia:              viaParser{},
		NameWarning:          warningParser{},
	}
}

func requestParsers() map[Name]Parser {
	return map[Name]Parser{
		NameAccept:             mediaRangeParser{},
		NameAcceptCharset:      weightedListParser{},
		NameAcceptEncoding:     weightedListParser{},
		NameAcceptLanguage:     weightedListParser{},
		NameAuthorization:      authParser{},
		NameExpect:             nameValueListParser{},
		NameFrom:               textParser{},
		NameHost:               hostParser{},
		NameIfMatch:            entityTagParser{list: true},
		NameIfModifiedSince:    dateParser{},
		NameIfNoneMatch:        entityTagParser{list: true},
		NameIfRange:            rangeConditionParser{},
		NameIfUnmodifiedSince:  dateParser{},
		NameMaxForwards:        integerParser{bits: 32},
		NameProxyAuthorization: authParser{},
		NameRange:              rangeParser{},
		NameReferer:            uriParser{},
		NameTE:                 transferCodingParser{},
		NameUserAgent:          productParser{comments: true},
	}
}

func responseParsers() map[Name]Parser {
	return map[Name]Parser{
		NameAcceptRanges:      tokenListParser{},
		NameAge:               integerParser{bits: 64},
		NameETag:              entityTagParser{},
		NameLocation:          uriParser{},
		NameProxyAuthenticate: authParser{},
		NameRetryAfter:        retryConditionParser{},
		NameServer:            productParser{comments: true},
		NameVary:              tokenListParser{},
		NameWWWAuthenticate:   authParser{},
	}
}

func contentParsers() map[Name]Parser {
	return map[Name]Parser{
		NameAllow:              tokenListParser{},
		NameContentDisposition: dispositionParser{},
		NameContentEncoding:    tokenListParser{},
		NameContentLanguage:    tokenListParser{},
		NameContentLength:      integerParser{bits: 64},
		NameContentLocation:    uriParser{},
		NameContentMD5:         binaryParser{},
		NameContentRange:       contentRangeParser{},
		NameContentType:        mediaTypeParser{},
		NameExpires:            dateParser{},
		NameLastModified:       dateParser{},
	}
}

func invalidNames(roles ...map[Name]Parser) map[Name]bool {
	invalid := map[Name]bool{}
	for _, parsers := range roles {
		for name := range parsers {
			invalid[name] = true
		}
	}
	return invalid
}

// GeneralRegistry returns the registry of the headers shared by requests
// and responses.
var GeneralRegistry = sync.OnceValue(func() *Registry {
	return &Registry{
		parsers: generalParsers(),
		invalid: invalidNames(requestParsers(), responseParsers(), contentParsers()),
	}
})

// RequestRegistry returns the registry of request stores: general plus
// request headers.
var RequestRegistry = sync.OnceValue(func() *Registry {
	parsers := generalParsers()
	maps.Copy(parsers, requestParsers())
	return &Registry{
		parsers: parsers,
		invalid: invalidNames(responseParsers(), contentParsers()),
	}
})

// ResponseRegistry returns the registry of response stores: general plus
// response headers.
var ResponseRegistry = sync.OnceValue(func() *Registry {
	parsers := generalParsers()
	maps.Copy(parsers, responseParsers())
	return &Registry{
		parsers: parsers,
		invalid: invalidNames(requestParsers(), contentParsers()),
	}
})

// ContentRegistry returns the registry of content stores.
var ContentRegistry = sync.OnceValue(func() *Registry {
	return &Registry{
		parsers: contentParsers(),
		invalid: invalidNames(generalParsers(), requestParsers(), responseParsers()),
	}
})
