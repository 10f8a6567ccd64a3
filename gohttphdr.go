package gohttphdr

import (
	"github.com/ghettovoice/gohttphdr/header"
)

// Version is the current gohttphdr package version
var Version = "0.0.0"

// NewRequestHeaders returns an empty header store for request messages.
func NewRequestHeaders() *header.RequestHeaders {
	return header.NewRequestHeaders(nil)
}

// NewResponseHeaders returns an empty header store for response messages.
func NewResponseHeaders() *header.ResponseHeaders {
	return header.NewResponseHeaders(nil)
}

// NewContentHeaders returns an empty header store for entity headers.
func NewContentHeaders() *header.ContentHeaders {
	return header.NewContentHeaders(nil)
}
