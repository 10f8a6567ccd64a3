package header

import (
	"log/slog"

	"github.com/ghettovoice/gohttphdr/internal/log"
)

// StoreOptions configures a header store. The zero value and nil are both
// valid configurations.
type StoreOptions struct {
	// Logger receives debug records about lazy parses, rejected names and
	// merges. Defaults to a logger that discards everything.
	Logger *slog.Logger
}

func (opts *StoreOptions) log() *slog.Logger {
	if opts == nil || opts.Logger == nil {
		return log.Default()
	}
	return opts.Logger
}
