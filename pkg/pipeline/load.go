package pipeline

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/annotick/annotick/pkg/errors"
	"github.com/annotick/annotick/pkg/observability"
	"github.com/annotick/annotick/pkg/spec"
)

// Load reads and validates the spec document, returning the parsed
// document and the raw bytes it was read from. The raw bytes feed the
// cache keys downstream.
func Load(ctx context.Context, opts Options) (*spec.Document, []byte, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, err
	}

	format, raw, err := loadRaw(opts)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, format, opts.SpecPath)

	doc, err := spec.Read(bytes.NewReader(raw), format)
	observability.Pipeline().OnLoadComplete(ctx, format, opts.SpecPath, tickCount(doc), time.Since(start), err)
	if err != nil {
		return nil, nil, err
	}
	return doc, raw, nil
}

// loadRaw resolves the spec format and raw bytes from either the inline
// data or the spec file.
func loadRaw(opts Options) (format string, raw []byte, err error) {
	if len(opts.SpecData) > 0 {
		return opts.Format, opts.SpecData, nil
	}

	format, err = spec.FormatForPath(opts.SpecPath)
	if err != nil {
		return "", nil, err
	}

	raw, err = os.ReadFile(opts.SpecPath)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read spec file")
	}
	return format, raw, nil
}

func tickCount(doc *spec.Document) int {
	if doc == nil {
		return 0
	}
	return len(doc.Ticks)
}
