// Package transfer moves all saved groups in and out of tidy as one document.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/tabgroup"
)

// Import replaces every saved group with the document read from In.
type Import struct {
	State *state.Store
	In    io.Reader
}

func (i *Import) Do(ctx context.Context) error {
	if i.State == nil {
		return errors.New("can not import, no state")
	}
	if i.In == nil {
		return errors.New("can not import, no input")
	}
	raw, err := io.ReadAll(i.In)
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}
	return i.State.ImportData(ctx, raw)
}

// Export writes every saved group as a document Import accepts.
type Export struct {
	Exporter store.Exporter
	Out      io.Writer
}

func (e *Export) Do(ctx context.Context) error {
	if e.Exporter == nil {
		return errors.New("can not export, no store")
	}
	p, err := e.Exporter.Export(ctx)
	if err != nil {
		return err
	}
	data, err := tabgroup.MarshalPayload(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.Out, string(data))
	return err
}
