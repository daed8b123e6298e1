package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errNoStore = errors.New("no record store configured (store.backend is none)")

// ListRecords prints the stored record IDs, one per line.
func ListRecords(ctx context.Context, app *App, out io.Writer) error {
	if app.Store == nil {
		return errNoStore
	}
	ids, err := app.Store.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

// ShowRecord prints the trace of a stored record, or the record itself as JSON.
func ShowRecord(ctx context.Context, app *App, id string, asJSON bool, out io.Writer) error {
	if app.Store == nil {
		return errNoStore
	}
	rec, err := app.Store.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("record %s: %w", id, err)
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	fmt.Fprintln(out, rec.Trace)
	return nil
}

// DeleteRecord removes a stored record.
func DeleteRecord(ctx context.Context, app *App, id string) error {
	if app.Store == nil {
		return errNoStore
	}
	return app.Store.Delete(ctx, id)
}
