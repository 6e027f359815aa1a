package waipu

import (
	"context"
	"fmt"
	"io"
)

// List prints the targets available for wiping, servers first.
func List(ctx context.Context, w io.Writer, cl Discorder) error {
	targets, err := Targets(ctx, cl)
	if err != nil {
		return err
	}
	for _, t := range targets {
		if _, err := fmt.Fprintf(w, "%20s - %s\n", t.ID, t.Label()); err != nil {
			return err
		}
	}
	return nil
}
