package waipu

import (
	"context"
	"fmt"

	"github.com/rusq/dlog"
	"github.com/schollz/progressbar/v3"
)

// Batch wipes the messages in each target given by its label or ID.  Targets
// that can't be found are skipped.
func Batch(ctx context.Context, cl Discorder, labels []string) error {
	targets, err := Targets(ctx, cl)
	if err != nil {
		return err
	}
	for _, label := range labels {
		st, err := wipe(ctx, cl, targets, label)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			dlog.Printf("SKIPPED: %s: %s", label, err)
			continue
		}
		dlog.Printf("OK: %s: messages found: %d, deleted: %d, failed: %d", label, st.Found, st.Deleted, st.Failed)
	}
	return nil
}

func wipe(ctx context.Context, cl Discorder, targets []Target, label string) (Stats, error) {
	t, err := Resolve(targets, label)
	if err != nil {
		return Stats{}, err
	}

	pb := progressbar.New(-1)
	pb.Describe(fmt.Sprintf("scanning %s (%s)", t.Label(), t.ID))
	pb.RenderBlank()
	w := New(cl, progressLogger{pb}, WithProgress(func(n int) {
		pb.Add(n)
	}))
	st, err := w.Wipe(ctx, t)
	pb.Finish()
	fmt.Print("\r")
	return st, err
}

// progressLogger clears the progress bar before writing the log line.
type progressLogger struct {
	pb *progressbar.ProgressBar
}

func (l progressLogger) Printf(format string, a ...any) {
	l.pb.Clear()
	dlog.Printf(format, a...)
}
