package waipu

import (
	"context"
	"fmt"
	"runtime/trace"

	"github.com/rusq/dlog"

	"github.com/rusq/wipemydiscord/internal/discord"
)

// Stats is the summary of the wipe.
type Stats struct {
	Channels int // channels scanned
	Skipped  int // channels that could not be read to the end
	Scanned  int // messages looked at
	Found    int // own messages found
	Deleted  int // own messages deleted (or already gone)
	Failed   int // own messages that could not be deleted
}

func (s *Stats) add(o Stats) {
	s.Channels += o.Channels
	s.Skipped += o.Skipped
	s.Scanned += o.Scanned
	s.Found += o.Found
	s.Deleted += o.Deleted
	s.Failed += o.Failed
}

// Wiper deletes the messages of the current user.
type Wiper struct {
	cl  Discorder
	log Logger

	progress func(n int)
}

type Option func(*Wiper)

// WithProgress sets the callback that is called with the number of messages
// in each history page scanned.
func WithProgress(fn func(n int)) Option {
	return func(w *Wiper) {
		w.progress = fn
	}
}

// New creates a new Wiper.  If lg is nil, the global dlog logger is used.
func New(cl Discorder, lg Logger, opts ...Option) *Wiper {
	if lg == nil {
		lg = dlogger{}
	}
	w := &Wiper{cl: cl, log: lg, progress: func(int) {}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type dlogger struct{}

func (dlogger) Printf(format string, a ...any) { dlog.Printf(format, a...) }

// Wipe deletes all messages authored by the current user in the target.
// Errors on individual messages and channels are logged and do not stop the
// wipe, the only error returned is the context error.
func (w *Wiper) Wipe(ctx context.Context, t Target) (Stats, error) {
	ctx, task := trace.NewTask(ctx, "Wipe")
	defer task.End()

	var (
		total Stats
		err   error
	)
	switch t.Kind {
	case KindDM:
		w.log.Printf("Deleting messages in DM with: %s", t.Name)
		total, err = w.wipeChannel(ctx, t.Channel)
	default:
		w.log.Printf("Deleting messages in server: %s", t.Name)
		total, err = w.wipeGuild(ctx, t)
	}
	if err != nil {
		return total, err
	}

	if total.Found == 0 {
		w.log.Printf("No messages found for deletion in %s.", t.Name)
	} else {
		w.log.Printf("%d messages deleted in %q", total.Deleted, t.Name)
	}
	return total, nil
}

func (w *Wiper) wipeGuild(ctx context.Context, t Target) (Stats, error) {
	var total Stats
	chans, err := w.cl.TextChannels(ctx, t.ID)
	if err != nil {
		if discord.IsPermission(err) {
			w.log.Printf("Missing permissions to list channels in %s", t.Name)
		} else {
			w.log.Printf("Error listing channels in %s: %s", t.Name, err)
		}
		return total, ctx.Err()
	}
	for _, ch := range chans {
		st, err := w.wipeChannel(ctx, ch)
		total.add(st)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// wipeChannel scans the channel history, deleting own messages.  It returns
// an error only if ctx is cancelled.
func (w *Wiper) wipeChannel(ctx context.Context, ch discord.Channel) (Stats, error) {
	ctx, task := trace.NewTask(ctx, "wipeChannel")
	defer task.End()
	trace.Logf(ctx, "channel", "%s (%s)", ch.Name, ch.ID)

	me := w.cl.Me().ID
	st := Stats{Channels: 1}

	var before string
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		page, err := w.cl.Messages(ctx, ch.ID, before)
		if err != nil {
			if ctx.Err() != nil {
				return st, ctx.Err()
			}
			st.Skipped++
			if discord.IsPermission(err) {
				w.log.Printf("Missing permissions to read messages in %s", ch.Name)
			} else {
				w.log.Printf("Error reading messages in %s: %s", ch.Name, err)
			}
			return st, nil
		}
		st.Scanned += len(page)
		w.progress(len(page))

		for _, m := range page {
			if m.AuthorID != me {
				continue
			}
			st.Found++
			if err := w.delete(ctx, ch, m); err != nil {
				if ctx.Err() != nil {
					return st, ctx.Err()
				}
				st.Failed++
				continue
			}
			st.Deleted++
		}

		if len(page) < discord.MaxPageSize {
			break
		}
		before = page[len(page)-1].ID
	}
	return st, nil
}

func (w *Wiper) delete(ctx context.Context, ch discord.Channel, m discord.Message) error {
	w.log.Printf("Deleting message: %s", m.Content)
	err := w.cl.DeleteMessage(ctx, ch.ID, m.ID)
	switch {
	case err == nil:
		return nil
	case discord.IsUnknownMessage(err):
		trace.Logf(ctx, "logic", "message %s is already gone", m.ID)
		return nil
	case discord.IsPermission(err):
		w.log.Printf("Missing permissions to delete messages in %s", ch.Name)
	default:
		w.log.Printf("Error deleting message in %s: %s", ch.Name, err)
	}
	return fmt.Errorf("message %s: %w", m.ID, err)
}
