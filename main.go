package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rusq/dlog"
	"github.com/rusq/osenv/v2"
	"github.com/rusq/tracer"
	"github.com/schollz/progressbar/v3"

	"github.com/rusq/wipemydiscord/internal/authflow"
	"github.com/rusq/wipemydiscord/internal/discord"
	"github.com/rusq/wipemydiscord/internal/session"
	"github.com/rusq/wipemydiscord/internal/tui"
	"github.com/rusq/wipemydiscord/internal/waipu"
)

const AppName = "Wipe My Discord"

var (
	version   = "dev"
	builtOn   = "just now"
	gitCommit = ""
	gitRef    = ""

	versionSig = fmt.Sprintf("%s %s (built %s)", AppName, version, builtOn)
)

var _ = godotenv.Load() // load environment variables from .env, if present

type Params struct {
	Token string
	Bot   bool

	List  bool
	Batch labels

	Version bool
	Verbose bool
	Trace   string
}

func main() {
	p, err := parseCmdLine()
	if err != nil {
		dlog.Fatal(err)
	}
	if p.Version {
		ver(os.Stdout)
		return
	}

	dlog.SetDebug(p.Verbose)

	if err := run(context.Background(), p); err != nil {
		dlog.Fatal(err)
	}
}

// labels is the list of server names, DM labels or IDs.  The flag can be
// repeated, each value may hold several comma separated labels.
type labels []string

func (l *labels) Set(val string) error {
	for s := range strings.SplitSeq(val, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		*l = append(*l, s)
	}
	if len(*l) == 0 {
		return fmt.Errorf("no server or DM in %q", val)
	}
	return nil
}

func (l *labels) String() string {
	return strings.Join(*l, ",")
}

func parseCmdLine() (Params, error) {
	var p Params
	{
		flag.StringVar(&p.Token, "token", osenv.Secret("DISCORD_TOKEN", ""), "Discord access `token`")
		flag.BoolVar(&p.Bot, "bot", false, "the token is a bot token")
		flag.BoolVar(&p.List, "list", false, "list servers, DMs and their IDs")
		flag.Var(&p.Batch, "wipe", "batch mode, specify comma separated server names, DM labels (\"DM: name\") or IDs")

		flag.BoolVar(&p.Version, "v", false, "print version and exit")
		flag.BoolVar(&p.Verbose, "verbose", osenv.Value("DEBUG", "") != "", "verbose output")
		flag.StringVar(&p.Trace, "trace", osenv.Value("TRACE_FILE", ""), "trace `filename`")

		flag.Parse()
	}
	return p, nil
}

func run(ctx context.Context, p Params) error {
	if p.Trace != "" {
		tr := tracer.New(p.Trace)
		if err := tr.Start(); err != nil {
			return err
		}
		defer tr.End()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !p.List && len(p.Batch) == 0 {
		// run UI
		app := tui.New(ctx,
			session.WithClientOptions(discord.WithBot(p.Bot)),
			session.WithDebug(p.Verbose),
		)
		return app.Run(ctx, p.Token)
	}

	header(os.Stdout)

	token, err := authflow.NewTermAuth(p.Token).Token(ctx)
	if err != nil {
		return err
	}
	cl, err := discord.New(token, discord.WithBot(p.Bot), discord.WithDebug(p.Verbose))
	if err != nil {
		return err
	}

	done, finished := fakeProgress("Connecting to Discord . . .", 0)
	err = cl.Start(ctx)
	close(done)
	<-finished
	if err != nil {
		return err
	}
	defer func() {
		if err := cl.Stop(); err != nil {
			dlog.Printf("stop error: %s", err)
		}
	}()
	dlog.Printf("logged in as %s", cl.Me().Name)

	if p.List {
		return waipu.List(ctx, os.Stdout, cl)
	}
	return waipu.Batch(ctx, cl, p.Batch)
}

// fakeProgress starts a fake spinner and returns a channel that must be closed
// once the operation completes. interval is interval between iterations. If not
// set, will default to 50ms.
func fakeProgress(title string, interval time.Duration) (chan<- struct{}, <-chan struct{}) {
	if interval == 0 {
		interval = 50 * time.Millisecond
	}
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		bar := progressbar.NewOptions(
			-1,
			progressbar.OptionSetDescription(title),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSpinnerType(9),
		)
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-done:
				bar.Finish()
				fmt.Println()
				close(finished)
				return
			case <-t.C:
				bar.Add(1)
			}
		}
	}()
	return done, finished
}

func header(w io.Writer) {
	fmt.Fprintf(w,
		"%s\n%s\n%s\n", versionSig, strings.Repeat("-", len(versionSig)),
		color.New(color.Italic).Sprint("Only your own messages are deleted."),
	)
	fmt.Fprintln(w)
}

func ver(w io.Writer) {
	header(w)
	if gitCommit != "" {
		fmt.Fprintf(w, "commit: %s ref: %s\n", gitCommit, gitRef)
	}
}
