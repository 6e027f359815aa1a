// Package session implements the logged in Discord session: the client, the
// list of targets and the background loop that runs all client operations.
package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/rusq/dlog"

	"github.com/rusq/wipemydiscord/internal/bg"
	"github.com/rusq/wipemydiscord/internal/discord"
	"github.com/rusq/wipemydiscord/internal/waipu"
)

// Placeholder is the selection value shown before anything is selected.
const Placeholder = "Select Server"

const (
	msgLoggingIn    = "Logging into Discord..."
	msgNoToken      = "Please enter a valid access token."
	msgNoSelection  = "Please select a valid server."
	msgNotLoggedIn  = "Discord client is not logged in."
	msgLoginFailed  = "Error while logging in: %s"
	msgLoggedInAs   = "Logged in as %s"
	msgServersCount = "You are in %d servers."
	msgDMsCount     = "You have %d DM channels."
	msgNoDM         = "Could not find DM channel for %s"
	msgNoGuild      = "Could not find server: %s"
	msgCancelled    = "Operation cancelled"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrNoToken         = errors.New("empty token")
	ErrNoSelection     = errors.New("nothing selected")
)

// Client is the Discord client that the session drives.
type Client interface {
	waipu.Discorder
	Start(ctx context.Context) error
	Stop() error
}

// DialFunc creates a new client for the token.
type DialFunc func(token string) (Client, error)

type Session struct {
	log      *dlog.Logger
	loop     *bg.Loop
	stopLoop bg.StopFunc

	dial       DialFunc
	clientOpts []discord.Option
	onTargets  func([]waipu.Target)
	debug      bool

	mu         sync.RWMutex
	cl         Client
	idx        *index
	connecting bool
}

type Option func(*Session)

// WithDialer overrides the client constructor.
func WithDialer(fn DialFunc) Option {
	return func(s *Session) {
		if fn != nil {
			s.dial = fn
		}
	}
}

// WithTargetsFunc sets the function that receives the list of targets after
// login.
func WithTargetsFunc(fn func([]waipu.Target)) Option {
	return func(s *Session) {
		if fn != nil {
			s.onTargets = fn
		}
	}
}

// WithClientOptions sets the options of the default client constructor.
func WithClientOptions(opts ...discord.Option) Option {
	return func(s *Session) {
		s.clientOpts = append(s.clientOpts, opts...)
	}
}

// WithDebug enables debug messages in the session log.
func WithDebug(enable bool) Option {
	return func(s *Session) {
		s.debug = enable
	}
}

// New creates a new session that logs to w and starts its background loop.
// Close must be called to release resources.
func New(w io.Writer, opts ...Option) *Session {
	s := &Session{
		onTargets: func([]waipu.Target) {},
	}
	s.dial = s.defaultDial
	for _, opt := range opts {
		opt(s)
	}
	s.log = dlog.New(w, "", dlog.Flags(), s.debug)
	s.loop, s.stopLoop = bg.Start()
	return s
}

func (s *Session) defaultDial(token string) (Client, error) {
	return discord.New(token, s.clientOpts...)
}

// Login connects to Discord in background.  The returned job finishes once
// the client is connected and the targets are known.
func (s *Session) Login(ctx context.Context, token string) (*bg.Job[discord.User], error) {
	if token == "" {
		s.log.Printf(msgNoToken)
		return nil, ErrNoToken
	}

	s.mu.Lock()
	if s.cl != nil || s.connecting {
		s.mu.Unlock()
		return nil, ErrAlreadyLoggedIn
	}
	s.connecting = true
	s.mu.Unlock()

	s.log.Printf(msgLoggingIn)
	job, err := bg.Submit(ctx, s.loop, "login", func(ctx context.Context) (discord.User, error) {
		defer s.setConnecting(false)
		me, err := s.login(ctx, token)
		if err != nil {
			s.log.Printf(msgLoginFailed, err)
			return discord.User{}, err
		}
		return me, nil
	})
	if err != nil {
		s.setConnecting(false)
		return nil, err
	}
	return job, nil
}

func (s *Session) login(ctx context.Context, token string) (discord.User, error) {
	cl, err := s.dial(token)
	if err != nil {
		return discord.User{}, err
	}
	if err := cl.Start(ctx); err != nil {
		return discord.User{}, err
	}
	me := cl.Me()
	s.log.Printf(msgLoggedInAs, me.Name)

	tt, err := waipu.Targets(ctx, cl)
	if err != nil {
		if err := cl.Stop(); err != nil {
			s.log.Debugf("stop error: %s", err)
		}
		return discord.User{}, err
	}
	guilds, dms := waipu.Count(tt)
	s.log.Printf(msgServersCount, guilds)
	s.log.Printf(msgDMsCount, dms)

	s.mu.Lock()
	s.cl = cl
	s.idx = newIndex(tt)
	s.mu.Unlock()

	s.onTargets(tt)
	return me, nil
}

func (s *Session) setConnecting(v bool) {
	s.mu.Lock()
	s.connecting = v
	s.mu.Unlock()
}

// Delete schedules the deletion of the own messages in the target with the
// given label.  If the session is not logged in, it returns ErrNotLoggedIn
// without contacting Discord.
func (s *Session) Delete(ctx context.Context, label string) (*bg.Job[waipu.Stats], error) {
	if label == "" || label == Placeholder {
		s.log.Printf(msgNoSelection)
		return nil, ErrNoSelection
	}

	s.mu.RLock()
	cl, idx := s.cl, s.idx
	s.mu.RUnlock()
	if cl == nil {
		s.log.Printf(msgNotLoggedIn)
		return nil, ErrNotLoggedIn
	}

	return bg.Submit(ctx, s.loop, "delete", func(ctx context.Context) (waipu.Stats, error) {
		t, err := idx.Resolve(label)
		if err != nil {
			s.logResolveErr(label, err)
			return waipu.Stats{}, err
		}
		st, err := waipu.New(cl, s.log).Wipe(ctx, t)
		if err != nil && errors.Is(err, context.Canceled) {
			s.log.Printf(msgCancelled)
		}
		return st, err
	})
}

func (s *Session) logResolveErr(label string, err error) {
	switch {
	case errors.Is(err, waipu.ErrNoDM):
		s.log.Printf(msgNoDM, strings.TrimSpace(strings.TrimPrefix(label, waipu.DMPrefix)))
	case errors.Is(err, waipu.ErrNoGuild):
		s.log.Printf(msgNoGuild, label)
	default:
		s.log.Printf("ERROR: %s", err)
	}
}

// Printf writes the message to the session log.
func (s *Session) Printf(format string, a ...any) {
	s.log.Printf(format, a...)
}

// Debugf writes the debug message to the session log.
func (s *Session) Debugf(format string, a ...any) {
	s.log.Debugf(format, a...)
}

// LoggedIn returns true if the session has a connected client.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cl != nil
}

// Me returns the logged in user.
func (s *Session) Me() discord.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cl == nil {
		return discord.User{}
	}
	return s.cl.Me()
}

// Targets returns the servers and DMs known at login.
func (s *Session) Targets() []waipu.Target {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.idx == nil {
		return nil
	}
	return s.idx.Targets()
}

// Close stops the background loop, cancelling the running job, and
// disconnects the client.
func (s *Session) Close() error {
	if err := s.stopLoop(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cl == nil {
		return nil
	}
	err := s.cl.Stop()
	s.cl = nil
	s.idx = nil
	return err
}
