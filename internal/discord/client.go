// Package discord provides some functions on top of the discordgo session.
package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bluele/gcache"
	"github.com/bwmarrin/discordgo"
	"github.com/mattn/go-colorable"
	"github.com/rusq/dlog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// MaxPageSize is the maximum number of messages the API returns per
	// history request.
	MaxPageSize = 100

	defGuildBatch = 200
	defCacheEvict = 10 * time.Minute
	defCacheSz    = 50

	botPrefix = "Bot "
)

var (
	// ErrAlreadyRunning is returned if the attempt is made to start the client,
	// while it is already connected.
	ErrAlreadyRunning = errors.New("already running, stop the running instance first")
	// ErrNotRunning is returned by the calls that require a connection.
	ErrNotRunning = errors.New("client is not connected")
	// ErrNoToken is returned by New if the token is empty.
	ErrNoToken = errors.New("empty token")
)

// sessioner is the subset of *discordgo.Session methods used by the Client.
type sessioner interface {
	Open() error
	Close() error
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	UserGuilds(limit int, beforeID, afterID string, withCounts bool, options ...discordgo.RequestOption) ([]*discordgo.UserGuild, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	PrivateChannels() []*discordgo.Channel
}

// dgSession adapts *discordgo.Session to sessioner.
type dgSession struct {
	*discordgo.Session
}

// PrivateChannels returns a copy of the private channels received in the
// READY event.
func (s dgSession) PrivateChannels() []*discordgo.Channel {
	s.State.RLock()
	defer s.State.RUnlock()
	ret := make([]*discordgo.Channel, len(s.State.PrivateChannels))
	copy(ret, s.State.PrivateChannels)
	return ret
}

type Client struct {
	s sessioner

	cache      gcache.Cache
	cacheEvict time.Duration

	mu      sync.RWMutex
	me      User
	running bool

	bot   bool
	debug bool
}

// Entity is the subset of functions defined on all entities of this package.
type Entity interface {
	GetID() string
	GetName() string
}

type cacheKey string

const (
	cacheGuilds cacheKey = "guilds"
)

func channelsKey(guildID string) cacheKey {
	return cacheKey("channels:" + guildID)
}

type Option func(c *Client)

// WithBot makes the client authenticate as a bot.  By default the token is
// treated as the user account token.
func WithBot(enable bool) Option {
	return func(c *Client) {
		c.bot = enable
	}
}

// WithCacheEvict sets the expiration of the guild and channel cache.
func WithCacheEvict(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			return
		}
		c.cacheEvict = d
	}
}

// WithDebug enables the debug output of the discordgo library.
func WithDebug(enable bool) Option {
	return func(c *Client) {
		c.debug = enable
	}
}

// withSession allows to substitute the discordgo session.
func withSession(s sessioner) Option {
	return func(c *Client) {
		c.s = s
	}
}

func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	// Client with the default parameters
	var c = Client{
		cacheEvict: defCacheEvict,
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.cache = gcache.New(defCacheSz).LFU().Expiration(c.cacheEvict).Build()

	if c.s == nil {
		if c.bot {
			token = botPrefix + token
		}
		dg, err := discordgo.New(token)
		if err != nil {
			return nil, err
		}
		if c.debug {
			dg.LogLevel = discordgo.LogDebug
			discordgo.Logger = zapLogger(newDebugLogger())
		}
		c.s = dgSession{dg}
	}
	return &c, nil
}

func newDebugLogger() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(colorable.NewColorableStdout()),
		zapcore.DebugLevel,
	))
}

// zapLogger returns the function that can be assigned to discordgo.Logger.
func zapLogger(lg *zap.Logger) func(msgL, caller int, format string, a ...any) {
	sugar := lg.Sugar()
	return func(msgL, _ int, format string, a ...any) {
		switch msgL {
		case discordgo.LogError:
			sugar.Errorf(format, a...)
		case discordgo.LogWarning:
			sugar.Warnf(format, a...)
		case discordgo.LogInformational:
			sugar.Infof(format, a...)
		default:
			sugar.Debugf(format, a...)
		}
	}
}

// Start opens the gateway connection and retrieves the current user.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrAlreadyRunning
	}

	if err := c.s.Open(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	u, err := c.s.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		if err := c.s.Close(); err != nil {
			dlog.Debugf("error closing: %s", err)
		}
		return fmt.Errorf("failed to get the current user: %w", err)
	}
	c.me = toUser(u)
	c.running = true
	dlog.Debug("auth success")

	return nil
}

func (c *Client) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return nil
	}
	c.running = false
	c.cache.Purge()
	return c.s.Close()
}

// Me returns the authenticated user.  It is zero until the client is started.
func (c *Client) Me() User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.me
}

func (c *Client) isRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}
