// Command testui emulates the work of the Text UI for making screenshots
package main

import (
	"context"
	"math/rand/v2"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rusq/dlog"

	"github.com/rusq/wipemydiscord/internal/discord"
	"github.com/rusq/wipemydiscord/internal/session"
	"github.com/rusq/wipemydiscord/internal/tui"
)

const (
	fakeLoginDelay  = 1 * time.Second
	fakeReadDelay   = 20 * time.Millisecond
	fakeDeleteDelay = 5 * time.Millisecond
	maxFakeMessages = 500
)

var fakeGuilds = []string{
	"Get to the Chopper",
	"Kelly Green",
	"Invest with us, quickly!",
	"NFT: pay $$$ get JPG",
	"Biohacking: your butt",
	"Crypto mining: y u no mine",
	"Everything you need to know about everything you need to know about",
	"Dumbass: Breaking News",
	"Slackdump",
}

var fakeFriends = []string{"alice", "bob", "carol", "mallory"}

var fakeChannels = []string{"general", "random", "off-topic", "announcements"}

func main() {
	fd := NewFakeDiscord()
	app := tui.New(context.Background(), session.WithDialer(func(string) (session.Client, error) {
		return fd, nil
	}))

	if err := app.Run(context.Background(), "fake-token"); err != nil {
		dlog.Fatal(err)
	}
}

// FakeDiscord is the Discord account with random servers, DMs and messages.
// Some channels deny access.
type FakeDiscord struct {
	me     discord.User
	guilds []discord.Guild
	dms    []discord.Channel

	mu       sync.Mutex
	channels map[string][]discord.Channel
	history  map[string][]discord.Message
	locked   map[string]bool
}

func NewFakeDiscord() *FakeDiscord {
	fd := &FakeDiscord{
		me:       discord.User{ID: "1", Name: "screenshot"},
		channels: make(map[string][]discord.Channel),
		history:  make(map[string][]discord.Message),
		locked:   make(map[string]bool),
	}
	var id int
	nextID := func() string {
		id++
		return strconv.Itoa(1000 + id)
	}
	for _, name := range fakeGuilds {
		g := discord.Guild{ID: nextID(), Name: name}
		fd.guilds = append(fd.guilds, g)
		for _, chName := range fakeChannels {
			ch := discord.Channel{ID: nextID(), GuildID: g.ID, Name: chName, Type: discordgo.ChannelTypeGuildText}
			fd.channels[g.ID] = append(fd.channels[g.ID], ch)
			fd.history[ch.ID] = fd.generate(ch.ID)
			fd.locked[ch.ID] = rand.IntN(6) == 0
		}
	}
	for _, name := range fakeFriends {
		friend := discord.User{ID: nextID(), Name: name}
		ch := discord.Channel{ID: nextID(), Name: name, Type: discordgo.ChannelTypeDM, Recipient: friend}
		fd.dms = append(fd.dms, ch)
		fd.history[ch.ID] = fd.generate(ch.ID)
	}
	return fd
}

// generate returns messages from newest to oldest, every third is ours.
func (fd *FakeDiscord) generate(channelID string) []discord.Message {
	n := rand.IntN(maxFakeMessages)
	msgs := make([]discord.Message, n)
	for i := range msgs {
		msgs[i] = discord.Message{
			ID:        strconv.Itoa(2_000_000 - i),
			ChannelID: channelID,
			AuthorID:  "2",
			Content:   "message " + strconv.Itoa(n-i),
		}
		if rand.IntN(3) == 0 {
			msgs[i].AuthorID = fd.me.ID
		}
	}
	return msgs
}

func (fd *FakeDiscord) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(fakeLoginDelay):
	}
	return nil
}

func (*FakeDiscord) Stop() error { return nil }

func (fd *FakeDiscord) Me() discord.User { return fd.me }

func (fd *FakeDiscord) Guilds(context.Context) ([]discord.Guild, error) {
	return fd.guilds, nil
}

func (fd *FakeDiscord) DMs(context.Context) ([]discord.Channel, error) {
	return fd.dms, nil
}

func (fd *FakeDiscord) TextChannels(_ context.Context, guildID string) ([]discord.Channel, error) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return fd.channels[guildID], nil
}

func (fd *FakeDiscord) Messages(ctx context.Context, channelID string, before string) ([]discord.Message, error) {
	time.Sleep(fakeReadDelay)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fd.mu.Lock()
	defer fd.mu.Unlock()
	if fd.locked[channelID] {
		return nil, forbidden()
	}
	msgs := fd.history[channelID]
	start := 0
	if before != "" {
		start = slices.IndexFunc(msgs, func(m discord.Message) bool { return m.ID < before })
		if start < 0 {
			return nil, nil
		}
	}
	end := min(start+discord.MaxPageSize, len(msgs))
	return slices.Clone(msgs[start:end]), nil
}

func (fd *FakeDiscord) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	time.Sleep(fakeDeleteDelay)
	if err := ctx.Err(); err != nil {
		return err
	}
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.history[channelID] = slices.DeleteFunc(fd.history[channelID], func(m discord.Message) bool {
		return m.ID == messageID
	})
	return nil
}

func forbidden() error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden, Status: "403 Forbidden"},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeMissingAccess, Message: "Missing Access"},
	}
}
