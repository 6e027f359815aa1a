package discord

import (
	"context"
	"runtime/trace"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Guilds retrieves the account guilds.  The result is cached for the cache
// eviction period.
func (c *Client) Guilds(ctx context.Context) ([]Guild, error) {
	ctx, task := trace.NewTask(ctx, "Guilds")
	defer task.End()

	if !c.isRunning() {
		return nil, ErrNotRunning
	}
	if cached, err := c.cache.Get(cacheGuilds); err == nil {
		trace.Log(ctx, "cache", "hit")
		return cached.([]Guild), nil
	}
	trace.Log(ctx, "cache", "miss")

	var (
		guilds []Guild
		after  string
	)
	for {
		page, err := c.s.UserGuilds(defGuildBatch, "", after, false, discordgo.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		guilds = append(guilds, lo.Map(page, func(g *discordgo.UserGuild, _ int) Guild {
			return toGuild(g)
		})...)
		if len(page) < defGuildBatch {
			break
		}
		after = page[len(page)-1].ID
	}

	if err := c.cache.Set(cacheGuilds, guilds); err != nil {
		return nil, err
	}
	return guilds, nil
}

// DMs returns direct message channels known to the gateway session.
func (c *Client) DMs(ctx context.Context) ([]Channel, error) {
	return c.PrivateChannels(ctx, FilterDM())
}

// PrivateChannels returns the private channels that pass the filterFn.
func (c *Client) PrivateChannels(ctx context.Context, filterFn FilterFunc) ([]Channel, error) {
	if !c.isRunning() {
		return nil, ErrNotRunning
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return convertChannels(c.s.PrivateChannels(), filterFn), nil
}

// TextChannels returns the channels of the guild that contain messages, in
// the display order.
func (c *Client) TextChannels(ctx context.Context, guildID string) ([]Channel, error) {
	ctx, task := trace.NewTask(ctx, "TextChannels")
	defer task.End()

	if !c.isRunning() {
		return nil, ErrNotRunning
	}
	if cached, err := c.cache.Get(channelsKey(guildID)); err == nil {
		trace.Log(ctx, "cache", "hit")
		return cached.([]Channel), nil
	}
	trace.Log(ctx, "cache", "miss")

	all, err := c.s.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Position < all[j].Position
	})
	chans := convertChannels(all, FilterText())
	if err := c.cache.Set(channelsKey(guildID), chans); err != nil {
		return nil, err
	}
	return chans, nil
}

func convertChannels(cc []*discordgo.Channel, filterFn FilterFunc) []Channel {
	filtered := lo.Filter(cc, func(ch *discordgo.Channel, _ int) bool {
		return filterFn(ch)
	})
	return lo.Map(filtered, func(ch *discordgo.Channel, _ int) Channel {
		return toChannel(ch)
	})
}
