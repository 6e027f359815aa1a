package discord

import (
	"context"
	"runtime/trace"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Messages returns one page of the channel history, newest first.  If before
// is not empty, only messages older than the message with this ID are
// returned.  An empty page means that the beginning of the history was
// reached.
func (c *Client) Messages(ctx context.Context, channelID string, before string) ([]Message, error) {
	if !c.isRunning() {
		return nil, ErrNotRunning
	}
	msgs, err := c.s.ChannelMessages(channelID, MaxPageSize, before, "", "", discordgo.WithContext(ctx))
	if err != nil {
		trace.Logf(ctx, "api", "history error: %s", err)
		return nil, err
	}
	return lo.Map(msgs, func(m *discordgo.Message, _ int) Message {
		return toMessage(m)
	}), nil
}

// DeleteMessage deletes a single message.
func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	ctx, task := trace.NewTask(ctx, "DeleteMessage")
	defer task.End()

	if !c.isRunning() {
		return ErrNotRunning
	}
	if err := c.s.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		trace.Logf(ctx, "api", "delete error: %s", err)
		return err
	}
	trace.Log(ctx, "logic", "ok")
	return nil
}
