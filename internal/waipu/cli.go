package waipu

import (
	"context"

	"github.com/rusq/wipemydiscord/internal/discord"
)

//go:generate go run go.uber.org/mock/mockgen -source=cli.go -destination=mock_discorder_test.go -package=waipu

// Discorder is the subset of the Discord client used to find and delete the
// messages.
type Discorder interface {
	Me() discord.User
	Guilds(ctx context.Context) ([]discord.Guild, error)
	DMs(ctx context.Context) ([]discord.Channel, error)
	TextChannels(ctx context.Context, guildID string) ([]discord.Channel, error)
	Messages(ctx context.Context, channelID string, before string) ([]discord.Message, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// Logger is the log sink of the wiper.
type Logger interface {
	Printf(format string, a ...any)
}
