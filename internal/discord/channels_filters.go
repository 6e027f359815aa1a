package discord

import "github.com/bwmarrin/discordgo"

type FilterFunc func(*discordgo.Channel) bool

// FilterText passes the guild channels that have a message history.
func FilterText() FilterFunc {
	return func(ch *discordgo.Channel) bool {
		return ch != nil &&
			(ch.Type == discordgo.ChannelTypeGuildText || ch.Type == discordgo.ChannelTypeGuildNews)
	}
}

// FilterDM passes the one-to-one conversations that have a recipient.
func FilterDM() FilterFunc {
	return func(ch *discordgo.Channel) bool {
		return ch != nil && ch.Type == discordgo.ChannelTypeDM && len(ch.Recipients) > 0 && ch.Recipients[0] != nil
	}
}
