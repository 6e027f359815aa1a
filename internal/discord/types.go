package discord

import "github.com/bwmarrin/discordgo"

type User struct {
	ID   string
	Name string
}

func (u User) GetID() string   { return u.ID }
func (u User) GetName() string { return u.Name }

type Guild struct {
	ID   string
	Name string
}

func (g Guild) GetID() string   { return g.ID }
func (g Guild) GetName() string { return g.Name }

// Channel is a guild channel or a private conversation.  For DM channels,
// Name is the recipient name.
type Channel struct {
	ID        string
	GuildID   string
	Name      string
	Type      discordgo.ChannelType
	Recipient User
}

func (c Channel) GetID() string   { return c.ID }
func (c Channel) GetName() string { return c.Name }

// IsDM returns true if the channel is a direct one-to-one conversation.
func (c Channel) IsDM() bool {
	return c.Type == discordgo.ChannelTypeDM
}

type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
	Content   string
}

func (m Message) GetID() string   { return m.ID }
func (m Message) GetName() string { return m.Content }

func toUser(u *discordgo.User) User {
	if u == nil {
		return User{}
	}
	return User{ID: u.ID, Name: u.Username}
}

func toGuild(g *discordgo.UserGuild) Guild {
	return Guild{ID: g.ID, Name: g.Name}
}

func toChannel(ch *discordgo.Channel) Channel {
	c := Channel{
		ID:      ch.ID,
		GuildID: ch.GuildID,
		Name:    ch.Name,
		Type:    ch.Type,
	}
	if len(ch.Recipients) > 0 {
		c.Recipient = toUser(ch.Recipients[0])
		if c.Name == "" {
			c.Name = c.Recipient.Name
		}
	}
	return c
}

func toMessage(m *discordgo.Message) Message {
	msg := Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
	}
	return msg
}
