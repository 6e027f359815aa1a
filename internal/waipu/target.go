package waipu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rusq/wipemydiscord/internal/discord"
)

// DMPrefix prefixes the labels of direct message conversations.
const DMPrefix = "DM: "

var (
	ErrNoGuild = errors.New("could not find server")
	ErrNoDM    = errors.New("could not find DM channel")
)

type Kind int

const (
	KindGuild Kind = iota
	KindDM
)

func (k Kind) String() string {
	switch k {
	case KindGuild:
		return "server"
	case KindDM:
		return "dm"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Target is a server or a direct message conversation that can be wiped.
type Target struct {
	Kind Kind
	ID   string
	Name string
	// Channel is set for direct messages.
	Channel discord.Channel
}

// Label returns the name of the target as shown to the user.
func (t Target) Label() string {
	if t.Kind == KindDM {
		return DMPrefix + t.Name
	}
	return t.Name
}

// Targets returns servers of the account, followed by the direct message
// conversations.
func Targets(ctx context.Context, cl Discorder) ([]Target, error) {
	guilds, err := cl.Guilds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	dms, err := cl.DMs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct messages: %w", err)
	}
	tt := make([]Target, 0, len(guilds)+len(dms))
	tt = append(tt, lo.Map(guilds, func(g discord.Guild, _ int) Target {
		return Target{Kind: KindGuild, ID: g.ID, Name: g.Name}
	})...)
	tt = append(tt, lo.Map(dms, func(ch discord.Channel, _ int) Target {
		return Target{Kind: KindDM, ID: ch.ID, Name: ch.Recipient.Name, Channel: ch}
	})...)
	return tt, nil
}

// Count returns the number of servers and direct message conversations in
// tt.
func Count(tt []Target) (guilds int, dms int) {
	dms = lo.CountBy(tt, func(t Target) bool { return t.Kind == KindDM })
	return len(tt) - dms, dms
}

// Resolve finds the target by its label or ID.
func Resolve(tt []Target, labelOrID string) (Target, error) {
	if name, ok := strings.CutPrefix(labelOrID, DMPrefix); ok {
		name = strings.TrimSpace(name)
		t, found := lo.Find(tt, func(t Target) bool {
			return t.Kind == KindDM && t.Name == name
		})
		if !found {
			return Target{}, fmt.Errorf("%w for %s", ErrNoDM, name)
		}
		return t, nil
	}
	t, found := lo.Find(tt, func(t Target) bool {
		return t.Kind == KindGuild && t.Name == labelOrID
	})
	if found {
		return t, nil
	}
	t, found = lo.Find(tt, func(t Target) bool {
		return t.ID == labelOrID
	})
	if found {
		return t, nil
	}
	return Target{}, fmt.Errorf("%w: %s", ErrNoGuild, labelOrID)
}
