package handlers

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

func canText(count int64, period int) string {
	return fmt.Sprintf("You place a can on lumiDiscord. There's now %d cans. Someone can add another in %d seconds.", count, period)
}

// addCan is shared by /addcan and its prefix aliases.
func (h *Handler) addCan(ctx context.Context, guildID snowflake.ID, user discord.User) (string, error) {
	cooldown := h.Bot.CanCooldown
	if ok, wait := cooldown.Allow(guildID); !ok {
		return cooldownText(wait), nil
	}
	count, err := h.Bot.DB.AddCan(ctx, user.ID, user.Username)
	if err != nil {
		return "", err
	}
	return canText(count, int(cooldown.Period().Seconds())), nil
}

func (h *Handler) HandleAddCan(event *handler.CommandEvent) error {
	ctx, cancel := commandContext()
	defer cancel()
	reply, err := h.addCan(ctx, *event.GuildID(), event.User())
	if err != nil {
		return errorReply(event, "adding a can", err)
	}
	return event.CreateMessage(discord.NewMessageCreate().WithContent(reply))
}
