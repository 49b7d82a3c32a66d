package handlers

import (
	"errors"
	"fmt"
	"strings"

	"becbot/pkg/colors"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

func (h *Handler) setColor(guildID snowflake.ID, userID snowflake.ID, input string) (string, error) {
	input = strings.TrimSpace(input)
	color, err := colors.ParseColor(input)
	if errors.Is(err, colors.ErrInvalidColor) {
		return fmt.Sprintf("`%s` is not a valid color! Use a hex color like `#FF00FF`.", input), nil
	}
	if err := h.Bot.Colors.Set(guildID, userID, color); err != nil {
		return "", err
	}
	return fmt.Sprintf("Set your color to %s!", input), nil
}

func (h *Handler) clearColor(guildID snowflake.ID, userID snowflake.ID) (string, error) {
	cleared, err := h.Bot.Colors.Clear(guildID, userID)
	if err != nil {
		return "", err
	}
	if !cleared {
		return fmt.Sprintf("You didn't have a color set! Maybe you still have a color from the old bot? In that case, please ask a moderator to remove said role or rename it to your user ID (`%s`).", userID), nil
	}
	return "Cleared your color!", nil
}

func (h *Handler) HandleColor(data discord.SlashCommandInteractionData, event *handler.CommandEvent) error {
	reply, err := h.setColor(*event.GuildID(), event.User().ID, data.String("color"))
	if err != nil {
		return errorReply(event, "setting your color", err)
	}
	return event.CreateMessage(discord.NewMessageCreate().WithContent(reply))
}

func (h *Handler) HandleClearColor(event *handler.CommandEvent) error {
	reply, err := h.clearColor(*event.GuildID(), event.User().ID)
	if err != nil {
		return errorReply(event, "clearing your color", err)
	}
	return event.CreateMessage(discord.NewMessageCreate().WithContent(reply))
}
