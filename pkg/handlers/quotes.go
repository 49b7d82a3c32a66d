package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"becbot/pkg/db"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

func formatQuote(q db.Quote) string {
	return fmt.Sprintf(`"%s" - %s, %s`, q.Message, q.AuthorName, q.Date.Format("01/02/2006"))
}

func (h *Handler) HandleAddQuote(data discord.MessageCommandInteractionData, event *handler.CommandEvent) error {
	message := data.TargetMessage()
	ctx, cancel := commandContext()
	defer cancel()
	quote, err := h.Bot.DB.AddQuote(ctx, message.Content, message.Author.ID, message.Author.Username)
	if err != nil {
		return errorReply(event, "adding the quote", err, slog.Any("message.id", message.ID))
	}
	return event.CreateMessage(discord.NewMessageCreate().WithContentf("Quote added! (#%d)", quote.ID))
}

func (h *Handler) HandleQuote(data discord.SlashCommandInteractionData, event *handler.CommandEvent) error {
	if ok, wait := h.Bot.QuoteCooldown.Allow(*event.GuildID()); !ok {
		return event.CreateMessage(ephemeral(cooldownText(wait)))
	}
	ctx, cancel := commandContext()
	defer cancel()
	var (
		quote db.Quote
		err   error
	)
	if id, ok := data.OptInt("quote_id"); ok {
		quote, err = h.Bot.DB.GetQuote(ctx, int32(id))
	} else {
		quote, err = h.Bot.DB.RandomQuote(ctx)
	}
	if errors.Is(err, db.ErrNotFound) {
		return event.CreateMessage(discord.NewMessageCreate().WithContent("No quote found!"))
	}
	if err != nil {
		return errorReply(event, "fetching the quote", err)
	}
	return event.CreateMessage(discord.NewMessageCreate().
		WithContent(formatQuote(quote)).
		WithAllowedMentions(&discord.AllowedMentions{}))
}

func (h *Handler) HandleRemoveQuote(data discord.SlashCommandInteractionData, event *handler.CommandEvent) error {
	id := int32(data.Int("quote_id"))
	ctx, cancel := commandContext()
	defer cancel()
	existed, err := h.Bot.DB.DeleteQuote(ctx, id)
	if err != nil {
		return errorReply(event, "removing the quote", err, slog.Any("quote.id", id))
	}
	if !existed {
		return event.CreateMessage(discord.NewMessageCreate().WithContent("Couldn't find quote with that ID!"))
	}
	return event.CreateMessage(discord.NewMessageCreate().WithContent("Successfully removed quote!"))
}
