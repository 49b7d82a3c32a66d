package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"becbot/pkg/suggestions"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

func suggestionAuthor(user discord.User) suggestions.Author {
	return suggestions.Author{
		ID:        user.ID,
		Name:      user.Username,
		AvatarURL: user.EffectiveAvatarURL(),
	}
}

// suggest submits body and returns the reply for the invoker. Errors the
// invoker can act on are turned into replies.
func (h *Handler) suggest(ctx context.Context, guildID snowflake.ID, body string, user discord.User) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "Suggestion cannot be empty!", nil
	}
	link, err := h.Bot.Suggestions.Submit(ctx, guildID, body, suggestionAuthor(user))
	if errors.Is(err, suggestions.ErrChannelNotFound) {
		return "Couldn't find the suggestions channel!", nil
	}
	if err != nil {
		return "", err
	}
	return "Successfully created suggestion!\n\n" + link, nil
}

// deferredResponder is the part of *handler.CommandEvent used by handleSuggest.
type deferredResponder interface {
	GuildID() *snowflake.ID
	User() discord.User
	DeferCreateMessage(ephemeral bool, opts ...rest.RequestOpt) error
	UpdateInteractionResponse(messageUpdate discord.MessageUpdate, opts ...rest.RequestOpt) (*discord.Message, error)
}

// handleSuggest defers the response first, posting and reacting can take longer
// than the interaction deadline.
func (h *Handler) handleSuggest(event deferredResponder, body string) error {
	if err := event.DeferCreateMessage(true); err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()
	reply, err := h.suggest(ctx, *event.GuildID(), body, event.User())
	if err != nil {
		slog.Error("becbot: error while creating the suggestion", slog.Any("guild.id", *event.GuildID()), tint.Err(err))
		reply = "There was an error while creating the suggestion."
	}
	_, err = event.UpdateInteractionResponse(discord.NewMessageUpdate().WithContent(reply))
	return err
}

func (h *Handler) HandleSuggestSlash(data discord.SlashCommandInteractionData, event *handler.CommandEvent) error {
	return h.handleSuggest(event, data.String("suggestion"))
}

func (h *Handler) HandleSuggestMessage(data discord.MessageCommandInteractionData, event *handler.CommandEvent) error {
	return h.handleSuggest(event, data.TargetMessage().Content)
}

func (h *Handler) HandleRemoveSuggestion(data discord.SlashCommandInteractionData, event *handler.CommandEvent) error {
	id := int32(data.Int("suggestion_id"))
	ctx, cancel := commandContext()
	defer cancel()
	existed, err := h.Bot.Suggestions.RemoveByID(ctx, id)
	if err != nil {
		return errorReply(event, "removing the suggestion", err, slog.Any("suggestion.id", id))
	}
	if !existed {
		return event.CreateMessage(ephemeral("Couldn't find suggestion with that ID!"))
	}
	return event.CreateMessage(ephemeral("Successfully removed suggestion!"))
}
