package handlers

import (
	"log/slog"

	"becbot/pkg/autoresponder"
	"becbot/pkg/moderation"
	"becbot/pkg/suggestions"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

// Listeners returns the gateway listeners for guild messages, reactions and
// command registration.
func (h *Handler) Listeners() *events.ListenerAdapter {
	return &events.ListenerAdapter{
		OnReady:                   h.onReady,
		OnGuildReady:              h.onGuildReady,
		OnGuildMessageCreate:      h.onGuildMessageCreate,
		OnGuildMessageReactionAdd: h.onGuildMessageReactionAdd,
	}
}

func (h *Handler) onReady(ev *events.Ready) {
	slog.Info("becbot: connected to the gateway",
		slog.Any("user.id", ev.User.ID),
		slog.String("user.name", ev.User.Username),
		slog.Int("guilds", len(ev.Guilds)))
}

func (h *Handler) onGuildReady(ev *events.GuildReady) {
	client := ev.Client()
	guildID := ev.Guild.ID
	registered, err := client.Rest.SetGuildCommands(client.ApplicationID, guildID, Commands)
	if err != nil {
		slog.Error("becbot: error while registering commands", slog.Any("guild.id", guildID), tint.Err(err))
		return
	}
	slog.Info("becbot: registered commands", slog.Any("guild.id", guildID), slog.Int("commands.count", len(registered)))
}

func (h *Handler) onGuildMessageCreate(ev *events.GuildMessageCreate) {
	message := ev.Message
	if message.Author.Bot {
		return
	}
	ctx, cancel := commandContext()
	defer cancel()

	if h.Bot.Moderation != nil {
		msg := moderationMessage(message)
		if channel, ok := ev.Client().Caches.Channel(ev.ChannelID); ok {
			msg.ChannelName = channel.Name()
		}
		h.Bot.Moderation.HandleMessage(ctx, msg)
	}

	if name, args, ok := parsePrefix(message.Content); ok {
		reply, found, err := h.runPrefix(ctx, name, prefixInvocation{
			GuildID: ev.GuildID,
			Author:  message.Author,
			Args:    args,
		})
		if err != nil {
			slog.Error("becbot: error while handling a prefix command",
				slog.String("command.name", name),
				slog.Any("message.id", message.ID),
				tint.Err(err))
			reply = "Something went wrong while handling the command."
		}
		if found {
			sendReply(ev.Client(), ev.ChannelID, message.ID, reply)
			return
		}
	}

	if reply, ok := autoresponder.Respond(message.Content, isModerator(ev.Client(), ev.GuildID, message.Member)); ok {
		sendReply(ev.Client(), ev.ChannelID, message.ID, reply)
	}
}

func (h *Handler) onGuildMessageReactionAdd(ev *events.GuildMessageReactionAdd) {
	if ev.Member.User.Bot || ev.Emoji.Name == nil {
		return
	}
	ctx, cancel := commandContext()
	defer cancel()
	if err := h.Bot.Suggestions.HandleReaction(ctx, suggestions.Reaction{
		UserID:    ev.UserID,
		ChannelID: ev.ChannelID,
		MessageID: ev.MessageID,
		Emoji:     *ev.Emoji.Name,
	}); err != nil {
		slog.Error("becbot: error while handling a suggestion reaction",
			slog.Any("message.id", ev.MessageID),
			slog.Any("user.id", ev.UserID),
			tint.Err(err))
	}
}

func sendReply(client *bot.Client, channelID snowflake.ID, messageID snowflake.ID, content string) {
	if _, err := client.Rest.CreateMessage(channelID, replyCreate(channelID, messageID, content)); err != nil {
		slog.Error("becbot: error while sending a reply",
			slog.Any("channel.id", channelID),
			slog.Any("parent.id", messageID),
			tint.Err(err))
	}
}

// replyCreate threads content under the triggering message.
func replyCreate(channelID snowflake.ID, messageID snowflake.ID, content string) discord.MessageCreate {
	return discord.MessageCreate{
		Content: content,
		MessageReference: &discord.MessageReference{
			MessageID: &messageID,
			ChannelID: &channelID,
		},
	}
}

// isModerator resolves the member's roles from the cache.
func isModerator(client *bot.Client, guildID snowflake.ID, member *discord.Member) bool {
	if member == nil {
		return false
	}
	for _, roleID := range member.RoleIDs {
		if role, ok := client.Caches.Role(guildID, roleID); ok && role.Name == autoresponder.ModeratorRoleName {
			return true
		}
	}
	return false
}

func moderationMessage(message discord.Message) moderation.Message {
	attachments := make([]moderation.Attachment, 0, len(message.Attachments))
	for _, a := range message.Attachments {
		var contentType string
		if a.ContentType != nil {
			contentType = *a.ContentType
		}
		attachments = append(attachments, moderation.Attachment{
			URL:         a.URL,
			Filename:    a.Filename,
			ContentType: contentType,
		})
	}
	return moderation.Message{
		ID:          message.ID,
		ChannelID:   message.ChannelID,
		AuthorID:    message.Author.ID,
		AuthorName:  message.Author.Username,
		Content:     message.Content,
		Attachments: attachments,
	}
}
