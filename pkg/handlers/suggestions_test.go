package handlers

import (
	"context"
	"errors"
	"testing"

	"becbot/pkg"
	"becbot/pkg/db"
	"becbot/pkg/suggestions"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEvent struct {
	guildID snowflake.ID
	user    discord.User
	calls   []string
	content string
}

func (e *recordingEvent) GuildID() *snowflake.ID { return &e.guildID }

func (e *recordingEvent) User() discord.User { return e.user }

func (e *recordingEvent) DeferCreateMessage(ephemeral bool, _ ...rest.RequestOpt) error {
	if ephemeral {
		e.calls = append(e.calls, "defer")
	}
	return nil
}

func (e *recordingEvent) UpdateInteractionResponse(update discord.MessageUpdate, _ ...rest.RequestOpt) (*discord.Message, error) {
	e.calls = append(e.calls, "update")
	if update.Content != nil {
		e.content = *update.Content
	}
	return &discord.Message{}, nil
}

type stubStore struct {
	err error
}

func (s *stubStore) CreateSuggestion(_ context.Context, text string, authorID snowflake.ID, messageID snowflake.ID) (db.Suggestion, error) {
	return db.Suggestion{ID: 1, Text: text, AuthorID: int64(authorID), MessageID: int64(messageID)}, s.err
}

func (s *stubStore) SuggestionByMessageID(context.Context, snowflake.ID) (db.Suggestion, error) {
	return db.Suggestion{}, db.ErrNotFound
}

func (s *stubStore) DeleteSuggestion(context.Context, int32) (bool, error) {
	return false, nil
}

type stubPlatform struct {
	channels map[string]snowflake.ID
}

func (p *stubPlatform) FindTextChannel(_ snowflake.ID, name string) (snowflake.ID, error) {
	if id, ok := p.channels[name]; ok {
		return id, nil
	}
	return 0, suggestions.ErrChannelNotFound
}

func (p *stubPlatform) CreateMessage(channelID snowflake.ID, _ discord.Embed) (*discord.Message, error) {
	return &discord.Message{ID: 300, ChannelID: channelID}, nil
}

func (p *stubPlatform) AddReaction(snowflake.ID, snowflake.ID, string) error { return nil }

func (p *stubPlatform) DeleteMessage(snowflake.ID, snowflake.ID) error { return nil }

func newSuggestHandler(store *stubStore, channels map[string]snowflake.ID) *Handler {
	return &Handler{Bot: &pkg.Bot{
		Suggestions: suggestions.New(store, &stubPlatform{channels: channels}),
	}}
}

func TestHandleSuggestDefersBeforeSubmitting(t *testing.T) {
	h := newSuggestHandler(&stubStore{}, map[string]snowflake.ID{suggestions.ChannelName: 200})
	event := &recordingEvent{guildID: 100, user: discord.User{ID: 7, Username: "lumi"}}

	require.NoError(t, h.handleSuggest(event, "Add a new channel"))
	assert.Equal(t, []string{"defer", "update"}, event.calls)
	assert.Equal(t, "Successfully created suggestion!\n\nhttps://discord.com/channels/100/200/300", event.content)
}

func TestHandleSuggestReplies(t *testing.T) {
	tests := []struct {
		name     string
		store    *stubStore
		channels map[string]snowflake.ID
		body     string
		reply    string
	}{
		{"empty", &stubStore{}, map[string]snowflake.ID{suggestions.ChannelName: 200}, "   ", "Suggestion cannot be empty!"},
		{"no channel", &stubStore{}, nil, "idea", "Couldn't find the suggestions channel!"},
		{"store failure", &stubStore{err: errors.New("pool closed")}, map[string]snowflake.ID{suggestions.ChannelName: 200}, "idea",
			"There was an error while creating the suggestion."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSuggestHandler(tt.store, tt.channels)
			event := &recordingEvent{guildID: 100, user: discord.User{ID: 7}}

			require.NoError(t, h.handleSuggest(event, tt.body))
			assert.Equal(t, []string{"defer", "update"}, event.calls)
			assert.Equal(t, tt.reply, event.content)
		})
	}
}
