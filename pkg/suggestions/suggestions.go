// Package suggestions posts community suggestions to the suggestions channel and
// withdraws them when their author reacts with the cancel marker.
package suggestions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"becbot/pkg/db"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

const (
	ChannelName   = "suggestions"
	UpvoteEmoji   = "♥️"
	DownvoteEmoji = "♠️"
	CancelEmoji   = "❌"
)

var ErrChannelNotFound = errors.New("couldn't find suggestions channel")

type Store interface {
	CreateSuggestion(ctx context.Context, text string, authorID snowflake.ID, messageID snowflake.ID) (db.Suggestion, error)
	SuggestionByMessageID(ctx context.Context, messageID snowflake.ID) (db.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id int32) (bool, error)
}

// Platform is the slice of the Discord API the lifecycle needs.
type Platform interface {
	FindTextChannel(guildID snowflake.ID, name string) (snowflake.ID, error)
	CreateMessage(channelID snowflake.ID, embed discord.Embed) (*discord.Message, error)
	AddReaction(channelID snowflake.ID, messageID snowflake.ID, emoji string) error
	DeleteMessage(channelID snowflake.ID, messageID snowflake.ID) error
}

type Author struct {
	ID        snowflake.ID
	Name      string
	AvatarURL string
}

type Reaction struct {
	UserID    snowflake.ID
	ChannelID snowflake.ID
	MessageID snowflake.ID
	Emoji     string
}

type Service struct {
	store    Store
	platform Platform
	now      func() time.Time
}

func New(store Store, platform Platform) *Service {
	return &Service{
		store:    store,
		platform: platform,
		now:      time.Now,
	}
}

// Submit posts an announcement for body and records it. It returns a link to the announcement.
func (s *Service) Submit(ctx context.Context, guildID snowflake.ID, body string, author Author) (string, error) {
	channelID, err := s.platform.FindTextChannel(guildID, ChannelName)
	if err != nil {
		return "", err
	}
	message, err := s.platform.CreateMessage(channelID, s.announcement(body, author))
	if err != nil {
		return "", fmt.Errorf("posting suggestion: %w", err)
	}
	for _, emoji := range []string{UpvoteEmoji, DownvoteEmoji} {
		if err := s.platform.AddReaction(channelID, message.ID, emoji); err != nil {
			return "", s.withdraw(channelID, message.ID, fmt.Errorf("adding reaction %s: %w", emoji, err))
		}
	}
	if _, err := s.store.CreateSuggestion(ctx, body, author.ID, message.ID); err != nil {
		return "", s.withdraw(channelID, message.ID, fmt.Errorf("storing suggestion: %w", err))
	}
	return MessageURL(guildID, channelID, message.ID), nil
}

// withdraw removes an announcement that could not be completed, an announcement
// without a record could never be cancelled by its author.
func (s *Service) withdraw(channelID snowflake.ID, messageID snowflake.ID, cause error) error {
	if err := s.platform.DeleteMessage(channelID, messageID); err != nil {
		return errors.Join(cause, fmt.Errorf("withdrawing announcement: %w", err))
	}
	return cause
}

func (s *Service) announcement(body string, author Author) discord.Embed {
	return discord.NewEmbedBuilder().
		SetTitle("New suggestion").
		SetDescriptionf("%s\n\nPlease vote on this suggestion using %s and %s", body, UpvoteEmoji, DownvoteEmoji).
		SetAuthor(author.Name, "", author.AvatarURL).
		SetTimestamp(s.now()).
		Build()
}

// HandleReaction withdraws a suggestion when its author reacts with CancelEmoji.
// Every other reaction, unknown message or foreign reactor is ignored.
func (s *Service) HandleReaction(ctx context.Context, r Reaction) error {
	if r.Emoji != CancelEmoji {
		return nil
	}
	suggestion, err := s.store.SuggestionByMessageID(ctx, r.MessageID)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up suggestion: %w", err)
	}
	if snowflake.ID(suggestion.AuthorID) != r.UserID {
		return nil
	}
	// the record has to outlive a failed message deletion, otherwise the announcement is orphaned
	if err := s.platform.DeleteMessage(r.ChannelID, r.MessageID); err != nil {
		return fmt.Errorf("deleting announcement: %w", err)
	}
	if _, err := s.store.DeleteSuggestion(ctx, suggestion.ID); err != nil {
		return fmt.Errorf("deleting suggestion %d: %w", suggestion.ID, err)
	}
	return nil
}

// RemoveByID deletes the record with the given id and reports whether it existed.
func (s *Service) RemoveByID(ctx context.Context, id int32) (bool, error) {
	return s.store.DeleteSuggestion(ctx, id)
}

func MessageURL(guildID snowflake.ID, channelID snowflake.ID, messageID snowflake.ID) string {
	return fmt.Sprintf("https://discord.com/channels/%d/%d/%d", guildID, channelID, messageID)
}
