package db

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

const (
	insertSuggestionQuery          = "INSERT INTO suggestions (suggestion_text, suggestion_date, suggestion_author_id, suggestion_message_id) VALUES ($1, $2, $3, $4) RETURNING suggestion_id, suggestion_text, suggestion_date, suggestion_author_id, suggestion_message_id;"
	selectSuggestionByMessageQuery = "SELECT suggestion_id, suggestion_text, suggestion_date, suggestion_author_id, suggestion_message_id FROM suggestions WHERE suggestion_message_id = $1;"
	deleteSuggestionQuery          = "DELETE FROM suggestions WHERE suggestion_id = $1;"
)

func (db *DB) CreateSuggestion(ctx context.Context, text string, authorID snowflake.ID, messageID snowflake.ID) (Suggestion, error) {
	rows, err := db.pool.Query(ctx, insertSuggestionQuery, text, time.Now().UTC(), int64(authorID), int64(messageID))
	return collectOne[Suggestion](rows, err)
}

// SuggestionByMessageID returns ErrNotFound when the message is not a suggestion announcement.
func (db *DB) SuggestionByMessageID(ctx context.Context, messageID snowflake.ID) (Suggestion, error) {
	rows, err := db.pool.Query(ctx, selectSuggestionByMessageQuery, int64(messageID))
	return collectOne[Suggestion](rows, err)
}

// DeleteSuggestion reports whether the record existed. Deleting a missing record is not an error.
func (db *DB) DeleteSuggestion(ctx context.Context, id int32) (bool, error) {
	tag, err := db.pool.Exec(ctx, deleteSuggestionQuery, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
