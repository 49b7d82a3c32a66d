package db

import "time"

// Timestamps are stored without a time zone and always written from the UTC clock.

type Quote struct {
	ID         int32     `db:"quote_id"`
	Message    string    `db:"message"`
	AuthorID   int64     `db:"quote_author_id"`
	AuthorName string    `db:"quote_author"`
	Date       time.Time `db:"date"`
}

type Can struct {
	ID       int32     `db:"can_id"`
	UserID   int64     `db:"user_id"`
	UserName string    `db:"user"`
	Date     time.Time `db:"date"`
}

type Suggestion struct {
	ID        int32     `db:"suggestion_id"`
	Text      string    `db:"suggestion_text"`
	Date      time.Time `db:"suggestion_date"`
	AuthorID  int64     `db:"suggestion_author_id"`
	MessageID int64     `db:"suggestion_message_id"`
}
