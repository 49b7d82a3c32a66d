package db

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

const (
	insertQuoteQuery = "INSERT INTO quotes (message, quote_author_id, quote_author, date) VALUES ($1, $2, $3, $4) RETURNING quote_id, message, quote_author_id, quote_author, date;"
	selectQuoteQuery = "SELECT quote_id, message, quote_author_id, quote_author, date FROM quotes WHERE quote_id = $1;"
	randomQuoteQuery = "SELECT quote_id, message, quote_author_id, quote_author, date FROM quotes ORDER BY random() LIMIT 1;"
	deleteQuoteQuery = "DELETE FROM quotes WHERE quote_id = $1;"
)

func (db *DB) AddQuote(ctx context.Context, message string, authorID snowflake.ID, authorName string) (Quote, error) {
	rows, err := db.pool.Query(ctx, insertQuoteQuery, message, int64(authorID), authorName, time.Now().UTC())
	return collectOne[Quote](rows, err)
}

// GetQuote returns ErrNotFound when no quote has the given id.
func (db *DB) GetQuote(ctx context.Context, id int32) (Quote, error) {
	rows, err := db.pool.Query(ctx, selectQuoteQuery, id)
	return collectOne[Quote](rows, err)
}

// RandomQuote picks a quote uniformly at random. It returns ErrNotFound when there are no quotes.
func (db *DB) RandomQuote(ctx context.Context) (Quote, error) {
	rows, err := db.pool.Query(ctx, randomQuoteQuery)
	return collectOne[Quote](rows, err)
}

// DeleteQuote reports whether a quote with the given id existed.
func (db *DB) DeleteQuote(ctx context.Context, id int32) (bool, error) {
	tag, err := db.pool.Exec(ctx, deleteQuoteQuery, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
