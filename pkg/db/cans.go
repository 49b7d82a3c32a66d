package db

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

const (
	insertCanQuery = `INSERT INTO cans (user_id, "user", date) VALUES ($1, $2, $3);`
	countCansQuery = "SELECT count(*) FROM cans;"
)

// AddCan appends a can and returns the new total.
func (db *DB) AddCan(ctx context.Context, userID snowflake.ID, userName string) (int64, error) {
	if _, err := db.pool.Exec(ctx, insertCanQuery, int64(userID), userName, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("inserting can: %w", err)
	}
	return db.CountCans(ctx)
}

func (db *DB) CountCans(ctx context.Context) (count int64, err error) {
	err = db.pool.QueryRow(ctx, countCansQuery).Scan(&count)
	return
}
