package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdnielss/socialmedia-api/internal/middleware"
	"github.com/jdnielss/socialmedia-api/internal/model"
	"github.com/jdnielss/socialmedia-api/internal/server"
)

// MessageRepository performs database operations on the message table.
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository constructs a MessageRepository over the shared
// connection pool.
func NewMessageRepository(s *server.Server) *MessageRepository {
	return &MessageRepository{pool: s.DB.Pool}
}

// Insert persists a new message and returns it with the generated
// message_id populated. The client-supplied timestamp is stored
// verbatim.
func (r *MessageRepository) Insert(ctx context.Context, m model.Message) (*model.Message, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO message (posted_by, message_text, time_posted_epoch)
		 VALUES ($1, $2, $3) RETURNING message_id`,
		m.PostedBy, m.MessageText, m.TimePostedEpoch,
	).Scan(&m.MessageID)
	if err != nil {
		return nil, fmt.Errorf("inserting message: %w", err)
	}

	middleware.LoggerFromContext(ctx).Debug().
		Int("message_id", m.MessageID).
		Int("posted_by", m.PostedBy).
		Msg("message inserted")

	return &m, nil
}

// GetAll returns every message in natural storage order. The slice is
// empty, never nil, when the table has no rows.
func (r *MessageRepository) GetAll(ctx context.Context) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT message_id, posted_by, message_text, time_posted_epoch FROM message`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// GetByID fetches a message by primary key. Absence is (nil, nil).
func (r *MessageRepository) GetByID(ctx context.Context, id int) (*model.Message, error) {
	var m model.Message
	err := r.pool.QueryRow(ctx,
		`SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE message_id = $1`,
		id,
	).Scan(&m.MessageID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching message by id: %w", err)
	}

	return &m, nil
}

// DeleteByID deletes a message and returns the deleted row in a single
// atomic statement. Absence is (nil, nil), which makes repeated deletes
// safe: only the first call observes the row.
func (r *MessageRepository) DeleteByID(ctx context.Context, id int) (*model.Message, error) {
	var m model.Message
	err := r.pool.QueryRow(ctx,
		`DELETE FROM message WHERE message_id = $1
		 RETURNING message_id, posted_by, message_text, time_posted_epoch`,
		id,
	).Scan(&m.MessageID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("deleting message: %w", err)
	}

	middleware.LoggerFromContext(ctx).Debug().
		Int("message_id", m.MessageID).
		Msg("message deleted")

	return &m, nil
}

// UpdateTextByID replaces a message's text and returns the updated row.
// A zero-row update (no such message) is (nil, nil).
func (r *MessageRepository) UpdateTextByID(ctx context.Context, id int, text string) (*model.Message, error) {
	var m model.Message
	err := r.pool.QueryRow(ctx,
		`UPDATE message SET message_text = $2 WHERE message_id = $1
		 RETURNING message_id, posted_by, message_text, time_posted_epoch`,
		id, text,
	).Scan(&m.MessageID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("updating message text: %w", err)
	}

	return &m, nil
}

// GetByAccountID returns all messages posted by the given account. The
// slice is empty, never nil, when the account has no messages.
func (r *MessageRepository) GetByAccountID(ctx context.Context, accountID int) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE posted_by = $1`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching messages by account: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// scanMessages collects rows into a slice, starting from an allocated
// empty slice so callers (and the JSON layer) always see [] not null.
func scanMessages(rows pgx.Rows) ([]model.Message, error) {
	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.MessageID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}

	return messages, nil
}
