package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_shop/internal/models"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

// PgxContactRepository stores customer contact messages.
type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(db *pgxpool.Pool) portsrepo.ContactMessageRepository {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ContactMessageRepository = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	var userID *string
	if msg.UserID != "" {
		userID = &msg.UserID
	}
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO contact_messages (message_id, user_id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.MessageID, userID, msg.Name, msg.Email, msg.Message, msg.CreatedAt,
	)
	return mapError(err, "save contact message")
}

func (r *PgxContactRepository) ListContactMessages(ctx context.Context, limit int, cursor *pagination.Cursor) ([]domain.ContactMessage, error) {
	var after *time.Time
	var afterID *string
	if cursor != nil {
		after, afterID = &cursor.CreatedAt, &cursor.Key
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT message_id, user_id, name, email, message, created_at
		FROM contact_messages
		WHERE $1::timestamptz IS NULL OR (created_at, message_id) < ($1::timestamptz, $2::text)
		ORDER BY created_at DESC, message_id DESC
		LIMIT $3`, after, afterID, limit)
	if err != nil {
		return nil, mapError(err, "list contact messages")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ContactMessage])
	if err != nil {
		return nil, mapError(err, "scan contact messages")
	}

	out := make([]domain.ContactMessage, len(ms))
	for i, m := range ms {
		out[i] = domain.ContactMessage{
			MessageID: m.MessageID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt.UTC(),
		}
		if m.UserID != nil {
			out[i].UserID = *m.UserID
		}
	}
	return out, nil
}
