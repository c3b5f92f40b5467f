package friendsrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DIMO-Network/line-bot-api/internal/db/migrations"
	"github.com/aarondl/null/v8"
)

const friendsTable = migrations.SchemaName + ".friends"

// FriendRecord is a user who added the bot as a friend.
type FriendRecord struct {
	MID         string
	DisplayName null.String
	AddedAt     time.Time
}

// Repository stores friends in postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the friend table if it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if err := migrations.Up(ctx, r.db); err != nil {
		return &StorageError{Op: "ensure schema", Err: err}
	}
	return nil
}

// AddFriend inserts a friend stamped with the current time.
// It returns an error matching ErrConflict if mid is already stored.
func (r *Repository) AddFriend(ctx context.Context, mid, displayName string) error {
	if mid == "" {
		return &StorageError{Op: "add friend", Err: fmt.Errorf("%w: mid is required", ValidationError)}
	}

	return r.withConn(ctx, "add friend", func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx,
			`INSERT INTO `+friendsTable+` (id, display_name, added_at) VALUES ($1, $2, now())`,
			mid, null.NewString(displayName, displayName != ""),
		)
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return err
	})
}

// ListFriendsExcept returns the mids of all friends other than mid, oldest first.
func (r *Repository) ListFriendsExcept(ctx context.Context, mid string) ([]string, error) {
	mids := make([]string, 0)
	err := r.withConn(ctx, "list friends", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT id FROM `+friendsTable+` WHERE id <> $1 ORDER BY added_at, id`,
			mid,
		)
		if err != nil {
			return err
		}
		defer rows.Close() //nolint:errcheck

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			mids = append(mids, id)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return mids, nil
}

// GetFriend returns the stored record for mid. The error matches sql.ErrNoRows when mid is unknown.
func (r *Repository) GetFriend(ctx context.Context, mid string) (*FriendRecord, error) {
	var record FriendRecord
	err := r.withConn(ctx, "get friend", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx,
			`SELECT id, display_name, added_at FROM `+friendsTable+` WHERE id = $1`,
			mid,
		).Scan(&record.MID, &record.DisplayName, &record.AddedAt)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// withConn runs fn on a dedicated connection that is returned to the pool on every path.
func (r *Repository) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return &StorageError{Op: op, Err: fmt.Errorf("failed to acquire connection: %w", err)}
	}
	defer conn.Close() //nolint:errcheck

	if err := fn(conn); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}
