package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/user"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrUserNotFound is returned when no user matches the lookup
var ErrUserNotFound = errors.New("user not found")

// UserRepo is the Postgres-backed user registry
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) user.UserRepo {
	return &UserRepo{db: db}
}

// CreateUser creates a new user in the database
func (r *UserRepo) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = uuid.New()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	u.IsActive = true

	query := `
		INSERT INTO users (id, full_name, email, phone, password, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.FullName, u.Email, u.Phone, u.Password, u.IsActive, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, full_name, email, phone, password, push_subscription, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowxContext(ctx, query, id))
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, full_name, email, phone, password, push_subscription, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowxContext(ctx, query, email))
}

func (r *UserRepo) scanUser(row *sqlx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.Password,
		&u.PushSubscription,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// UpdatePushSubscription stores the user's push endpoint
func (r *UserRepo) UpdatePushSubscription(ctx context.Context, userID uuid.UUID, subscription string) error {
	query := `
		UPDATE users SET push_subscription = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, subscription, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update push subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// GetPushSubscriptions returns push endpoints for the given users,
// omitting users without one.
func (r *UserRepo) GetPushSubscriptions(ctx context.Context, userIDs []string) (map[string]string, error) {
	subscriptions := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return subscriptions, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, push_subscription
		FROM users
		WHERE id IN (?) AND push_subscription IS NOT NULL AND is_active = TRUE
	`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build subscription query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query push subscriptions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, subscription string
		if err := rows.Scan(&id, &subscription); err != nil {
			return nil, fmt.Errorf("failed to scan push subscription: %w", err)
		}
		subscriptions[id] = subscription
	}

	return subscriptions, rows.Err()
}

// AddEmergencyContact appends a contact at the end of the user's list
func (r *UserRepo) AddEmergencyContact(ctx context.Context, contact *models.EmergencyContact) error {
	contact.ID = uuid.New()
	contact.CreatedAt = time.Now()

	query := `
		INSERT INTO emergency_contacts (id, user_id, name, phone, email, position, created_at)
		VALUES ($1, $2, $3, $4, $5,
			COALESCE((SELECT MAX(position) + 1 FROM emergency_contacts WHERE user_id = $2), 0),
			$6)
		RETURNING position
	`
	err := r.db.QueryRowContext(ctx, query,
		contact.ID, contact.UserID, contact.Name, contact.Phone, contact.Email, contact.CreatedAt,
	).Scan(&contact.Position)
	if err != nil {
		return fmt.Errorf("failed to add emergency contact: %w", err)
	}

	return nil
}

// DeleteEmergencyContact removes a contact owned by the user
func (r *UserRepo) DeleteEmergencyContact(ctx context.Context, userID, contactID uuid.UUID) error {
	query := `DELETE FROM emergency_contacts WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, contactID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete emergency contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("emergency contact not found")
	}

	return nil
}

// GetEmergencyContacts returns the user's contacts in list order
func (r *UserRepo) GetEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error) {
	query := `
		SELECT id, user_id, name, phone, email, position, created_at
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY position ASC
	`

	contacts := make([]models.EmergencyContact, 0)
	if err := r.db.SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get emergency contacts: %w", err)
	}

	return contacts, nil
}
