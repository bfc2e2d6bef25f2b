package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"crewsite/internal/store"
)

// Repository is the credential store for the singleton admin account.
type Repository struct {
	accounts *store.Collection[AdminAccount]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{accounts: store.NewCollection[AdminAccount](db)}
}

func (r *Repository) Get(ctx context.Context) (*AdminAccount, error) {
	return r.find(ctx, store.Eq("id", SingletonID))
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*AdminAccount, error) {
	return r.find(ctx, store.Eq("username", username))
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*AdminAccount, error) {
	return r.find(ctx, store.Eq("email", email))
}

func (r *Repository) find(ctx context.Context, filters ...store.Filter) (*AdminAccount, error) {
	a, err := r.accounts.FindOne(ctx, filters...)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts the account under SingletonID.
func (r *Repository) Create(ctx context.Context, a *AdminAccount) error {
	a.ID = SingletonID
	if err := r.accounts.InsertOne(ctx, a); err != nil {
		if store.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, id string, set map[string]any) error {
	n, err := r.accounts.UpdateOne(ctx, set, store.Eq("id", id))
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	if n == 0 && len(set) > 0 {
		return ErrAdminNotFound
	}
	return nil
}

// SetResetToken records a pending reset, replacing any previous one.
func (r *Repository) SetResetToken(ctx context.Context, id, digest string, expiresAt time.Time) error {
	return r.Update(ctx, id, map[string]any{
		"reset_token_hash": digest,
		"reset_expires_at": expiresAt,
	})
}

// ConsumeResetToken swaps the password hash and clears the pending reset in one
// conditional statement. It returns false when no live token matched.
func (r *Repository) ConsumeResetToken(ctx context.Context, digest, passwordHash string, now time.Time) (bool, error) {
	n, err := r.accounts.UpdateOne(ctx,
		map[string]any{
			"password_hash":    passwordHash,
			"reset_token_hash": nil,
			"reset_expires_at": nil,
		},
		store.Eq("reset_token_hash", digest),
		store.After("reset_expires_at", now),
	)
	if err != nil {
		return false, fmt.Errorf("consume reset token: %w", err)
	}
	return n > 0, nil
}

// ClearExpiredResets drops reset digests whose expiry is at or before now.
func (r *Repository) ClearExpiredResets(ctx context.Context, now time.Time) (int64, error) {
	return r.accounts.UpdateOne(ctx,
		map[string]any{
			"reset_token_hash": nil,
			"reset_expires_at": nil,
		},
		store.NotAfter("reset_expires_at", now),
	)
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.accounts.Count(ctx)
}
