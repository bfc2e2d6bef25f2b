package admin

import "time"

// SingletonID is the fixed primary key of the only admin account.
const SingletonID = "admin_account_singleton"

type AdminAccount struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	Username     string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email        string `gorm:"size:255;not null;index" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// ResetTokenHash is the SHA-256 hex digest of the pending reset token.
	ResetTokenHash *string    `gorm:"size:64;index" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AdminAccount) TableName() string { return "admin_accounts" }

// HasPendingReset reports whether an unexpired reset token exists at now.
func (a *AdminAccount) HasPendingReset(now time.Time) bool {
	return a.ResetTokenHash != nil && a.ResetExpiresAt != nil && a.ResetExpiresAt.After(now)
}

// Models lists the tables owned by this package.
func Models() []any {
	return []any{&AdminAccount{}}
}
