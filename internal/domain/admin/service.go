package admin

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"crewsite/internal/metrics"
	"crewsite/internal/pkg/jwt"
	"crewsite/internal/pkg/mailer"
	"crewsite/internal/pkg/password"
	"crewsite/internal/pkg/utils"
)

const (
	TokenTypeBearer   = "bearer"
	MinPasswordLength = 8
)

type ResetConfig struct {
	TokenTTL    time.Duration
	URLBase     string
	MailTimeout time.Duration
}

type Service struct {
	repo   *Repository
	hasher *password.Hasher
	tokens *jwt.Service
	mailer mailer.Mailer
	reset  ResetConfig
	now    func() time.Time

	// dummyHash equalises login timing for unknown usernames.
	dummyOnce sync.Once
	dummyHash string

	mailWG sync.WaitGroup
}

func NewService(repo *Repository, hasher *password.Hasher, tokens *jwt.Service, m mailer.Mailer, reset ResetConfig) *Service {
	if reset.TokenTTL <= 0 {
		reset.TokenTTL = time.Hour
	}
	if reset.MailTimeout <= 0 {
		reset.MailTimeout = 15 * time.Second
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		mailer: m,
		reset:  reset,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

func (s *Service) Login(ctx context.Context, username, plain string) (*LoginResult, error) {
	acct, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, ErrAdminNotFound) {
			return nil, err
		}
		s.hasher.Verify(plain, s.fakeHash())
		metrics.RecordAuth("login", false)
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(plain, acct.PasswordHash) {
		metrics.RecordAuth("login", false)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(acct.Username)
	if err != nil {
		return nil, err
	}
	metrics.RecordAuth("login", true)
	return &LoginResult{AccessToken: token, TokenType: TokenTypeBearer, ExpiresAt: expiresAt}, nil
}

func (s *Service) fakeHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("crewsite-timing-placeholder")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

// CurrentAdmin re-reads the account named by a verified token subject.
func (s *Service) CurrentAdmin(ctx context.Context, username string) (*AdminAccount, error) {
	return s.repo.GetByUsername(ctx, username)
}

type ProfileUpdate struct {
	Username *string
	Email    *string
}

type ProfileResult struct {
	Account *AdminAccount
	// AccessToken is set only when the username changed, since tokens are keyed on it.
	AccessToken string
	ExpiresAt   time.Time
}

func (s *Service) UpdateProfile(ctx context.Context, currentUsername string, in ProfileUpdate) (*ProfileResult, error) {
	acct, err := s.repo.GetByUsername(ctx, currentUsername)
	if err != nil {
		return nil, err
	}

	set := map[string]any{}
	renamed := false
	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return nil, ErrInvalidUsername
		}
		if name != acct.Username {
			if other, err := s.repo.GetByUsername(ctx, name); err == nil && other.ID != acct.ID {
				return nil, ErrUsernameTaken
			} else if err != nil && !errors.Is(err, ErrAdminNotFound) {
				return nil, err
			}
			set["username"] = name
			renamed = true
		}
	}
	if in.Email != nil {
		email := utils.NormalizeEmail(*in.Email)
		if email != "" && email != acct.Email {
			set["email"] = email
		}
	}
	if len(set) == 0 {
		return nil, ErrNoChanges
	}

	if err := s.repo.Update(ctx, acct.ID, set); err != nil {
		return nil, err
	}

	updated, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	res := &ProfileResult{Account: updated}
	if renamed {
		res.AccessToken, res.ExpiresAt, err = s.tokens.Issue(updated.Username)
		if err != nil {
			return nil, err
		}
	}
	log.Info().Bool("renamed", renamed).Msg("admin profile updated")
	return res, nil
}

func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	acct, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(oldPassword, acct.PasswordHash) {
		metrics.RecordAuth("change_password", false)
		return ErrWrongPassword
	}
	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, acct.ID, map[string]any{
		"password_hash":    hash,
		"reset_token_hash": nil,
		"reset_expires_at": nil,
	}); err != nil {
		return err
	}
	if acct.HasPendingReset(s.now()) {
		log.Info().Msg("pending password reset revoked by password change")
	}
	metrics.RecordAuth("change_password", true)
	return nil
}
