package admin

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"crewsite/internal/metrics"
	"crewsite/internal/pkg/utils"
)

// ResetRequestedMessage is returned for every forgot-password call, whether or not the email matched.
const ResetRequestedMessage = "Si l'email existe, un lien a été envoyé"

const (
	resetTokenBytes = 32
	resetSubject    = "Réinitialisation mot de passe"
)

// RequestReset starts a reset for the account with this email. Unknown emails
// are not an error. The mail goes out in the background; callers always answer
// with ResetRequestedMessage.
func (s *Service) RequestReset(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil
	}

	acct, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			log.Info().Msg("reset requested for unknown email (masked)")
			return nil
		}
		return fmt.Errorf("lookup admin by email: %w", err)
	}

	token, digest, err := newResetToken()
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.reset.TokenTTL)
	if err := s.repo.SetResetToken(ctx, acct.ID, digest, expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link, err := s.resetLink(token)
	if err != nil {
		return err
	}

	s.mailWG.Add(1)
	go s.deliverReset(acct.Email, link)
	return nil
}

func (s *Service) deliverReset(to, link string) {
	defer s.mailWG.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.reset.MailTimeout)
	defer cancel()

	body := fmt.Sprintf(
		"Cliquez sur ce lien pour réinitialiser votre mot de passe: %s\n\nCe lien expire dans %s.",
		link, s.reset.TokenTTL,
	)
	err := s.mailer.Send(ctx, to, resetSubject, body)
	metrics.RecordMail(err)
	if err != nil {
		log.Warn().Err(err).Msg("reset email delivery failed")
	}
}

// WaitForMail blocks until in-flight reset emails finish or ctx ends.
func (s *Service) WaitForMail(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.mailWG.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ConsumeReset sets a new password if token matches a live pending reset.
// A token works once.
func (s *Service) ConsumeReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrResetTokenInvalid
	}
	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	ok, err := s.repo.ConsumeResetToken(ctx, digestResetToken(token), hash, s.now())
	if err != nil {
		return err
	}
	metrics.RecordAuth("reset_password", ok)
	if !ok {
		return ErrResetTokenInvalid
	}
	log.Info().Msg("admin password reset")
	return nil
}

// PurgeExpiredResets clears stale reset digests. Token validity never depends on it.
func (s *Service) PurgeExpiredResets(ctx context.Context, now time.Time) (int64, error) {
	return s.repo.ClearExpiredResets(ctx, now.UTC())
}

func (s *Service) resetLink(token string) (string, error) {
	u, err := url.Parse(s.reset.URLBase)
	if err != nil {
		return "", fmt.Errorf("parse reset url base: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func newResetToken() (token, digest string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate reset token: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	return token, digestResetToken(token), nil
}

func digestResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
