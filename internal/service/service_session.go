package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const generatedSignKeySize = 32

// session is one unlocked desktop session. key is nil for an empty master key.
type session struct {
	key       *memguard.Enclave
	expiresAt time.Time
}

type sessionService struct {
	vault VaultService
	ids   *utils.UUIDGenerator

	signKey  []byte
	issuer   string
	duration time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session

	logger *logger.Logger
}

// NewSessionService returns a [SessionService] that authenticates through
// vault. Without a configured sign key a random one is generated, so tokens
// do not survive a daemon restart.
func NewSessionService(vault VaultService, cfg config.App, logger *logger.Logger) (SessionService, error) {
	signKey := []byte(cfg.TokenSignKey)
	if len(signKey) == 0 {
		signKey = make([]byte, generatedSignKeySize)
		if _, err := rand.Read(signKey); err != nil {
			return nil, fmt.Errorf("error generating token sign key: %w", err)
		}
	}

	if cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return nil, fmt.Errorf("invalid session token settings: issuer %q, duration %s", cfg.TokenIssuer, cfg.TokenDuration)
	}

	return &sessionService{
		vault:    vault,
		ids:      utils.NewUUIDGenerator(),
		signKey:  signKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
		sessions: make(map[string]*session),
		logger:   logger,
	}, nil
}

func (s *sessionService) Open(ctx context.Context, key models.MasterKey) (models.SessionToken, error) {
	verified, err := s.vault.Authenticate(ctx, key)
	if err != nil {
		return models.SessionToken{}, err
	}

	id := s.ids.Generate()
	token, err := utils.GenerateJWTToken(s.issuer, id, s.duration, s.signKey)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionService.Open").Msg("error generating session token")
		return models.SessionToken{}, fmt.Errorf("error generating session token: %w", err)
	}

	var enclave *memguard.Enclave
	if verified.Len() > 0 {
		// NewEnclave wipes the source buffer
		enclave = memguard.NewEnclave([]byte(verified.Reveal()))
	}

	s.mu.Lock()
	s.sessions[id] = &session{key: enclave, expiresAt: token.ExpiresAt.Time}
	s.mu.Unlock()

	s.logger.Info().Str("func", "*sessionService.Open").Str("session_id", id).Msg("session opened")

	return models.SessionToken{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt.Time,
	}, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (models.Session, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[parsed.SessionID]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	current := models.Session{ID: parsed.SessionID, ExpiresAt: sess.expiresAt}
	if current.Expired(s.now()) {
		delete(s.sessions, parsed.SessionID)
		return models.Session{}, ErrSessionExpired
	}

	return current, nil
}

func (s *sessionService) WithKey(ctx context.Context, sessionID string, fn func(key models.MasterKey) error) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok && !s.now().Before(sess.expiresAt) {
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return ErrSessionExpired
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	if sess.key == nil {
		return fn("")
	}

	buf, err := sess.key.Open()
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionService.WithKey").Msg("error opening session enclave")
		return fmt.Errorf("error opening session enclave: %w", err)
	}
	defer buf.Destroy()

	// copy out of the locked buffer: fn may keep references after Destroy
	return fn(models.MasterKey(string(buf.Bytes())))
}

func (s *sessionService) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	s.logger.Info().Str("func", "*sessionService.Close").Str("session_id", sessionID).Msg("session closed")
	return nil
}

func (s *sessionService) Sweep(ctx context.Context) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if !now.Before(sess.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Debug().Str("func", "*sessionService.Sweep").Int("removed", removed).Msg("expired sessions swept")
	}
	return removed
}

func (s *sessionService) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.sessions)
}
