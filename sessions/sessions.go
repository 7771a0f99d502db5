// Package sessions maps the opaque session cookie to the wallet a client
// connected with.
package sessions

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const (
	keyWalletAddress = "wallet_address"
	keyUserID        = "user_id"
)

// ErrNoSession is returned by Load when the client has not connected.
var ErrNoSession = errors.New("no wallet session")

// Wallet is what the service remembers about a connected client.
type Wallet struct {
	WalletAddress string
	UserID        uint
}

// Store is the capability handlers use to read and write session state.
type Store interface {
	Load(c *fiber.Ctx) (Wallet, error)
	Save(c *fiber.Ctx, w Wallet) error
}

// Config controls the session cookie.
type Config struct {
	CookieName string
	Expiration time.Duration
	Secure     bool
}

// CookieStore keeps session state server side, keyed by a random token
// carried in a cookie.
type CookieStore struct {
	store *session.Store
}

// NewCookieStore builds an in-memory session store.
func NewCookieStore(cfg Config) *CookieStore {
	if cfg.CookieName == "" {
		cfg.CookieName = "greenhash_session"
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 24 * time.Hour
	}

	return &CookieStore{
		store: session.New(session.Config{
			KeyLookup:      "cookie:" + cfg.CookieName,
			Expiration:     cfg.Expiration,
			CookieHTTPOnly: true,
			CookieSecure:   cfg.Secure,
			CookieSameSite: "Lax",
			KeyGenerator:   uuid.NewString,
		}),
	}
}

// Load returns the wallet bound to the request's session, or ErrNoSession.
func (s *CookieStore) Load(c *fiber.Ctx) (Wallet, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return Wallet{}, fmt.Errorf("loading session: %w", err)
	}

	address, _ := sess.Get(keyWalletAddress).(string)
	if address == "" {
		return Wallet{}, ErrNoSession
	}

	userID, _ := sess.Get(keyUserID).(uint)

	return Wallet{WalletAddress: address, UserID: userID}, nil
}

// Save binds w to the request's session and sets the cookie.
func (s *CookieStore) Save(c *fiber.Ctx, w Wallet) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	sess.Set(keyWalletAddress, w.WalletAddress)
	sess.Set(keyUserID, w.UserID)

	if err := sess.Save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
