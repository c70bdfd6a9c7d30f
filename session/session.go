// Package session wraps the cookie session with typed accessors for the
// three things the storefront keeps per client: the cart, the logged-in
// user id, and pending flash messages.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/cart"
)

const (
	cartKey = "cart"
	userKey = "user_id"
)

// Message is a flash-style notice carried across a redirect.
type Message struct {
	Level string `json:"level"` // success, info, warning, danger
	Text  string `json:"text"`
}

func init() {
	gob.Register(cart.Cart{})
	gob.Register(Message{})
}

// Cart returns the session cart, or a fresh empty one.
func Cart(c *gin.Context) *cart.Cart {
	s := sessions.Default(c)
	if v := s.Get(cartKey); v != nil {
		if ct, ok := v.(cart.Cart); ok {
			return &ct
		}
	}
	return cart.New()
}

// SaveCart writes the cart back into the session cookie.
func SaveCart(c *gin.Context, ct *cart.Cart) error {
	s := sessions.Default(c)
	s.Set(cartKey, *ct)
	return s.Save()
}

// UserID returns the logged-in user's id, nil for guests.
func UserID(c *gin.Context) *uint {
	s := sessions.Default(c)
	if v := s.Get(userKey); v != nil {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func SetUserID(c *gin.Context, id uint) error {
	s := sessions.Default(c)
	s.Set(userKey, id)
	return s.Save()
}

// ClearUser logs the user out. The cart survives the logout.
func ClearUser(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(userKey)
	return s.Save()
}

// Flash queues a message for the next request.
func Flash(c *gin.Context, level, text string) {
	s := sessions.Default(c)
	s.AddFlash(Message{Level: level, Text: text})
	if err := s.Save(); err != nil {
		logrus.WithError(err).Warn("failed to save flash message")
	}
}

// Flashes pops and returns all queued messages.
func Flashes(c *gin.Context) []Message {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(); err != nil {
		logrus.WithError(err).Warn("failed to clear flash messages")
	}
	messages := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			messages = append(messages, m)
		}
	}
	return messages
}
