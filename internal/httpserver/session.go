package httpserver

import (
	"encoding/gob"

	"storefront/internal/domain"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const cartSessionKey = "cart"

func init() {
	// The cart crosses the cookie boundary gob-encoded inside an interface value.
	gob.Register(domain.Cart{})
}

// cartFromSession loads the session cart, or an empty one if none is stored yet.
func cartFromSession(c *gin.Context) domain.Cart {
	sess := sessions.Default(c)
	if cart, ok := sess.Get(cartSessionKey).(domain.Cart); ok {
		return cart
	}
	return domain.Cart{}
}

// saveCart writes the cart back to the signed session cookie.
func saveCart(c *gin.Context, cart domain.Cart) error {
	sess := sessions.Default(c)
	sess.Set(cartSessionKey, cart)
	return sess.Save()
}

// clearCart drops every cart entry from the session.
func clearCart(c *gin.Context) error {
	return saveCart(c, domain.Cart{})
}

// flashError and flashSuccess queue a one-shot notice for the next rendered page.
// They save the session immediately because they always precede a redirect.
func flashError(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, "error")
	_ = sess.Save()
}

func flashSuccess(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, "success")
	_ = sess.Save()
}

// consumeFlashes drains queued notices for rendering. Reading flashes mutates the
// session, so it is saved here to clear them from the cookie.
func consumeFlashes(c *gin.Context) (successes, errs []string) {
	sess := sessions.Default(c)
	for _, f := range sess.Flashes("success") {
		if s, ok := f.(string); ok {
			successes = append(successes, s)
		}
	}
	for _, f := range sess.Flashes("error") {
		if s, ok := f.(string); ok {
			errs = append(errs, s)
		}
	}
	_ = sess.Save()
	return successes, errs
}
