package auth

import "github.com/labstack/echo/v4"

// IdentityKey is the echo context key the gate stores the caller under.
const IdentityKey = "identity"

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID uint
	Email  string
}

// IdentityFrom returns the caller stored by the gate.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(IdentityKey).(Identity)
	return id, ok
}
