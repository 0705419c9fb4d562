package client

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const sessionCookieName = `token`

// SessionAlive reports whether the session cookie is present and, when it is
// a JWT, not yet expired. The signature is never verified here; the server
// owns session validity and this is only a cheap local pre-check before
// authenticated calls.
func (c *Client) SessionAlive(now time.Time) bool {
	for _, cookie := range c.client.Jar.Cookies(c.baseURL) {
		if cookie.Name != sessionCookieName {
			continue
		}

		return !sessionExpired(cookie.Value, now)
	}

	return false
}

func sessionExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		// Opaque session values are left to the server to judge.
		return false
	}

	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(now)
}
