package util

import (
	"encoding/json"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Session is the JSON payload carried by the session cookie. Validity is
// structural only: a parseable cookie with both IDs present is accepted.
// Membership revocation is checked at OAuth-callback/verify time, not here.
type Session struct {
	UserID     string `json:"userId"`
	WhopUserID string `json:"whopUserId"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
}

func (s *Session) Valid() bool {
	return s != nil && s.UserID != "" && s.WhopUserID != ""
}

// EncodeSession serializes a session for cookie storage. Gin's SetCookie
// url-escapes the value, so plain JSON is safe to carry.
func EncodeSession(s *Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeSession parses a cookie value back into a session. Gin's Cookie
// accessor already unescapes, so the value is normally plain JSON;
// unescaping again would corrupt literal plus signs. Values that are still
// url-escaped (clients bypassing Gin) get one unescape as a fallback.
func DecodeSession(value string) (*Session, error) {
	var s Session
	if err := json.Unmarshal([]byte(value), &s); err == nil {
		return &s, nil
	}

	unescaped, err := url.QueryUnescape(value)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(unescaped), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSessionFromContext returns the session placed by the session middleware,
// or nil when the request is unauthenticated.
func GetSessionFromContext(c *gin.Context) *Session {
	v, exists := c.Get("session")
	if !exists {
		return nil
	}
	s, ok := v.(*Session)
	if !ok {
		return nil
	}
	return s
}
