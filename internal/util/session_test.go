package util

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	s := &Session{
		UserID:     "0d0c8a4e-2f4e-4d6a-9b1e-1c9a0a3f5b77",
		WhopUserID: "user_abc123",
		Email:      "ada@example.com",
		Name:       "Ada",
	}

	encoded, err := EncodeSession(s)
	require.NoError(t, err)

	decoded, err := DecodeSession(encoded)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestDecodeSessionAcceptsEscapedCookieValue(t *testing.T) {
	encoded, err := EncodeSession(&Session{UserID: "u1", WhopUserID: "w1"})
	require.NoError(t, err)

	decoded, err := DecodeSession(url.QueryEscape(encoded))
	require.NoError(t, err)
	assert.Equal(t, "u1", decoded.UserID)
	assert.Equal(t, "w1", decoded.WhopUserID)
}

func TestDecodeSessionPreservesPlusSign(t *testing.T) {
	// The value is already unescaped when it reaches the decoder; a second
	// unescape would turn the plus into a space.
	encoded, err := EncodeSession(&Session{UserID: "u1", WhopUserID: "w1", Email: "a+b@example.com"})
	require.NoError(t, err)

	decoded, err := DecodeSession(encoded)
	require.NoError(t, err)
	assert.Equal(t, "a+b@example.com", decoded.Email)
}

func TestDecodeSessionRejectsGarbage(t *testing.T) {
	_, err := DecodeSession("definitely not json")
	assert.Error(t, err)
}

func TestSessionValid(t *testing.T) {
	assert.True(t, (&Session{UserID: "u1", WhopUserID: "w1"}).Valid())
	assert.True(t, (&Session{UserID: "u1", WhopUserID: "w1", Email: "a@b.c"}).Valid(),
		"email and name are optional")
	assert.False(t, (&Session{WhopUserID: "w1"}).Valid())
	assert.False(t, (&Session{UserID: "u1"}).Valid())
	assert.False(t, (*Session)(nil).Valid())
}
