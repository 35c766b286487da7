package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	token, expires, err := GenerateToken("secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	subject, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, subject)

	_, err = ParseToken("other", token)
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	token, _, err := GenerateToken("secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken("secret", token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestToken_RejectsForeignClaims(t *testing.T) {
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "someone",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := foreign.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseToken("secret", signed)
	assert.Error(t, err)
}

func TestCheckAdminPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckAdminPassword(hash, "", "s3cret"))
	assert.False(t, CheckAdminPassword(hash, "s3cret", "wrong"))
	assert.False(t, CheckAdminPassword(hash, "plain", "plain"), "hash takes precedence")
	assert.True(t, CheckAdminPassword("", "plain", "plain"))
	assert.False(t, CheckAdminPassword("", "", ""))
	assert.False(t, CheckAdminPassword("", "", "anything"))
}

func TestPagination(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	app := fiber.New()
	var got []int
	var meta Meta
	var paged bool
	app.Get("/", func(c *fiber.Ctx) error {
		var p Pagination
		p, paged = ParsePagination(c)
		got = items
		if paged {
			got, meta = Paginate(items, p)
		}
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.False(t, paged)
	assert.Equal(t, items, got)

	_, err = app.Test(httptest.NewRequest("GET", "/?page=2&limit=2", nil))
	require.NoError(t, err)
	assert.True(t, paged)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, Meta{Page: 2, Limit: 2, Total: 5}, meta)

	_, err = app.Test(httptest.NewRequest("GET", "/?page=9&limit=2", nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}
