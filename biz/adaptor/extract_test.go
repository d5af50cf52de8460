package adaptor

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"listening-show/biz/application/dto/basic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (string, string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	priv, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: priv})),
		string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub}))
}

func TestTokenRoundTrip(t *testing.T) {
	secret, public := generateKeyPair(t)
	meta := &basic.UserMeta{UserId: "65f0c0ffee0000000000abcd", Role: "parent", Name: "Parent"}

	token, exp, err := signToken(secret, 3600, meta)
	require.NoError(t, err)
	assert.NotZero(t, exp)

	got, err := ParseToken(public, token)
	require.NoError(t, err)
	assert.Equal(t, meta, got)

	got, err = ParseToken(public, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, meta.UserId, got.UserId)
}

func TestParseTokenRejects(t *testing.T) {
	secret, public := generateKeyPair(t)
	_, otherPublic := generateKeyPair(t)

	_, err := ParseToken(public, "")
	assert.Error(t, err)
	_, err = ParseToken(public, "not-a-token")
	assert.Error(t, err)

	expired, _, err := signToken(secret, -60, &basic.UserMeta{UserId: "u1"})
	require.NoError(t, err)
	_, err = ParseToken(public, expired)
	assert.Error(t, err)

	token, _, err := signToken(secret, 60, &basic.UserMeta{UserId: "u1"})
	require.NoError(t, err)
	_, err = ParseToken(otherPublic, token)
	assert.Error(t, err)

	noUser, _, err := signToken(secret, 60, &basic.UserMeta{Role: "parent"})
	require.NoError(t, err)
	_, err = ParseToken(public, noUser)
	assert.Error(t, err)
}

func TestExtractUserMeta(t *testing.T) {
	meta := ExtractUserMeta(context.Background())
	require.NotNil(t, meta)
	assert.Empty(t, meta.GetUserId())

	ctx := WithUserMeta(context.Background(), &basic.UserMeta{UserId: "u1", Role: "instructor"})
	assert.Equal(t, "instructor", ExtractUserMeta(ctx).GetRole())
}
