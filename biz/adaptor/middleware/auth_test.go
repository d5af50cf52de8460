package middleware

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"listening-show/biz/adaptor"
	"listening-show/biz/infrastructure/consts"
	"net/http"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keys struct {
	private *ecdsa.PrivateKey
	public  string
}

func newKeys(t *testing.T) *keys {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return &keys{
		private: key,
		public:  string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
	}
}

func (k *keys) token(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"exp":    time.Now().Add(time.Hour).Unix(),
		"userId": userID,
		"role":   role,
	}).SignedString(k.private)
	require.NoError(t, err)
	return token
}

func newEngine(k *keys) *route.Engine {
	h := route.NewEngine(config.NewOptions([]config.Option{}))
	whoami := func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, adaptor.ExtractUserMeta(ctx).GetUserId())
	}
	publicKey := func() string { return k.public }
	h.GET("/me", auth(publicKey), whoami)
	h.GET("/instructor", auth(publicKey), RequireRole(consts.RoleInstructor), whoami)
	return h
}

func TestAuth(t *testing.T) {
	k := newKeys(t)
	h := newEngine(k)

	w := ut.PerformRequest(h, http.MethodGet, "/me", nil,
		ut.Header{Key: consts.Authorization, Value: consts.Bearer + k.token(t, "u1", consts.RoleParent)})
	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "u1", string(resp.Body()))

	w = ut.PerformRequest(h, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())

	w = ut.PerformRequest(h, http.MethodGet, "/me", nil,
		ut.Header{Key: consts.Authorization, Value: "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())

	other := newKeys(t)
	w = ut.PerformRequest(h, http.MethodGet, "/me", nil,
		ut.Header{Key: consts.Authorization, Value: other.token(t, "u1", consts.RoleParent)})
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())
}

func TestRequireRole(t *testing.T) {
	k := newKeys(t)
	h := newEngine(k)

	w := ut.PerformRequest(h, http.MethodGet, "/instructor", nil,
		ut.Header{Key: consts.Authorization, Value: k.token(t, "u2", consts.RoleInstructor)})
	assert.Equal(t, http.StatusOK, w.Result().StatusCode())

	for _, role := range []string{consts.RoleParent, consts.RoleStudent} {
		w = ut.PerformRequest(h, http.MethodGet, "/instructor", nil,
			ut.Header{Key: consts.Authorization, Value: k.token(t, "u3", role)})
		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode(), role)
	}
}
