package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stitchdesk/garmentqc/internal/testserver"
	"github.com/stitchdesk/garmentqc/internal/transport"
)

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	ts := testserver.New(t, "secret-token", "tenant1")

	resp, err := http.Get(ts.Server.URL + "/orders/x")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectsUnknownToken(t *testing.T) {
	ts := testserver.New(t, "secret-token", "tenant1")

	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+"/orders/x", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer wrong-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_HealthIsPublic(t *testing.T) {
	ts := testserver.New(t, "secret-token", "tenant1")

	resp, err := http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "ok", string(body))
}

func TestAuthMiddleware_TenantScoping(t *testing.T) {
	ts := testserver.New(t, "token-a", "tenant-a")
	require.NoError(t, ts.AddAPIKey("token-b", "tenant-b"))

	orderID := createOrder(t, ts)

	// tenant-b cannot see tenant-a's order
	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+"/orders/"+orderID, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token-b")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticResolver(t *testing.T) {
	resolver := transport.StaticResolver{"tok": "tenant1"}

	tenantID, err := resolver.ResolveTenant(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "tenant1", tenantID)

	_, err = resolver.ResolveTenant(context.Background(), "nope")
	require.ErrorIs(t, err, transport.ErrUnauthorized)
}

func TestStaticTenantMiddleware(t *testing.T) {
	var got string
	handler := transport.StaticTenantMiddleware("tenant1")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = transport.TenantFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "tenant1", got)
}

func TestHashToken(t *testing.T) {
	require.Equal(t, transport.HashToken("abc"), transport.HashToken("abc"))
	require.NotEqual(t, transport.HashToken("abc"), transport.HashToken("abd"))
	require.Len(t, transport.HashToken("abc"), 64)
}
