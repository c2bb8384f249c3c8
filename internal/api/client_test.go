package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjsavings/savings-client/internal/common"
	"github.com/cjsavings/savings-client/internal/logging"
)

// ---- fakes ----

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Token(ctx context.Context) (string, error) { return f.token, f.err }

type fakeDevices struct {
	id  string
	err error
}

func (f *fakeDevices) DeviceID(ctx context.Context) (string, error) { return f.id, f.err }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// newServer records each incoming request and replies with the given
// status and body.
func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *[]captured) {
	t.Helper()
	var reqs []captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqs = append(reqs, captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func newClient(srv *httptest.Server, tokens TokenSource, devices DeviceIDSource) *Client {
	return New(srv.URL, srv.Client(), tokens, devices, testLogger())
}

// ---- tests ----

func TestRequest_DefaultContentType(t *testing.T) {
	srv, reqs := newServer(t, 200, `{}`)
	c := newClient(srv, &fakeTokens{}, &fakeDevices{})

	_, err := c.Request(context.Background(), http.MethodPost, "/customer-auth/login", map[string]string{"email": "a@b.c"}, nil)
	require.NoError(t, err)

	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.JSONEq(t, `{"email":"a@b.c"}`, string(got.body))
}

func TestRequest_CallerHeaderOverridesDefault(t *testing.T) {
	srv, reqs := newServer(t, 200, `{}`)
	c := newClient(srv, &fakeTokens{}, &fakeDevices{})

	hdr := http.Header{}
	hdr.Set("Content-Type", "application/vnd.custom+json")
	hdr.Set("X-Extra", "yes")
	_, err := c.Request(context.Background(), http.MethodGet, "/x", nil, hdr)
	require.NoError(t, err)

	got := (*reqs)[0]
	assert.Equal(t, "application/vnd.custom+json", got.header.Get("Content-Type"))
	assert.Equal(t, "yes", got.header.Get("X-Extra"))
}

func TestRequest_NoAuthHeadersOnPlainCalls(t *testing.T) {
	srv, reqs := newServer(t, 200, `{}`)
	c := newClient(srv, &fakeTokens{token: "tok"}, &fakeDevices{id: "dev"})

	_, err := c.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	require.NoError(t, err)

	got := (*reqs)[0]
	_, hasAuth := got.header[common.HeaderAuthorization]
	assert.False(t, hasAuth)
	assert.Empty(t, got.header.Get(common.HeaderDeviceID))
}

func TestAuthorized_AttachesBearerAndDeviceID(t *testing.T) {
	srv, reqs := newServer(t, 200, `{}`)
	c := newClient(srv, &fakeTokens{token: "tok-123"}, &fakeDevices{id: "pixel-abc"})

	_, err := c.Authorized(context.Background(), http.MethodGet, "/customer-auth/me", nil, nil)
	require.NoError(t, err)

	got := (*reqs)[0]
	assert.Equal(t, "Bearer tok-123", got.header.Get(common.HeaderAuthorization))
	assert.Equal(t, "pixel-abc", got.header.Get(common.HeaderDeviceID))
}

func TestAuthorized_EmptyTokenSendsEmptyAuthorization(t *testing.T) {
	srv, reqs := newServer(t, 200, `{}`)
	c := newClient(srv, &fakeTokens{token: ""}, &fakeDevices{id: "dev"})

	_, err := c.Authorized(context.Background(), http.MethodGet, "/x", nil, nil)
	require.NoError(t, err)

	got := (*reqs)[0]
	_, hasAuth := got.header[common.HeaderAuthorization]
	assert.True(t, hasAuth)
	assert.Equal(t, "", got.header.Get(common.HeaderAuthorization))
}

func TestAuthorized_TokenReadFreshPerCall(t *testing.T) {
	srv, reqs := newServer(t, 200, `{}`)
	tokens := &fakeTokens{token: "first"}
	c := newClient(srv, tokens, &fakeDevices{id: "dev"})
	ctx := context.Background()

	_, err := c.Authorized(ctx, http.MethodGet, "/x", nil, nil)
	require.NoError(t, err)

	tokens.token = "second"
	_, err = c.Authorized(ctx, http.MethodGet, "/x", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer first", (*reqs)[0].header.Get(common.HeaderAuthorization))
	assert.Equal(t, "Bearer second", (*reqs)[1].header.Get(common.HeaderAuthorization))
}

func TestAuthorized_StorageErrorPropagates(t *testing.T) {
	srv, reqs := newServer(t, 200, `{}`)
	boom := errors.New("secure store unavailable")
	c := newClient(srv, &fakeTokens{err: boom}, &fakeDevices{id: "dev"})

	_, err := c.Authorized(context.Background(), http.MethodGet, "/x", nil, nil)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, *reqs)
}

func TestRequest_MalformedBodyYieldsEmptyObject(t *testing.T) {
	srv, _ := newServer(t, 200, `not json at all`)
	c := newClient(srv, &fakeTokens{}, &fakeDevices{})

	res, err := c.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Get("anything").Exists())
	assert.True(t, res.IsObject())
}

func TestRequest_MalformedBodyOnFailureStillFails(t *testing.T) {
	srv, _ := newServer(t, 500, `<html>oops</html>`)
	c := newClient(srv, &fakeTokens{}, &fakeDevices{})

	_, err := c.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "request failed", apiErr.Message)
}

func TestRequest_BackendMessageAndCodeSurfaced(t *testing.T) {
	srv, _ := newServer(t, 403, `{"message":"Device pending verification","code":"DEVICE_NOT_VERIFIED"}`)
	c := newClient(srv, &fakeTokens{}, &fakeDevices{})

	_, err := c.Request(context.Background(), http.MethodPost, "/customer-auth/login", nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "Device pending verification", apiErr.Message)
	assert.Equal(t, "DEVICE_NOT_VERIFIED", apiErr.Code)
}

func TestRequest_401MatchesErrUnauthorized(t *testing.T) {
	srv, _ := newServer(t, 401, `{"message":"invalid token"}`)
	c := newClient(srv, &fakeTokens{}, &fakeDevices{})

	_, err := c.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRequest_TransportErrorWrapped(t *testing.T) {
	srv, _ := newServer(t, 200, `{}`)
	url := srv.URL
	srv.Close()

	c := New(url, nil, &fakeTokens{}, &fakeDevices{}, testLogger())
	_, err := c.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}
