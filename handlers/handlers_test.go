package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jacsonsite/auth"
	"jacsonsite/config"
	"jacsonsite/db"
)

func TestMain(m *testing.M) {
	auth.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type testEnv struct {
	t       *testing.T
	db      *db.DB
	auth    *auth.Service
	handler http.Handler
	token   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	d, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	svc := auth.NewService(d, auth.NewTokens("handlers-test-secret", auth.DefaultTokenTTL))
	_, err = svc.CreateUser(ctx, "jacsonadmin", "Mudar@123")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "jacsonadmin", "Mudar@123")
	require.NoError(t, err)

	srv, err := NewServer(d, svc, config.Config{AppName: "Jacson Test"})
	require.NoError(t, err)

	return &testEnv{t: t, db: d, auth: svc, handler: srv.Routes(), token: sess.Token}
}

// do sends an authenticated request. body is JSON-encoded unless it is a
// string, which is sent verbatim.
func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	return e.send(method, path, body, "Bearer "+e.token)
}

func (e *testEnv) anon(method, path string, body any) *httptest.ResponseRecorder {
	return e.send(method, path, body, "")
}

func (e *testEnv) send(method, path string, body any, authorization string) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(e.t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t)

	rr := e.anon("GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rr)["status"])
}

func TestUnknownAPIRoute(t *testing.T) {
	e := newTestEnv(t)

	rr := e.anon("GET", "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestInvalidJSONBody(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do("POST", "/api/services", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Dados inválidos.", decode[ErrorResponse](t, rr).Message)
}
