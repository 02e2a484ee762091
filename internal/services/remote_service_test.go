package services

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ruralpay/hacklab/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRemote(fetch, ping string, limit int) (*RemoteService, *recordingSink) {
	sink := &recordingSink{}
	svc := NewRemoteService(config.RemoteConfig{
		FetchCommand: fetch,
		PingCommand:  ping,
		FetchLimit:   limit,
	}, sink, zap.NewNop())
	return svc, sink
}

func TestRemoteService_Fetch(t *testing.T) {
	t.Run("input is interpreted by the shell", func(t *testing.T) {
		svc, sink := newTestRemote("echo", "echo", 4000)

		rr := httptest.NewRecorder()
		svc.Fetch(rr, httptest.NewRequest(http.MethodGet, "/fetch?url="+url.QueryEscape("x; echo INJECTED"), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "<pre>x\nINJECTED\n</pre>", rr.Body.String())
		assert.Equal(t, []string{"remote fetch: x; echo INJECTED initiated from 192.0.2.1"}, sink.Lines())
	})

	t.Run("output is truncated", func(t *testing.T) {
		svc, _ := newTestRemote("echo", "echo", 4)

		rr := httptest.NewRecorder()
		svc.Fetch(rr, httptest.NewRequest(http.MethodGet, "/fetch?url=abcdefgh", nil))

		assert.Equal(t, "<pre>abcd</pre>", rr.Body.String())
	})

	t.Run("command failure", func(t *testing.T) {
		svc, _ := newTestRemote("false", "echo", 4000)

		rr := httptest.NewRecorder()
		svc.Fetch(rr, httptest.NewRequest(http.MethodGet, "/fetch?url=http://localhost", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.HasPrefix(rr.Body.String(), "Error: Command failed: false http://localhost"))
	})

	t.Run("missing url", func(t *testing.T) {
		svc, sink := newTestRemote("echo", "echo", 4000)

		rr := httptest.NewRecorder()
		svc.Fetch(rr, httptest.NewRequest(http.MethodGet, "/fetch", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Missing url param")
		assert.Empty(t, sink.Lines())
	})
}

func TestRemoteService_Ping(t *testing.T) {
	svc, _ := newTestRemote("echo", "echo", 4000)

	rr := httptest.NewRecorder()
	svc.Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "<pre>127.0.0.1\n</pre>", rr.Body.String())

	rr = httptest.NewRecorder()
	svc.Ping(rr, httptest.NewRequest(http.MethodGet, "/ping?host="+url.QueryEscape("127.0.0.1 && echo INJECTED"), nil))
	assert.Equal(t, "<pre>127.0.0.1\nINJECTED\n</pre>", rr.Body.String())
}
