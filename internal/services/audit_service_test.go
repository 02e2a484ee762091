package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_TrainingFeed(t *testing.T) {
	svc := NewAuditService(filepath.Join(t.TempDir(), "audit.log"))

	rr := httptest.NewRecorder()
	svc.TrainingFeed(rr, httptest.NewRequest(http.MethodGet, "/api/audit", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var events []AuditEvent
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, "Backup found", events[0].Event)
}

func TestAuditService_Feed(t *testing.T) {
	t.Run("newest first and unescaped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.log")
		content := "2024-03-01T12:00:00.000Z uploaded: a.txt from 10.0.0.1\n" +
			"2024-03-01T12:00:01.000Z download requested: <b>x</b> from 10.0.0.2\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		svc := NewAuditService(path)

		rr := httptest.NewRecorder()
		svc.Feed(rr, httptest.NewRequest(http.MethodGet, "/audit", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "<h1>Audit Feed</h1><ul>"+
			"<li>2024-03-01T12:00:01.000Z download requested: <b>x</b> from 10.0.0.2</li>"+
			"<li>2024-03-01T12:00:00.000Z uploaded: a.txt from 10.0.0.1</li></ul>", rr.Body.String())
	})

	t.Run("no log yet", func(t *testing.T) {
		svc := NewAuditService(filepath.Join(t.TempDir(), "missing.log"))

		rr := httptest.NewRecorder()
		svc.Feed(rr, httptest.NewRequest(http.MethodGet, "/audit", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "<h1>No audit log yet</h1>", rr.Body.String())
	})
}
