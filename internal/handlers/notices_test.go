package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeFlow(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	// Missing content is rejected.
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/notices", map[string]interface{}{
		"title": "Holiday",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	// Create with defaults.
	resp, created := doJSON(t, http.MethodPost, ts.URL+"/api/notices", map[string]interface{}{
		"title":   "Holiday",
		"content": "No classes on Friday.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "announcement", created["type"])
	assert.EqualValues(t, 1, created["createdById"])

	// An unknown type falls back to announcement.
	resp, other := doJSON(t, http.MethodPost, ts.URL+"/api/notices", map[string]interface{}{
		"title":   "Sick leave",
		"content": "Taking leave tomorrow.",
		"type":    "vacation",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "announcement", other["type"])

	// Newest first.
	listResp, err := http.Get(ts.URL + "/api/notices")
	require.NoError(t, err)
	var notices []map[string]interface{}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&notices))
	listResp.Body.Close()
	require.Len(t, notices, 2)
	assert.Equal(t, "Sick leave", notices[0]["title"])

	// Partial update keeps unsent fields.
	id := fmt.Sprintf("%v", created["ID"])
	resp, updated := doJSON(t, http.MethodPut, ts.URL+"/api/notices/"+id, map[string]interface{}{
		"type": "leave",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "leave", updated["type"])
	assert.Equal(t, "Holiday", updated["title"])

	// Delete, then 404.
	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/notices/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodDelete, ts.URL+"/api/notices/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOTICE_NOT_FOUND", body["code"])
}
