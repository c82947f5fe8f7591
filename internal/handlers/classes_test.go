package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"classboard/internal/models"
	"classboard/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAuthMiddleware stands in for the JWT middleware and always authenticates
// as the seeded admin.
func testAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Next()
	}
}

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	if os.Getenv("ENV_CHEK") == "" {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Println("No .env file, relying on the environment")
		}
	}

	storage.ConnectTestingDatabase()
	require.NoError(t, storage.DB.AutoMigrate(&models.User{}, &models.ClassSession{}, &models.Notice{}))
	storage.DB.Exec("TRUNCATE TABLE users, class_sessions, notices RESTART IDENTITY CASCADE;")
	require.NoError(t, storage.DB.Create(&models.User{Username: "admin", PasswordHash: "x"}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.Default()

	classes := r.Group("/api/classes")
	{
		classes.GET("", GetClasses)
		classes.GET("/:id", GetClassByID)

		protected := classes.Group("", testAuthMiddleware())
		{
			protected.POST("", CreateClass)
			protected.PUT("/:id", UpdateClass)
			protected.DELETE("/:id", DeleteClass)
		}
	}

	notices := r.Group("/api/notices")
	{
		notices.GET("", GetNotices)

		protected := notices.Group("", testAuthMiddleware())
		{
			protected.POST("", CreateNotice)
			protected.PUT("/:id", UpdateNotice)
			protected.DELETE("/:id", DeleteNotice)
		}
	}

	return httptest.NewServer(r)
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	resp.Body.Close()
	return resp, decoded
}

func classBody(title, day string, start, end time.Time) map[string]interface{} {
	return map[string]interface{}{
		"title":     title,
		"startTime": start.Format(time.RFC3339),
		"endTime":   end.Format(time.RFC3339),
		"location":  "Hall A",
		"day":       day,
	}
}

func monday(hour, min int) time.Time {
	return time.Date(2025, time.September, 1, hour, min, 0, 0, time.Local)
}

func TestClassCRUDFlow(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	// Create.
	resp, created := doJSON(t, http.MethodPost, ts.URL+"/api/classes",
		classBody("Science - Grade 10", "Monday", monday(10, 0), monday(11, 0)))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Monday", created["day"])
	assert.Equal(t, "Theory", created["type"])
	assert.Equal(t, "EXTERNAL", created["category"])
	assert.EqualValues(t, 10, created["classNumber"])

	// Overlapping create is rejected with the conflict attached.
	resp, conflict := doJSON(t, http.MethodPost, ts.URL+"/api/classes",
		classBody("Maths", "Monday", monday(10, 30), monday(11, 30)))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CLASS_OVERLAP", conflict["code"])
	overlap, ok := conflict["overlap"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Science - Grade 10", overlap["title"])

	// Same slot on another day is fine.
	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/classes",
		classBody("Maths", "Tuesday", monday(10, 30), monday(11, 30)))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// List, unfiltered and filtered.
	resp, err := http.Get(ts.URL + "/api/classes")
	require.NoError(t, err)
	var all []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()
	assert.Len(t, all, 2)
	assert.Equal(t, "Science - Grade 10", all[0]["title"], "sorted by start time")

	resp, err = http.Get(ts.URL + "/api/classes?day=Tuesday")
	require.NoError(t, err)
	var tuesday []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tuesday))
	resp.Body.Close()
	require.Len(t, tuesday, 1)
	assert.Equal(t, "Maths", tuesday[0]["title"])

	// Get by id.
	id := fmt.Sprintf("%v", created["ID"])
	resp, got := doJSON(t, http.MethodGet, ts.URL+"/api/classes/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Science - Grade 10", got["title"])

	// Update onto the Tuesday class's slot on its day is rejected.
	resp, body := doJSON(t, http.MethodPut, ts.URL+"/api/classes/"+id,
		classBody("Science - Grade 10", "Tuesday", monday(10, 45), monday(11, 15)))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CLASS_OVERLAP", body["code"])

	// Update in place succeeds.
	resp, updated := doJSON(t, http.MethodPut, ts.URL+"/api/classes/"+id,
		classBody("Science - Grade 11", "Monday", monday(10, 0), monday(11, 0)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Science - Grade 11", updated["title"])

	// Delete, then 404s.
	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/classes/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/classes/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CLASS_NOT_FOUND", body["code"])

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/classes/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClassValidationErrors(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	// Missing required fields.
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/classes", map[string]interface{}{
		"title": "Maths",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Equal(t, "Please provide title, startTime, endTime, and location.", body["message"])

	// Unparsable time.
	payload := classBody("Maths", "Monday", monday(10, 0), monday(11, 0))
	payload["startTime"] = "ten o'clock"
	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/classes", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	// End before start.
	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/classes",
		classBody("Maths", "Monday", monday(11, 0), monday(10, 0)))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	// Bad id.
	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/classes/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_CLASS_ID", body["code"])
}
