package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fake-recruiter-detector/backend/internal/scoring"
	"fake-recruiter-detector/backend/internal/store"
)

const allowedOrigin = "http://localhost:5173"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.ErrorLevel)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T, cfg Config) *gin.Engine {
	t.Helper()
	if cfg.AllowedOrigins == nil {
		cfg.AllowedOrigins = []string{allowedOrigin}
	}
	server, err := NewServer(cfg)
	require.NoError(t, err)
	router, err := server.Router()
	require.NoError(t, err)
	return router
}

func doRequest(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	router := newTestRouter(t, Config{})
	w := doRequest(router, http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Fake Recruiter Detector API is running."}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAnalyze(t *testing.T) {
	router := newTestRouter(t, Config{})
	body := `{"text": "We need your bank account and social security number via Western Union, urgent!"}`
	w := doRequest(router, http.MethodPost, "/analyze", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, "High", resp.Level)
	assert.Len(t, resp.Flags, len(resp.Highlights))
	for _, phrase := range []string{"bank account", "social security", "western union", "urgent"} {
		assert.Contains(t, resp.Highlights, Highlight{Phrase: phrase})
	}
}

func TestAnalyzeEmptyTextRendersEmptyArrays(t *testing.T) {
	router := newTestRouter(t, Config{})
	w := doRequest(router, http.MethodPost, "/analyze", `{"text": ""}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"score": 0, "level": "Low", "flags": [], "highlights": []}`, w.Body.String())
}

func TestAnalyzeRejectsInvalidBodies(t *testing.T) {
	router := newTestRouter(t, Config{})
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing text", `{}`, "text is required"},
		{"null text", `{"text": null}`, "text is required"},
		{"numeric text", `{"text": 42}`, "text must be a string"},
		{"array body", `["hello"]`, "request body must be a JSON object"},
		{"malformed", `{"text": "unterminated`, "malformed JSON"},
		{"empty body", ``, "request body is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/analyze", tc.body, map[string]string{"Content-Type": "application/json"})
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp["error"], tc.message)
		})
	}
}

func TestPatternsListing(t *testing.T) {
	table, err := scoring.NewPatternTable([]scoring.Pattern{
		{Phrase: "telegram", Weight: 20, Description: "Asks to move conversation to Telegram"},
		{Phrase: "gift card", Weight: 30, Description: "Requests payment via gift card"},
	})
	require.NoError(t, err)
	router := newTestRouter(t, Config{Table: table})

	w := doRequest(router, http.MethodGet, "/patterns", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PatternsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "telegram", resp.Items[0].Phrase)
	assert.Equal(t, "gift card", resp.Items[1].Phrase)

	w = doRequest(router, http.MethodPost, "/analyze", `{"text": "Telegram me for a gift card"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"score": 50,
		"level": "Medium",
		"flags": ["Asks to move conversation to Telegram", "Requests payment via gift card"],
		"highlights": [{"phrase": "telegram"}, {"phrase": "gift card"}]
	}`, w.Body.String())
}

func TestPatternSources(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "patterns.json")
	require.NoError(t, os.WriteFile(filePath, []byte(`[{"phrase":"from file","weight":35,"description":"file"}]`), 0o600))

	dbPath := filepath.Join(dir, "patterns.db")
	db, err := store.Open(dbPath, true)
	require.NoError(t, err)
	require.NoError(t, db.ReplacePatterns([]scoring.Pattern{{Phrase: "from db", Weight: 65, Description: "db"}}))
	require.NoError(t, db.Close())

	tests := []struct {
		name  string
		cfg   Config
		text  string
		level string
	}{
		{"file", Config{PatternsPath: filePath}, "from file", "Medium"},
		{"db wins over file", Config{PatternsPath: filePath, PatternsDBPath: dbPath, SilentDB: true}, "from db", "High"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t, tc.cfg)
			w := doRequest(router, http.MethodPost, "/analyze", `{"text": "`+tc.text+`"}`, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp AnalyzeResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.level, resp.Level)
		})
	}

	_, err = NewServer(Config{PatternsPath: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t, Config{})

	t.Run("allowed preflight", func(t *testing.T) {
		w := doRequest(router, http.MethodOptions, "/analyze", "", map[string]string{
			"Origin":                         allowedOrigin,
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Content-Type",
		})
		assert.Less(t, w.Code, 300)
		assert.Equal(t, allowedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("foreign origin", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/analyze", `{"text": "hi"}`, map[string]string{
			"Origin": "https://phisher.example",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		open := newTestRouter(t, Config{AllowedOrigins: []string{"*"}})
		w := doRequest(open, http.MethodPost, "/analyze", `{"text": "hi"}`, map[string]string{
			"Origin": "https://anywhere.example",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestInvalidOriginsRejected(t *testing.T) {
	_, err := NewServer(Config{AllowedOrigins: []string{"localhost:5173"}})
	assert.Error(t, err)
}

func TestPanicRecovery(t *testing.T) {
	router := newTestRouter(t, Config{})
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := doRequest(router, http.MethodGet, "/boom", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestRequestIDPropagation(t *testing.T) {
	router := newTestRouter(t, Config{})
	w := doRequest(router, http.MethodGet, "/", "", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestMetrics(t *testing.T) {
	router := newTestRouter(t, Config{})
	doRequest(router, http.MethodPost, "/analyze", `{"text": "gift card"}`, nil)
	doRequest(router, http.MethodPost, "/analyze", `{"text": "hello"}`, nil)

	w := doRequest(router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `recruiter_analyses_total{level="Medium"} 1`)
	assert.Contains(t, body, `recruiter_analyses_total{level="Low"} 1`)
	assert.Contains(t, body, `recruiter_analyses_total{level="High"} 0`)
	assert.Contains(t, body, "recruiter_analysis_score_count 2")
}
