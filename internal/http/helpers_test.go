package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"pantry-backend-go/internal/config"
	"pantry-backend-go/internal/db"
	"pantry-backend-go/internal/migrations"
	"pantry-backend-go/internal/services"
)

const (
	testAdminUser     = "director"
	testAdminPassword = "pantry-pass"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Apply(database))
	require.NoError(t, services.EnsureAdminAccount(database, testAdminUser, testAdminPassword))

	cfg := config.Config{
		SessionSecret:     "test-session-secret",
		UploadStoragePath: t.TempDir(),
	}
	return NewServer(database, cfg, services.NewMetricsHub())
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func newRecorderFor(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

// loginAdmin authenticates against the seeded test account and returns the
// session cookies for subsequent requests.
func loginAdmin(t *testing.T, handler http.Handler) []*http.Cookie {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

type multipartBody struct {
	buf         bytes.Buffer
	contentType string
}

func buildMultipart(t *testing.T, fields map[string]string, fileField, filename string, fileBytes []byte) *multipartBody {
	t.Helper()
	body := &multipartBody{}
	writer := multipart.NewWriter(&body.buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	body.contentType = writer.FormDataContentType()
	return body
}

func doMultipart(t *testing.T, handler http.Handler, path string, body *multipartBody, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, &body.buf)
	req.Header.Set("Content-Type", body.contentType)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
