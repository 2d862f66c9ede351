package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-backend-go/internal/models"
)

func postMessage(t *testing.T, handler http.Handler, name, subject string) string {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/messages", map[string]string{
		"name":    name,
		"email":   name + "@example.com",
		"subject": subject,
		"message": "Hello there",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp["id"])
	return resp["id"]
}

func TestCreateMessageStartsUnread(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	postMessage(t, handler, "A", "Hi")

	cookies := loginAdmin(t, handler)
	rec := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []MessageDTO
	decodeBody(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusUnread, items[0].Status)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "Hello there", items[0].Message)
	assert.NotEmpty(t, items[0].Date)
}

func TestCreateMessageIsPublic(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	// no session cookie: the contact form is a visitor endpoint
	rec := doJSON(t, handler, http.MethodPost, "/api/messages", map[string]string{
		"name":    "Visitor",
		"email":   "v@example.com",
		"message": "No login needed",
	}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateMessageRequiredFields(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	rec := doJSON(t, handler, http.MethodPost, "/api/messages", map[string]string{
		"name":  "A",
		"email": "a@example.com",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cookies := loginAdmin(t, handler)
	list := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	var items []MessageDTO
	decodeBody(t, list, &items)
	assert.Empty(t, items)
}

func TestListMessagesNewestFirst(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	first := postMessage(t, handler, "First", "1")
	time.Sleep(5 * time.Millisecond)
	second := postMessage(t, handler, "Second", "2")

	cookies := loginAdmin(t, handler)
	rec := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	var items []MessageDTO
	decodeBody(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, second, items[0].ID)
	assert.Equal(t, first, items[1].ID)
}

func TestUpdateMessageStatus(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()
	id := postMessage(t, handler, "A", "Hi")
	cookies := loginAdmin(t, handler)

	rec := doJSON(t, handler, http.MethodPatch, "/api/messages", map[string]interface{}{
		"id":     id,
		"status": models.StatusRead,
	}, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	list := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	var items []MessageDTO
	decodeBody(t, list, &items)
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusRead, items[0].Status)
}

func TestUpdateMessageWithoutStatusLeavesItUnchanged(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()
	id := postMessage(t, handler, "A", "Hi")
	cookies := loginAdmin(t, handler)

	rec := doJSON(t, handler, http.MethodPatch, "/api/messages", map[string]interface{}{"id": id}, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.StatusUnread, resp["status"])

	list := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	var items []MessageDTO
	decodeBody(t, list, &items)
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusUnread, items[0].Status)
}

func TestUpdateMessageUnknownID(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()
	postMessage(t, handler, "A", "Hi")
	cookies := loginAdmin(t, handler)

	rec := doJSON(t, handler, http.MethodPatch, "/api/messages", map[string]interface{}{
		"id":     "does-not-exist",
		"status": models.StatusRead,
	}, cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	list := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	var items []MessageDTO
	decodeBody(t, list, &items)
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusUnread, items[0].Status)
}

func TestUpdateMessageInvalidStatus(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()
	id := postMessage(t, handler, "A", "Hi")
	cookies := loginAdmin(t, handler)

	rec := doJSON(t, handler, http.MethodPatch, "/api/messages", map[string]interface{}{
		"id":     id,
		"status": "Archived",
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMessage(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()
	id := postMessage(t, handler, "A", "Hi")
	cookies := loginAdmin(t, handler)

	rec := doJSON(t, handler, http.MethodDelete, "/api/messages?id="+id, nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, "/api/messages?id="+id, nil, cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	list := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	var items []MessageDTO
	decodeBody(t, list, &items)
	assert.Empty(t, items)
}
