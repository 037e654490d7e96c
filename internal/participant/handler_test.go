package participant

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, func(max *int) uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, db, _ := newTestService(t)
	h := NewHandler(svc)

	r := gin.New()
	r.GET("/participants", h.ListParticipants)
	r.POST("/participants", h.CreateParticipant)
	r.GET("/participants/:id", h.GetParticipant)
	r.PUT("/participants/:id", h.UpdateParticipant)
	r.DELETE("/participants/:id", h.DeleteParticipant)
	r.GET("/events/:id/participants", h.ListEventParticipants)
	r.GET("/events/:id/participants/export", h.ExportEventParticipants)

	return r, func(max *int) uint { return seedEvent(t, db, max) }
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_CreateParticipant(t *testing.T) {
	r, seed := newTestRouter(t)
	eventID := seed(intPtr(1))

	w := doRequest(r, http.MethodPost, "/participants",
		fmt.Sprintf(`{"name":"Ann","email":"ann@example.com","event_id":%d}`, eventID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	assert.Equal(t, "Ann", created["name"])
	assert.NotEmpty(t, created["registration_date"])
	assert.Nil(t, created["phone"])

	w = doRequest(r, http.MethodPost, "/participants",
		fmt.Sprintf(`{"name":"Bob","email":"bob@example.com","event_id":%d}`, eventID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Event has reached maximum participants", decodeBody(t, w)["message"])

	w = doRequest(r, http.MethodPost, "/participants", `{"name":"Cy","email":"cy@example.com","event_id":999}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event with id 999 not found", decodeBody(t, w)["message"])
}

func TestHandler_CreateParticipantBadInput(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []string{"", "{}"} {
		w := doRequest(r, http.MethodPost, "/participants", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No input data provided", decodeBody(t, w)["message"])
	}

	w := doRequest(r, http.MethodPost, "/participants", `{"name":"Ann","email":"nope","event_id":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Validation error", body["message"])
	assert.Contains(t, body["errors"], "event_id")

	w = doRequest(r, http.MethodPost, "/participants", `{"name":"Ann","email":"nope","event_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs, ok := decodeBody(t, w)["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Not a valid email address."}, errs["email"])
}

func TestHandler_ParticipantLifecycle(t *testing.T) {
	r, seed := newTestRouter(t)
	eventID := seed(nil)

	w := doRequest(r, http.MethodPost, "/participants",
		fmt.Sprintf(`{"name":"Ann","email":"ann@example.com","phone":"555","event_id":%d}`, eventID))
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint(decodeBody(t, w)["id"].(float64))
	path := fmt.Sprintf("/participants/%d", id)

	w = doRequest(r, http.MethodPut, path, `{"name":"Annie"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "Annie", updated["name"])
	assert.Equal(t, "555", updated["phone"])

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/events/%d/participants", eventID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/events/%d/participants/export?format=csv", eventID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Annie")

	w = doRequest(r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Participant deleted successfully", decodeBody(t, w)["message"])

	w = doRequest(r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_InvalidIDs(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/participants/abc"},
		{http.MethodDelete, "/participants/-1"},
		{http.MethodGet, "/events/xyz/participants"},
		{http.MethodGet, "/events/0/participants/export"},
	} {
		w := doRequest(r, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
	}
}

func TestHandler_CreateParticipantDatabaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, db, _ := newTestService(t)
	eventID := seedEvent(t, db, nil)
	failCreates(t, db)

	r := gin.New()
	r.POST("/participants", NewHandler(svc).CreateParticipant)

	w := doRequest(r, http.MethodPost, "/participants",
		fmt.Sprintf(`{"name":"Ann","email":"ann@example.com","event_id":%d}`, eventID))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Database error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "disk full")
}
