package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocn-community/volunteer-portal/internal/actions"
	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/forms"
	"github.com/ocn-community/volunteer-portal/internal/i18n"
	"github.com/ocn-community/volunteer-portal/internal/upstream"
)

const testSecret = "handlers-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func signToken(t *testing.T, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"role": role,
		"name": "Test User",
		"sub":  "user-1",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// fakeBackend is an in-memory stand-in for the backend API
type fakeBackend struct {
	mu sync.Mutex

	events            []map[string]any
	records           []map[string]any
	eventRecords      []map[string]any
	participations    map[string]map[string]any
	entries           map[string]map[string]any
	userApps          []map[string]any
	workingHoursCode  int
	workingHoursBody  any
	deleteEventCalls  int
	submitAppCalls    int
	submitEntryCalls  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{workingHoursCode: http.StatusOK, workingHoursBody: []map[string]any{}}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /events", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.events)
	})
	mux.HandleFunc("DELETE /events/delete/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.deleteEventCalls++
		id := r.PathValue("id")
		kept := b.events[:0]
		for _, e := range b.events {
			if e["_id"] != id {
				kept = append(kept, e)
			}
		}
		b.events = kept
		writeJSON(w, http.StatusOK, map[string]any{"message": "deleted"})
	})
	mux.HandleFunc("GET /application/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.records)
	})
	mux.HandleFunc("GET /application/{eventId}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.eventRecords)
	})
	mux.HandleFunc("GET /application/event-sub/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		row, ok := b.participations[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "not found"})
			return
		}
		writeJSON(w, http.StatusOK, row)
	})
	mux.HandleFunc("GET /working-hours/working-entry/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		entry, ok := b.entries[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "not found"})
			return
		}
		writeJSON(w, http.StatusOK, entry)
	})
	mux.HandleFunc("POST /application/submit", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.submitAppCalls++
		writeJSON(w, http.StatusCreated, map[string]any{"message": "submitted"})
	})
	mux.HandleFunc("GET /working-hours/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.workingHoursCode != http.StatusOK {
			writeJSON(w, b.workingHoursCode, map[string]any{"message": "nope"})
			return
		}
		writeJSON(w, http.StatusOK, b.workingHoursBody)
	})
	mux.HandleFunc("POST /working-hours/submit-entry/{eventId}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.submitEntryCalls++
		writeJSON(w, http.StatusCreated, map[string]any{"message": "submitted"})
	})
	mux.HandleFunc("GET /working-hours/my-applications", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.userApps)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// newPortal wires a router the way the server does, against the fake backend
func newPortal(t *testing.T, backend *fakeBackend) *gin.Engine {
	t.Helper()

	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	deps := &Deps{
		Client:          upstream.New(ts.URL, 2*time.Second),
		Confirm:         actions.NewConfirmer(time.Minute),
		Validate:        forms.New(),
		Labels:          i18n.Default(),
		UTCOffsetHours:  0,
		RowsPerPage:     5,
		DefaultLanguage: "en",
	}

	eventsHandler := NewEventsHandler(deps)
	applicationsHandler := NewApplicationsHandler(deps)
	workingHoursHandler := NewWorkingHoursHandler(deps)
	myApplicationsHandler := NewMyApplicationsHandler(deps)

	router := gin.New()
	router.Use(auth.Middleware(testSecret))

	api := router.Group("/api")

	events := api.Group("/events")
	events.GET("/view", eventsHandler.View)
	eventsAdmin := events.Group("", auth.RequireAdmin())
	eventsAdmin.POST("/:id/delete-request", eventsHandler.RequestDelete)
	eventsAdmin.POST("/delete-confirm", eventsHandler.ConfirmDelete)
	eventsAdmin.POST("/delete-cancel", eventsHandler.CancelDelete)

	applications := api.Group("/applications")
	applications.POST("/submit", applicationsHandler.Submit)
	applications.GET("/view", auth.RequireAdmin(), applicationsHandler.View)
	applications.GET("/event/:eventId", auth.RequireAdmin(), applicationsHandler.EventApplications)
	applications.GET("/event-sub/:uniqueId", auth.RequireAdmin(), applicationsHandler.GetParticipation)

	workingHours := api.Group("/working-hours")
	workingHours.GET("/view", auth.RequireAdmin(), workingHoursHandler.View)
	workingHours.GET("/entries/:id", auth.RequireAdmin(), workingHoursHandler.GetEntry)
	workingHours.POST("/events/:eventId/entries", auth.RequireAuth(), workingHoursHandler.SubmitEntry)

	myApplications := api.Group("/my-applications", auth.RequireAuth())
	myApplications.GET("/view", myApplicationsHandler.View)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type viewEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Columns []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"columns"`
		Rows         []map[string]any `json:"rows"`
		Page         int              `json:"page"`
		PageCount    int              `json:"pageCount"`
		Total        int              `json:"total"`
		EmptyMessage string           `json:"emptyMessage"`
	} `json:"data"`
}

type errorEnvelope struct {
	Success  bool              `json:"success"`
	Error    string            `json:"error"`
	Kind     string            `json:"kind"`
	Code     int               `json:"code"`
	Recovery string            `json:"recovery"`
	SignOut  bool              `json:"signOut"`
	Fields   map[string]string `json:"fields"`
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) viewEnvelope {
	t.Helper()
	var env viewEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func testEvent(id, title string) map[string]any {
	return map[string]any{
		"_id":              id,
		"title":            title,
		"location":         "City Hall",
		"releaseDate":      "2026-03-01T10:00:00.000Z",
		"startDate":        "2026-04-01T09:00:00.000Z",
		"deadline":         "2026-03-20T23:59:59.000Z",
		"status":           "active",
		"applicationCount": "3",
	}
}

func TestEventsViewAnonymous(t *testing.T) {
	backend := newFakeBackend()
	backend.events = []map[string]any{testEvent("ev1", "Beach Cleanup"), testEvent("ev2", "Food Drive")}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/events/view", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Data.Total)
	assert.Equal(t, 1, env.Data.Page)
	assert.Len(t, env.Data.Rows, 2)

	for _, col := range env.Data.Columns {
		assert.NotEqual(t, "actions", col.ID, "viewers without actions must not get the actions column")
	}
}

func TestEventsViewAdminColumnsAndLabels(t *testing.T) {
	backend := newFakeBackend()
	backend.events = []map[string]any{testEvent("ev1", "Beach Cleanup")}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/events/view", signToken(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	ids := make([]string, 0, len(env.Data.Columns))
	for _, col := range env.Data.Columns {
		ids = append(ids, col.ID)
		if col.ID == "title" {
			assert.Equal(t, "Event", col.Label)
		}
	}
	assert.Contains(t, ids, "actions")

	row := env.Data.Rows[0]
	assert.Equal(t, "2026-03-01", row["releaseDateDisplay"])
}

func TestEventsViewEmptyState(t *testing.T) {
	backend := newFakeBackend()
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/events/view", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	assert.Zero(t, env.Data.Total)
	assert.Equal(t, "No events found", env.Data.EmptyMessage)
}

func TestEventsViewDefaultSortByReleaseDate(t *testing.T) {
	backend := newFakeBackend()
	later := testEvent("ev1", "Food Drive")
	later["releaseDate"] = "2026-06-01T10:00:00.000Z"
	earlier := testEvent("ev2", "Beach Cleanup")
	earlier["releaseDate"] = "2026-01-01T10:00:00.000Z"
	backend.events = []map[string]any{later, earlier}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/events/view", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	require.Len(t, env.Data.Rows, 2)
	assert.Equal(t, "Beach Cleanup", env.Data.Rows[0]["title"])
	assert.Equal(t, "Food Drive", env.Data.Rows[1]["title"])
}

func TestEventsViewSearchFilter(t *testing.T) {
	backend := newFakeBackend()
	backend.events = []map[string]any{testEvent("ev1", "Beach Cleanup"), testEvent("ev2", "Food Drive")}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/events/view?searchText=beach", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	require.Equal(t, 1, env.Data.Total)
	assert.Equal(t, "Beach Cleanup", env.Data.Rows[0]["title"])
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	backend := newFakeBackend()
	backend.events = []map[string]any{testEvent("ev1", "Beach Cleanup")}
	router := newPortal(t, backend)
	admin := signToken(t, "admin")

	// requesting deletion must not touch the backend
	w := doRequest(t, router, http.MethodPost, "/api/events/ev1/delete-request", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, backend.deleteEventCalls)

	var resp struct {
		Data struct {
			ConfirmToken string `json:"confirmToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ConfirmToken)

	// cancelling leaves the rows unchanged
	w = doRequest(t, router, http.MethodPost, "/api/events/delete-cancel", admin,
		map[string]string{"token": resp.Data.ConfirmToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, backend.deleteEventCalls)

	env := decodeView(t, doRequest(t, router, http.MethodGet, "/api/events/view", admin, nil))
	assert.Equal(t, 1, env.Data.Total)

	// a cancelled token no longer confirms anything
	w = doRequest(t, router, http.MethodPost, "/api/events/delete-confirm", admin,
		map[string]string{"token": resp.Data.ConfirmToken})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, backend.deleteEventCalls)
}

func TestDeleteConfirmRemovesRow(t *testing.T) {
	backend := newFakeBackend()
	backend.events = []map[string]any{testEvent("ev1", "Beach Cleanup")}
	router := newPortal(t, backend)
	admin := signToken(t, "admin")

	w := doRequest(t, router, http.MethodPost, "/api/events/ev1/delete-request", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			ConfirmToken string `json:"confirmToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doRequest(t, router, http.MethodPost, "/api/events/delete-confirm", admin,
		map[string]string{"token": resp.Data.ConfirmToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, backend.deleteEventCalls)

	env := decodeView(t, doRequest(t, router, http.MethodGet, "/api/events/view", admin, nil))
	assert.Zero(t, env.Data.Total)

	// tokens are single use
	w = doRequest(t, router, http.MethodPost, "/api/events/delete-confirm", admin,
		map[string]string{"token": resp.Data.ConfirmToken})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, backend.deleteEventCalls)
}

func TestDeleteRequestRequiresAdmin(t *testing.T) {
	backend := newFakeBackend()
	backend.events = []map[string]any{testEvent("ev1", "Beach Cleanup")}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodPost, "/api/events/ev1/delete-request", signToken(t, "user"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	env := decodeError(t, w)
	assert.Equal(t, "not_authorized", env.Kind)
	assert.False(t, env.SignOut)
}

func TestUpstreamSessionExpiry(t *testing.T) {
	backend := newFakeBackend()
	backend.workingHoursCode = http.StatusUnauthorized
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/working-hours/view", signToken(t, "admin"), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeError(t, w)
	assert.Equal(t, "token_expired", env.Kind)
	assert.Equal(t, "Your session has expired. Please log in again.", env.Error)
	assert.True(t, env.SignOut)
	assert.Equal(t, "login", env.Recovery)
}

func TestUpstreamGenericFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.workingHoursCode = http.StatusInternalServerError
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/working-hours/view", signToken(t, "admin"), nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	env := decodeError(t, w)
	assert.Equal(t, "fetch_failed", env.Kind)
	assert.Equal(t, "retry", env.Recovery)
	assert.False(t, env.SignOut, "a generic failure must not sign the user out")
}

func TestApplicationsViewFlattens(t *testing.T) {
	backend := newFakeBackend()
	backend.records = []map[string]any{
		{
			"_id":       "app1",
			"firstName": "Ana",
			"lastName":  "Silva",
			"email":     "ana@example.com",
			"events": []map[string]any{
				{"_id": "u1", "eventId": "ev1", "eventTitle": "Beach Cleanup", "status": "pending", "certificateStatus": "notSubmitted"},
				{"_id": "u2", "eventId": "ev2", "eventTitle": "Food Drive", "status": "verified", "certificateStatus": "notSubmitted"},
			},
		},
		{
			"_id":       "app2",
			"firstName": "Ben",
			"lastName":  "Okafor",
			"email":     "ben@example.com",
			"events":    []map[string]any{},
		},
	}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/applications/view", signToken(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	require.Equal(t, 2, env.Data.Total, "one row per participation, none for the empty applicant")
	assert.Equal(t, "Beach Cleanup", env.Data.Rows[0]["eventTitle"])
	assert.Equal(t, "Food Drive", env.Data.Rows[1]["eventTitle"])

	rowActions, ok := env.Data.Rows[0]["actions"].([]any)
	require.True(t, ok)
	assert.Len(t, rowActions, 4)
}

func TestApplicationsViewStatusFilter(t *testing.T) {
	backend := newFakeBackend()
	backend.records = []map[string]any{
		{
			"_id":       "app1",
			"firstName": "Ana",
			"events": []map[string]any{
				{"_id": "u1", "eventId": "ev1", "eventTitle": "Beach Cleanup", "status": "pending", "certificateStatus": "notSubmitted"},
				{"_id": "u2", "eventId": "ev2", "eventTitle": "Food Drive", "status": "verified", "certificateStatus": "notSubmitted"},
			},
		},
	}
	router := newPortal(t, backend)
	admin := signToken(t, "admin")

	env := decodeView(t, doRequest(t, router, http.MethodGet, "/api/applications/view?status=verified", admin, nil))
	require.Equal(t, 1, env.Data.Total)
	assert.Equal(t, "Food Drive", env.Data.Rows[0]["eventTitle"])

	// selecting every status is the same as selecting all
	env = decodeView(t, doRequest(t, router, http.MethodGet,
		"/api/applications/view?status=pending,verified,rejected", admin, nil))
	assert.Equal(t, 2, env.Data.Total)
}

func TestEventApplicationsForOneEvent(t *testing.T) {
	backend := newFakeBackend()
	backend.eventRecords = []map[string]any{
		{
			"_id":       "app1",
			"firstName": "Ana",
			"lastName":  "Silva",
			"events": []map[string]any{
				{"_id": "u1", "eventId": "ev1", "eventTitle": "Beach Cleanup", "status": "pending", "certificateStatus": "notSubmitted"},
			},
		},
	}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/applications/event/ev1", signToken(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Beach Cleanup", resp.Data[0]["eventTitle"])
	assert.Equal(t, "u1", resp.Data[0]["eventUniqueId"])

	w = doRequest(t, router, http.MethodGet, "/api/applications/event/ev1", signToken(t, "user"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestParticipationDetailPrefill(t *testing.T) {
	backend := newFakeBackend()
	backend.participations = map[string]map[string]any{
		"u1": {
			"_id":           "app1",
			"firstName":     "Ana",
			"eventId":       "ev1",
			"eventTitle":    "Beach Cleanup",
			"status":        "verified",
			"eventUniqueId": "u1",
		},
	}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/applications/event-sub/u1", signToken(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ana", resp.Data["firstName"])
	assert.Equal(t, "verified", resp.Data["status"])
}

func TestWorkingEntryDetailPrefill(t *testing.T) {
	backend := newFakeBackend()
	backend.entries = map[string]map[string]any{
		"wh1": {
			"_id":        "wh1",
			"userName":   "Ana Silva",
			"eventTitle": "Beach Cleanup",
			"startTime":  "2026-04-01T09:00:00.000Z",
			"endTime":    "2026-04-01T17:00:00.000Z",
			"hours":      8.0,
			"status":     "pending",
		},
	}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/working-hours/entries/wh1", signToken(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ana Silva", resp.Data["userName"])

	w = doRequest(t, router, http.MethodGet, "/api/working-hours/entries/missing", signToken(t, "admin"), nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSubmitApplicationValidation(t *testing.T) {
	backend := newFakeBackend()
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodPost, "/api/applications/submit", "", map[string]string{
		"eventId":   "ev1",
		"firstName": "Ana",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeError(t, w)
	assert.Equal(t, "validation_failed", env.Kind)
	assert.Contains(t, env.Fields, "Email")
	assert.Zero(t, backend.submitAppCalls, "invalid forms must never reach the backend")
}

func TestSubmitEntryTimeOrder(t *testing.T) {
	backend := newFakeBackend()
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodPost, "/api/working-hours/events/ev1/entries", signToken(t, "user"),
		map[string]any{
			"startTime": "2026-04-01T17:00:00.000Z",
			"endTime":   "2026-04-01T09:00:00.000Z",
		})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeError(t, w)
	assert.Contains(t, env.Fields, "EndTime")
	assert.Zero(t, backend.submitEntryCalls)
}

func TestMyApplicationsStatusGatesActions(t *testing.T) {
	backend := newFakeBackend()
	backend.userApps = []map[string]any{
		{"_id": "ev1", "title": "Beach Cleanup", "startDate": "2026-04-01T09:00:00.000Z", "status": "verified", "certificateStatus": "notSubmitted", "totalWorkingHours": 12.5},
		{"_id": "ev2", "title": "Food Drive", "startDate": "2026-05-01T09:00:00.000Z", "status": "pending", "certificateStatus": "notSubmitted", "totalWorkingHours": 0},
	}
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/my-applications/view?sortColumn=startDate", signToken(t, "user"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	require.Equal(t, 2, env.Data.Total)

	verified, ok := env.Data.Rows[0]["actions"].([]any)
	require.True(t, ok)
	require.Len(t, verified, 2)
	first, ok := verified[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "submitHours", first["key"])
	assert.Equal(t, "Submit Hours", first["label"])

	pending, ok := env.Data.Rows[1]["actions"].([]any)
	require.True(t, ok)
	require.Len(t, pending, 1)
	placeholder, ok := pending[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Under Consideration", placeholder["label"])
	assert.Equal(t, true, placeholder["disabled"])
}

func TestMyApplicationsRequiresAuth(t *testing.T) {
	backend := newFakeBackend()
	router := newPortal(t, backend)

	w := doRequest(t, router, http.MethodGet, "/api/my-applications/view", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeError(t, w)
	assert.Equal(t, "auth_required", env.Kind)
	assert.Equal(t, "login", env.Recovery)
}
