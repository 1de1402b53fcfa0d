package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdeck/internal/client/formdiff"
	"tripdeck/internal/client/models"
)

func TestBuildActivityRequest_OmitsEmptyValues(t *testing.T) {
	form := formdiff.ActivityForm{
		TripID: 5,
		Title:  "A",
		Type:   models.ActivityTypeOther,
		Date:   "2024-01-01",
		Notes:  "",
	}

	dto := BuildActivityRequest(form, nil, 0)

	assert.Equal(t, map[string]any{
		"tripId": int64(5),
		"title":  "A",
		"type":   "OTHER",
		"date":   "2024-01-01",
	}, dto)
	for k, v := range dto {
		assert.NotEmpty(t, v, "key %s must carry genuine content", k)
	}
}

func TestBuildActivityRequest_TripIDPriority(t *testing.T) {
	original := &models.ActivityRecord{TripID: 7}

	dto := BuildActivityRequest(formdiff.ActivityForm{TripID: 3}, original, 9)
	assert.Equal(t, int64(3), dto["tripId"], "form wins")

	dto = BuildActivityRequest(formdiff.ActivityForm{}, original, 9)
	assert.Equal(t, int64(7), dto["tripId"], "original wins over fallback")

	dto = BuildActivityRequest(formdiff.ActivityForm{}, nil, 9)
	assert.Equal(t, int64(9), dto["tripId"], "fallback used last")

	dto = BuildActivityRequest(formdiff.ActivityForm{}, nil, 0)
	_, present := dto["tripId"]
	assert.False(t, present, "unresolvable tripId is omitted, never sent empty")
}

func TestBuildActivityRequest_DateNormalized(t *testing.T) {
	dto := BuildActivityRequest(formdiff.ActivityForm{Date: "05/03/2024"}, nil, 0)
	assert.Equal(t, "2024-03-05", dto["date"])

	dto = BuildActivityRequest(formdiff.ActivityForm{Date: "not a date"}, nil, 0)
	_, present := dto["date"]
	assert.False(t, present, "unparseable date is omitted")
}

func TestBuildActivityRequest_FallsBackToOriginalFields(t *testing.T) {
	original := &models.ActivityRecord{
		Title: "Old title",
		Type:  models.ActivityTypeCultural,
		Date:  "2024-02-02",
		Notes: "old notes",
	}

	dto := BuildActivityRequest(formdiff.ActivityForm{Title: "New title"}, original, 0)
	assert.Equal(t, "New title", dto["title"])
	assert.Equal(t, "CULTURAL", dto["type"])
	assert.Equal(t, "2024-02-02", dto["date"])
	assert.Equal(t, "old notes", dto["notes"])
}

func TestBuildActivityRequest_ClearedFormExcludesForeignSubtypeFields(t *testing.T) {
	form := formdiff.ActivityForm{
		TripID:            5,
		Title:             "Night at the opera",
		Date:              "2024-05-03",
		EventName:         "Opera",
		Organizer:         "La Scala",
		LandmarkName:      "Colosseum",
		DifficultyLevel:   "hard",
		EquipmentRequired: "rope",
		Location:          "Rome",
	}
	form = formdiff.ClearIrrelevant(form, models.ActivityTypeCultural)

	dto := BuildActivityRequest(form, nil, 0)

	assert.Equal(t, "Opera", dto["eventName"])
	assert.Equal(t, "La Scala", dto["organizer"])
	for _, k := range []string{"landmarkName", "location", "difficultyLevel", "equipmentRequired"} {
		_, present := dto[k]
		assert.False(t, present, "%s must not be sent for a CULTURAL activity", k)
	}
}

func TestBuildActivityRequest_TypeChangeDropsPriorSubtypeFields(t *testing.T) {
	original := &models.ActivityRecord{
		ID: 42, TripID: 3, Title: "Climb", Date: "2024-05-01",
		Type: models.ActivityTypeSightseeing, LandmarkName: "Old Tower", Location: "Rome",
	}
	form := formdiff.ClearIrrelevant(formdiff.ActivityForm{}, models.ActivityTypeAdventure)
	form.DifficultyLevel = "hard"
	form.EquipmentRequired = "rope"

	dto := BuildActivityRequest(form, original, 0)

	assert.Equal(t, "ADVENTURE", dto["type"])
	assert.Equal(t, "hard", dto["difficultyLevel"])
	assert.Equal(t, "rope", dto["equipmentRequired"])
	for _, k := range []string{"landmarkName", "location", "eventName", "organizer"} {
		_, present := dto[k]
		assert.False(t, present, "%s must not be sent for an ADVENTURE activity", k)
	}
	assert.Equal(t, "Climb", dto["title"], "common fields still defer to the server copy")
	assert.Equal(t, "2024-05-01", dto["date"])
	assert.Equal(t, int64(3), dto["tripId"])
}

func TestBuildActivityRequest_SameTypeKeepsOriginalSubtypeFields(t *testing.T) {
	original := &models.ActivityRecord{
		Title: "Old Tower walk", Type: models.ActivityTypeSightseeing,
		LandmarkName: "Old Tower", Location: "Rome",
	}

	dto := BuildActivityRequest(formdiff.ActivityForm{Location: "Roma"}, original, 0)

	assert.Equal(t, "SIGHTSEEING", dto["type"])
	assert.Equal(t, "Old Tower", dto["landmarkName"], "blank field keeps the server value")
	assert.Equal(t, "Roma", dto["location"], "typed field wins")
}

func sampleActivities(n int) []models.ActivityRecord {
	items := make([]models.ActivityRecord, 0, n)
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("Activity %d", i)
		if i%8 == 0 {
			title = fmt.Sprintf("Hiking tour %d", i)
		}
		items = append(items, models.ActivityRecord{
			ID:    int64(i),
			Title: title,
			Type:  models.ActivityTypeOther,
			Date:  "2024-06-01",
		})
	}
	return items
}

func TestActivityService_List_ServerSearchPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/activities/search", r.URL.Path)
		assert.Equal(t, "hik", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":[{"id":8,"title":"Hiking tour 8"}],"meta":{"page":2,"pageSize":1,"total":3}}`)
	}))
	svc := NewActivityService(testClient(t, srv), testLogger())

	page, err := svc.List(context.Background(), models.NewListParams("hik", 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, page.Meta.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(8), page.Data[0].ID)
}

func TestActivityService_List_FallbackFiltersAndPaginates(t *testing.T) {
	items := sampleActivities(25) // ids 8, 16, 24 contain "Hiking"
	var searchCalls, listCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/activities/search":
			searchCalls++
			http.Error(w, `{"message":"unknown endpoint"}`, http.StatusNotFound)
		case "/api/activities":
			listCalls++
			_ = json.NewEncoder(w).Encode(items)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	svc := NewActivityService(testClient(t, srv), testLogger())
	ctx := context.Background()

	page, err := svc.List(ctx, models.NewListParams("hik", 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, page.Meta.Total)
	assert.Len(t, page.Data, 3)

	// capability is memoized: the search endpoint is not probed again
	_, err = svc.List(ctx, models.NewListParams("", 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, searchCalls)
	assert.Equal(t, 2, listCalls)
}

func TestActivityService_List_FallbackEmptySearchSkipsFiltering(t *testing.T) {
	items := sampleActivities(25)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/activities/search" {
			http.Error(w, "nope", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	}))
	svc := NewActivityService(testClient(t, srv), testLogger())

	page, err := svc.List(context.Background(), models.NewListParams("", 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 25, page.Meta.Total)
	assert.Len(t, page.Data, 5, "third page of 25 holds the remainder")
	assert.Equal(t, int64(21), page.Data[0].ID)
}

func TestActivityService_List_ServerErrorIsNotAFallbackTrigger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	svc := NewActivityService(testClient(t, srv), testLogger())

	_, err := svc.List(context.Background(), models.NewListParams("", 1, 10))
	require.Error(t, err, "a 500 propagates instead of silently refetching")
}

func TestFilterActivities(t *testing.T) {
	items := []models.ActivityRecord{
		{Title: "Hiking tour"},
		{LegacyName: "Night HIKE"},
		{Title: "Museum", Type: models.ActivityTypeCultural},
		{Title: "Beach day"},
	}

	assert.Len(t, FilterActivities(items, "hik"), 2, "matches title and legacy name, case-insensitive")
	assert.Len(t, FilterActivities(items, "cultural"), 1, "matches type")
	assert.Len(t, FilterActivities(items, ""), 4, "empty search keeps everything")
	assert.Len(t, FilterActivities(items, "   "), 4)
}

func TestActivityService_CreateSendsBuiltPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/activities", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":42,"tripId":5,"title":"Opera night","type":"CULTURAL"}`)
	}))
	svc := NewActivityService(testClient(t, srv), testLogger())

	form := formdiff.ClearIrrelevant(formdiff.ActivityForm{
		TripID:    5,
		Title:     "Opera night",
		Date:      "2024-05-03",
		EventName: "Opera",
		Organizer: "La Scala",
	}, models.ActivityTypeCultural)

	rec, err := svc.Create(context.Background(), form, CreateActivityOptions{FallbackTripID: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.ID)

	assert.Equal(t, "Opera", got["eventName"])
	for _, k := range []string{"landmarkName", "location", "difficultyLevel", "equipmentRequired"} {
		_, present := got[k]
		assert.False(t, present, "%s must not appear in the wire payload", k)
	}
}

func TestActivityService_UpdateTypeChangeSendsOnlyOwnSubtypeFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/activities/42", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":42,"title":"Climb","type":"ADVENTURE"}`)
	}))
	svc := NewActivityService(testClient(t, srv), testLogger())

	original := &models.ActivityRecord{
		ID: 42, TripID: 3, Title: "Climb", Date: "2024-05-01",
		Type: models.ActivityTypeSightseeing, LandmarkName: "Old Tower", Location: "Rome",
	}
	form := formdiff.ClearIrrelevant(formdiff.ActivityForm{}, models.ActivityTypeAdventure)
	form.DifficultyLevel = "hard"

	_, err := svc.Update(context.Background(), 42, form, original)
	require.NoError(t, err)

	assert.Equal(t, "ADVENTURE", got["type"])
	assert.Equal(t, "hard", got["difficultyLevel"])
	for _, k := range []string{"landmarkName", "location", "eventName", "organizer"} {
		_, present := got[k]
		assert.False(t, present, "%s must not appear in the wire payload", k)
	}
}

func TestActivityService_Delete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	svc := NewActivityService(testClient(t, srv), testLogger())

	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/activities/42", gotPath)
}
