package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tripdeck/internal/client/api"
	"tripdeck/internal/client/formdiff"
	"tripdeck/internal/client/models"
	"tripdeck/internal/logging"
)

// ActivityService defines the activity resource operations.
//
// Contract:
//   - List returns a uniform Page regardless of whether the server or the
//     client did the searching and paging.
//   - Create/Update send exactly the fields with genuine content; the caller
//     is responsible for having cleared subtype fields that don't belong to
//     the selected type (see formdiff.ClearIrrelevant).
//   - Errors propagate unchanged; there are no retries.
type ActivityService interface {
	List(ctx context.Context, params models.ListParams) (models.Page[models.ActivityRecord], error)
	Get(ctx context.Context, id int64) (*models.ActivityRecord, error)
	Create(ctx context.Context, form formdiff.ActivityForm, opts CreateActivityOptions) (*models.ActivityRecord, error)
	Update(ctx context.Context, id int64, form formdiff.ActivityForm, original *models.ActivityRecord) (*models.ActivityRecord, error)
	Delete(ctx context.Context, id int64) error
}

// CreateActivityOptions carries the legacy fallback trip id used when the
// form itself doesn't resolve one.
type CreateActivityOptions struct {
	FallbackTripID int64
}

type activityService struct {
	api *api.Client
	log logging.Logger

	// searchUnsupported memoizes the capability probe: once the search
	// endpoint answers 400/404/405, every later List goes straight to the
	// client-side path.
	searchUnsupported bool
}

func NewActivityService(apiClient *api.Client, log logging.Logger) ActivityService {
	return &activityService{api: apiClient, log: log.With("service", "activities")}
}

// BuildActivityRequest shapes a form into the exact wire payload the backend
// expects. Common fields resolve form value, then original (prior server
// copy); tripId additionally falls back to fallbackTripID. Subtype keys are
// emitted only for the resolved type, so fields a type change has cleared
// never leak back in from the original. Keys without genuine content are
// omitted entirely; the payload never carries "" or null.
func BuildActivityRequest(form formdiff.ActivityForm, original *models.ActivityRecord, fallbackTripID int64) map[string]any {
	dto := map[string]any{}

	tripID := form.TripID
	if tripID == 0 && original != nil {
		tripID = original.TripID
	}
	if tripID == 0 {
		tripID = fallbackTripID
	}
	if tripID != 0 {
		dto["tripId"] = tripID
	}

	orig := func(get func(*models.ActivityRecord) string) string {
		if original == nil {
			return ""
		}
		return get(original)
	}
	put := func(key, formVal, origVal string) {
		v := formVal
		if v == "" {
			v = origVal
		}
		if v != "" {
			dto[key] = v
		}
	}

	rawDate := form.Date
	if rawDate == "" {
		rawDate = orig(func(r *models.ActivityRecord) string { return r.Date })
	}
	if d := models.ToYMD(rawDate); d != "" {
		dto["date"] = d
	}

	put("title", form.Title, orig(func(r *models.ActivityRecord) string { return r.Title }))
	put("notes", form.Notes, orig(func(r *models.ActivityRecord) string { return r.Notes }))

	typ := form.Type
	if typ == "" && original != nil {
		typ = original.EffectiveType()
	}
	if typ != "" {
		dto["type"] = string(typ)
	}

	switch typ {
	case models.ActivityTypeSightseeing:
		put("landmarkName", form.LandmarkName, orig(func(r *models.ActivityRecord) string { return r.LandmarkName }))
		put("location", form.Location, orig(func(r *models.ActivityRecord) string { return r.Location }))
	case models.ActivityTypeAdventure:
		put("difficultyLevel", form.DifficultyLevel, orig(func(r *models.ActivityRecord) string { return r.DifficultyLevel }))
		put("equipmentRequired", form.EquipmentRequired, orig(func(r *models.ActivityRecord) string { return r.EquipmentRequired }))
	case models.ActivityTypeCultural:
		put("eventName", form.EventName, orig(func(r *models.ActivityRecord) string { return r.EventName }))
		put("organizer", form.Organizer, orig(func(r *models.ActivityRecord) string { return r.Organizer }))
	}

	return dto
}

func (s *activityService) List(ctx context.Context, params models.ListParams) (models.Page[models.ActivityRecord], error) {
	if !s.searchUnsupported {
		page, err := s.listViaSearch(ctx, params)
		if err == nil {
			return page, nil
		}
		switch api.StatusOf(err) {
		case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed:
			s.searchUnsupported = true
			s.log.Info(ctx, "server-side search unavailable, switching to client-side filtering", "status", api.StatusOf(err))
		default:
			return models.Page[models.ActivityRecord]{}, err
		}
	}
	return s.listViaFallback(ctx, params)
}

func (s *activityService) listViaSearch(ctx context.Context, params models.ListParams) (models.Page[models.ActivityRecord], error) {
	qs := url.Values{}
	if search := strings.TrimSpace(params.Search); search != "" {
		qs.Set("search", search)
	}
	qs.Set("page", strconv.Itoa(params.Page))
	qs.Set("pageSize", strconv.Itoa(params.PageSize))

	resp, err := s.api.Request(ctx, "/api/activities/search?"+qs.Encode(), api.RequestOptions{})
	if err != nil {
		return models.Page[models.ActivityRecord]{}, err
	}
	return decodeActivityPage(resp.Raw, params)
}

func (s *activityService) listViaFallback(ctx context.Context, params models.ListParams) (models.Page[models.ActivityRecord], error) {
	resp, err := s.api.Request(ctx, "/api/activities", api.RequestOptions{})
	if err != nil {
		return models.Page[models.ActivityRecord]{}, err
	}
	all, err := decodeActivityCollection(resp.Raw)
	if err != nil {
		return models.Page[models.ActivityRecord]{}, err
	}

	filtered := FilterActivities(all, params.Search)
	total := len(filtered)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return models.Page[models.ActivityRecord]{
		Data: filtered[start:end],
		Meta: models.PageMeta{Page: params.Page, PageSize: params.PageSize, Total: total},
	}, nil
}

// FilterActivities keeps items whose title or type (current or legacy field
// names) contains search, case-insensitively. An empty search keeps everything.
func FilterActivities(items []models.ActivityRecord, search string) []models.ActivityRecord {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return items
	}
	out := make([]models.ActivityRecord, 0, len(items))
	for _, it := range items {
		title := strings.ToLower(it.EffectiveTitle())
		typ := strings.ToLower(string(it.EffectiveType()))
		if strings.Contains(title, needle) || strings.Contains(typ, needle) {
			out = append(out, it)
		}
	}
	return out
}

// decodeActivityPage accepts either the paginated {data, meta} shape or a
// bare array, which older backends return; a bare array is wrapped as a
// single full page so callers always see the same shape.
func decodeActivityPage(raw []byte, params models.ListParams) (models.Page[models.ActivityRecord], error) {
	var wrapped struct {
		Data []models.ActivityRecord `json:"data"`
		Meta *models.PageMeta        `json:"meta"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Meta != nil {
		return models.Page[models.ActivityRecord]{Data: wrapped.Data, Meta: *wrapped.Meta}, nil
	}

	var bare []models.ActivityRecord
	if err := json.Unmarshal(raw, &bare); err != nil {
		return models.Page[models.ActivityRecord]{}, fmt.Errorf("unexpected activities response shape: %w", err)
	}
	return models.Page[models.ActivityRecord]{
		Data: bare,
		Meta: models.PageMeta{Page: params.Page, PageSize: params.PageSize, Total: len(bare)},
	}, nil
}

// decodeActivityCollection flattens either response shape into the full item
// slice for client-side filtering.
func decodeActivityCollection(raw []byte) ([]models.ActivityRecord, error) {
	var bare []models.ActivityRecord
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	var wrapped struct {
		Data []models.ActivityRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected activities response shape: %w", err)
	}
	return wrapped.Data, nil
}

func (s *activityService) Get(ctx context.Context, id int64) (*models.ActivityRecord, error) {
	rec, err := api.GetJSON[models.ActivityRecord](ctx, s.api, "/api/activities/"+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *activityService) Create(ctx context.Context, form formdiff.ActivityForm, opts CreateActivityOptions) (*models.ActivityRecord, error) {
	body := BuildActivityRequest(form, nil, opts.FallbackTripID)
	s.log.Debug(ctx, "creating activity", "tripId", body["tripId"], "type", body["type"])

	rec, err := api.DoJSON[models.ActivityRecord](ctx, s.api, "/api/activities", api.RequestOptions{
		Method: http.MethodPost,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *activityService) Update(ctx context.Context, id int64, form formdiff.ActivityForm, original *models.ActivityRecord) (*models.ActivityRecord, error) {
	body := BuildActivityRequest(form, original, 0)
	s.log.Debug(ctx, "updating activity", "id", id, "type", body["type"])

	rec, err := api.DoJSON[models.ActivityRecord](ctx, s.api, "/api/activities/"+strconv.FormatInt(id, 10), api.RequestOptions{
		Method: http.MethodPut,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *activityService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Request(ctx, "/api/activities/"+strconv.FormatInt(id, 10), api.RequestOptions{
		Method: http.MethodDelete,
	})
	return err
}
