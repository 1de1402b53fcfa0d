package services

import (
	"context"
	"net/http"
	"strconv"

	"tripdeck/internal/client/api"
	"tripdeck/internal/client/formdiff"
	"tripdeck/internal/client/models"
	"tripdeck/internal/logging"
)

// TripService defines the trip resource operations.
type TripService interface {
	List(ctx context.Context) ([]models.Trip, error)
	Get(ctx context.Context, id int64) (*models.Trip, error)
	Create(ctx context.Context, form formdiff.TripForm) (*models.Trip, error)
	Update(ctx context.Context, id int64, form formdiff.TripForm, original *models.Trip) (*models.Trip, error)
	Delete(ctx context.Context, id int64) error
}

type tripService struct {
	api *api.Client
	log logging.Logger
}

func NewTripService(apiClient *api.Client, log logging.Logger) TripService {
	return &tripService{api: apiClient, log: log.With("service", "trips")}
}

// NormalizeTrip backfills the nested destination object from the flat
// destinationCity/destinationCountry fields some backend versions return, so
// view code can uniformly read trip.Destination.City.
func NormalizeTrip(t *models.Trip) {
	if t == nil || t.Destination != nil {
		return
	}
	if t.DestinationCity == "" && t.DestinationCountry == "" {
		return
	}
	t.Destination = &models.Destination{
		ID:      t.DestinationID,
		City:    t.DestinationCity,
		Country: t.DestinationCountry,
	}
}

// BuildTripRequest shapes a trip form into the wire payload, dropping keys
// without genuine content. Dates are normalized to YYYY-MM-DD.
func BuildTripRequest(form formdiff.TripForm, original *models.Trip) map[string]any {
	dto := map[string]any{}

	put := func(key, formVal, origVal string) {
		v := formVal
		if v == "" {
			v = origVal
		}
		if v != "" {
			dto[key] = v
		}
	}
	orig := func(get func(*models.Trip) string) string {
		if original == nil {
			return ""
		}
		return get(original)
	}

	put("name", form.Name, orig(func(t *models.Trip) string { return t.Name }))
	if d := models.ToYMD(form.StartDate); d != "" {
		dto["startDate"] = d
	} else if d := models.ToYMD(orig(func(t *models.Trip) string { return t.StartDate })); d != "" {
		dto["startDate"] = d
	}
	if d := models.ToYMD(form.EndDate); d != "" {
		dto["endDate"] = d
	} else if d := models.ToYMD(orig(func(t *models.Trip) string { return t.EndDate })); d != "" {
		dto["endDate"] = d
	}

	destID := form.DestinationID
	if destID == 0 && original != nil {
		destID = original.DestinationID
	}
	if destID != 0 {
		dto["destinationId"] = destID
	}

	put("tripType", form.TripType, orig(func(t *models.Trip) string { return t.TripType }))
	put("notes", form.Notes, orig(func(t *models.Trip) string { return t.Notes }))

	return dto
}

func (s *tripService) List(ctx context.Context) ([]models.Trip, error) {
	trips, err := api.GetJSON[[]models.Trip](ctx, s.api, "/api/trips")
	if err != nil {
		return nil, err
	}
	for i := range trips {
		NormalizeTrip(&trips[i])
	}
	return trips, nil
}

func (s *tripService) Get(ctx context.Context, id int64) (*models.Trip, error) {
	trip, err := api.GetJSON[models.Trip](ctx, s.api, "/api/trips/"+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	NormalizeTrip(&trip)
	return &trip, nil
}

func (s *tripService) Create(ctx context.Context, form formdiff.TripForm) (*models.Trip, error) {
	body := BuildTripRequest(form, nil)
	s.log.Debug(ctx, "creating trip", "name", body["name"])

	trip, err := api.DoJSON[models.Trip](ctx, s.api, "/api/trips", api.RequestOptions{
		Method: http.MethodPost,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	NormalizeTrip(&trip)
	return &trip, nil
}

func (s *tripService) Update(ctx context.Context, id int64, form formdiff.TripForm, original *models.Trip) (*models.Trip, error) {
	body := BuildTripRequest(form, original)

	trip, err := api.DoJSON[models.Trip](ctx, s.api, "/api/trips/"+strconv.FormatInt(id, 10), api.RequestOptions{
		Method: http.MethodPut,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	NormalizeTrip(&trip)
	return &trip, nil
}

func (s *tripService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Request(ctx, "/api/trips/"+strconv.FormatInt(id, 10), api.RequestOptions{
		Method: http.MethodDelete,
	})
	return err
}
