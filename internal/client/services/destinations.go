package services

import (
	"context"
	"net/http"
	"strings"

	"tripdeck/internal/client/api"
	"tripdeck/internal/client/models"
	"tripdeck/internal/common"
	"tripdeck/internal/logging"
)

// DestinationService defines destination operations. The client only ever
// creates and selects destinations; it never updates or deletes them.
type DestinationService interface {
	List(ctx context.Context) ([]models.Destination, error)
	Create(ctx context.Context, form DestinationForm) (*models.Destination, error)
}

// DestinationForm carries the four fields required to create a destination.
type DestinationForm struct {
	City         string
	Country      string
	Timezone     string
	CurrencyCode string
}

type destinationService struct {
	api *api.Client
	log logging.Logger
}

func NewDestinationService(apiClient *api.Client, log logging.Logger) DestinationService {
	return &destinationService{api: apiClient, log: log.With("service", "destinations")}
}

func (s *destinationService) List(ctx context.Context) ([]models.Destination, error) {
	return api.GetJSON[[]models.Destination](ctx, s.api, "/api/destinations")
}

func (s *destinationService) Create(ctx context.Context, form DestinationForm) (*models.Destination, error) {
	city := strings.TrimSpace(form.City)
	country := strings.TrimSpace(form.Country)
	timezone := strings.TrimSpace(form.Timezone)
	currency := strings.TrimSpace(form.CurrencyCode)

	if city == "" || country == "" || timezone == "" || currency == "" {
		return nil, &DestinationFieldsError{}
	}

	dest, err := api.DoJSON[models.Destination](ctx, s.api, "/api/destinations", api.RequestOptions{
		Method: http.MethodPost,
		Body: map[string]any{
			"city":         city,
			"country":      country,
			"timezone":     timezone,
			"currencyCode": currency,
		},
	})
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

// DestinationFieldsError reports a destination form with a missing field.
type DestinationFieldsError struct{}

func (e *DestinationFieldsError) Error() string {
	return "All destination fields are required"
}

func (e *DestinationFieldsError) Unwrap() error {
	return common.ErrorValidation
}

// DuplicateExists reports whether the already-loaded destination list holds
// the same city+country pair, case-insensitively. A UX nicety only — the
// backend is the authority.
func DuplicateExists(list []models.Destination, city, country string) bool {
	city = strings.ToLower(strings.TrimSpace(city))
	country = strings.ToLower(strings.TrimSpace(country))
	for _, d := range list {
		if strings.ToLower(d.City) == city && strings.ToLower(d.Country) == country {
			return true
		}
	}
	return false
}
