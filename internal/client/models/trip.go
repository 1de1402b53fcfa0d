package models

// Trip is a planned trip. Dates are calendar dates in YYYY-MM-DD form;
// EndDate is never before StartDate (validated at form level).
type Trip struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	StartDate     string       `json:"startDate"`
	EndDate       string       `json:"endDate"`
	DestinationID int64        `json:"destinationId,omitempty"`
	Destination   *Destination `json:"destination,omitempty"`
	TripType      string       `json:"tripType,omitempty"`
	Notes         string       `json:"notes,omitempty"`

	// Flat destination fields some backend versions return instead of
	// nesting a destination object.
	DestinationCity    string `json:"destinationCity,omitempty"`
	DestinationCountry string `json:"destinationCountry,omitempty"`
}

// Destination is a city a trip can be attached to. All four fields are
// required at creation; the client never updates or deletes destinations.
type Destination struct {
	ID           int64  `json:"id"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Timezone     string `json:"timezone"`
	CurrencyCode string `json:"currencyCode"`
}
