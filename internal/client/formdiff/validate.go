package formdiff

import (
	"fmt"
	"strings"

	"tripdeck/internal/client/models"
	"tripdeck/internal/common"
)

// Mode distinguishes the create and edit submission paths, which resolve the
// trip differently.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// ValidationError is a single client-side validation failure. Checks run in a
// fixed order and the first failure wins, so at most one is ever surfaced.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// ValidateActivity checks an activity form before submission, in order:
// title, type, date, trip. In edit mode a blank field means "keep the server
// value" and falls back to the original copy. On success it returns the
// resolved trip id.
func ValidateActivity(f ActivityForm, original *models.ActivityRecord, mode Mode) (int64, error) {
	title, typ, date := f.Title, f.Type, f.Date
	if mode == ModeEdit && original != nil {
		if strings.TrimSpace(title) == "" {
			title = original.EffectiveTitle()
		}
		if typ == "" {
			typ = original.EffectiveType()
		}
		if strings.TrimSpace(date) == "" {
			date = original.Date
		}
	}

	if strings.TrimSpace(title) == "" {
		return 0, invalid("title", "Title is required")
	}
	if !typ.Valid() {
		return 0, invalid("type", "Type is required (SIGHTSEEING | ADVENTURE | CULTURAL | OTHER)")
	}
	if strings.TrimSpace(date) == "" {
		return 0, invalid("date", "Date is required")
	}

	tripID := f.TripID
	if mode == ModeEdit && tripID == 0 && original != nil {
		tripID = original.TripID
	}
	if tripID == 0 {
		return 0, invalid("tripId", "Trip is required")
	}
	return tripID, nil
}

// ValidateTrip checks a trip form before submission, in order: name, start
// date, end date, date ordering, destination.
func ValidateTrip(f TripForm) error {
	if strings.TrimSpace(f.Name) == "" {
		return invalid("name", "Name is required")
	}
	start := models.ToYMD(f.StartDate)
	if start == "" {
		return invalid("startDate", "Start date is required")
	}
	end := models.ToYMD(f.EndDate)
	if end == "" {
		return invalid("endDate", "End date is required")
	}
	if end < start {
		return invalid("endDate", fmt.Sprintf("End date %s must not be before start date %s", end, start))
	}
	if f.DestinationID == 0 {
		return invalid("destinationId", "Destination is required")
	}
	return nil
}
