// Package formdiff holds the pure form-state logic shared by the activity and
// trip editors: clearing subtype fields on type change, changed-field
// comparison for edit views, and ordered submission validation.
package formdiff

import (
	"fmt"
	"strings"

	"tripdeck/internal/client/models"
)

// ActivityForm mirrors the activity editor's fields in their raw, as-typed
// form. TripID is 0 when no trip has been chosen yet.
type ActivityForm struct {
	TripID int64
	Date   string
	Title  string
	Type   models.ActivityType
	Notes  string

	LandmarkName      string
	Location          string
	DifficultyLevel   string
	EquipmentRequired string
	EventName         string
	Organizer         string
}

// TripForm mirrors the trip editor's fields.
type TripForm struct {
	Name          string
	StartDate     string
	EndDate       string
	DestinationID int64
	TripType      string
	Notes         string
}

// ClearIrrelevant returns the form with newType selected and every subtype
// field not belonging to newType blanked. Fields of the selected type keep
// whatever was already typed. Pure: the input form is not modified.
func ClearIrrelevant(f ActivityForm, newType models.ActivityType) ActivityForm {
	f.Type = newType
	switch newType {
	case models.ActivityTypeSightseeing:
		f.DifficultyLevel, f.EquipmentRequired = "", ""
		f.EventName, f.Organizer = "", ""
	case models.ActivityTypeAdventure:
		f.LandmarkName, f.Location = "", ""
		f.EventName, f.Organizer = "", ""
	case models.ActivityTypeCultural:
		f.LandmarkName, f.Location = "", ""
		f.DifficultyLevel, f.EquipmentRequired = "", ""
	case models.ActivityTypeOther:
		f.LandmarkName, f.Location = "", ""
		f.DifficultyLevel, f.EquipmentRequired = "", ""
		f.EventName, f.Organizer = "", ""
	}
	return f
}

// Changed reports whether curr differs from orig once both are reduced to
// trimmed strings. Display-only: never used for payload construction.
func Changed(curr, orig any) bool {
	return asTrimmed(curr) != asTrimmed(orig)
}

func asTrimmed(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
