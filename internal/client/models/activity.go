// Package models defines the trip planner's resource types and their wire forms.
package models

// ActivityType classifies an activity kind.
type ActivityType string

const (
	ActivityTypeSightseeing ActivityType = "SIGHTSEEING"
	ActivityTypeAdventure   ActivityType = "ADVENTURE"
	ActivityTypeCultural    ActivityType = "CULTURAL"
	ActivityTypeOther       ActivityType = "OTHER"
)

// ActivityTypes lists every valid type, in display order.
var ActivityTypes = []ActivityType{
	ActivityTypeSightseeing,
	ActivityTypeAdventure,
	ActivityTypeCultural,
	ActivityTypeOther,
}

// Valid reports whether t is one of the four known types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeSightseeing, ActivityTypeAdventure, ActivityTypeCultural, ActivityTypeOther:
		return true
	}
	return false
}

// ActivityRecord is the flat wire form the backend speaks: common fields plus
// one optional field per subtype slot. Older backends used activityName /
// activityType; both aliases are recognized on read.
type ActivityRecord struct {
	ID     int64        `json:"id"`
	TripID int64        `json:"tripId"`
	Date   string       `json:"date"`
	Title  string       `json:"title"`
	Type   ActivityType `json:"type"`
	Notes  string       `json:"notes,omitempty"`

	LandmarkName      string `json:"landmarkName,omitempty"`
	Location          string `json:"location,omitempty"`
	DifficultyLevel   string `json:"difficultyLevel,omitempty"`
	EquipmentRequired string `json:"equipmentRequired,omitempty"`
	EventName         string `json:"eventName,omitempty"`
	Organizer         string `json:"organizer,omitempty"`

	// Legacy field names still emitted by some backend versions.
	LegacyName string       `json:"activityName,omitempty"`
	LegacyType ActivityType `json:"activityType,omitempty"`

	// Denormalized trip name, present on some detail responses.
	TripName string `json:"tripName,omitempty"`
}

// EffectiveTitle resolves the display title across field-name generations.
func (r ActivityRecord) EffectiveTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.LegacyName
}

// EffectiveType resolves the type across field-name generations.
func (r ActivityRecord) EffectiveType() ActivityType {
	if r.Type != "" {
		return r.Type
	}
	return r.LegacyType
}

// ActivityDetails is the tagged-union view of an activity's subtype fields.
// A record holds exactly the detail set belonging to its own type, so an
// inconsistent combination is unrepresentable once folded.
type ActivityDetails interface {
	Kind() ActivityType
}

// Sightseeing holds landmark details.
type Sightseeing struct {
	LandmarkName string
	Location     string
}

func (d Sightseeing) Kind() ActivityType { return ActivityTypeSightseeing }

// Adventure holds difficulty and gear details.
type Adventure struct {
	DifficultyLevel   string
	EquipmentRequired string
}

func (d Adventure) Kind() ActivityType { return ActivityTypeAdventure }

// Cultural holds event details.
type Cultural struct {
	EventName string
	Organizer string
}

func (d Cultural) Kind() ActivityType { return ActivityTypeCultural }

// Other carries no subtype fields.
type Other struct{}

func (d Other) Kind() ActivityType { return ActivityTypeOther }

// Details folds the flat wire form into the tagged union for the record's own
// type. Fields belonging to other subtypes are dropped.
func (r ActivityRecord) Details() ActivityDetails {
	switch r.EffectiveType() {
	case ActivityTypeSightseeing:
		return Sightseeing{LandmarkName: r.LandmarkName, Location: r.Location}
	case ActivityTypeAdventure:
		return Adventure{DifficultyLevel: r.DifficultyLevel, EquipmentRequired: r.EquipmentRequired}
	case ActivityTypeCultural:
		return Cultural{EventName: r.EventName, Organizer: r.Organizer}
	default:
		return Other{}
	}
}
