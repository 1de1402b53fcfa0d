package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/client/models"
)

var (
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func renderTripLine(t models.Trip) string {
	var b strings.Builder
	b.WriteString(idStyle.Render(fmt.Sprintf("#%d", t.ID)))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(t.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s — %s", t.StartDate, t.EndDate)))
	if t.Destination != nil {
		b.WriteString("  ")
		b.WriteString(typeStyle.Render(t.Destination.City + ", " + t.Destination.Country))
	}
	return b.String()
}

func renderTripDetail(t *models.Trip) string {
	lines := []string{
		headerStyle.Render(t.Name),
		fmt.Sprintf("Dates: %s — %s", t.StartDate, t.EndDate),
	}
	if t.Destination != nil {
		d := t.Destination
		lines = append(lines, fmt.Sprintf("Destination: %s, %s", d.City, d.Country))
		if d.Timezone != "" {
			lines = append(lines, fmt.Sprintf("Timezone: %s", d.Timezone))
		}
		if d.CurrencyCode != "" {
			lines = append(lines, fmt.Sprintf("Currency: %s", d.CurrencyCode))
		}
	}
	if t.TripType != "" {
		lines = append(lines, fmt.Sprintf("Type: %s", t.TripType))
	}
	if t.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", t.Notes))
	}
	return strings.Join(lines, "\n")
}

func renderActivityLine(r models.ActivityRecord) string {
	var b strings.Builder
	b.WriteString(idStyle.Render(fmt.Sprintf("#%d", r.ID)))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(r.Date))
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(r.EffectiveTitle()))
	b.WriteString("  ")
	b.WriteString(typeStyle.Render(string(r.EffectiveType())))
	return b.String()
}

func renderActivityDetail(r *models.ActivityRecord) string {
	lines := []string{
		headerStyle.Render(r.EffectiveTitle()),
		fmt.Sprintf("Type: %s", r.EffectiveType()),
		fmt.Sprintf("Date: %s", r.Date),
	}
	if r.TripName != "" {
		lines = append(lines, fmt.Sprintf("Trip: %s", r.TripName))
	} else if r.TripID != 0 {
		lines = append(lines, fmt.Sprintf("Trip: #%d", r.TripID))
	}

	switch d := r.Details().(type) {
	case models.Sightseeing:
		if d.LandmarkName != "" {
			lines = append(lines, fmt.Sprintf("Landmark: %s", d.LandmarkName))
		}
		if d.Location != "" {
			lines = append(lines, fmt.Sprintf("Location: %s", d.Location))
		}
	case models.Adventure:
		if d.DifficultyLevel != "" {
			lines = append(lines, fmt.Sprintf("Difficulty: %s", d.DifficultyLevel))
		}
		if d.EquipmentRequired != "" {
			lines = append(lines, fmt.Sprintf("Equipment: %s", d.EquipmentRequired))
		}
	case models.Cultural:
		if d.EventName != "" {
			lines = append(lines, fmt.Sprintf("Event: %s", d.EventName))
		}
		if d.Organizer != "" {
			lines = append(lines, fmt.Sprintf("Organizer: %s", d.Organizer))
		}
	}

	if r.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", r.Notes))
	}
	return strings.Join(lines, "\n")
}

func renderPageFooter(page, totalPages, total int) string {
	return dimStyle.Render(fmt.Sprintf("page %d/%d (%d items)", page, totalPages, total))
}
