package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"tripdeck/internal/client/formdiff"
	"tripdeck/internal/client/listctrl"
	"tripdeck/internal/client/models"
	"tripdeck/internal/client/services"
)

// resolveID takes the id from args when present, otherwise prompts for it.
func (a *App) resolveID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		raw, err = getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Expected a numeric id, got:", raw)
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Trips lists every trip.
func (a *App) Trips(ctx context.Context) error {
	trips, err := a.trips.List(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	if len(trips) == 0 {
		printlnFn("No trips yet. Use 'addtrip' to create one.")
		return nil
	}
	for _, t := range trips {
		printlnFn(renderTripLine(t))
	}
	return nil
}

// ShowTrip displays one trip by id.
func (a *App) ShowTrip(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Enter trip id")
	if err != nil {
		return err
	}
	trip, err := a.trips.Get(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}
	printlnFn(renderTripDetail(trip))

	// The backend has no per-trip activity listing, so pull one large page
	// and keep this trip's rows.
	page, err := a.activities.List(ctx, models.ListParams{Page: 1, PageSize: listctrl.BigPageSize})
	if err != nil {
		a.log.Warn(ctx, "could not load trip activities", "tripId", id, "error", err)
		return nil
	}
	first := true
	for _, r := range page.Data {
		if r.TripID != id {
			continue
		}
		if first {
			printlnFn("")
			printlnFn("Activities:")
			first = false
		}
		printlnFn(renderActivityLine(r))
	}
	return nil
}

// AddTrip collects trip fields, resolves a destination (existing or freshly
// created), validates the form, and creates the trip.
func (a *App) AddTrip(ctx context.Context) error {
	form := formdiff.TripForm{}
	var err error

	if form.Name, err = getSimpleText(a.reader, "Enter trip name", os.Stdout); err != nil {
		return err
	}
	if form.StartDate, err = getSimpleText(a.reader, "Enter start date (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	if form.EndDate, err = getSimpleText(a.reader, "Enter end date (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}

	form.DestinationID, err = a.chooseDestination(ctx)
	if err != nil {
		return err
	}

	if form.TripType, err = getSimpleText(a.reader, "Enter trip type (optional)", os.Stdout); err != nil {
		return err
	}
	if form.Notes, err = GetMultiline(a.reader, "Enter notes (optional):", os.Stdout); err != nil {
		return err
	}

	if err := formdiff.ValidateTrip(form); err != nil {
		a.reportError(err)
		return err
	}

	trip, err := a.trips.Create(ctx, form)
	if err != nil {
		a.reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created trip #%d", trip.ID))
	return nil
}

// chooseDestination lists known destinations and lets the user pick one by id
// or type "new" to create one. Creation warns about an apparent duplicate
// before submitting.
func (a *App) chooseDestination(ctx context.Context) (int64, error) {
	list, err := a.destinations.List(ctx)
	if err != nil {
		a.reportError(err)
		return 0, err
	}

	for _, d := range list {
		printlnFn(fmt.Sprintf("  #%d %s, %s", d.ID, d.City, d.Country))
	}
	choice, err := getSimpleText(a.reader, "Enter destination id, or 'new' to create one", os.Stdout)
	if err != nil {
		return 0, err
	}

	if choice != "new" {
		id, err := strconv.ParseInt(choice, 10, 64)
		if err != nil || id <= 0 {
			printlnFn("Expected a numeric id or 'new', got:", choice)
			return 0, fmt.Errorf("invalid destination choice %q", choice)
		}
		return id, nil
	}

	form := services.DestinationForm{}
	if form.City, err = getSimpleText(a.reader, "Enter city", os.Stdout); err != nil {
		return 0, err
	}
	if form.Country, err = getSimpleText(a.reader, "Enter country", os.Stdout); err != nil {
		return 0, err
	}
	if form.Timezone, err = getSimpleText(a.reader, "Enter timezone (e.g. Europe/Rome)", os.Stdout); err != nil {
		return 0, err
	}
	if form.CurrencyCode, err = getSimpleText(a.reader, "Enter currency code (e.g. EUR)", os.Stdout); err != nil {
		return 0, err
	}

	if services.DuplicateExists(list, form.City, form.Country) {
		ok, err := GetConfirm(a.reader, "A destination with this city and country already exists. Create anyway?", os.Stdout)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("destination creation cancelled")
		}
	}

	dest, err := a.destinations.Create(ctx, form)
	if err != nil {
		a.reportError(err)
		return 0, err
	}
	printlnFn(fmt.Sprintf("Created destination #%d", dest.ID))
	return dest.ID, nil
}

// DeleteTrip removes a trip after an explicit confirmation.
func (a *App) DeleteTrip(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Enter trip id to delete")
	if err != nil {
		return err
	}
	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete trip #%d?", id), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}
	if err := a.trips.Delete(ctx, id); err != nil {
		a.reportError(err)
		return err
	}
	printlnFn("Deleted")
	return nil
}
