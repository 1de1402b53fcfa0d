package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tripdeck/internal/client/formdiff"
	"tripdeck/internal/client/listctrl"
	"tripdeck/internal/client/models"
	"tripdeck/internal/client/services"
)

// Activities opens the activity browser: a sub-loop over a list controller
// with search, a time-window filter, and pagination.
//
// Browser commands:
//
//	search <text>   — filter by title or type ('search' alone clears it)
//	when <w>        — all | upcoming | past
//	next | prev     — page navigation
//	page <n>        — jump to a page
//	open <id>       — show one activity
//	back | q        — leave the browser
func (a *App) Activities(ctx context.Context) error {
	ctrl := listctrl.New[models.ActivityRecord](a.config.DefaultPageSize, a.config.SearchDebounce)

	fetch := func() {
		token := ctrl.Begin()
		page, err := a.fetchActivityPage(ctx, ctrl.Query())
		if !ctrl.Resolve(token, page, err) {
			return
		}
		a.renderActivityList(ctrl)
	}
	fetch()

	for {
		printlnFn("activities> search <text> | when all|upcoming|past | next | prev | page <n> | open <id> | back")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			a.renderActivityList(ctrl)
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "search":
			// The browser is line-based, so a finished line commits the
			// debounced input immediately.
			ctrl.SetSearchInput(strings.Join(args, " "), time.Now())
			if ctrl.CommitNow() {
				fetch()
			}

		case "when":
			w, ok := listctrl.ParseWhen(strings.Join(args, ""))
			if !ok {
				printlnFn("Expected one of: all, upcoming, past")
				continue
			}
			if ctrl.SetWhen(w) {
				fetch()
			}

		case "next", "n":
			if ctrl.NextPage() {
				fetch()
			}

		case "prev", "p":
			if ctrl.PrevPage() {
				fetch()
			}

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Expected a page number, got:", args[0])
				continue
			}
			if ctrl.SetPage(n) {
				fetch()
			}

		case "open":
			_ = a.ShowActivity(ctx, args)

		case "back", "q":
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// fetchActivityPage serves one controller query. The all filter is a plain
// server-side page; upcoming/past have no backend counterpart, so the client
// fetches one large page and filters and windows it locally.
func (a *App) fetchActivityPage(ctx context.Context, q listctrl.Query) (models.Page[models.ActivityRecord], error) {
	if q.When == listctrl.WhenAll {
		return a.activities.List(ctx, models.ListParams{
			Search:   q.Search,
			Page:     q.Page,
			PageSize: q.PageSize,
		})
	}

	full, err := a.activities.List(ctx, models.ListParams{
		Search:   q.Search,
		Page:     1,
		PageSize: listctrl.BigPageSize,
	})
	if err != nil {
		return models.Page[models.ActivityRecord]{}, err
	}

	today := models.Today(time.Now())
	filtered := listctrl.ApplyWhen(full.Data, func(r models.ActivityRecord) string { return r.Date }, q.When, today)

	return models.Page[models.ActivityRecord]{
		Data: listctrl.Window(filtered, q.Page, q.PageSize),
		Meta: models.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: len(filtered)},
	}, nil
}

func (a *App) renderActivityList(ctrl *listctrl.Controller[models.ActivityRecord]) {
	if ctrl.Phase() == listctrl.PhaseFailure {
		a.reportError(ctrl.Err())
		return
	}
	items := ctrl.Items()
	if len(items) == 0 {
		printlnFn("No activities match.")
	}
	for _, r := range items {
		printlnFn(renderActivityLine(r))
	}
	printlnFn(renderPageFooter(ctrl.Query().Page, ctrl.TotalPages(), ctrl.Meta().Total))
}

// ShowActivity displays one activity by id.
func (a *App) ShowActivity(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Enter activity id")
	if err != nil {
		return err
	}
	rec, err := a.activities.Get(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}
	printlnFn(renderActivityDetail(rec))
	return nil
}

// promptType asks for an activity type until a valid one (or nothing, when
// allowEmpty) is entered.
func (a *App) promptType(prompt string, allowEmpty bool) (models.ActivityType, error) {
	for {
		raw, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return "", err
		}
		if raw == "" && allowEmpty {
			return "", nil
		}
		t := models.ActivityType(strings.ToUpper(raw))
		if t.Valid() {
			return t, nil
		}
		printlnFn("Expected one of: SIGHTSEEING, ADVENTURE, CULTURAL, OTHER")
	}
}

// promptSubtypeFields asks only for the fields belonging to the form's type.
// The form must already have irrelevant fields cleared.
func (a *App) promptSubtypeFields(form *formdiff.ActivityForm) error {
	var err error
	switch form.Type {
	case models.ActivityTypeSightseeing:
		if form.LandmarkName, err = getSimpleText(a.reader, "Enter landmark name", os.Stdout); err != nil {
			return err
		}
		if form.Location, err = getSimpleText(a.reader, "Enter location", os.Stdout); err != nil {
			return err
		}
	case models.ActivityTypeAdventure:
		if form.DifficultyLevel, err = getSimpleText(a.reader, "Enter difficulty level", os.Stdout); err != nil {
			return err
		}
		if form.EquipmentRequired, err = getSimpleText(a.reader, "Enter equipment required", os.Stdout); err != nil {
			return err
		}
	case models.ActivityTypeCultural:
		if form.EventName, err = getSimpleText(a.reader, "Enter event name", os.Stdout); err != nil {
			return err
		}
		if form.Organizer, err = getSimpleText(a.reader, "Enter organizer", os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

// AddActivity collects activity fields and creates the record. The trip id
// may be left blank when a default trip is configured.
func (a *App) AddActivity(ctx context.Context) error {
	form := formdiff.ActivityForm{}
	var err error

	tripRaw, err := getSimpleText(a.reader, "Enter trip id (blank for default)", os.Stdout)
	if err != nil {
		return err
	}
	if tripRaw != "" {
		form.TripID, err = strconv.ParseInt(tripRaw, 10, 64)
		if err != nil {
			printlnFn("Expected a numeric trip id, got:", tripRaw)
			return err
		}
	}

	if form.Title, err = getSimpleText(a.reader, "Enter title", os.Stdout); err != nil {
		return err
	}
	typ, err := a.promptType("Enter type (SIGHTSEEING | ADVENTURE | CULTURAL | OTHER)", false)
	if err != nil {
		return err
	}
	form = formdiff.ClearIrrelevant(form, typ)
	if form.Date, err = getSimpleText(a.reader, "Enter date (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	if err := a.promptSubtypeFields(&form); err != nil {
		return err
	}
	if form.Notes, err = GetMultiline(a.reader, "Enter notes (optional):", os.Stdout); err != nil {
		return err
	}

	if _, err := formdiff.ValidateActivity(form, nil, formdiff.ModeCreate); err != nil {
		a.reportError(err)
		return err
	}

	rec, err := a.activities.Create(ctx, form, services.CreateActivityOptions{
		FallbackTripID: a.config.DefaultTripID,
	})
	if err != nil {
		a.reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created activity #%d", rec.ID))
	return nil
}

// editField prompts for a field showing its current value; blank keeps it.
// When the entry differs from the original, the change is marked and the
// prior value shown.
func (a *App) editField(prompt, current string) (string, error) {
	display := current
	if display == "" {
		display = "-"
	}
	val, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", prompt, display), os.Stdout)
	if err != nil {
		return "", err
	}
	if val != "" && formdiff.Changed(val, current) {
		printlnFn(changedMarkLine(current))
	}
	return val, nil
}

// changedMarkLine renders the edit indicator with the prior value.
func changedMarkLine(prior any) string {
	line := formdiff.ChangedMark()
	if was := formdiff.FormatWas(prior); was != "" {
		line += "  " + was
	}
	return line
}

// EditActivity loads an activity and walks its fields; blank input keeps the
// server value. Changing the type blanks fields of the old type and prompts
// for the new type's fields.
func (a *App) EditActivity(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Enter activity id to edit")
	if err != nil {
		return err
	}
	original, err := a.activities.Get(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}
	printlnFn(renderActivityDetail(original))
	printlnFn("Press Enter to keep a value.")

	form := formdiff.ActivityForm{}

	if form.Title, err = a.editField("Title", original.EffectiveTitle()); err != nil {
		return err
	}
	if form.Date, err = a.editField("Date", original.Date); err != nil {
		return err
	}

	typ, err := a.promptType(fmt.Sprintf("Type [%s] (blank to keep)", original.EffectiveType()), true)
	if err != nil {
		return err
	}
	if typ == "" {
		typ = original.EffectiveType()
	}
	if typ != original.EffectiveType() {
		printlnFn(changedMarkLine(string(original.EffectiveType())))
		form = formdiff.ClearIrrelevant(form, typ)
		if err := a.promptSubtypeFields(&form); err != nil {
			return err
		}
	} else {
		form.Type = typ
		if err := a.editSubtypeFields(&form, original); err != nil {
			return err
		}
	}

	if form.Notes, err = a.editField("Notes", original.Notes); err != nil {
		return err
	}

	if _, err := formdiff.ValidateActivity(form, original, formdiff.ModeEdit); err != nil {
		a.reportError(err)
		return err
	}

	rec, err := a.activities.Update(ctx, id, form, original)
	if err != nil {
		a.reportError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Updated activity #%d", rec.ID))
	return nil
}

// editSubtypeFields walks the subtype fields of the unchanged type, keeping
// server values on blank input.
func (a *App) editSubtypeFields(form *formdiff.ActivityForm, original *models.ActivityRecord) error {
	var err error
	switch form.Type {
	case models.ActivityTypeSightseeing:
		if form.LandmarkName, err = a.editField("Landmark name", original.LandmarkName); err != nil {
			return err
		}
		if form.Location, err = a.editField("Location", original.Location); err != nil {
			return err
		}
	case models.ActivityTypeAdventure:
		if form.DifficultyLevel, err = a.editField("Difficulty level", original.DifficultyLevel); err != nil {
			return err
		}
		if form.EquipmentRequired, err = a.editField("Equipment required", original.EquipmentRequired); err != nil {
			return err
		}
	case models.ActivityTypeCultural:
		if form.EventName, err = a.editField("Event name", original.EventName); err != nil {
			return err
		}
		if form.Organizer, err = a.editField("Organizer", original.Organizer); err != nil {
			return err
		}
	}
	return nil
}

// DeleteActivity removes an activity after an explicit confirmation.
func (a *App) DeleteActivity(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Enter activity id to delete")
	if err != nil {
		return err
	}
	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete activity #%d?", id), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}
	if err := a.activities.Delete(ctx, id); err != nil {
		a.reportError(err)
		return err
	}
	printlnFn("Deleted")
	return nil
}
