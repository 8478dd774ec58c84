package cli

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/gridlog/gridlog/internal/cli/formatter"
	"github.com/gridlog/gridlog/internal/domain"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validateHexColor(s string) error {
	if s == "" {
		return nil
	}
	if !hexColorRe.MatchString(s) {
		return fmt.Errorf("use #rrggbb")
	}
	return nil
}

func validateNonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter a value")
	}
	return nil
}

// newCategoryFormView collects a name and color for a new legend entry.
func newCategoryFormView(state *SharedState) View {
	var name, color string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category Name").
				Placeholder("Deep Work").
				Value(&name).
				Validate(validateNonBlank),
			huh.NewInput().
				Title("Color (hex, blank for default)").
				Placeholder("#8ec07c").
				Value(&color).
				Validate(validateHexColor),
		),
	).WithTheme(gridlogHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			cat := &domain.Category{Name: name, Color: color}
			if cat.Color == "" {
				cat.Color = string(formatter.ColorBlue)
			}
			if err := app.Categories.Create(context.Background(), cat); err != nil {
				state.Toasts.Error("Could not create the category")
				return nil
			}
			state.Toasts.Success("Category created")
			cats, err := app.Categories.List(context.Background())
			return categoriesLoadedMsg{categories: cats, err: err}
		}
	}

	return newWizardView(state, "New Category", form, done)
}

// newMoodFormView attaches or clears the mood on a filled bucket.
func newMoodFormView(state *SharedState, bucket domain.TimeBucket) View {
	current := ""
	if bucket.StateID != nil {
		current = *bucket.StateID
	}
	choice := current

	options := make([]huh.Option[string], 0, len(domain.MoodStates)+1)
	for _, m := range domain.MoodStates {
		options = append(options, huh.NewOption(string(m), string(m)))
	}
	options = append(options, huh.NewOption("none", ""))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Mood for %s", formatter.SlotTime(bucket.Start))).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(gridlogHuhTheme()).WithShowHelp(false)

	app := state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			rec := bucket.Record()
			rec.StateID = nil
			if choice != "" {
				rec.StateID = &choice
			}
			out, err := app.Records.Update(context.Background(), rec)
			return updateDoneMsg{rec: out, err: err}
		}
	}

	return newWizardView(state, "Mood", form, done)
}

// newNoteFormView attaches a free-form note to a filled bucket.
func newNoteFormView(state *SharedState, bucket domain.TimeBucket) View {
	var body string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("Note for %s", formatter.SlotTime(bucket.Start))).
				Value(&body).
				Validate(validateNonBlank),
		),
	).WithTheme(gridlogHuhTheme()).WithShowHelp(false)

	app := state.App
	recordID := *bucket.Identity
	done := func() tea.Cmd {
		return func() tea.Msg {
			if _, err := app.Notes.Attach(context.Background(), recordID, body); err != nil {
				state.Toasts.Error("Could not attach the note")
				return nil
			}
			state.Toasts.Success("Note attached")
			rec, err := app.Records.GetByID(context.Background(), recordID)
			return recordReloadedMsg{rec: rec, err: err}
		}
	}

	return newWizardView(state, "Note", form, done)
}

// newDeleteConfirmView guards deletion of a record carrying notes or a
// mood. Confirming runs deleteCmd; declining just pops.
func newDeleteConfirmView(state *SharedState, bucket domain.TimeBucket, deleteCmd tea.Cmd) View {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete the %s slot?", formatter.SlotTime(bucket.Start))).
				Description("Its notes and mood will be removed with it.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(gridlogHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return deleteCmd
	}

	return newWizardView(state, "Confirm Delete", form, done)
}
