package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"nbfix/internal/config"
	"nbfix/internal/domain"
)

// FixtureViewer displays a generated fixture set in an interactive TUI
type FixtureViewer struct {
	config *config.Config
}

// NewFixtureViewer creates a new FixtureViewer
func NewFixtureViewer(cfg *config.Config) *FixtureViewer {
	return &FixtureViewer{config: cfg}
}

// View displays the fixture set: case names on the left, source and
// fragments on the right
func (fv *FixtureViewer) View(set domain.ResultSet) error {
	if len(set) == 0 {
		color.Yellow("No fixtures to view")
		return nil
	}

	// Stable ordering to match the JSON output
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, name := range names {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, name), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Fixtures: %s (%d cases) | ↑↓ navigate, → details, ← back, Ctrl+C exit ",
			fv.config.GetOutputPath(), len(names)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(names) {
			name := names[index]
			detailsView.SetText(fv.formatRecord(name, set[name]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatRecord formats one fixture record using tview color tags
func (fv *FixtureViewer) formatRecord(name string, rec domain.Record) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]Case:[white] [yellow]%s[white]\n\n", name)
	fmt.Fprintf(&builder, "[cyan]Source:[white] %s\n\n", tview.Escape(quoteSource(rec.Source)))

	fmt.Fprintf(&builder, "[cyan]Fragments (%d):[white]\n", len(rec.Expected))
	if len(rec.Expected) == 0 {
		fmt.Fprintf(&builder, "  [gray](none)[white]\n")
	}
	for i, frag := range rec.Expected {
		fmt.Fprintf(&builder, "  [yellow]%d.[white] %s\n", i+1, tview.Escape(fmt.Sprintf("%q", frag)))
	}

	return builder.String()
}
