package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rusq/wipemydiscord/internal/waipu"
)

const infoText = "Press [Ctrl+Q] or [F10] to quit, [Ctrl+F] or [/] to search, [Esc] to stop deletion"

func (app *App) initMain(ctx context.Context) {
	app.view.lvTargets.
		SetHighlightFullLine(true).
		SetSelectedBackgroundColor(tcell.Color63).
		SetSelectedTextColor(tcell.ColorWhite).
		SetMainTextColor(tcell.Color63).
		ShowSecondaryText(true).
		SetBorder(true).
		SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			return app.targetsInputCapture(ctx, event)
		}).
		SetTitle("[ Servers and DMs ]")

	app.view.tvLog.
		SetWordWrap(true).
		SetScrollable(true).
		SetChangedFunc(app.redraw).
		SetBorder(true).
		SetTitle("[ Information ]")

	// main is the main screen, split in two parts.
	workspace := tview.NewFlex().
		AddItem(app.view.lvTargets, 0, 25, true).
		AddItem(app.view.tvLog, 0, 75, false)

	// The bottom row is the help message
	info := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetTextAlign(tview.AlignCenter).
		SetTextColor(tcell.ColorRed).
		SetText(infoText)

	mainScreen := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(workspace, 0, 1, true).
		AddItem(info, 1, 1, false)

	app.pages.AddPage(stSelecting, mainScreen, true, true)
}

// populateTargets replaces the list items with the targets.  Must be called
// from the UI goroutine.
func (app *App) populateTargets(ctx context.Context, tt []waipu.Target) {
	app.view.lvTargets.Clear()
	for _, t := range tt {
		label := t.Label()
		app.view.lvTargets.AddItem(
			label,
			fmt.Sprintf("  %s (%s)", t.Kind, t.ID),
			0,
			func() { app.handleSelect(ctx, label) },
		)
	}
}

func (app *App) handleSelect(ctx context.Context, label string) {
	app.fsm.SetMetadata(metaTarget, label)
	app.view.mbConfirm.SetText(fmt.Sprintf("Delete all your messages in %q?", label))
	if !app.event(ctx, evSelected) {
		app.fsm.DeleteMetadata(metaTarget)
	}
}

func (app *App) targetsInputCapture(ctx context.Context, event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlF:
		if app.event(ctx, evSearch) {
			return nil
		}
	case tcell.KeyRune:
		if event.Rune() == '/' && app.event(ctx, evSearch) {
			return nil
		}
	}
	return event
}
