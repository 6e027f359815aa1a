package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rusq/wipemydiscord/internal/bg"
	"github.com/rusq/wipemydiscord/internal/waipu"
)

func (app *App) initConfirm(ctx context.Context) {
	app.pages.AddPage(stConfirming, app.view.mbConfirm, false, false)
	app.view.mbConfirm.
		AddButtons([]string{btnYes, btnNo}).
		SetDoneFunc(func(_ int, buttonLabel string) {
			app.handleConfirm(ctx, buttonLabel)
		}).
		SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyESC {
				app.cancel(ctx)
				return nil
			}
			return event
		})
}

func (app *App) handleConfirm(ctx context.Context, buttonLabel string) {
	switch buttonLabel {
	case btnYes:
		if err := app.handleDelete(ctx); err != nil {
			app.error(err)
		}
	case btnNo:
		app.cancel(ctx)
	}
}

// handleDelete starts the deletion in the target from the FSM Metadata.  The
// state changes back once the job is finished.
func (app *App) handleDelete(ctx context.Context) error {
	label, err := metadata[string](app.fsm, metaTarget)
	if err != nil {
		app.cancel(ctx)
		return fmt.Errorf("target missing: %s", err)
	}
	if !app.event(ctx, evConfirmed) {
		return nil
	}
	app.view.tvLog.Clear()
	job, err := app.sess.Delete(ctx, label)
	if err != nil {
		app.event(ctx, evDeleted)
		return nil // the session has logged it
	}
	app.fsm.SetMetadata(metaJob, job)
	go app.waitDelete(ctx, job)
	return nil
}

func (app *App) waitDelete(ctx context.Context, job *bg.Job[waipu.Stats]) {
	st, err := job.Wait()
	app.tva.QueueUpdateDraw(func() {
		if err == nil && st.Found == 0 {
			app.event(ctx, evNothingToDo)
			return
		}
		app.event(ctx, evDeleted)
	})
}

// cancelJob cancels the running deletion.
func (app *App) cancelJob() {
	job, err := metadata[*bg.Job[waipu.Stats]](app.fsm, metaJob)
	if err != nil {
		return
	}
	app.logf("Cancelling, please wait...")
	job.Cancel()
}
