// Package tui is the terminal user interface of the wiper.
package tui

import (
	"context"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/looplab/fsm"
	"github.com/rivo/tview"

	"github.com/rusq/wipemydiscord/internal/session"
)

const (
	btnYes = "Yes"
	btnNo  = "No"
	btnOK  = "OK"
)

type App struct {
	tva  *tview.Application
	sess *session.Session
	fsm  *fsm.FSM

	pages *tview.Pages
	view  views

	// drawing is set while a redraw is queued.
	drawing atomic.Bool
}

type views struct {
	fmLogin   *tview.Form
	mbConfirm *tview.Modal
	mbNothing *tview.Modal
	fmSearch  *tview.Form

	lvTargets *tview.List
	tvLog     *tview.TextView
}

// New creates the application and its session, the session log goes to the
// information pane.
func New(ctx context.Context, opts ...session.Option) *App {
	app := &App{
		tva: tview.NewApplication(),

		pages: tview.NewPages(),
		view: views{
			fmLogin:   tview.NewForm(),
			mbConfirm: tview.NewModal(),
			mbNothing: tview.NewModal(),
			fmSearch:  tview.NewForm(),

			lvTargets: tview.NewList(),
			tvLog:     tview.NewTextView(),
		},
	}

	app.initMain(ctx)
	app.initLogin(ctx)
	app.initFind(ctx)
	app.initConfirm(ctx)
	app.initNothing(ctx)

	app.tva.SetInputCapture(app.handleKeystrokes)

	app.sess = session.New(app.view.tvLog, opts...)

	// init finite state machine
	app.fsm = initFSM(app)

	return app
}

// Run starts the UI.  If the token is not empty, the login starts
// immediately.
func (app *App) Run(ctx context.Context, token string) error {
	defer app.Close()

	if token != "" {
		app.loginField().SetText(token)
		app.handleLogin(ctx)
	}

	if err := app.tva.SetRoot(app.pages, true).EnableMouse(false).Run(); err != nil {
		return err
	}
	return nil
}

// Close cancels the running job and disconnects from Discord.
func (app *App) Close() error {
	return app.sess.Close()
}

func (app *App) logf(format string, a ...any) {
	app.sess.Printf(format, a...)
}

func (app *App) error(err error) {
	app.logf("ERROR: %s", err)
}

func (app *App) handleKeystrokes(event *tcell.EventKey) *tcell.EventKey {
	if app.fsm.Current() == stDeleting {
		// only cancellation is allowed until the deletion is finished.
		if event.Key() == tcell.KeyESC {
			app.cancelJob()
		}
		return nil
	}

	switch event.Key() {
	case tcell.KeyCtrlQ, tcell.KeyF10:
		app.tva.Stop()
	default:
		return event
	}
	return nil
}

// cancel sends a evCancelled event.
func (app *App) cancel(ctx context.Context) {
	app.event(ctx, evCancelled)
}

// event sends an event to FSM, will return true, if there were no errors.
func (app *App) event(ctx context.Context, event string) bool {
	if err := app.fsm.Event(ctx, event); err != nil {
		app.error(err)
		return false
	}
	return true
}

// redraw queues a screen update.  It never blocks, so it is safe to call
// from the UI goroutine and from the session workers.
func (app *App) redraw() {
	if !app.drawing.CompareAndSwap(false, true) {
		return
	}
	go app.tva.QueueUpdateDraw(func() {
		app.drawing.Store(false)
	})
}

// modal wraps a primitive in a modal box.
func modal(p tview.Primitive, width int, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}
