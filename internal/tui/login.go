package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	fldToken = "Token"
	btnLogin = "Login"
	btnQuit  = "Quit"
)

func (app *App) initLogin(ctx context.Context) {
	app.pages.AddPage(stLogin, modal(app.view.fmLogin, 70, 7), true, true)
	app.view.fmLogin.
		AddPasswordField(fldToken, "", 50, '*', nil).
		AddButton(btnLogin, func() { app.handleLogin(ctx) }).
		AddButton(btnQuit, func() { app.tva.Stop() }).
		SetBorder(true).
		SetTitle("[ Discord Login ]").
		SetBackgroundColor(tcell.ColorDarkSlateBlue)
}

func (app *App) loginField() *tview.InputField {
	return app.view.fmLogin.GetFormItemByLabel(fldToken).(*tview.InputField)
}

// handleLogin starts the login with the token from the form.  The form
// comes back if the login fails.
func (app *App) handleLogin(ctx context.Context) {
	if !app.event(ctx, evLogin) {
		return
	}
	job, err := app.sess.Login(ctx, app.loginField().GetText())
	if err != nil {
		app.event(ctx, evLoginFailed)
		return
	}
	go func() {
		_, err := job.Wait()
		app.tva.QueueUpdateDraw(func() {
			if err != nil {
				app.event(ctx, evLoginFailed)
				return
			}
			app.populateTargets(ctx, app.sess.Targets())
			app.event(ctx, evConnected)
		})
	}()
}
