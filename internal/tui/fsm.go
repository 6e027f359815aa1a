package tui

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

type machine struct {
	app *App
	fsm *fsm.FSM
}

const (
	// events
	evLogin       = "log_in"
	evConnected   = "connected"
	evLoginFailed = "login_failed"
	evSelected    = "selected"
	evCancelled   = "cancelled"
	evConfirmed   = "confirmed"
	evDeleted     = "deleted"
	evNothingToDo = "nothing_to_do"
	evDismissed   = "dismissed"
	evSearch      = "search"
	evLocate      = "locate"

	// states
	stLogin      = "login"
	stConnecting = "connecting"
	stSelecting  = "selecting"
	stSearching  = "searching"
	stConfirming = "confirming"
	stDeleting   = "deleting"
	stNothing    = "nothing"

	// metadata
	metaTarget = "target"
	metaJob    = "job"
)

func initFSM(app *App) *fsm.FSM {
	m := machine{app: app}
	sm := fsm.NewFSM(
		stLogin,
		fsm.Events{
			{Name: evLogin, Src: []string{stLogin}, Dst: stConnecting},
			{Name: evConnected, Src: []string{stConnecting}, Dst: stSelecting},
			{Name: evLoginFailed, Src: []string{stConnecting}, Dst: stLogin},
			{Name: evSelected, Src: []string{stSelecting}, Dst: stConfirming},
			{Name: evConfirmed, Src: []string{stConfirming}, Dst: stDeleting},
			{Name: evDeleted, Src: []string{stDeleting}, Dst: stSelecting},
			{Name: evNothingToDo, Src: []string{stDeleting}, Dst: stNothing},
			{Name: evDismissed, Src: []string{stNothing}, Dst: stSelecting},
			// search
			{Name: evSearch, Src: []string{stSelecting}, Dst: stSearching},
			{Name: evLocate, Src: []string{stSearching}, Dst: stSelecting},
			// cancel
			{Name: evCancelled, Src: []string{stConfirming, stSearching}, Dst: stSelecting},
		},
		fsm.Callbacks{
			m.enter("state"): func(_ context.Context, e *fsm.Event) {
				m.app.sess.Debugf("*** transition: %q -> %q", e.Src, e.Dst)
				m.app.pages.ShowPage(e.Dst)
			},
			// states
			m.leave(stLogin):      m.hidePage,
			m.leave(stConfirming): m.hidePage,
			m.leave(stNothing):    m.hidePage,
			m.leave(stSearching):  m.hidePage,
			m.leave(stDeleting):   m.leaveDeleting,
			// events
			m.after(evCancelled): m.afterCancelled,
		},
	)
	m.fsm = sm

	return m.fsm
}

func (*machine) leave(state string) string {
	return "leave_" + state
}

func (*machine) enter(state string) string {
	return "enter_" + state
}

func (*machine) after(event string) string {
	return "after_" + event
}

//
// States
//

func (m *machine) hidePage(_ context.Context, e *fsm.Event) {
	m.app.pages.HidePage(e.Src)
}

func (m *machine) leaveDeleting(ctx context.Context, e *fsm.Event) {
	m.cleanUp()
	m.hidePage(ctx, e)
}

//
// Events
//

func (m *machine) afterCancelled(context.Context, *fsm.Event) {
	// clear metadata
	m.cleanUp()
	m.app.logf("Operation cancelled")
}

func (m *machine) cleanUp() {
	m.fsm.DeleteMetadata(metaTarget)
	m.fsm.DeleteMetadata(metaJob)
}

func metadata[T any](fsm *fsm.FSM, key string) (T, error) {
	var ret T
	val, ok := fsm.Metadata(key)
	if !ok || val == nil {
		return ret, fmt.Errorf("value of type %T not present in metadata", ret)
	}
	ret, ok = val.(T)
	if !ok {
		return ret, fmt.Errorf("invalid type (metadata: %T, want %T)", val, ret)
	}
	return ret, nil
}
