package tui

import "github.com/copyforge/copyforge/internal/api"

// scheduleMsg carries a calendar preview response. n is the post count the
// request was issued with; responses whose n no longer matches the current
// value are discarded.
type scheduleMsg struct {
	n     int
	slots []api.ScheduleSlot
	err   error
}

// uploadMsg carries the result of one batch upload.
type uploadMsg struct {
	assets []api.Asset
	err    error
}

// genTickMsg advances the simulated progress ramp. seq ties a tick to the
// generation that started it.
type genTickMsg struct {
	seq int
}

// genDoneMsg carries the settled generation request.
type genDoneMsg struct {
	seq int
	res *api.GenerationResult
	err error
}

// advanceMsg fires after the post-success grace delay to move to the
// results screen.
type advanceMsg struct {
	seq int
}

// copyClearMsg clears the transient "copied" indicator.
type copyClearMsg struct {
	seq int
}

// statusClearMsg clears the transient status line.
type statusClearMsg struct {
	seq int
}
