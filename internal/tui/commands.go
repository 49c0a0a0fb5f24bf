package tui

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copyforge/copyforge/internal/api"
)

const (
	progressTick  = 400 * time.Millisecond
	graceDelay    = 600 * time.Millisecond
	copiedTimeout = 2 * time.Second
	statusTimeout = 4 * time.Second
)

// fetchSchedule requests the calendar preview for n posts. The n travels
// with the response so stale replies can be dropped.
func fetchSchedule(client *api.Client, n int) tea.Cmd {
	return func() tea.Msg {
		slots, err := client.SchedulePreview(context.Background(), n)
		return scheduleMsg{n: n, slots: slots, err: err}
	}
}

// uploadBatch expands pattern as a glob (or single path), reads every
// match, and performs one batch upload.
func uploadBatch(client *api.Client, pattern string) tea.Cmd {
	return func() tea.Msg {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return uploadMsg{err: err}
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr != nil {
				return uploadMsg{err: statErr}
			}
			matches = []string{pattern}
		}
		sort.Strings(matches)

		files := make([]api.FileUpload, 0, len(matches))
		for _, p := range matches {
			data, err := os.ReadFile(p)
			if err != nil {
				return uploadMsg{err: err}
			}
			files = append(files, api.FileUpload{Filename: filepath.Base(p), Data: data})
		}
		assets, err := client.UploadMultiple(context.Background(), files)
		return uploadMsg{assets: assets, err: err}
	}
}

// runGenerate issues the generation request with a payload snapshotted at
// call time.
func runGenerate(client *api.Client, req api.GenerateRequest, seq int) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Generate(context.Background(), req)
		return genDoneMsg{seq: seq, res: res, err: err}
	}
}

func nextGenTick(seq int) tea.Cmd {
	return tea.Tick(progressTick, func(time.Time) tea.Msg { return genTickMsg{seq: seq} })
}

func advanceAfterGrace(seq int) tea.Cmd {
	return tea.Tick(graceDelay, func(time.Time) tea.Msg { return advanceMsg{seq: seq} })
}

func clearCopiedAfter(seq int) tea.Cmd {
	return tea.Tick(copiedTimeout, func(time.Time) tea.Msg { return copyClearMsg{seq: seq} })
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}
