package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleMediaKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess.IsGenerating {
		return m, nil
	}

	if m.inputActive {
		switch msg.String() {
		case "esc":
			m.inputActive = false
			m.pathInput.Blur()
			return m, nil
		case "enter":
			pattern := strings.TrimSpace(m.pathInput.Value())
			if pattern == "" || m.uploading {
				return m, nil
			}
			m.uploading = true
			m.inputActive = false
			m.pathInput.Blur()
			m.pathInput.SetValue("")
			return m, uploadBatch(m.client, pattern)
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "i":
		m.inputActive = true
		m.pathInput.Focus()
	case "j", "down":
		if m.assetIndex < len(m.sess.Assets)-1 {
			m.assetIndex++
		}
	case "k", "up":
		if m.assetIndex > 0 {
			m.assetIndex--
		}
	case "x":
		m.sess.RemoveAssetAt(m.assetIndex)
		if n := len(m.sess.Assets); m.assetIndex >= n && n > 0 {
			m.assetIndex = n - 1
		}
	}
	return m, nil
}

func (m model) mediaBodyLines() []string {
	lines := []string{m.theme.BoldText(m.tr.T("media.title")), ""}
	lines = append(lines,
		m.tr.Tf("media.need", "n", strconv.Itoa(m.sess.Campaign.NPosts)))
	lines = append(lines, "  "+m.pathInput.View())
	lines = append(lines, "")

	lines = append(lines, m.theme.BoldText(fmt.Sprintf("%s: %d/%d",
		m.tr.T("media.uploaded"), len(m.sess.Assets), m.sess.Campaign.NPosts)))
	if m.uploading {
		lines = append(lines, m.theme.FaintText("Uploading..."))
	}
	for i, a := range m.sess.Assets {
		marker := "  "
		if i == m.assetIndex && !m.inputActive {
			marker = "> "
		}
		line := fmt.Sprintf("%s%s %s", marker, a.Filename, m.theme.FaintText(a.InferredTemplate))
		if i == m.assetIndex && !m.inputActive {
			line = m.theme.AccentText(marker+a.Filename) + " " + m.theme.FaintText(a.InferredTemplate)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	switch {
	case m.sess.IsGenerating:
		lines = append(lines, m.theme.AccentText(m.tr.T("media.generating")))
		lines = append(lines, "  "+m.progressBar())
	case m.sess.Ready():
		lines = append(lines, m.theme.GoodText("✓ "+m.tr.T("media.ready")))
	}
	return lines
}

// progressBar renders the simulated ramp. The number is cosmetic feedback,
// not a measurement of server progress.
func (m model) progressBar() string {
	width := 40
	if m.width > 0 && m.width-12 < width {
		width = m.width - 12
	}
	if width < 4 {
		width = 4
	}
	filled := width * m.sess.Progress / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return m.theme.AccentText(bar) + fmt.Sprintf(" %d%%", m.sess.Progress)
}
