package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/copyforge/copyforge/internal/export"
)

func (m model) handleOutputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.sess.Results
	if res == nil {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.postIndex < len(res.Posts)-1 {
			m.postIndex++
			m.refreshResults()
		}
	case "k", "up":
		if m.postIndex > 0 {
			m.postIndex--
			m.refreshResults()
		}
	case "J", "pgdown":
		m.resultsVP.HalfViewDown()
	case "K", "pgup":
		m.resultsVP.HalfViewUp()
	case "c":
		if m.postIndex < len(res.Posts) {
			post := res.Posts[m.postIndex]
			text := post.IGCaptionFull
			if text == "" {
				text = post.Caption
			}
			return m, m.copyText(text, "caption")
		}
	case "H":
		if m.postIndex < len(res.Posts) {
			return m, m.copyText(strings.Join(res.Posts[m.postIndex].Content.Hashtags, " "), "hashtags")
		}
	case "e":
		path, err := export.Write(m.exportDir, m.sess.Brand.Name, export.Snapshot{
			Brand:    m.sess.Brand,
			Campaign: m.sess.Campaign,
			Results:  res,
		})
		if err != nil {
			m.sess.LastError = err.Error()
			return m, nil
		}
		m.sess.LastError = ""
		return m, m.setStatus(m.tr.Tf("output.exported", "file", path))
	case "r":
		m.sess.Reset()
		m.resetInputs()
		m.copiedPost = -1
		m.copiedKind = ""
		m.status = ""
		return m, fetchSchedule(m.client, m.sess.Campaign.NPosts)
	}
	return m, nil
}

// copyText is fire and forget; a clipboard failure must not take the
// session down, so it is swallowed.
func (m *model) copyText(text, kind string) tea.Cmd {
	_ = clipboard.WriteAll(text)
	m.copiedPost = m.postIndex
	m.copiedKind = kind
	m.copySeq++
	m.refreshResults()
	return clearCopiedAfter(m.copySeq)
}

func (m model) outputFrameLines() []string {
	res := m.sess.Results
	if res == nil {
		return []string{m.theme.FaintText("—")}
	}
	title := m.theme.BoldText(m.tr.T("output.title")) + "  " +
		m.theme.FaintText(m.tr.Tf("output.ready",
			"n", strconv.Itoa(len(res.Posts)), "brand", m.sess.Brand.Name))
	lines := []string{title, ""}
	lines = append(lines, strings.Split(m.resultsVP.View(), "\n")...)
	return lines
}

func (m model) outputBodyLines() []string {
	res := m.sess.Results
	if res == nil {
		return nil
	}

	lines := []string{m.theme.BoldText(m.tr.T("output.brief"))}
	lines = append(lines, "  Theme: "+res.WeekBrief.Theme)
	lines = append(lines, "  Goal:  "+res.WeekBrief.Goal)
	if len(res.WeekBrief.Keywords) > 0 {
		lines = append(lines, "  "+m.tr.T("output.keywords")+": "+strings.Join(res.WeekBrief.Keywords, ", "))
	}
	if res.WeekBrief.CTA.Text != "" {
		lines = append(lines, "  CTA:   "+res.WeekBrief.CTA.Text)
	}
	lines = append(lines, "")

	for i, post := range res.Posts {
		marker := "  "
		if i == m.postIndex {
			marker = "> "
		}
		day := m.tr.Day(post.DayName)
		head := fmt.Sprintf("%s%s  %s", marker, m.theme.BoldText(day), m.theme.FaintText(post.TemplateID))
		if post.PostRole == "cta" {
			head += "  " + m.theme.AccentText("[cta]")
		}
		if i == m.copiedPost {
			head += "  " + m.theme.GoodText(m.tr.T("output.copied")+" ("+m.copiedKind+")")
		}
		lines = append(lines, head)
		if post.Title != "" {
			lines = append(lines, "    "+m.theme.BoldText(post.Title))
		}
		for _, l := range strings.Split(post.Caption, "\n") {
			lines = append(lines, "    "+l)
		}
		if tags := post.Content.Hashtags; len(tags) > 0 {
			shown := tags
			extra := ""
			if len(shown) > 5 {
				extra = m.theme.FaintText(fmt.Sprintf(" +%d", len(shown)-5))
				shown = shown[:5]
			}
			lines = append(lines, "    "+m.theme.AccentText(strings.Join(shown, " "))+extra)
		}
		lines = append(lines, "")
	}
	return lines
}
