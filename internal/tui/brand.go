package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copyforge/copyforge/internal/wizard"
)

func (m model) handleBrandKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputActive {
		switch msg.String() {
		case "esc":
			m.inputActive = false
			m.brandInputs[m.focus].Blur()
			return m, nil
		case "enter":
			if m.focus == fieldBrandRequired || m.focus == fieldBrandBase {
				m.applyTagEntry()
				return m, nil
			}
			m.inputActive = false
			m.brandInputs[m.focus].Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.brandInputs[m.focus], cmd = m.brandInputs[m.focus].Update(msg)
		m.syncBrand()
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if m.focus < brandFieldCount-1 {
			m.focus++
			m.tagCursor = 0
		}
	case "k", "up":
		if m.focus > 0 {
			m.focus--
			m.tagCursor = 0
		}
	case "i":
		m.inputActive = true
		m.brandInputs[m.focus].Focus()
	case "left":
		if m.onTagField() && m.tagCursor > 0 {
			m.tagCursor--
		}
	case "right":
		if m.onTagField() && m.tagCursor < len(m.focusedTags())-1 {
			m.tagCursor++
		}
	case "x":
		if m.onTagField() {
			m.removeTagAtCursor()
		}
	}
	return m, nil
}

func (m model) onTagField() bool {
	return m.focus == fieldBrandRequired || m.focus == fieldBrandBase
}

func (m model) focusedTags() []string {
	if m.focus == fieldBrandRequired {
		return m.sess.Brand.RequiredHashtags
	}
	return m.sess.Brand.BaseHashtags
}

func (m *model) applyTagEntry() {
	raw := m.brandInputs[m.focus].Value()
	if strings.TrimSpace(raw) == "" {
		return
	}
	if m.focus == fieldBrandRequired {
		m.sess.Brand.RequiredHashtags = wizard.AddTags(m.sess.Brand.RequiredHashtags, raw)
	} else {
		m.sess.Brand.BaseHashtags = wizard.AddTags(m.sess.Brand.BaseHashtags, raw)
	}
	m.brandInputs[m.focus].SetValue("")
}

func (m *model) removeTagAtCursor() {
	if m.focus == fieldBrandRequired {
		m.sess.Brand.RequiredHashtags = wizard.RemoveTagAt(m.sess.Brand.RequiredHashtags, m.tagCursor)
	} else {
		m.sess.Brand.BaseHashtags = wizard.RemoveTagAt(m.sess.Brand.BaseHashtags, m.tagCursor)
	}
	if n := len(m.focusedTags()); m.tagCursor >= n && n > 0 {
		m.tagCursor = n - 1
	}
	if len(m.focusedTags()) == 0 {
		m.tagCursor = 0
	}
}

func (m *model) syncBrand() {
	m.sess.Brand.Name = m.brandInputs[fieldBrandName].Value()
	m.sess.Brand.Description = m.brandInputs[fieldBrandDescription].Value()
	m.sess.Brand.Tagline = m.brandInputs[fieldBrandTagline].Value()
	m.sess.Brand.History = m.brandInputs[fieldBrandHistory].Value()
}

func (m model) brandBodyLines() []string {
	lines := []string{m.theme.BoldText(m.tr.T("brand.title")), ""}

	labels := []string{
		m.tr.T("brand.name"), m.tr.T("brand.description"),
		m.tr.T("brand.tagline"), m.tr.T("brand.history"),
	}
	for i, label := range labels {
		lines = append(lines, m.fieldLabel(i, label))
		lines = append(lines, "  "+m.brandInputs[i].View())
	}

	lines = append(lines, "")
	lines = append(lines, m.fieldLabel(fieldBrandRequired, m.tr.T("brand.required"))+
		"  "+m.theme.FaintText(m.tr.T("brand.requiredhint")))
	lines = append(lines, "  "+m.tagLine(m.sess.Brand.RequiredHashtags, fieldBrandRequired))
	lines = append(lines, "  "+m.brandInputs[fieldBrandRequired].View())

	lines = append(lines, m.fieldLabel(fieldBrandBase, m.tr.T("brand.base"))+
		"  "+m.theme.FaintText(m.tr.T("brand.basehint")))
	lines = append(lines, "  "+m.tagLine(m.sess.Brand.BaseHashtags, fieldBrandBase))
	lines = append(lines, "  "+m.brandInputs[fieldBrandBase].View())

	return lines
}

func (m model) fieldLabel(field int, label string) string {
	marker := "  "
	if m.focus == field && !m.inputActive {
		marker = "> "
	}
	if m.focus == field {
		return marker + m.theme.AccentText(label)
	}
	return marker + label
}

func (m model) tagLine(tags []string, field int) string {
	if len(tags) == 0 {
		return m.theme.FaintText(m.tr.T("brand.nohashtags"))
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		if field == m.focus && i == m.tagCursor && !m.inputActive {
			parts[i] = m.theme.AccentText("[" + tag + "]")
			continue
		}
		parts[i] = tag
	}
	return strings.Join(parts, " ")
}
