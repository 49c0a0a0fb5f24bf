package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copyforge/copyforge/internal/wizard"
)

var ctaModes = []string{wizard.CTAModeDM, wizard.CTAModeLinkInBio, wizard.CTAModeFiera}
var voices = []string{wizard.VoiceMinimal, wizard.VoiceWarm, wizard.VoiceProfessional}
var availabilities = []string{wizard.AvailabilityNone, wizard.AvailabilityShow}

func (m model) handleCampaignKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputActive {
		switch msg.String() {
		case "esc", "enter":
			m.inputActive = false
			m.campaignInputs[m.focus].Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.campaignInputs[m.focus], cmd = m.campaignInputs[m.focus].Update(msg)
		m.syncCampaign()
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if m.focus < campaignFieldCount-1 {
			m.focus++
		}
	case "k", "up":
		if m.focus > 0 {
			m.focus--
		}
	case "i":
		if m.focus < len(m.campaignInputs) {
			m.inputActive = true
			m.campaignInputs[m.focus].Focus()
		}
	case "left", "h":
		return m.adjustSelector(-1)
	case "right", "l":
		return m.adjustSelector(+1)
	}
	return m, nil
}

// adjustSelector moves the focused enum/count field. A post count change
// kicks off a preview fetch for the new value.
func (m model) adjustSelector(dir int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case fieldCampaignPosts:
		next := wizard.ClampPosts(m.sess.Campaign.NPosts + dir)
		if next == m.sess.Campaign.NPosts {
			return m, nil
		}
		m.sess.Campaign.NPosts = next
		return m, fetchSchedule(m.client, next)
	case fieldCampaignCTA:
		m.sess.Campaign.CTAMode = cycle(ctaModes, m.sess.Campaign.CTAMode, dir)
	case fieldCampaignVoice:
		m.sess.Campaign.Voice = cycle(voices, m.sess.Campaign.Voice, dir)
	case fieldCampaignAvailability:
		m.sess.Campaign.Availability = cycle(availabilities, m.sess.Campaign.Availability, dir)
	}
	return m, nil
}

func cycle(options []string, current string, dir int) string {
	for i, o := range options {
		if o == current {
			return options[(i+dir+len(options))%len(options)]
		}
	}
	return options[0]
}

func (m *model) syncCampaign() {
	m.sess.Campaign.Goal = m.campaignInputs[fieldCampaignGoal].Value()
	m.sess.Campaign.Theme = m.campaignInputs[fieldCampaignTheme].Value()
	m.sess.Campaign.FeaturedCategory = m.campaignInputs[fieldCampaignCategory].Value()
}

func (m model) campaignBodyLines() []string {
	lines := []string{m.theme.BoldText(m.tr.T("campaign.title")), ""}

	labels := []string{
		m.tr.T("campaign.goal"), m.tr.T("campaign.theme"), m.tr.T("campaign.category"),
	}
	for i, label := range labels {
		lines = append(lines, m.fieldLabel(i, label))
		lines = append(lines, "  "+m.campaignInputs[i].View())
	}

	ctaNote := m.tr.T("campaign.nocta")
	if m.sess.Campaign.IncludesCTA() {
		ctaNote = m.tr.T("campaign.withcta")
	}
	lines = append(lines, "")
	lines = append(lines,
		m.fieldLabel(fieldCampaignPosts, m.tr.T("campaign.nposts"))+
			"  "+m.selectorValue(fieldCampaignPosts, fmt.Sprintf("%d", m.sess.Campaign.NPosts))+
			"  "+m.theme.FaintText(ctaNote))
	lines = append(lines,
		m.fieldLabel(fieldCampaignCTA, m.tr.T("campaign.ctamode"))+
			"  "+m.selectorValue(fieldCampaignCTA, m.sess.Campaign.CTAMode))
	lines = append(lines,
		m.fieldLabel(fieldCampaignVoice, m.tr.T("campaign.voice"))+
			"  "+m.selectorValue(fieldCampaignVoice, m.sess.Campaign.Voice))
	lines = append(lines,
		m.fieldLabel(fieldCampaignAvailability, m.tr.T("campaign.availability"))+
			"  "+m.selectorValue(fieldCampaignAvailability, m.sess.Campaign.Availability))

	lines = append(lines, "")
	lines = append(lines, m.theme.BoldText(m.tr.T("campaign.calendar")))
	if len(m.sess.Schedule) == 0 {
		lines = append(lines, m.theme.FaintText("—"))
		return lines
	}
	var days []string
	for _, slot := range m.sess.Schedule {
		label := m.tr.Day(slot.DayCode)
		if slot.CTAEnabled {
			label += " " + m.theme.AccentText("CTA")
		}
		days = append(days, fmt.Sprintf("%s %s", label, m.theme.FaintText(slot.TemplateID)))
	}
	lines = append(lines, strings.Join(days, m.theme.DividerText(" │ ")))
	return lines
}

func (m model) selectorValue(field int, value string) string {
	if m.focus == field {
		return m.theme.AccentText("‹ " + value + " ›")
	}
	return value
}
