// Package tui implements the four-step campaign wizard as a Bubble Tea
// program. The update loop is the only writer of the wizard session, so
// every state change is atomic with respect to rendering.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/copyforge/copyforge/internal/api"
	"github.com/copyforge/copyforge/internal/config"
	"github.com/copyforge/copyforge/internal/i18n"
	"github.com/copyforge/copyforge/internal/wizard"
)

// Brand step fields.
const (
	fieldBrandName = iota
	fieldBrandDescription
	fieldBrandTagline
	fieldBrandHistory
	fieldBrandRequired
	fieldBrandBase
	brandFieldCount
)

// Campaign step fields.
const (
	fieldCampaignGoal = iota
	fieldCampaignTheme
	fieldCampaignCategory
	fieldCampaignPosts
	fieldCampaignCTA
	fieldCampaignVoice
	fieldCampaignAvailability
	campaignFieldCount
)

type model struct {
	client *api.Client
	tr     *i18n.Table
	theme  Theme
	sess   *wizard.Session

	width  int
	height int

	// Form interaction follows the input/action mode split: 'i' enters a
	// field, esc leaves it, j/k move focus while in action mode.
	focus       int
	inputActive bool

	brandInputs    []textinput.Model
	campaignInputs []textinput.Model
	pathInput      textinput.Model

	tagCursor  int
	assetIndex int

	resultsVP viewport.Model
	postIndex int

	// Sequence counters tie async replies and timers to the action that
	// started them; anything stale is dropped.
	genSeq    int
	copySeq   int
	statusSeq int

	copiedPost int
	copiedKind string
	status     string

	uploading bool
	exportDir string
}

// Run starts the wizard against the companion service named by cfg.
func Run(cfg *config.Config) error {
	m := newModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newModel(cfg *config.Config) model {
	m := model{
		client:     api.NewClient(cfg.APIBase),
		tr:         i18n.New(cfg.Lang),
		theme:      DefaultTheme(),
		sess:       wizard.NewSession(),
		copiedPost: -1,
		exportDir:  ".",
	}
	m.resetInputs()
	return m
}

func (m *model) resetInputs() {
	m.brandInputs = make([]textinput.Model, brandFieldCount)
	for i := range m.brandInputs {
		m.brandInputs[i] = newInput()
	}
	m.brandInputs[fieldBrandName].Placeholder = "Artisan Studio"
	m.brandInputs[fieldBrandRequired].Placeholder = "#handmade, #artisan"
	m.brandInputs[fieldBrandBase].Placeholder = "#madeinitaly"

	m.campaignInputs = make([]textinput.Model, 3)
	for i := range m.campaignInputs {
		m.campaignInputs[i] = newInput()
	}

	m.pathInput = newInput()
	m.pathInput.Placeholder = m.tr.T("media.prompt")

	m.focus = 0
	m.inputActive = false
	m.tagCursor = 0
	m.assetIndex = 0
	m.postIndex = 0
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0
	return ti
}

func (m model) Init() tea.Cmd {
	// The calendar preview tracks the default post count from the start.
	return fetchSchedule(m.client, m.sess.Campaign.NPosts)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultsVP.Width = msg.Width
		m.resultsVP.Height = msg.Height - 8
		if m.resultsVP.Height < 1 {
			m.resultsVP.Height = 1
		}
		if m.sess.Step == wizard.StepOutput {
			m.refreshResults()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case scheduleMsg:
		// Last write wins: only the reply matching the current post count
		// is applied, success or failure.
		if msg.n != m.sess.Campaign.NPosts {
			return m, nil
		}
		if msg.err != nil {
			m.sess.Schedule = nil
			return m, nil
		}
		m.sess.Schedule = msg.slots
		return m, nil

	case uploadMsg:
		m.uploading = false
		if msg.err != nil {
			m.sess.LastError = "upload failed: " + msg.err.Error()
			return m, nil
		}
		m.sess.LastError = ""
		m.sess.AddAssets(msg.assets)
		return m, nil

	case genTickMsg:
		if msg.seq != m.genSeq || !m.sess.IsGenerating {
			return m, nil
		}
		if m.sess.Progress < 85 {
			m.sess.Progress += 2
			if m.sess.Progress > 85 {
				m.sess.Progress = 85
			}
		}
		return m, nextGenTick(msg.seq)

	case genDoneMsg:
		if msg.seq != m.genSeq {
			return m, nil
		}
		m.sess.IsGenerating = false
		if msg.err != nil {
			m.sess.LastError = msg.err.Error()
			return m, nil
		}
		m.sess.Progress = 100
		m.sess.Results = msg.res
		return m, advanceAfterGrace(msg.seq)

	case advanceMsg:
		if msg.seq != m.genSeq || m.sess.Results == nil {
			return m, nil
		}
		m.sess.Step = wizard.StepOutput
		m.postIndex = 0
		m.refreshResults()
		return m, nil

	case copyClearMsg:
		if msg.seq == m.copySeq {
			m.copiedPost = -1
			m.copiedKind = ""
			m.refreshResults()
		}
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.inputActive {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "L":
			m.tr.Toggle()
			if m.sess.Step == wizard.StepOutput {
				m.refreshResults()
			}
			return m, nil
		case "enter":
			return m.goForward()
		case "b":
			if wizard.CanGoBack(m.sess) {
				m.sess.Step--
				m.focus = 0
			}
			return m, nil
		case "esc":
			m.sess.LastError = ""
			m.status = ""
			return m, nil
		case "1", "2", "3", "4":
			target := wizard.Step(int(msg.String()[0] - '1'))
			if wizard.CanJumpTo(m.sess, target) {
				m.sess.Step = target
				m.focus = 0
			}
			return m, nil
		}
	} else if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.sess.Step {
	case wizard.StepBrand:
		return m.handleBrandKeys(msg)
	case wizard.StepCampaign:
		return m.handleCampaignKeys(msg)
	case wizard.StepMedia:
		return m.handleMediaKeys(msg)
	case wizard.StepOutput:
		return m.handleOutputKeys(msg)
	}
	return m, nil
}

// goForward advances a step when the gate allows it. Leaving the media
// step starts the generation pipeline instead of moving directly.
func (m model) goForward() (tea.Model, tea.Cmd) {
	if !wizard.CanAdvance(m.sess) {
		return m, nil
	}
	if m.sess.Step == wizard.StepMedia {
		return m.startGeneration()
	}
	m.sess.Step++
	m.focus = 0
	return m, nil
}

func (m model) startGeneration() (tea.Model, tea.Cmd) {
	m.genSeq++
	m.sess.IsGenerating = true
	m.sess.Progress = 0
	m.sess.LastError = ""
	req := m.sess.GenerateRequest()
	return m, tea.Batch(runGenerate(m.client, req, m.genSeq), nextGenTick(m.genSeq))
}

func (m *model) refreshResults() {
	m.resultsVP.SetContent(strings.Join(m.outputBodyLines(), "\n"))
}

func (m *model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return clearStatusAfter(m.statusSeq)
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteByte('\n')
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	var body []string
	switch m.sess.Step {
	case wizard.StepBrand:
		body = m.brandBodyLines()
	case wizard.StepCampaign:
		body = m.campaignBodyLines()
	case wizard.StepMedia:
		body = m.mediaBodyLines()
	case wizard.StepOutput:
		body = m.outputFrameLines()
	}

	bodyHeight := m.height - 5 // header, two rules, banner row, bottom bar
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	for i := 0; i < bodyHeight; i++ {
		if i < len(body) {
			b.WriteString(padToWidth(body[i], m.width))
		}
		b.WriteByte('\n')
	}

	b.WriteString(padToWidth(m.bannerLine(), m.width))
	b.WriteByte('\n')
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.width)))
	b.WriteByte('\n')
	b.WriteString(padToWidth(m.bottomBar(), m.width))
	return b.String()
}

func (m model) headerLine() string {
	titles := []string{
		m.tr.T("step.brand"), m.tr.T("step.campaign"),
		m.tr.T("step.media"), m.tr.T("step.output"),
	}
	parts := make([]string, 0, len(titles)+1)
	parts = append(parts, m.theme.BoldText("Copyforge")+" "+m.theme.FaintText(m.tr.T("app.subtitle")))
	for i, title := range titles {
		label := "[" + string(rune('1'+i)) + "] " + title
		switch {
		case wizard.Step(i) == m.sess.Step:
			parts = append(parts, m.theme.AccentText(label))
		case wizard.Step(i) < m.sess.Step:
			parts = append(parts, m.theme.GoodText("✓ "+title))
		default:
			parts = append(parts, m.theme.FaintText(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m model) bannerLine() string {
	if m.sess.LastError != "" {
		return m.theme.ErrorText("Error: ") + m.sess.LastError
	}
	if m.status != "" {
		return m.theme.GoodText(m.status)
	}
	return ""
}

func (m model) bottomBar() string {
	mode := "action"
	hints := "i: edit  j/k: field  enter: " + m.tr.T("nav.continue") + "  b: " + m.tr.T("nav.back") + "  L: lang  q: quit"
	if m.inputActive {
		mode = "input"
		hints = "esc: done  enter: apply"
	}
	if m.sess.Step == wizard.StepMedia && wizard.CanAdvance(m.sess) && !m.inputActive {
		hints = "enter: " + m.tr.T("nav.generate") + "  " + hints
	}
	if m.sess.Step == wizard.StepOutput {
		hints = "j/k: post  c: caption  H: hashtags  e: " + m.tr.T("output.export") + "  r: " + m.tr.T("output.newrun") + "  L: lang  q: quit"
		mode = ""
	}
	left := m.theme.FaintText(hints)
	right := ""
	if mode != "" {
		right = m.theme.FaintText("[" + mode + "]  " + strings.ToUpper(string(m.tr.Locale())))
	} else {
		right = m.theme.FaintText(strings.ToUpper(string(m.tr.Locale())))
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
