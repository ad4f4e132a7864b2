package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings are the persisted first-run choices.
type Settings struct {
	Completed       bool   `json:"completed"`
	APIBaseURL      string `json:"api_base_url"`
	PreviewsEnabled bool   `json:"previews_enabled"`
}

func settingsPath(configDir string) string {
	return filepath.Join(configDir, "settings.json")
}

func loadSettings(configDir string) (Settings, error) {
	path := settingsPath(configDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func saveSettings(configDir string, settings Settings) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(settingsPath(configDir), data, 0644)
}

func shouldRunOnboarding(settings Settings) bool {
	if settings.Completed {
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

type onboardingStep int

const (
	stepURL onboardingStep = iota
	stepPreviews
	stepDone
)

type onboardingModel struct {
	step        onboardingStep
	existingURL string
	urlInput    textinput.Model
	previews    bool
	settings    Settings
	status      string
	width       int
	height      int
}

var (
	obColorMuted  = lipgloss.Color("#7E8C80")
	obColorText   = lipgloss.Color("#D6E0D3")
	obColorAccent = lipgloss.Color("#8FA082")
	obColorDanger = lipgloss.Color("#f38ba8")

	obTitleStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obHeaderStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabsStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabInactive = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 2)

	obTabActive = lipgloss.NewStyle().
			Foreground(obColorText).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	obPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorMuted).
			Padding(1, 2)

	obInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorAccent).
			Padding(0, 1)

	obLabelStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obMutedStyle = lipgloss.NewStyle().
			Foreground(obColorMuted)

	obOptionStyle = lipgloss.NewStyle().
			Foreground(obColorText)

	obOptionSelected = lipgloss.NewStyle().
				Foreground(obColorAccent).
				Bold(true)

	obWarnStyle = lipgloss.NewStyle().
			Foreground(obColorDanger)

	obFooterStyle = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(obColorMuted)
)

func newOnboardingModel(existingURL string) onboardingModel {
	in := textinput.New()
	in.Placeholder = "https://campquest-api.example.com/api"
	in.CharLimit = 300
	in.Prompt = "url> "
	in.TextStyle = lipgloss.NewStyle().Foreground(obColorText)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(obColorMuted)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(obColorText).Background(obColorAccent)
	in.Focus()

	return onboardingModel{
		step:        stepURL,
		existingURL: strings.TrimSpace(existingURL),
		urlInput:    in,
		previews:    true,
		settings: Settings{
			Completed:       true,
			PreviewsEnabled: true,
		},
	}
}

func (m onboardingModel) Init() tea.Cmd { return nil }

func (m onboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.step {
		case stepURL:
			switch msg.String() {
			case "enter":
				url := strings.TrimSpace(m.urlInput.Value())
				if url == "" {
					url = m.existingURL
				}
				m.settings.APIBaseURL = strings.TrimRight(url, "/")
				m.step = stepPreviews
				return m, nil
			case "esc":
				m.settings.APIBaseURL = m.existingURL
				m.step = stepPreviews
				return m, nil
			case "ctrl+c", "q":
				m.status = "Setup canceled."
				m.step = stepDone
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.urlInput, cmd = m.urlInput.Update(msg)
			return m, cmd
		case stepPreviews:
			switch msg.String() {
			case "y", "Y":
				m.previews = true
				return m.finish()
			case "n", "N":
				m.previews = false
				return m.finish()
			case "up", "k", "left", "h":
				m.previews = true
				return m, nil
			case "down", "j", "right", "l":
				m.previews = false
				return m, nil
			case "enter":
				return m.finish()
			case "ctrl+c", "q":
				m.settings.PreviewsEnabled = false
				m.status = "Setup canceled. Image previews disabled."
				m.step = stepDone
				return m, tea.Quit
			default:
				return m, nil
			}
		}
	}
	return m, nil
}

func (m onboardingModel) finish() (tea.Model, tea.Cmd) {
	m.settings.PreviewsEnabled = m.previews
	if m.previews {
		m.status = "Image previews enabled."
	} else {
		m.status = "Image previews disabled."
	}
	m.step = stepDone
	return m, tea.Quit
}

func (m onboardingModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	header := m.renderHeader(width)
	tabs := m.renderTabs(width)
	footer := m.renderFooter(width)

	contentHeight := height - 6
	if contentHeight < 8 {
		contentHeight = 8
	}
	content := m.renderContent(width, contentHeight)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, footer)

	return lipgloss.NewStyle().
		Foreground(obColorText).
		Width(width).
		Height(height).
		Render(ui)
}

func (m onboardingModel) renderHeader(width int) string {
	left := "  " + obTitleStyle.Render("campquest") + " " + obMutedStyle.Render("› Setup")
	right := obMutedStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return obHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m onboardingModel) renderTabs(width int) string {
	urlTab := obTabInactive.Render("API Server")
	previewTab := obTabInactive.Render("Image Previews")
	if m.step == stepURL {
		urlTab = obTabActive.Render("API Server")
	}
	if m.step == stepPreviews {
		previewTab = obTabActive.Render("Image Previews")
	}
	return obTabsStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, "  ", urlTab, previewTab))
}

func (m onboardingModel) renderFooter(width int) string {
	switch m.step {
	case stepURL:
		return obFooterStyle.Width(width).Render("enter save  esc keep current  q cancel")
	case stepPreviews:
		return obFooterStyle.Width(width).Render("↑↓/jk to navigate  y/n enter to confirm  q cancel")
	default:
		return obFooterStyle.Width(width).Render("Setup complete")
	}
}

func (m onboardingModel) renderContent(width, height int) string {
	cardWidth := minInt(92, width-6)
	if cardWidth < 40 {
		cardWidth = width - 2
	}

	var body string
	switch m.step {
	case stepURL:
		input := obInputStyle.Width(maxInt(30, cardWidth-14)).Render(m.urlInput.View())
		current := "none"
		if m.existingURL != "" {
			current = m.existingURL
		}
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			obLabelStyle.Render("Where does your campground API live?"),
			"",
			obMutedStyle.Render("Current (from flags/env): "+current),
			"",
			obLabelStyle.Render("API Base URL"),
			input,
			"",
			obMutedStyle.Render("Press Enter to save, Esc to keep the current value."),
		)
	case stepPreviews:
		question := obLabelStyle.Render("Render campground photos as terminal art?")
		on := "Enable image previews"
		off := "Disable image previews"

		var onDisplay, offDisplay string
		if m.previews {
			onDisplay = "  " + obOptionSelected.Render("→ "+on)
			offDisplay = "    " + obOptionStyle.Render(off)
		} else {
			onDisplay = "    " + obOptionStyle.Render(on)
			offDisplay = "  " + obOptionSelected.Render("→ "+off)
		}

		body = lipgloss.JoinVertical(
			lipgloss.Left,
			question,
			"",
			onDisplay,
			offDisplay,
			"",
			obMutedStyle.Render("Use arrow keys or j/k to navigate, y/n or Enter to confirm"),
			obMutedStyle.Render("You can change this later in ~/.campquest/settings.json"),
		)
	default:
		msg := obMutedStyle.Render(m.status)
		if strings.Contains(strings.ToLower(m.status), "disabled") || strings.Contains(strings.ToLower(m.status), "canceled") {
			msg = obWarnStyle.Render(m.status)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, obLabelStyle.Render("Setup Complete"), "", msg)
	}

	card := obPanelStyle.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runOnboarding(configDir string, existingURL string) (Settings, error) {
	model := newOnboardingModel(existingURL)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return Settings{}, fmt.Errorf("onboarding tui failed: %w", err)
	}
	m, ok := finalModel.(onboardingModel)
	if !ok {
		return Settings{}, fmt.Errorf("unexpected onboarding model type")
	}
	if err := saveSettings(configDir, m.settings); err != nil {
		return Settings{}, err
	}
	return m.settings, nil
}
