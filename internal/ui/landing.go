package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var landingMark = strings.Join([]string{
	`   /\`,
	`  /  \     CampQuest`,
	` / /\ \    find your next campsite`,
	`/_/  \_\`,
}, "\n")

// LandingModel represents the start screen.
type LandingModel struct{}

// NewLandingModel creates the landing model.
func NewLandingModel() *LandingModel {
	return &LandingModel{}
}

// View renders the landing screen.
func (m *LandingModel) View(width, height int, authenticated bool, username string) string {
	mark := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render(landingMark)

	var lines []string
	lines = append(lines, mark, "")
	if authenticated && username != "" {
		lines = append(lines, NormalRowStyle.Render("Welcome back, "+username+"."))
	} else {
		lines = append(lines, NormalRowStyle.Render("Browse campgrounds, share your own, leave reviews."))
	}
	lines = append(lines, "")
	lines = append(lines, helpKey("enter", "explore campgrounds"))
	if !authenticated {
		lines = append(lines, helpKey("i", "log in"))
		lines = append(lines, helpKey("R", "create an account"))
	} else {
		lines = append(lines, helpKey("O", "log out"))
	}
	lines = append(lines, helpKey("q", "quit"))

	content := strings.Join(lines, "\n")
	box := PanelStyle.Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
