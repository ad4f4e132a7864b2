package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderFormHelp(width)
	}

	switch screen {
	case model.ScreenLanding:
		return renderLandingHelp(width)
	case model.ScreenCampgrounds:
		return renderCampgroundsHelp(width)
	case model.ScreenDetail:
		return renderDetailHelp(width)
	case model.ScreenAdmin:
		return renderAdminHelp(width)
	case model.ScreenLogin, model.ScreenRegister:
		return renderFormHelp(width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderLandingHelp(width int) string {
	keys := []string{
		helpKey("enter", "explore"),
		helpKey("i", "log in"),
		helpKey("R", "register"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderCampgroundsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "details"),
		helpKey("a", "add campground"),
		helpKey("A", "admin"),
		helpKey("i/O", "log in/out"),
		helpKey("ctrl+l", "refresh"),
	}
	return renderHelpLine(keys, width)
}

func renderDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "back"),
		helpKey("[/]", "photos"),
		helpKey("j/k", "reviews"),
		helpKey("s/S/o", "sort reviews"),
		helpKey("r", "review"),
		helpKey("e", "edit"),
		helpKey("d", "delete"),
	}
	return renderHelpLine(keys, width)
}

func renderAdminHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("tab", "map/list"),
		helpKey("p", "approve/revoke"),
		helpKey("enter", "expand/open"),
		helpKey("-", "zoom out"),
		helpKey("h/esc", "back"),
	}
	return renderHelpLine(keys, width)
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next field"),
		helpKey("shift+tab", "prev field"),
		helpKey("ctrl+s", "save"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("h/l", "back/select"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation (Nav Mode)"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"h / ← / b", "Go back / parent"},
			{"l / → / enter", "Open / select"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"ctrl+l", "Refresh current screen"},
			{"esc", "Cancel / close"},
			{"q", "Quit (from top-level)"},
			{"?", "Toggle help"},
		}),
		titleSection("Campgrounds Screen"),
		helpSection([]helpItem{
			{"a", "Add campground (login required)"},
			{"A", "Open admin dashboard"},
			{"i / R", "Log in / register"},
			{"O", "Log out"},
			{"enter / l", "Open campground detail"},
		}),
		titleSection("Campground Detail"),
		helpSection([]helpItem{
			{"[ / ]", "Previous / next photo"},
			{"j / k", "Move through reviews"},
			{"s / S / o", "Sort reviews asc / desc / original"},
			{"r", "Write a review (not for your own listing)"},
			{"d", "Delete selected review / campground"},
			{"e", "Edit campground (owner only)"},
			{"p", "Approve or revoke (admin only)"},
		}),
		titleSection("Admin Dashboard"),
		helpSection([]helpItem{
			{"tab", "Switch between map and list"},
			{"p", "Approve / revoke selected"},
			{"enter", "Expand cluster / open campground"},
			{"-", "Zoom map out"},
		}),
		titleSection("Forms (Insert/Edit Mode)"),
		helpSection([]helpItem{
			{"tab", "Next field"},
			{"shift+tab", "Previous field"},
			{"ctrl+s", "Save"},
			{"esc", "Cancel"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
