package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
	"github.com/aryamadhavi03/githubs-pages/internal/util"
)

// AdminModel represents the moderation dashboard. It works on the
// unfiltered campground set, pending listings included.
type AdminModel struct {
	campgrounds []model.Campground
	cursor      int
	offset      int
	mapFocused  bool
	mapView     *MapView
}

// NewAdminModel creates the dashboard from an unfiltered fetch.
func NewAdminModel(campgrounds []model.Campground) *AdminModel {
	return &AdminModel{
		campgrounds: append([]model.Campground(nil), campgrounds...),
		mapView:     NewMapView(PointsFromCampgrounds(campgrounds), 72, 10, mapMinZoom+2),
	}
}

// SetSize propagates the layout to the embedded map.
func (m *AdminModel) SetSize(width, height int) {
	mapHeight := height / 2
	if mapHeight < 6 {
		mapHeight = 6
	}
	m.mapView.SetSize(width-8, mapHeight)
}

// ToggleFocus switches between the map and the listing table.
func (m *AdminModel) ToggleFocus() {
	m.mapFocused = !m.mapFocused
}

// MapFocused reports whether keys currently drive the map.
func (m *AdminModel) MapFocused() bool { return m.mapFocused }

// Map exposes the embedded map view.
func (m *AdminModel) Map() *MapView { return m.mapView }

// MoveDown moves the active cursor down.
func (m *AdminModel) MoveDown() {
	if m.mapFocused {
		m.mapView.CursorNext()
		return
	}
	if m.cursor < len(m.campgrounds)-1 {
		m.cursor++
	}
}

// MoveUp moves the active cursor up.
func (m *AdminModel) MoveUp() {
	if m.mapFocused {
		m.mapView.CursorPrev()
		return
	}
	if m.cursor > 0 {
		m.cursor--
	}
}

// Selected returns the campground under the list cursor, or nil.
func (m *AdminModel) Selected() *model.Campground {
	if len(m.campgrounds) == 0 || m.cursor >= len(m.campgrounds) {
		return nil
	}
	return &m.campgrounds[m.cursor]
}

// SelectedID returns the id the approve/revoke action should target,
// from whichever pane has focus.
func (m *AdminModel) SelectedID() string {
	if m.mapFocused {
		points := m.mapView.Selected()
		if len(points) == 1 {
			return points[0].ID
		}
		return ""
	}
	if c := m.Selected(); c != nil {
		return c.Key()
	}
	return ""
}

// SelectedApproved reports the current approval of the action target.
func (m *AdminModel) SelectedApproved() (bool, bool) {
	id := m.SelectedID()
	if id == "" {
		return false, false
	}
	for _, c := range m.campgrounds {
		if c.Key() == id {
			return c.Approved, true
		}
	}
	return false, false
}

// ApplyApproval flips the local flag after the server confirms, in both
// the table and the map coloring.
func (m *AdminModel) ApplyApproval(id string, approved bool) {
	for i := range m.campgrounds {
		if m.campgrounds[i].Key() == id {
			m.campgrounds[i].Approved = approved
		}
	}
	m.mapView.SetApproval(id, approved)
}

// View renders the dashboard.
func (m *AdminModel) View(width, height int) string {
	if len(m.campgrounds) == 0 {
		return EmptyStateStyle.Render("No campground submissions yet.")
	}

	mapPane := m.renderMapPane(width)
	listPane := m.renderListPane(width, height-lipgloss.Height(mapPane)-2)

	return lipgloss.JoinVertical(lipgloss.Left, mapPane, listPane)
}

func (m *AdminModel) renderMapPane(width int) string {
	style := BorderStyle
	if m.mapFocused {
		style = ActiveBorderStyle
	}
	header := LabelStyle.Render("Submission map")
	if popup := m.mapView.PopupLine(); popup != "" && m.mapFocused {
		header += "  " + HelpDescStyle.Render(popup)
	}
	return style.Width(width - 6).Render(header + "\n" + m.mapView.View())
}

func (m *AdminModel) renderListPane(width, height int) string {
	titleWidth := 26
	locationWidth := 22
	priceWidth := 12
	statusWidth := 12
	authorWidth := 16
	widths := []int{titleWidth, locationWidth, priceWidth, statusWidth, authorWidth}

	header := renderTableRow(
		[]string{"title", "location", "price", "status", "author"},
		widths,
		TableHeaderStyle,
	)

	visibleRows := height - 2
	if visibleRows < 3 {
		visibleRows = 3
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}

	lines := []string{header}
	end := m.offset + visibleRows
	if end > len(m.campgrounds) {
		end = len(m.campgrounds)
	}
	for i := m.offset; i < end; i++ {
		c := m.campgrounds[i]
		style := NormalRowStyle
		if !m.mapFocused && i == m.cursor {
			style = SelectedRowStyle
		}
		badge := ApprovedBadgeStyle.Render(util.FormatApproval(true))
		if !c.Approved {
			badge = PendingBadgeStyle.Render(util.FormatApproval(false))
		}
		author := ""
		if c.Author != nil {
			author = c.Author.Username
		}
		cells := []string{
			util.TruncateString(c.Title, titleWidth-2),
			util.TruncateString(c.Location, locationWidth-2),
			util.FormatPrice(c.Price),
			badge,
			util.TruncateString(author, authorWidth-2),
		}
		lines = append(lines, renderTableRow(cells, widths, style))
	}

	pending := 0
	for _, c := range m.campgrounds {
		if !c.Approved {
			pending++
		}
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%d submissions, %d pending review", len(m.campgrounds), pending))
	return strings.Join(lines, "\n") + "\n" + status
}
