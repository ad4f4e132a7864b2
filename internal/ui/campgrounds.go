package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
	"github.com/aryamadhavi03/githubs-pages/internal/util"
)

// CampgroundsModel is the public list screen. It shows only approved
// campgrounds, in the order the server returned them. Approval filtering
// here is a display policy, not a security boundary.
type CampgroundsModel struct {
	all    []model.Campground
	rows   []model.Campground
	cursor int
	offset int
}

// NewCampgroundsModel creates the list model from a fetched set.
func NewCampgroundsModel(campgrounds []model.Campground) *CampgroundsModel {
	m := &CampgroundsModel{
		all: append([]model.Campground(nil), campgrounds...),
	}
	for _, c := range m.all {
		if c.Approved {
			m.rows = append(m.rows, c)
		}
	}
	return m
}

// Visible returns the approved campgrounds in render order.
func (m *CampgroundsModel) Visible() []model.Campground {
	return m.rows
}

// SelectedID returns the id of the campground under the cursor, or "".
func (m *CampgroundsModel) SelectedID() string {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return ""
	}
	return m.rows[m.cursor].Key()
}

// MoveDown moves the cursor down one row.
func (m *CampgroundsModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// MoveUp moves the cursor up one row.
func (m *CampgroundsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// JumpToTop moves the cursor to the first row.
func (m *CampgroundsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom moves the cursor to the last row.
func (m *CampgroundsModel) JumpToBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
	}
}

// HalfPageDown moves the cursor down by n rows.
func (m *CampgroundsModel) HalfPageDown(n int) {
	m.cursor += n
	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// HalfPageUp moves the cursor up by n rows.
func (m *CampgroundsModel) HalfPageUp(n int) {
	m.cursor -= n
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the list.
func (m *CampgroundsModel) View(width, height int) string {
	if len(m.rows) == 0 {
		return EmptyStateStyle.Render("No approved campgrounds yet. Press 'a' to add one!")
	}

	titleWidth := 28
	locationWidth := 24
	priceWidth := 14
	reviewsWidth := 10
	imagesWidth := 8

	widths := []int{titleWidth, locationWidth, priceWidth, reviewsWidth, imagesWidth}
	header := renderTableRow(
		[]string{"title", "location", "price", "reviews", "photos"},
		widths,
		TableHeaderStyle,
	)

	visibleRows := height - 2
	if visibleRows < 1 {
		visibleRows = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}

	var lines []string
	lines = append(lines, header)
	end := m.offset + visibleRows
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		c := m.rows[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		cells := []string{
			util.TruncateString(c.Title, titleWidth-2),
			util.TruncateString(c.Location, locationWidth-2),
			util.FormatPrice(c.Price),
			fmt.Sprintf("%d", len(c.Reviews)),
			fmt.Sprintf("%d", len(c.Images)),
		}
		lines = append(lines, renderTableRow(cells, widths, style))
	}

	table := strings.Join(lines, "\n")
	status := StatusBarStyle.Render(fmt.Sprintf("%d of %d campgrounds approved", len(m.rows), len(m.all)))
	return lipgloss.JoinVertical(lipgloss.Left, table, status)
}

// renderTableRow renders one row of fixed-width cells.
func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
