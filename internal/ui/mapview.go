package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

// Fixed clustering constants, matching the web map's configuration.
const (
	clusterRadius  = 2  // grid cells merged into one cluster
	clusterMaxZoom = 14 // past this, points render individually
	mapMinZoom     = 2
	detailMapZoom  = 10
)

// Default center when no geometry is in view (center of India, like the
// admin map's initial view).
const (
	defaultCenterLng = 78.9629
	defaultCenterLat = 20.5937
)

// MapPoint is one campground pin.
type MapPoint struct {
	ID       string
	Title    string
	Location string
	Lng      float64
	Lat      float64
	Approved bool
}

// PointsFromCampgrounds extracts pins from campgrounds that carry
// geometry.
func PointsFromCampgrounds(campgrounds []model.Campground) []MapPoint {
	var points []MapPoint
	for i := range campgrounds {
		c := &campgrounds[i]
		if !c.Geometry.Valid() {
			continue
		}
		points = append(points, MapPoint{
			ID:       c.Key(),
			Title:    c.Title,
			Location: c.Location,
			Lng:      c.Geometry.Lng(),
			Lat:      c.Geometry.Lat(),
			Approved: c.Approved,
		})
	}
	return points
}

type mapCluster struct {
	col, row int
	lng, lat float64
	points   []MapPoint
}

// MapView renders campground pins on a character grid, grouping nearby
// points into clusters below clusterMaxZoom. Selecting a cluster zooms
// toward its expansion; selecting a single point yields its popup.
type MapView struct {
	points    []MapPoint
	width     int
	height    int
	zoom      int
	centerLng float64
	centerLat float64
	cursor    int
	clusters  []mapCluster
}

// NewMapView creates a map over the given points, centered on them.
func NewMapView(points []MapPoint, width, height, zoom int) *MapView {
	m := &MapView{
		points:    points,
		width:     maxOf(width, 16),
		height:    maxOf(height, 6),
		zoom:      zoom,
		centerLng: defaultCenterLng,
		centerLat: defaultCenterLat,
	}
	if len(points) > 0 {
		var sumLng, sumLat float64
		for _, p := range points {
			sumLng += p.Lng
			sumLat += p.Lat
		}
		m.centerLng = sumLng / float64(len(points))
		m.centerLat = sumLat / float64(len(points))
	}
	m.recluster()
	return m
}

// SetSize resizes the grid and reclusters.
func (m *MapView) SetSize(width, height int) {
	m.width = maxOf(width, 16)
	m.height = maxOf(height, 6)
	m.recluster()
}

// spans returns the degrees of longitude/latitude covered at the current
// zoom (equirectangular; fine at listing scale).
func (m *MapView) spans() (lngSpan, latSpan float64) {
	scale := math.Pow(2, float64(m.zoom))
	return 360 / scale, 180 / scale
}

func (m *MapView) cellFor(p MapPoint) (col, row int, ok bool) {
	lngSpan, latSpan := m.spans()
	left := m.centerLng - lngSpan/2
	top := m.centerLat + latSpan/2

	col = int((p.Lng - left) / lngSpan * float64(m.width))
	row = int((top - p.Lat) / latSpan * float64(m.height))
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return 0, 0, false
	}
	return col, row, true
}

func (m *MapView) recluster() {
	buckets := make(map[[2]int]*mapCluster)
	for _, p := range m.points {
		col, row, ok := m.cellFor(p)
		if !ok {
			continue
		}
		key := [2]int{col, row}
		if m.zoom <= clusterMaxZoom {
			key = [2]int{col / clusterRadius, row / clusterRadius}
		}
		c, exists := buckets[key]
		if !exists {
			c = &mapCluster{col: col, row: row}
			buckets[key] = c
		}
		c.points = append(c.points, p)
		c.lng += p.Lng
		c.lat += p.Lat
	}

	clusters := make([]mapCluster, 0, len(buckets))
	for _, c := range buckets {
		n := float64(len(c.points))
		c.lng /= n
		c.lat /= n
		clusters = append(clusters, *c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].row != clusters[j].row {
			return clusters[i].row < clusters[j].row
		}
		return clusters[i].col < clusters[j].col
	})

	m.clusters = clusters
	if m.cursor >= len(m.clusters) {
		m.cursor = 0
	}
}

// CursorNext moves the selection to the next cluster.
func (m *MapView) CursorNext() {
	if len(m.clusters) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.clusters)
}

// CursorPrev moves the selection to the previous cluster.
func (m *MapView) CursorPrev() {
	if len(m.clusters) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.clusters) - 1
	}
}

// Selected returns the points under the cursor; nil when the map is
// empty.
func (m *MapView) Selected() []MapPoint {
	if m.cursor >= len(m.clusters) {
		return nil
	}
	return m.clusters[m.cursor].points
}

// ExpandSelected acts on the cursor: a multi-point cluster zooms one
// level toward its expansion and recenters (returning ok=false); a single
// point returns its id for the caller to open.
func (m *MapView) ExpandSelected() (pointID string, ok bool) {
	if m.cursor >= len(m.clusters) {
		return "", false
	}
	c := m.clusters[m.cursor]
	if len(c.points) == 1 {
		return c.points[0].ID, true
	}
	if m.zoom <= clusterMaxZoom {
		m.zoom++
	}
	m.centerLng = c.lng
	m.centerLat = c.lat
	m.cursor = 0
	m.recluster()
	return "", false
}

// SetApproval recolors a pin after a moderation change.
func (m *MapView) SetApproval(pointID string, approved bool) {
	for i := range m.points {
		if m.points[i].ID == pointID {
			m.points[i].Approved = approved
		}
	}
	m.recluster()
}

// ZoomOut backs the view out one level.
func (m *MapView) ZoomOut() {
	if m.zoom <= mapMinZoom {
		return
	}
	m.zoom--
	m.recluster()
}

// PopupLine describes the selection the way the web map's popup does.
func (m *MapView) PopupLine() string {
	points := m.Selected()
	switch {
	case len(points) == 0:
		return ""
	case len(points) == 1:
		p := points[0]
		if p.Location == "" {
			return p.Title
		}
		return p.Title + ", " + p.Location
	default:
		return fmt.Sprintf("%d campgrounds (enter to expand)", len(points))
	}
}

// View renders the grid.
func (m *MapView) View() string {
	type cell struct {
		ch       string
		style    lipgloss.Style
		occupied bool
	}
	grid := make([][]cell, m.height)
	for r := range grid {
		grid[r] = make([]cell, m.width)
	}

	for i, c := range m.clusters {
		if c.row >= m.height || c.col >= m.width {
			continue
		}
		var ch string
		var style lipgloss.Style
		if len(c.points) > 1 {
			if len(c.points) > 9 {
				ch = "+"
			} else {
				ch = fmt.Sprintf("%d", len(c.points))
			}
			style = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
		} else {
			ch = "▲"
			if c.points[0].Approved {
				style = ApprovedBadgeStyle
			} else {
				style = PendingBadgeStyle
			}
		}
		if i == m.cursor {
			style = style.Background(ColorSurface).Underline(true)
		}
		grid[c.row][c.col] = cell{ch: ch, style: style, occupied: true}
	}

	dotStyle := lipgloss.NewStyle().Foreground(ColorSurface)
	var rows []string
	for r := 0; r < m.height; r++ {
		var b strings.Builder
		for col := 0; col < m.width; col++ {
			if grid[r][col].occupied {
				b.WriteString(grid[r][col].style.Render(grid[r][col].ch))
			} else {
				b.WriteString(dotStyle.Render("·"))
			}
		}
		rows = append(rows, b.String())
	}

	legend := HelpDescStyle.Render(fmt.Sprintf("zoom %d  ", m.zoom)) +
		ApprovedBadgeStyle.Render("▲ approved") + "  " +
		PendingBadgeStyle.Render("▲ pending") + "  " +
		lipgloss.NewStyle().Foreground(ColorBlue).Render("N cluster")
	rows = append(rows, legend)

	return strings.Join(rows, "\n")
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
