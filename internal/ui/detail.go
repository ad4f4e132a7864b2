package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
	"github.com/aryamadhavi03/githubs-pages/internal/util"
)

// ReviewSort is the local ordering of the review list. Sorting never
// mutates the campground's review slice, so resetting restores the order
// the server sent.
type ReviewSort int

const (
	ReviewSortDefault ReviewSort = iota
	ReviewSortAscending
	ReviewSortDescending
)

// DetailConfirm tracks a pending destructive action on the detail screen.
type DetailConfirm int

const (
	ConfirmNone DetailConfirm = iota
	ConfirmDeleteCampground
	ConfirmDeleteReview
)

// DetailModel represents the campground detail screen.
type DetailModel struct {
	campground *model.Campground
	loading    bool
	loadErr    error

	viewer       *model.UserRef
	viewerLoaded bool

	imageIdx int
	imageArt map[string]string

	reviews      []model.Review
	reviewSort   ReviewSort
	reviewCursor int

	composing    bool
	rating       int
	content      textinput.Model
	composeFocus int // 0 = stars, 1 = content

	confirm DetailConfirm
}

// NewDetailModel creates a detail model in its loading state.
func NewDetailModel() *DetailModel {
	content := textinput.New()
	content.Placeholder = "What did you think of this campground?"
	content.CharLimit = 500
	content.Width = 60

	return &DetailModel{
		loading:  true,
		rating:   1,
		content:  content,
		imageArt: make(map[string]string),
	}
}

// SetCampground installs a freshly fetched campground and resets
// per-campground view state.
func (m *DetailModel) SetCampground(c model.Campground) {
	m.campground = &c
	m.loading = false
	m.loadErr = nil
	m.imageIdx = 0
	m.reviewCursor = 0
	m.reviewSort = ReviewSortDefault
	m.reviews = c.Reviews
	m.confirm = ConfirmNone
}

// SetLoadError marks the fetch as failed.
func (m *DetailModel) SetLoadError(err error) {
	m.loading = false
	m.loadErr = err
}

// SetViewer records the profile fetched alongside the campground. A nil
// viewer means the profile endpoint declined, which renders the screen
// read-only.
func (m *DetailModel) SetViewer(u *model.UserRef) {
	m.viewer = u
	m.viewerLoaded = true
}

// Loading reports whether the campground fetch is still in flight.
func (m *DetailModel) Loading() bool { return m.loading }

// Campground returns the loaded campground, or nil.
func (m *DetailModel) Campground() *model.Campground { return m.campground }

// Viewer returns the signed-in profile, or nil.
func (m *DetailModel) Viewer() *model.UserRef { return m.viewer }

// IsOwner reports whether the viewer authored this campground.
func (m *DetailModel) IsOwner() bool {
	if m.campground == nil || m.viewer == nil {
		return false
	}
	return model.SameUser(m.viewer, m.campground.Author)
}

// CanModerate reports whether the viewer can approve or revoke.
func (m *DetailModel) CanModerate() bool {
	return m.viewer != nil && m.viewer.IsAdmin
}

// CanReview reports whether the review action should be offered: a loaded
// profile that is not the campground's author.
func (m *DetailModel) CanReview() bool {
	return m.viewerLoaded && m.viewer != nil && m.campground != nil && !m.IsOwner()
}

// NextImage advances the carousel, wrapping past the last photo.
func (m *DetailModel) NextImage() {
	if m.campground == nil || len(m.campground.Images) == 0 {
		return
	}
	m.imageIdx = (m.imageIdx + 1) % len(m.campground.Images)
}

// PrevImage steps the carousel back, wrapping before the first photo.
func (m *DetailModel) PrevImage() {
	if m.campground == nil || len(m.campground.Images) == 0 {
		return
	}
	m.imageIdx = (m.imageIdx - 1 + len(m.campground.Images)) % len(m.campground.Images)
}

// ImageIndex returns the current carousel position.
func (m *DetailModel) ImageIndex() int { return m.imageIdx }

// CurrentImageURL returns the URL of the photo under the carousel, or "".
func (m *DetailModel) CurrentImageURL() string {
	if m.campground == nil || len(m.campground.Images) == 0 {
		return ""
	}
	return m.campground.Images[m.imageIdx].URL
}

// SetImageArt caches rendered art for a photo URL.
func (m *DetailModel) SetImageArt(url, art string) {
	m.imageArt[url] = art
}

// SortAscending orders the visible reviews by rating, lowest first.
func (m *DetailModel) SortAscending() {
	m.reviewSort = ReviewSortAscending
	m.resort()
}

// SortDescending orders the visible reviews by rating, highest first.
func (m *DetailModel) SortDescending() {
	m.reviewSort = ReviewSortDescending
	m.resort()
}

// SortReset restores the server order.
func (m *DetailModel) SortReset() {
	m.reviewSort = ReviewSortDefault
	m.resort()
}

func (m *DetailModel) resort() {
	if m.campground == nil {
		return
	}
	switch m.reviewSort {
	case ReviewSortDefault:
		m.reviews = m.campground.Reviews
	default:
		sorted := append([]model.Review(nil), m.campground.Reviews...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if m.reviewSort == ReviewSortAscending {
				return sorted[i].Rating < sorted[j].Rating
			}
			return sorted[i].Rating > sorted[j].Rating
		})
		m.reviews = sorted
	}
	if m.reviewCursor >= len(m.reviews) {
		m.reviewCursor = 0
	}
}

// Reviews returns the reviews in their current display order.
func (m *DetailModel) Reviews() []model.Review { return m.reviews }

// ReviewDown moves the review cursor down.
func (m *DetailModel) ReviewDown() {
	if m.reviewCursor < len(m.reviews)-1 {
		m.reviewCursor++
	}
}

// ReviewUp moves the review cursor up.
func (m *DetailModel) ReviewUp() {
	if m.reviewCursor > 0 {
		m.reviewCursor--
	}
}

// SelectedReview returns the review under the cursor, or nil.
func (m *DetailModel) SelectedReview() *model.Review {
	if len(m.reviews) == 0 || m.reviewCursor >= len(m.reviews) {
		return nil
	}
	return &m.reviews[m.reviewCursor]
}

// CanDeleteSelectedReview reports whether the viewer owns the selected
// review or moderates the site.
func (m *DetailModel) CanDeleteSelectedReview() bool {
	r := m.SelectedReview()
	if r == nil || m.viewer == nil {
		return false
	}
	return m.viewer.IsAdmin || model.SameUser(m.viewer, r.Author)
}

// AddReview appends a freshly accepted review without re-fetching.
func (m *DetailModel) AddReview(r model.Review) {
	if m.campground == nil {
		return
	}
	m.campground.Reviews = append(m.campground.Reviews, r)
	m.resort()
}

// RemoveReview drops a review from both the campground and the display
// slice after the server confirms the delete.
func (m *DetailModel) RemoveReview(reviewID string) {
	if m.campground == nil {
		return
	}
	kept := m.campground.Reviews[:0]
	for _, r := range m.campground.Reviews {
		if r.Key() != reviewID {
			kept = append(kept, r)
		}
	}
	m.campground.Reviews = kept
	m.resort()
}

// ApplyApproval flips the local approval flag after the server confirms.
func (m *DetailModel) ApplyApproval(approved bool) {
	if m.campground != nil {
		m.campground.Approved = approved
	}
}

// StartReview opens the inline review composer.
func (m *DetailModel) StartReview() {
	m.composing = true
	m.rating = 1
	m.composeFocus = 0
	m.content.SetValue("")
	m.content.Blur()
}

// CancelReview discards the composer.
func (m *DetailModel) CancelReview() {
	m.composing = false
	m.content.Blur()
}

// Composing reports whether the review composer is open.
func (m *DetailModel) Composing() bool { return m.composing }

// Rating returns the star rating currently picked in the composer.
func (m *DetailModel) Rating() int { return m.rating }

// Content returns the review text currently typed in the composer.
func (m *DetailModel) Content() string { return strings.TrimSpace(m.content.Value()) }

// SetRating clamps and sets the composer rating.
func (m *DetailModel) SetRating(n int) {
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	m.rating = n
}

// NextComposeField toggles focus between the star picker and the text box.
func (m *DetailModel) NextComposeField() {
	m.composeFocus = (m.composeFocus + 1) % 2
	if m.composeFocus == 1 {
		m.content.Focus()
	} else {
		m.content.Blur()
	}
}

// ComposeFocusedOnStars reports whether the star picker has focus.
func (m *DetailModel) ComposeFocusedOnStars() bool { return m.composeFocus == 0 }

// ContentInput exposes the composer's text input for message routing.
func (m *DetailModel) ContentInput() *textinput.Model { return &m.content }

// Confirm returns the pending destructive action, if any.
func (m *DetailModel) Confirm() DetailConfirm { return m.confirm }

// SetConfirm arms or disarms a destructive action.
func (m *DetailModel) SetConfirm(c DetailConfirm) { m.confirm = c }

// View renders the detail screen.
func (m *DetailModel) View(width, height int) string {
	if m.loading {
		return EmptyStateStyle.Render("Loading campground...")
	}
	if m.loadErr != nil {
		return ErrorStyle.Render(fmt.Sprintf("Could not load campground: %v", m.loadErr))
	}
	c := m.campground

	var sections []string

	var fields []string
	fields = append(fields, renderField("Title", c.Title))
	fields = append(fields, renderField("Location", c.Location))
	fields = append(fields, renderField("Price", util.FormatPrice(c.Price)))
	if c.Author != nil && c.Author.Username != "" {
		fields = append(fields, renderField("Submitted by", c.Author.Username))
	}
	badge := ApprovedBadgeStyle.Render(util.FormatApproval(true))
	if !c.Approved {
		badge = PendingBadgeStyle.Render(util.FormatApproval(false))
	}
	fields = append(fields, LabelStyle.Render("Status:")+" "+badge)
	sections = append(sections, strings.Join(fields, "\n"))

	if c.Description != "" {
		desc := lipgloss.NewStyle().Width(width - 10).Render(c.Description)
		sections = append(sections, LabelStyle.Render("Description:")+"\n"+NormalRowStyle.Render(desc))
	}

	if len(c.Images) > 0 {
		sections = append(sections, m.renderCarousel(width))
	}

	if c.Geometry.Valid() {
		sections = append(sections, m.renderMiniMap(width))
	}

	divider := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("─", maxOf(width-8, 1)))
	sections = append(sections, divider)

	if m.composing {
		sections = append(sections, m.renderComposer())
	} else if len(m.reviews) > 0 {
		sections = append(sections, LabelStyle.Render(fmt.Sprintf("Reviews (%d):", len(m.reviews))))
		sections = append(sections, m.renderReviews(width))
	} else {
		sections = append(sections, HelpDescStyle.Render("No reviews yet. Press 'r' to write the first one!"))
	}

	if m.confirm != ConfirmNone {
		sections = append(sections, m.renderConfirmPrompt())
	}

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	return info
}

func (m *DetailModel) renderCarousel(width int) string {
	c := m.campground
	img := c.Images[m.imageIdx]
	position := fmt.Sprintf("photo %d/%d", m.imageIdx+1, len(c.Images))

	header := LabelStyle.Render("Photos:") + " " + HelpDescStyle.Render(position+"  [/] to browse")
	if art, ok := m.imageArt[img.URL]; ok {
		return header + "\n" + art
	}
	return header + "\n" + HelpDescStyle.Render(util.TruncateString(img.URL, width-12))
}

func (m *DetailModel) renderMiniMap(width int) string {
	mapWidth := width - 10
	if mapWidth > 48 {
		mapWidth = 48
	}
	mini := NewMapView(PointsFromCampgrounds([]model.Campground{*m.campground}), mapWidth, 7, detailMapZoom)
	return LabelStyle.Render("Location map:") + "\n" + mini.View()
}

func (m *DetailModel) renderReviews(width int) string {
	var lines []string
	for i, r := range m.reviews {
		style := NormalRowStyle
		cursor := "  "
		if i == m.reviewCursor {
			style = SelectedRowStyle
			cursor = "> "
		}
		author := "anonymous"
		if r.Author != nil && r.Author.Username != "" {
			author = r.Author.Username
		}
		stars := StarStyle.Render(util.FormatStars(r.Rating))
		body := util.TruncateString(r.Content, width-30)
		lines = append(lines, cursor+stars+" "+style.Render(author+": "+body))
	}
	return strings.Join(lines, "\n")
}

func (m *DetailModel) renderComposer() string {
	starLabel := LabelStyle.Render("Rating:")
	stars := StarStyle.Render(util.FormatStars(m.rating))
	if m.composeFocus == 0 {
		stars = SelectedRowStyle.Render(util.FormatStars(m.rating)) + HelpDescStyle.Render("  1-5 or j/k to set")
	}
	contentLabel := LabelStyle.Render("Review:")
	return strings.Join([]string{
		LabelStyle.Render("Write a review"),
		starLabel + " " + stars,
		contentLabel + "\n" + m.content.View(),
		HelpDescStyle.Render("tab switch field  ctrl+s submit  esc cancel"),
	}, "\n")
}

func (m *DetailModel) renderConfirmPrompt() string {
	switch m.confirm {
	case ConfirmDeleteCampground:
		return ErrorStyle.Render("Delete this campground? y to confirm, esc to cancel")
	case ConfirmDeleteReview:
		return ErrorStyle.Render("Delete this review? y to confirm, esc to cancel")
	}
	return ""
}

// renderField renders a labeled value line.
func renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}
