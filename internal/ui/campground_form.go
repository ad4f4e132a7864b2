package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aryamadhavi03/githubs-pages/internal/api"
	"github.com/aryamadhavi03/githubs-pages/internal/model"
	"github.com/aryamadhavi03/githubs-pages/internal/upload"
	"github.com/aryamadhavi03/githubs-pages/internal/util"
	"github.com/aryamadhavi03/githubs-pages/internal/validate"
)

const (
	fieldTitle = iota
	fieldLocation
	fieldDescription
	fieldPrice
	fieldImagePath
	fieldImageList
	formFieldCount
)

// CampgroundFormModel represents the campground create/edit form.
type CampgroundFormModel struct {
	client       *api.Client
	campgroundID string
	loading      bool
	focusedField int
	inputs       []textinput.Model
	fieldErrors  map[string]string

	uploads     *upload.Set
	existing    []model.Image
	deleteMarks map[string]bool
	imageCursor int

	error string
}

// NewCampgroundFormModel creates a form. An empty campgroundID means
// create; otherwise the form waits for LoadCampground to prefill.
func NewCampgroundFormModel(client *api.Client, campgroundID string, uploads *upload.Set) *CampgroundFormModel {
	inputs := make([]textinput.Model, 5)

	inputs[fieldTitle] = textinput.New()
	inputs[fieldTitle].Placeholder = "Campground title"
	inputs[fieldTitle].Focus()
	inputs[fieldTitle].CharLimit = 100

	inputs[fieldLocation] = textinput.New()
	inputs[fieldLocation].Placeholder = "City, State"
	inputs[fieldLocation].CharLimit = 200

	inputs[fieldDescription] = textinput.New()
	inputs[fieldDescription].Placeholder = "What makes this spot worth the drive?"
	inputs[fieldDescription].CharLimit = 500
	inputs[fieldDescription].Width = 60

	inputs[fieldPrice] = textinput.New()
	inputs[fieldPrice].Placeholder = "Price per night, e.g. 450"
	inputs[fieldPrice].CharLimit = 10

	inputs[fieldImagePath] = textinput.New()
	inputs[fieldImagePath].Placeholder = "Path to a photo, enter to attach"
	inputs[fieldImagePath].CharLimit = 300
	inputs[fieldImagePath].Width = 60

	return &CampgroundFormModel{
		client:       client,
		campgroundID: campgroundID,
		loading:      campgroundID != "",
		focusedField: fieldTitle,
		inputs:       inputs,
		fieldErrors:  map[string]string{},
		uploads:      uploads,
		deleteMarks:  map[string]bool{},
	}
}

// Editing reports whether the form targets an existing campground.
func (m *CampgroundFormModel) Editing() bool { return m.campgroundID != "" }

// CampgroundID returns the id being edited, or "".
func (m *CampgroundFormModel) CampgroundID() string { return m.campgroundID }

// Loading reports whether an edit prefill fetch is still in flight.
func (m *CampgroundFormModel) Loading() bool { return m.loading }

// LoadCampground prefills the form for editing. Missing values fall back
// to empty strings so a partial record still produces an editable form.
func (m *CampgroundFormModel) LoadCampground(c model.Campground) {
	m.loading = false
	m.inputs[fieldTitle].SetValue(c.Title)
	m.inputs[fieldLocation].SetValue(c.Location)
	m.inputs[fieldDescription].SetValue(c.Description)
	if c.Price > 0 {
		m.inputs[fieldPrice].SetValue(strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", c.Price), "0"), ".0"))
	}
	m.existing = c.Images
	m.deleteMarks = map[string]bool{}
	m.revalidate()
}

// LoadFailed clears the prefill wait after a failed fetch, leaving the
// fields empty but editable.
func (m *CampgroundFormModel) LoadFailed() {
	m.loading = false
}

// Fields returns the current raw field values.
func (m *CampgroundFormModel) Fields() model.CampgroundFields {
	return model.CampgroundFields{
		Title:       strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Location:    strings.TrimSpace(m.inputs[fieldLocation].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Price:       strings.TrimSpace(m.inputs[fieldPrice].Value()),
	}
}

// FieldErrors returns the live validation state.
func (m *CampgroundFormModel) FieldErrors() map[string]string { return m.fieldErrors }

// PendingCount returns the number of attached uploads.
func (m *CampgroundFormModel) PendingCount() int { return m.uploads.Len() }

// DeleteFilenames returns the existing photos marked for removal.
func (m *CampgroundFormModel) DeleteFilenames() []string {
	var names []string
	for _, img := range m.existing {
		if m.deleteMarks[img.Filename] {
			names = append(names, img.Filename)
		}
	}
	return names
}

// Cancel releases every pending upload.
func (m *CampgroundFormModel) Cancel() {
	m.uploads.ReleaseAll()
}

func (m *CampgroundFormModel) revalidate() {
	m.fieldErrors = validate.Campground(m.Fields())
}

// Update handles input.
func (m *CampgroundFormModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.Cancel()
		return func() tea.Msg {
			return model.FormCancelledMsg{}
		}
	case "ctrl+s":
		return m.save()
	case "tab":
		m.nextField()
		return nil
	case "shift+tab":
		m.prevField()
		return nil
	}

	if m.focusedField == fieldImageList {
		switch msg.String() {
		case "j", "down":
			if m.imageCursor < m.imageCount()-1 {
				m.imageCursor++
			}
		case "k", "up":
			if m.imageCursor > 0 {
				m.imageCursor--
			}
		case "d", "x":
			m.removeImageAtCursor()
		}
		return nil
	}

	if m.focusedField == fieldImagePath && msg.String() == "enter" {
		m.attachImage()
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	if m.focusedField <= fieldPrice {
		m.revalidate()
	}
	return cmd
}

func (m *CampgroundFormModel) attachImage() {
	path := strings.TrimSpace(m.inputs[fieldImagePath].Value())
	if path == "" {
		return
	}
	m.uploads.Add(path)
	m.inputs[fieldImagePath].SetValue("")
}

func (m *CampgroundFormModel) imageCount() int {
	return m.uploads.Len() + len(m.existing)
}

func (m *CampgroundFormModel) removeImageAtCursor() {
	pending := m.uploads.Items()
	if m.imageCursor < len(pending) {
		m.uploads.Remove(pending[m.imageCursor].Key)
	} else {
		idx := m.imageCursor - len(pending)
		if idx < len(m.existing) {
			name := m.existing[idx].Filename
			m.deleteMarks[name] = !m.deleteMarks[name]
			return
		}
	}
	if m.imageCursor >= m.imageCount() && m.imageCursor > 0 {
		m.imageCursor--
	}
}

func (m *CampgroundFormModel) nextField() {
	m.blurFocused()
	m.focusedField = (m.focusedField + 1) % formFieldCount
	m.focusCurrent()
}

func (m *CampgroundFormModel) prevField() {
	m.blurFocused()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = formFieldCount - 1
	}
	m.focusCurrent()
}

func (m *CampgroundFormModel) blurFocused() {
	if m.focusedField < len(m.inputs) {
		m.inputs[m.focusedField].Blur()
	}
}

func (m *CampgroundFormModel) focusCurrent() {
	if m.focusedField < len(m.inputs) {
		m.inputs[m.focusedField].Focus()
	}
}

func (m *CampgroundFormModel) save() tea.Cmd {
	fields := m.Fields()
	errs := validate.Campground(fields)
	if len(errs) > 0 {
		m.fieldErrors = errs
		for _, name := range []string{"title", "location", "description", "price"} {
			if msg, ok := errs[name]; ok {
				return func() tea.Msg {
					return model.ErrorMsg{Err: fmt.Errorf("%s", msg)}
				}
			}
		}
	}

	paths := m.uploads.Paths()
	if !m.Editing() && len(paths) == 0 {
		return func() tea.Msg {
			return model.ErrorMsg{Err: fmt.Errorf("attach at least one photo before submitting")}
		}
	}

	client := m.client
	uploads := m.uploads
	id := m.campgroundID
	deletions := m.DeleteFilenames()

	return func() tea.Msg {
		ctx := context.Background()
		if id != "" {
			if err := client.UpdateCampground(ctx, id, fields, paths, deletions); err != nil {
				return model.ErrorMsg{Err: err}
			}
			uploads.ReleaseAll()
			return model.CampgroundUpdatedMsg{ID: id}
		}
		created, err := client.CreateCampground(ctx, fields, paths)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		uploads.ReleaseAll()
		return model.CampgroundCreatedMsg{Campground: created}
	}
}

// View renders the form.
func (m *CampgroundFormModel) View(width, height int) string {
	if m.loading {
		return EmptyStateStyle.Render("Loading campground...")
	}

	var fields []string

	fields = append(fields, m.renderValidatedField("Title *", fieldTitle, "title"))
	fields = append(fields, m.renderValidatedField("Location *", fieldLocation, "location"))
	fields = append(fields, m.renderValidatedField("Description *", fieldDescription, "description"))
	fields = append(fields, m.renderValidatedField("Price per night *", fieldPrice, "price"))
	fields = append(fields, renderFormField("Add photo", m.inputs[fieldImagePath], m.focusedField == fieldImagePath))
	fields = append(fields, m.renderImageSection(width))

	if m.error != "" {
		fields = append(fields, "")
		fields = append(fields, ErrorStyle.Render(m.error))
	}

	formContent := strings.Join(fields, "\n\n")

	content := PanelStyle.
		Width(width - 4).
		Render(formContent)

	return content
}

func (m *CampgroundFormModel) renderValidatedField(label string, field int, errKey string) string {
	rendered := renderFormField(label, m.inputs[field], m.focusedField == field)
	if msg, ok := m.fieldErrors[errKey]; ok && m.inputs[field].Value() != "" {
		rendered += "\n" + ErrorStyle.Render(msg)
	}
	return rendered
}

func (m *CampgroundFormModel) renderImageSection(width int) string {
	header := LabelStyle.Render("Photos:")
	if m.focusedField == fieldImageList {
		header += " " + HelpDescStyle.Render("j/k move  d remove")
	}

	var lines []string
	pending := m.uploads.Items()
	for i, p := range pending {
		line := "+ " + util.TruncateString(p.Path, width-16)
		if p.PreviewErr != nil {
			line += "  " + ErrorStyle.Render("(no preview)")
		}
		lines = append(lines, m.imageLine(line, i))
	}
	for i, img := range m.existing {
		line := "  " + util.TruncateString(img.Filename, width-16)
		if m.deleteMarks[img.Filename] {
			line = ErrorStyle.Render("x "+util.TruncateString(img.Filename, width-16)) + HelpDescStyle.Render("  (will be removed)")
			lines = append(lines, m.imageLine(line, len(pending)+i))
			continue
		}
		lines = append(lines, m.imageLine(line, len(pending)+i))
	}

	if len(lines) == 0 {
		lines = append(lines, HelpDescStyle.Render("No photos attached yet."))
	}

	preview := m.selectedPreview(pending)
	body := strings.Join(lines, "\n")
	if preview != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", preview)
	}
	return header + "\n" + body
}

func (m *CampgroundFormModel) imageLine(line string, idx int) string {
	if m.focusedField == fieldImageList && idx == m.imageCursor {
		return SelectedRowStyle.Render(line)
	}
	return NormalRowStyle.Render(line)
}

func renderFormField(label string, input textinput.Model, focused bool) string {
	style := BorderStyle
	if focused {
		style = ActiveBorderStyle
	}

	field := lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(label),
		input.View(),
	)

	return style.Render(field)
}

func (m *CampgroundFormModel) selectedPreview(pending []upload.Pending) string {
	if m.focusedField != fieldImageList || m.imageCursor >= len(pending) {
		return ""
	}
	p := pending[m.imageCursor]
	if p.Preview == "" {
		return ""
	}
	return p.Preview
}
