package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aryamadhavi03/githubs-pages/internal/api"
	"github.com/aryamadhavi03/githubs-pages/internal/model"
	"github.com/aryamadhavi03/githubs-pages/internal/session"
	"github.com/aryamadhavi03/githubs-pages/internal/upload"
)

const (
	carouselArtWidth  = 56
	carouselArtHeight = 14
	previewArtWidth   = 40
	previewArtHeight  = 10
)

// Model is the root Bubble Tea model.
type Model struct {
	client           *api.Client
	store            *session.Store
	termCapabilities TerminalCapabilities
	previews         bool

	screen model.Screen
	mode   model.Mode
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	spin        spinner.Model
	loadingList bool

	// Screen models
	landing      *LandingModel
	campgrounds  *CampgroundsModel
	detail       *DetailModel
	form         *CampgroundFormModel
	admin        *AdminModel
	loginForm    *LoginFormModel
	registerForm *RegisterFormModel

	sessionUser string
	detailID    string

	keys     KeyMap
	formKeys FormKeyMap
}

// New creates a new root model.
func New(client *api.Client, store *session.Store, termCaps TerminalCapabilities, previews bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	m := Model{
		client:           client,
		store:            store,
		termCapabilities: termCaps,
		previews:         previews,
		screen:           model.ScreenLanding,
		mode:             model.ModeNav,
		gState:           GStateIdle,
		spin:             sp,
		landing:          NewLandingModel(),
		keys:             DefaultKeyMap(),
		formKeys:         DefaultFormKeyMap(),
	}
	if user, err := store.User(); err == nil && user != nil {
		m.sessionUser = user.Username
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadCampgroundsCmd(m.client))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.admin != nil {
			m.admin.SetSize(m.width, m.height-6)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loadingList && (m.detail == nil || !m.detail.Loading()) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Handle help toggle
		if msg.String() == "?" && m.mode == model.ModeNav && !m.detailComposing() {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeNav {
			return m.handleNavMode(msg)
		}
		return m.handleInsertMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.CampgroundsLoadedMsg:
		m.campgrounds = NewCampgroundsModel(msg.Campgrounds)
		m.loadingList = false
		m.error = ""
		return m, nil

	case model.CampgroundsLoadFailedMsg:
		m.loadingList = false
		m.error = msg.Err.Error()
		return m, nil

	case model.AdminCampgroundsLoadedMsg:
		m.admin = NewAdminModel(msg.Campgrounds)
		m.admin.SetSize(m.width, m.height-6)
		m.screen = model.ScreenAdmin
		m.error = ""
		return m, nil

	case model.CampgroundLoadedMsg:
		if m.screen == model.ScreenForm && m.form != nil && m.form.Loading() {
			m.form.LoadCampground(msg.Campground)
			return m, nil
		}
		if m.detail != nil {
			m.detail.SetCampground(msg.Campground)
			m.screen = model.ScreenDetail
			m.error = ""
			return m, m.carouselArtCmd()
		}
		return m, nil

	case model.CampgroundLoadFailedMsg:
		if m.screen == model.ScreenForm && m.form != nil && m.form.Loading() {
			m.form.LoadFailed()
			m.error = msg.Err.Error()
			return m, nil
		}
		m.screen = model.ScreenCampgrounds
		m.detail = nil
		m.error = msg.Err.Error()
		return m, nil

	case model.ProfileLoadedMsg:
		m.sessionUser = msg.User.Username
		if m.detail != nil {
			u := msg.User
			m.detail.SetViewer(&u)
		}
		return m, nil

	case model.ProfileUnavailableMsg:
		if m.detail != nil {
			m.detail.SetViewer(nil)
		}
		return m, nil

	case model.CampgroundCreatedMsg:
		m.mode = model.ModeNav
		m.form = nil
		m.info = "Campground submitted, pending review"
		return m, m.openDetail(msg.Campground.Key())

	case model.CampgroundUpdatedMsg:
		m.mode = model.ModeNav
		m.form = nil
		m.info = "Campground updated"
		return m, m.openDetail(msg.ID)

	case model.CampgroundDeletedMsg:
		m.screen = model.ScreenCampgrounds
		m.detail = nil
		m.info = "Campground deleted"
		m.loadingList = true
		return m, tea.Batch(m.spin.Tick, loadCampgroundsCmd(m.client))

	case model.ReviewAddedMsg:
		if m.detail != nil {
			m.detail.AddReview(msg.Review)
			m.detail.CancelReview()
		}
		m.info = "Review posted"
		m.error = ""
		return m, nil

	case model.ReviewDeletedMsg:
		if m.detail != nil {
			m.detail.RemoveReview(msg.ReviewID)
		}
		m.info = "Review deleted"
		return m, nil

	case model.ApprovalChangedMsg:
		if m.detail != nil {
			m.detail.ApplyApproval(msg.Approved)
		}
		if m.admin != nil {
			m.admin.ApplyApproval(msg.ID, msg.Approved)
		}
		if msg.Approved {
			m.info = "Campground approved"
		} else {
			m.info = "Approval revoked"
		}
		return m, nil

	case model.LoggedInMsg:
		return m.afterAuth(msg.User, msg.Message)

	case model.RegisteredMsg:
		return m.afterAuth(msg.User, msg.Message)

	case model.AuthFailedMsg:
		m.error = msg.Err.Error()
		if m.loginForm != nil {
			m.loginForm.Reset()
		}
		if m.registerForm != nil {
			m.registerForm.Reset()
		}
		return m, nil

	case model.LoggedOutMsg:
		m.sessionUser = ""
		m.info = "Logged out"
		m.screen = model.ScreenCampgrounds
		m.loadingList = true
		return m, tea.Batch(m.spin.Tick, loadCampgroundsCmd(m.client))

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.form = nil
		m.loginForm = nil
		m.registerForm = nil
		switch m.screen {
		case model.ScreenForm, model.ScreenLogin, model.ScreenRegister:
			if m.campgrounds != nil {
				m.screen = model.ScreenCampgrounds
			} else {
				m.screen = model.ScreenLanding
			}
		}
		return m, nil

	case model.ImageArtMsg:
		if msg.Art != "" && m.detail != nil {
			m.detail.SetImageArt(msg.URL, msg.Art)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) afterAuth(user model.UserRef, message string) (tea.Model, tea.Cmd) {
	m.mode = model.ModeNav
	m.loginForm = nil
	m.registerForm = nil
	m.sessionUser = user.Username
	if message != "" {
		m.info = message
	} else {
		m.info = "Welcome, " + user.Username
	}
	m.error = ""

	if target, err := m.store.TakeReturnTo(); err == nil && target == "admin" {
		return m, loadAdminCampgroundsCmd(m.client)
	}
	m.screen = model.ScreenCampgrounds
	m.loadingList = true
	return m, tea.Batch(m.spin.Tick, loadCampgroundsCmd(m.client))
}

func (m Model) detailComposing() bool {
	return m.screen == model.ScreenDetail && m.detail != nil && m.detail.Composing()
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	if m.screen == model.ScreenLanding {
		return m.landing.View(m.width, m.height, m.store.IsAuthenticated(), m.sessionUser)
	}

	var content string
	var breadcrumbParts []string

	showTabs := m.screen == model.ScreenCampgrounds || m.screen == model.ScreenAdmin

	contentHeight := m.height - 4
	if showTabs {
		contentHeight -= 2
	}

	switch m.screen {
	case model.ScreenCampgrounds:
		breadcrumbParts = []string{"Campgrounds"}
		if m.loadingList || m.campgrounds == nil {
			content = EmptyStateStyle.Render(m.spin.View() + " Loading campgrounds...")
		} else {
			content = m.campgrounds.View(m.width, contentHeight)
		}
	case model.ScreenDetail:
		breadcrumbParts = []string{"Campgrounds", "Detail"}
		if m.detail != nil {
			if c := m.detail.Campground(); c != nil {
				breadcrumbParts = []string{"Campgrounds", c.Title}
			}
			content = m.detail.View(m.width, contentHeight)
		}
	case model.ScreenForm:
		breadcrumbParts = []string{"Campgrounds", "New"}
		if m.form != nil {
			if m.form.Editing() {
				breadcrumbParts = []string{"Campgrounds", "Edit"}
			}
			content = m.form.View(m.width, contentHeight)
		}
	case model.ScreenAdmin:
		breadcrumbParts = []string{"Admin"}
		if m.admin != nil {
			content = m.admin.View(m.width, contentHeight)
		}
	case model.ScreenLogin:
		breadcrumbParts = []string{"Log in"}
		if m.loginForm != nil {
			content = m.loginForm.View(m.width, contentHeight)
		}
	case model.ScreenRegister:
		breadcrumbParts = []string{"Register"}
		if m.registerForm != nil {
			content = m.registerForm.View(m.width, contentHeight)
		}
	}

	header := m.renderHeader(breadcrumbParts)
	footer := RenderHelp(m.screen, m.mode, m.width)

	contentStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight)
	content = contentStyle.Render(content)

	var rows []string
	rows = append(rows, header)
	if showTabs {
		rows = append(rows, renderTabs(m.screen, m.width))
	}
	if m.error != "" {
		rows = append(rows, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		rows = append(rows, SuccessStyle.Width(m.width).Render(m.info))
	}
	rows = append(rows, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTabs(screen model.Screen, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Campgrounds", model.ScreenCampgrounds},
		{"Admin", model.ScreenAdmin},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	title := HeaderStyle.Render("campquest")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	who := "guest"
	if m.sessionUser != "" {
		who = m.sessionUser
	}
	right := BreadcrumbStyle.Render(who) + "  "

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := m.width - leftLen - rightLen
	if padding < 0 {
		padding = 0
	}

	headerContent := left + strings.Repeat(" ", padding) + right
	return TitleStyle.Width(m.width).Render(headerContent)
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// "gg" state machine
	if msg.String() == "g" && !m.detailComposing() {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		return m.handleJumpToTop()
	}
	if m.gState == GStateFirstG {
		m.gState = GStateIdle
	}

	switch m.screen {
	case model.ScreenLanding:
		return m.handleLandingNav(msg)
	case model.ScreenCampgrounds:
		return m.handleCampgroundsNav(msg)
	case model.ScreenDetail:
		return m.handleDetailNav(msg)
	case model.ScreenAdmin:
		return m.handleAdminNav(msg)
	}

	return m, nil
}

// handleInsertMode handles insert/edit mode input.
func (m Model) handleInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.screen {
	case model.ScreenForm:
		if m.form != nil {
			return m, m.form.Update(keyMsg)
		}
	case model.ScreenLogin:
		if m.loginForm != nil {
			return m, m.loginForm.Update(keyMsg)
		}
	case model.ScreenRegister:
		if m.registerForm != nil {
			return m, m.registerForm.Update(keyMsg)
		}
	}
	return m, nil
}

func (m Model) handleJumpToTop() (tea.Model, tea.Cmd) {
	if m.campgrounds != nil && m.screen == model.ScreenCampgrounds {
		m.campgrounds.JumpToTop()
	}
	return m, nil
}

func (m Model) handleLandingNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "l", "c":
		m.screen = model.ScreenCampgrounds
		if m.campgrounds == nil && !m.loadingList {
			m.loadingList = true
			return m, tea.Batch(m.spin.Tick, loadCampgroundsCmd(m.client))
		}
		return m, nil
	case "i":
		if !m.store.IsAuthenticated() {
			return m.goToLogin("")
		}
		return m, nil
	case "R":
		if !m.store.IsAuthenticated() {
			return m.goToRegister()
		}
		return m, nil
	case "O":
		if m.store.IsAuthenticated() {
			return m, logoutCmd(m.client, m.store)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleCampgroundsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h", "b", "esc":
		m.screen = model.ScreenLanding
		return m, nil
	case "a":
		if !m.store.IsAuthenticated() {
			return m.goToLogin("You must be signed in to add a campground")
		}
		m.mode = model.ModeInsert
		m.screen = model.ScreenForm
		m.form = NewCampgroundFormModel(m.client, "", m.newUploadSet())
		m.error = ""
		m.info = ""
		return m, nil
	case "A":
		return m.goToAdmin()
	case "i":
		if !m.store.IsAuthenticated() {
			return m.goToLogin("")
		}
		m.info = "Already signed in"
		return m, nil
	case "R":
		if !m.store.IsAuthenticated() {
			return m.goToRegister()
		}
		return m, nil
	case "O":
		if m.store.IsAuthenticated() {
			return m, logoutCmd(m.client, m.store)
		}
		return m, nil
	case "ctrl+l":
		m.loadingList = true
		m.info = ""
		return m, tea.Batch(m.spin.Tick, loadCampgroundsCmd(m.client))
	}

	if m.campgrounds == nil {
		return m, nil
	}

	switch msg.String() {
	case "enter", "l":
		if id := m.campgrounds.SelectedID(); id != "" {
			return m, m.openDetail(id)
		}
	case "j", "down":
		m.campgrounds.MoveDown()
	case "k", "up":
		m.campgrounds.MoveUp()
	case "G":
		m.campgrounds.JumpToBottom()
	case "ctrl+d":
		m.campgrounds.HalfPageDown(m.height / 2)
	case "ctrl+u":
		m.campgrounds.HalfPageUp(m.height / 2)
	}
	return m, nil
}

func (m Model) handleDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}

	if m.detail.Composing() {
		return m.handleComposerKeys(msg)
	}

	if m.detail.Confirm() != ConfirmNone {
		return m.handleConfirmKeys(msg)
	}

	switch msg.String() {
	case "h", "b", "esc":
		m.screen = model.ScreenCampgrounds
		m.detail = nil
		m.detailID = ""
		return m, nil
	case "]":
		m.detail.NextImage()
		return m, m.carouselArtCmd()
	case "[":
		m.detail.PrevImage()
		return m, m.carouselArtCmd()
	case "j", "down":
		m.detail.ReviewDown()
		return m, nil
	case "k", "up":
		m.detail.ReviewUp()
		return m, nil
	case "s":
		m.detail.SortAscending()
		m.info = "Reviews sorted by rating, lowest first"
		return m, nil
	case "S":
		m.detail.SortDescending()
		m.info = "Reviews sorted by rating, highest first"
		return m, nil
	case "o":
		m.detail.SortReset()
		m.info = "Reviews in original order"
		return m, nil
	case "r":
		if !m.store.IsAuthenticated() {
			return m.goToLogin("")
		}
		if !m.detail.CanReview() {
			m.error = "You cannot review your own campground"
			return m, nil
		}
		m.detail.StartReview()
		m.error = ""
		m.info = ""
		return m, nil
	case "e":
		if c := m.detail.Campground(); c != nil && m.detail.IsOwner() {
			m.mode = model.ModeInsert
			m.screen = model.ScreenForm
			m.form = NewCampgroundFormModel(m.client, c.Key(), m.newUploadSet())
			m.error = ""
			m.info = ""
			return m, loadCampgroundCmd(m.client, c.Key())
		}
		m.error = "Only the owner can edit this campground"
		return m, nil
	case "d":
		if m.detail.SelectedReview() != nil && m.detail.CanDeleteSelectedReview() {
			m.detail.SetConfirm(ConfirmDeleteReview)
			return m, nil
		}
		if m.detail.IsOwner() || m.detail.CanModerate() {
			m.detail.SetConfirm(ConfirmDeleteCampground)
			return m, nil
		}
		m.error = "You do not have permission to delete here"
		return m, nil
	case "p":
		if !m.detail.CanModerate() {
			m.error = "Administrator access required"
			return m, nil
		}
		if c := m.detail.Campground(); c != nil {
			return m, changeApprovalCmd(m.client, c.Key(), !c.Approved)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleComposerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail.CancelReview()
		return m, nil
	case "tab", "shift+tab":
		m.detail.NextComposeField()
		return m, nil
	case "ctrl+s", "enter":
		content := m.detail.Content()
		if content == "" {
			m.error = "Review text is required"
			return m, nil
		}
		if c := m.detail.Campground(); c != nil {
			return m, addReviewCmd(m.client, c.Key(), m.detail.Rating(), content)
		}
		return m, nil
	}

	if m.detail.ComposeFocusedOnStars() {
		switch msg.String() {
		case "1", "2", "3", "4", "5":
			n, _ := strconv.Atoi(msg.String())
			m.detail.SetRating(n)
		case "j", "down", "left":
			m.detail.SetRating(m.detail.Rating() - 1)
		case "k", "up", "right":
			m.detail.SetRating(m.detail.Rating() + 1)
		}
		return m, nil
	}

	input := m.detail.ContentInput()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirm := m.detail.Confirm()
	switch msg.String() {
	case "y":
		m.detail.SetConfirm(ConfirmNone)
		c := m.detail.Campground()
		if c == nil {
			return m, nil
		}
		if confirm == ConfirmDeleteReview {
			if r := m.detail.SelectedReview(); r != nil {
				return m, deleteReviewCmd(m.client, c.Key(), r.Key())
			}
			return m, nil
		}
		return m, deleteCampgroundCmd(m.client, c.Key())
	case "esc", "n":
		m.detail.SetConfirm(ConfirmNone)
		return m, nil
	}
	return m, nil
}

func (m Model) handleAdminNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.admin == nil {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h", "b", "esc":
		m.screen = model.ScreenCampgrounds
		m.loadingList = true
		return m, tea.Batch(m.spin.Tick, loadCampgroundsCmd(m.client))
	case "tab":
		m.admin.ToggleFocus()
		return m, nil
	case "j", "down":
		m.admin.MoveDown()
		return m, nil
	case "k", "up":
		m.admin.MoveUp()
		return m, nil
	case "-":
		if m.admin.MapFocused() {
			m.admin.Map().ZoomOut()
		}
		return m, nil
	case "p":
		if approved, ok := m.admin.SelectedApproved(); ok {
			return m, changeApprovalCmd(m.client, m.admin.SelectedID(), !approved)
		}
		return m, nil
	case "enter", "l":
		if m.admin.MapFocused() {
			if id, ok := m.admin.Map().ExpandSelected(); ok {
				return m, m.openDetail(id)
			}
			return m, nil
		}
		if c := m.admin.Selected(); c != nil {
			return m, m.openDetail(c.Key())
		}
		return m, nil
	case "ctrl+l":
		return m, loadAdminCampgroundsCmd(m.client)
	}
	return m, nil
}

func (m *Model) openDetail(id string) tea.Cmd {
	m.detail = NewDetailModel()
	m.detailID = id
	m.screen = model.ScreenDetail
	m.error = ""
	return tea.Batch(
		m.spin.Tick,
		loadCampgroundCmd(m.client, id),
		loadProfileCmd(m.client, m.store),
	)
}

func (m Model) goToLogin(banner string) (tea.Model, tea.Cmd) {
	m.mode = model.ModeInsert
	m.screen = model.ScreenLogin
	m.loginForm = NewLoginFormModel(m.client, m.store)
	m.info = ""
	m.error = banner
	return m, nil
}

func (m Model) goToRegister() (tea.Model, tea.Cmd) {
	m.mode = model.ModeInsert
	m.screen = model.ScreenRegister
	m.registerForm = NewRegisterFormModel(m.client, m.store)
	m.info = ""
	m.error = ""
	return m, nil
}

func (m Model) goToAdmin() (tea.Model, tea.Cmd) {
	if !m.store.IsAuthenticated() {
		if err := m.store.SetReturnTo("admin"); err != nil {
			m.error = err.Error()
			return m, nil
		}
		return m.goToLogin("Sign in to access the admin dashboard")
	}
	if !m.store.IsAdmin() {
		m.error = "Administrator access required"
		return m, nil
	}
	return m, loadAdminCampgroundsCmd(m.client)
}

func (m Model) newUploadSet() *upload.Set {
	if !m.previews {
		return upload.NewSet(func(string) (string, error) {
			return "", nil
		})
	}
	return upload.NewSet(func(path string) (string, error) {
		return RenderImageFile(path, previewArtWidth, previewArtHeight)
	})
}

func (m Model) carouselArtCmd() tea.Cmd {
	if !m.previews || m.detail == nil {
		return nil
	}
	url := m.detail.CurrentImageURL()
	if url == "" {
		return nil
	}
	return fetchImageArtCmd(m.client, url)
}

// Commands

func loadCampgroundsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		campgrounds, err := client.ListCampgrounds(context.Background())
		if err != nil {
			return model.CampgroundsLoadFailedMsg{Err: fmt.Errorf("failed to load campgrounds: %w", err)}
		}
		return model.CampgroundsLoadedMsg{Campgrounds: campgrounds}
	}
}

func loadAdminCampgroundsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		campgrounds, err := client.AdminListCampgrounds(context.Background())
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load submissions: %w", err)}
		}
		return model.AdminCampgroundsLoadedMsg{Campgrounds: campgrounds}
	}
}

func loadCampgroundCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		campground, err := client.GetCampground(context.Background(), id)
		if err != nil {
			return model.CampgroundLoadFailedMsg{Err: fmt.Errorf("failed to load campground: %w", err)}
		}
		return model.CampgroundLoadedMsg{Campground: campground}
	}
}

func loadProfileCmd(client *api.Client, store *session.Store) tea.Cmd {
	return func() tea.Msg {
		if !store.IsAuthenticated() {
			return model.ProfileUnavailableMsg{}
		}
		user, err := client.Profile(context.Background())
		if err != nil {
			return model.ProfileUnavailableMsg{}
		}
		return model.ProfileLoadedMsg{User: user}
	}
}

func deleteCampgroundCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteCampground(context.Background(), id); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to delete campground: %w", err)}
		}
		return model.CampgroundDeletedMsg{ID: id}
	}
}

func addReviewCmd(client *api.Client, campgroundID string, rating int, content string) tea.Cmd {
	return func() tea.Msg {
		review, err := client.AddReview(context.Background(), campgroundID, rating, content)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to post review: %w", err)}
		}
		return model.ReviewAddedMsg{Review: review}
	}
}

func deleteReviewCmd(client *api.Client, campgroundID, reviewID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteReview(context.Background(), campgroundID, reviewID); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to delete review: %w", err)}
		}
		return model.ReviewDeletedMsg{ReviewID: reviewID}
	}
}

func changeApprovalCmd(client *api.Client, id string, approve bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if approve {
			err = client.Approve(context.Background(), id)
		} else {
			err = client.Revoke(context.Background(), id)
		}
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to change approval: %w", err)}
		}
		return model.ApprovalChangedMsg{ID: id, Approved: approve}
	}
}

func logoutCmd(client *api.Client, store *session.Store) tea.Cmd {
	return func() tea.Msg {
		_ = client.Logout(context.Background())
		if err := store.Clear(); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to clear session: %w", err)}
		}
		return model.LoggedOutMsg{}
	}
}

func fetchImageArtCmd(client *api.Client, url string) tea.Cmd {
	return func() tea.Msg {
		data, err := client.FetchImage(context.Background(), url)
		if err != nil {
			return model.ImageArtMsg{URL: url}
		}
		art, err := RenderImageBytes(data, carouselArtWidth, carouselArtHeight)
		if err != nil {
			return model.ImageArtMsg{URL: url}
		}
		return model.ImageArtMsg{URL: url, Art: art}
	}
}
