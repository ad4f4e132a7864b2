package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// CampgroundsLoadedMsg is sent when the public campground list is loaded.
type CampgroundsLoadedMsg struct {
	Campgrounds []Campground
}

// CampgroundsLoadFailedMsg is sent when the public list fetch fails.
type CampgroundsLoadFailedMsg struct {
	Err error
}

// AdminCampgroundsLoadedMsg is sent when the unfiltered admin list is loaded.
type AdminCampgroundsLoadedMsg struct {
	Campgrounds []Campground
}

// CampgroundLoadedMsg is sent when one campground record is loaded.
type CampgroundLoadedMsg struct {
	Campground Campground
}

// CampgroundLoadFailedMsg is sent when a single-record fetch fails; the
// detail screen falls back to the list on it.
type CampgroundLoadFailedMsg struct {
	Err error
}

// ProfileLoadedMsg is sent when the current user's profile is loaded.
type ProfileLoadedMsg struct {
	User UserRef
}

// ProfileUnavailableMsg is sent when the profile fetch fails or no token
// is present. Not an error: author/admin affordances just stay hidden.
type ProfileUnavailableMsg struct{}

// CampgroundCreatedMsg is sent after a successful create submission.
type CampgroundCreatedMsg struct {
	Campground Campground
}

// CampgroundUpdatedMsg is sent after a successful edit submission.
type CampgroundUpdatedMsg struct {
	ID string
}

// CampgroundDeletedMsg is sent after a campground is deleted.
type CampgroundDeletedMsg struct {
	ID string
}

// ReviewAddedMsg is sent when a review submission succeeds; the detail
// screen appends it locally without re-fetching.
type ReviewAddedMsg struct {
	Review Review
}

// ReviewDeletedMsg is sent when a review deletion succeeds.
type ReviewDeletedMsg struct {
	ReviewID string
}

// ApprovalChangedMsg is sent when approve/revoke succeeds. Only the local
// copy's flag flips; reconciliation happens on the next screen load.
type ApprovalChangedMsg struct {
	ID       string
	Approved bool
}

// LoggedInMsg is sent after a successful login, with the session already
// persisted.
type LoggedInMsg struct {
	User    UserRef
	Message string
}

// RegisteredMsg is sent after a successful registration.
type RegisteredMsg struct {
	User    UserRef
	Message string
}

// AuthFailedMsg is sent when login/register fails, carrying the server
// message when one was returned.
type AuthFailedMsg struct {
	Err error
}

// LoggedOutMsg is sent once the session has been cleared.
type LoggedOutMsg struct{}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// ImageArtMsg carries a terminal rendering of a remote campground image
// for the carousel.
type ImageArtMsg struct {
	URL string
	Art string
}

// Screen represents different app screens.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenCampgrounds
	ScreenDetail
	ScreenForm
	ScreenAdmin
	ScreenLogin
	ScreenRegister
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
