package model

// Image is one campground photo as served by the API.
type Image struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Geometry is a GeoJSON point. Coordinates are [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Lng returns the longitude, or 0 if the coordinate pair is malformed.
func (g *Geometry) Lng() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Lat returns the latitude, or 0 if the coordinate pair is malformed.
func (g *Geometry) Lat() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

// Valid reports whether the geometry carries a usable coordinate pair.
func (g *Geometry) Valid() bool {
	return g != nil && len(g.Coordinates) >= 2
}

// UserRef is a user or author reference as returned by the API. The
// upstream service is inconsistent about the identifier field name (_id,
// id, or userId depending on the endpoint), so all aliases are decoded and
// Key normalizes them; nothing outside this type should compare raw alias
// fields.
type UserRef struct {
	MongoID  string `json:"_id"`
	AltID    string `json:"id"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Key returns the normalized identifier: the first non-empty alias.
func (u *UserRef) Key() string {
	if u == nil {
		return ""
	}
	for _, id := range []string{u.MongoID, u.AltID, u.UserID} {
		if id != "" {
			return id
		}
	}
	return ""
}

// SameUser reports whether two references point at the same user. Empty
// keys never match.
func SameUser(a, b *UserRef) bool {
	ka, kb := a.Key(), b.Key()
	return ka != "" && ka == kb
}

// Review is a rated comment attached to one campground.
type Review struct {
	MongoID string   `json:"_id"`
	AltID   string   `json:"id"`
	Rating  int      `json:"rating"`
	Content string   `json:"content"`
	Author  *UserRef `json:"author"`
}

// Key returns the review's normalized identifier.
func (r *Review) Key() string {
	if r == nil {
		return ""
	}
	if r.MongoID != "" {
		return r.MongoID
	}
	return r.AltID
}

// Campground is the core listing entity. The client never owns one; every
// copy is a transient snapshot of server truth for the current screen.
type Campground struct {
	MongoID     string    `json:"_id"`
	AltID       string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Images      []Image   `json:"images"`
	Approved    bool      `json:"approved"`
	Geometry    *Geometry `json:"geometry"`
	Author      *UserRef  `json:"author"`
	Reviews     []Review  `json:"reviews"`
}

// Key returns the campground's normalized identifier.
func (c *Campground) Key() string {
	if c == nil {
		return ""
	}
	if c.MongoID != "" {
		return c.MongoID
	}
	return c.AltID
}

// CampgroundFields are the text fields of the create/edit form. Price
// stays a string to preserve what the user typed; validation checks that
// it parses to a strictly positive number.
type CampgroundFields struct {
	Title       string
	Location    string
	Description string
	Price       string
}

// AuthResponse is the login/register response shape.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *UserRef `json:"user"`
	Token   string   `json:"token"`
}
