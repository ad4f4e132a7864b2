package validate

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

// campgroundSchema mirrors the create/edit form. Price is validated as a
// string that must parse to a strictly positive number; the typed text is
// preserved as-is for submission.
type campgroundSchema struct {
	Title       string `validate:"min=3"`
	Location    string `validate:"min=3"`
	Description string `validate:"min=10"`
	Price       string `validate:"posprice"`
}

var messages = map[string]string{
	"Title":       "Title must be at least 3 characters",
	"Location":    "Location must be at least 3 characters",
	"Description": "Description must be at least 10 characters",
	"Price":       "Price must be a positive number",
}

var schema = newSchema()

func newSchema() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("posprice", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
		return err == nil && n > 0
	})
	return v
}

// Campground validates the form fields and returns one message per
// offending field, keyed by the lowercase field name. An empty map means
// the form may be submitted. The UI calls this on every change, not only
// on submit.
func Campground(fields model.CampgroundFields) map[string]string {
	err := schema.Struct(campgroundSchema{
		Title:       fields.Title,
		Location:    fields.Location,
		Description: fields.Description,
		Price:       fields.Price,
	})
	if err == nil {
		return map[string]string{}
	}

	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		field := fe.StructField()
		msg, known := messages[field]
		if !known {
			msg = "Invalid value"
		}
		out[strings.ToLower(field)] = msg
	}
	return out
}
