package event

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anumohan208/Confidence/internal/zipcode"
)

// FieldErrors maps a form field name to its validation message. These
// never reach the network; a form with any entry here must not save.
type FieldErrors map[string]string

// Field names shared by the edit and submission forms.
const (
	FieldName        = "eventName"
	FieldDescription = "description"
	FieldCategory    = "eventCategory"
	FieldDate        = "eventDate"
	FieldTime        = "eventTime"
	FieldVenue       = "eventLocation"
	FieldCityZip     = "eventCityzip"
	FieldPrice       = "eventPrice"
	FieldStatus      = "approvalStatus"
	FieldImage       = "image"
)

const zipErrorMessage = "Please enter a valid zip code from the St. Louis metro area."

// ValidateDraft applies the edit-form rules: every field is required
// (non-empty after trimming), the zip code must be on the metro
// whitelist, and the price must parse as a number strictly greater than
// zero.
func ValidateDraft(d Draft) FieldErrors {
	errs := FieldErrors{}

	requireField(errs, FieldName, d.Name, "Event name is required.")
	requireField(errs, FieldDescription, d.Description, "Description is required.")
	requireField(errs, FieldCategory, d.Category, "Event category is required.")
	requireField(errs, FieldDate, d.Date, "Event date is required.")
	requireField(errs, FieldTime, d.Time, "Event time is required.")
	requireField(errs, FieldVenue, d.Venue, "Event venue name is required.")
	checkZip(errs, d.CityZip)
	checkPrice(errs, d.Price)
	requireField(errs, FieldStatus, d.ApprovalStatus, "Approval status is required.")

	return errs
}

// ValidateSubmission applies the new-event form rules: the same
// required-field and zip checks as the edit form, no approval status
// (creation always starts Pending), and the image is mandatory. No
// format or size check is performed on the image.
func ValidateSubmission(s Submission) FieldErrors {
	errs := FieldErrors{}

	requireField(errs, FieldName, s.Name, "Event name is required.")
	requireField(errs, FieldDescription, s.Description, "Description is required.")
	requireField(errs, FieldCategory, s.Category, "Event category is required.")
	requireField(errs, FieldDate, s.Date, "Event date is required.")
	requireField(errs, FieldTime, s.Time, "Event time is required.")
	requireField(errs, FieldVenue, s.Venue, "Event venue is required.")
	checkZip(errs, s.CityZip)
	checkPrice(errs, s.Price)
	requireField(errs, FieldImage, s.ImagePath, "Event image is required.")

	return errs
}

func requireField(errs FieldErrors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}

func checkZip(errs FieldErrors, zip string) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		errs[FieldCityZip] = "Event zip code is required."
		return
	}
	if !zipcode.IsValid(zip) {
		errs[FieldCityZip] = zipErrorMessage
	}
}

func checkPrice(errs FieldErrors, price string) {
	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || p.Sign() <= 0 {
		errs[FieldPrice] = "Event price must be a positive number."
	}
}
