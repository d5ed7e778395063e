package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of a flight order.
type OrderStatus string

// OrderStatusUnconfirmed is the only state a mock order can reach.
const OrderStatusUnconfirmed OrderStatus = "UNCONFIRMED"

// Mock order constants.
const (
	MockOrderRemark         = "TEST BOOKING - DO NOT PROCESS PAYMENT"
	MockOrderMessage        = "This is a mock order; no booking was made and no payment was taken"
	TicketingDelayToCancel  = "DELAY_TO_CANCEL"
	TicketingDelay          = "24H"
	remarkGeneralMiscellany = "GENERAL_MISCELLANEOUS"
)

// Gender values accepted for travelers.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Traveler is a passenger on a booking.
type Traveler struct {
	ID          string           `json:"id"`
	DateOfBirth string           `json:"dateOfBirth"`
	Name        TravelerName     `json:"name"`
	Gender      string           `json:"gender"`
	Contact     TravelerContact  `json:"contact"`
	Documents   []TravelDocument `json:"documents,omitempty"`
}

// TravelerName is a traveler's name as printed on the travel document.
type TravelerName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TravelerContact is how the traveler can be reached.
type TravelerContact struct {
	EmailAddress string  `json:"emailAddress"`
	Phones       []Phone `json:"phones,omitempty"`
}

// Phone is a traveler phone number.
type Phone struct {
	DeviceType         string `json:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode"`
	Number             string `json:"number"`
}

// TravelDocument is an identity document such as a passport.
type TravelDocument struct {
	DocumentType     string `json:"documentType"`
	Number           string `json:"number"`
	ExpiryDate       string `json:"expiryDate"`
	IssuanceCountry  string `json:"issuanceCountry,omitempty"`
	IssuanceDate     string `json:"issuanceDate,omitempty"`
	IssuanceLocation string `json:"issuanceLocation,omitempty"`
	ValidityCountry  string `json:"validityCountry,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	BirthPlace       string `json:"birthPlace,omitempty"`
	Holder           bool   `json:"holder"`
}

// Normalize upper-cases codes and expands single-letter genders.
func (t *Traveler) Normalize() {
	t.Name.FirstName = strings.TrimSpace(t.Name.FirstName)
	t.Name.LastName = strings.TrimSpace(t.Name.LastName)
	t.DateOfBirth = strings.TrimSpace(t.DateOfBirth)

	switch g := strings.ToUpper(strings.TrimSpace(t.Gender)); g {
	case "M":
		t.Gender = GenderMale
	case "F":
		t.Gender = GenderFemale
	default:
		t.Gender = g
	}

	for i := range t.Contact.Phones {
		if t.Contact.Phones[i].DeviceType == "" {
			t.Contact.Phones[i].DeviceType = "MOBILE"
		}
	}
	for i := range t.Documents {
		d := &t.Documents[i]
		d.DocumentType = strings.ToUpper(d.DocumentType)
		d.IssuanceCountry = strings.ToUpper(d.IssuanceCountry)
		d.ValidityCountry = strings.ToUpper(d.ValidityCountry)
		d.Nationality = strings.ToUpper(d.Nationality)
	}
}

// Validate checks one traveler. field prefixes error field names (e.g. "travelers[0]").
// now is used to reject future birth dates.
func (t Traveler) Validate(field string, now time.Time) error {
	if t.Name.FirstName == "" {
		return &MissingFieldError{Field: field + ".name.firstName"}
	}
	if t.Name.LastName == "" {
		return &MissingFieldError{Field: field + ".name.lastName"}
	}

	if t.DateOfBirth == "" {
		return &MissingFieldError{Field: field + ".dateOfBirth"}
	}
	dob, err := time.Parse(DateLayout, t.DateOfBirth)
	if err != nil {
		return &InvalidValueError{Field: field + ".dateOfBirth", Message: "must be a date in YYYY-MM-DD format"}
	}
	if dob.After(now) {
		return &InvalidValueError{Field: field + ".dateOfBirth", Message: "must not be in the future"}
	}

	if t.Gender != GenderMale && t.Gender != GenderFemale {
		return &InvalidValueError{Field: field + ".gender", Message: "must be MALE or FEMALE"}
	}

	if t.Contact.EmailAddress == "" {
		return &MissingFieldError{Field: field + ".contact.emailAddress"}
	}
	if _, err := mail.ParseAddress(t.Contact.EmailAddress); err != nil {
		return &InvalidValueError{Field: field + ".contact.emailAddress", Message: "must be a valid email address"}
	}

	for i, p := range t.Contact.Phones {
		if p.Number == "" || p.CountryCallingCode == "" {
			return &InvalidValueError{
				Field:   fmt.Sprintf("%s.contact.phones[%d]", field, i),
				Message: "countryCallingCode and number are required",
			}
		}
	}

	for i, d := range t.Documents {
		docField := fmt.Sprintf("%s.documents[%d]", field, i)
		if d.Number == "" {
			return &MissingFieldError{Field: docField + ".number"}
		}
		expiry, err := time.Parse(DateLayout, d.ExpiryDate)
		if err != nil {
			return &InvalidValueError{Field: docField + ".expiryDate", Message: "must be a date in YYYY-MM-DD format"}
		}
		if expiry.Before(now) {
			return &InvalidValueError{Field: docField + ".expiryDate", Message: "document has expired"}
		}
	}

	return nil
}

// Remark is a free-text note attached to an order.
type Remark struct {
	SubType string `json:"subType"`
	Text    string `json:"text"`
}

// TicketingAgreement describes when the order would be ticketed.
type TicketingAgreement struct {
	Option string `json:"option"`
	Delay  string `json:"delay"`
}

// FlightOrder is the result of the mock booking step. It is never persisted
// and no provider booking call is made.
type FlightOrder struct {
	ID                 string             `json:"id"`
	Status             OrderStatus        `json:"status"`
	SessionID          string             `json:"session_id"`
	Offer              OfferSummary       `json:"offer"`
	Travelers          []Traveler         `json:"travelers"`
	Remarks            []Remark           `json:"remarks"`
	TicketingAgreement TicketingAgreement `json:"ticketing_agreement"`
	Message            string             `json:"message"`
	CreatedAt          time.Time          `json:"created_at"`
}

// NewMockOrder assembles an unconfirmed test order.
func NewMockOrder(id, sessionID string, offer OfferSummary, travelers []Traveler, createdAt time.Time) FlightOrder {
	return FlightOrder{
		ID:        id,
		Status:    OrderStatusUnconfirmed,
		SessionID: sessionID,
		Offer:     offer,
		Travelers: travelers,
		Remarks: []Remark{
			{SubType: remarkGeneralMiscellany, Text: MockOrderRemark},
		},
		TicketingAgreement: TicketingAgreement{
			Option: TicketingDelayToCancel,
			Delay:  TicketingDelay,
		},
		Message:   MockOrderMessage,
		CreatedAt: createdAt,
	}
}
