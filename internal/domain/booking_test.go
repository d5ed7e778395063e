package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTraveler() Traveler {
	return Traveler{
		ID:          "1",
		DateOfBirth: "1990-04-12",
		Name:        TravelerName{FirstName: "Ada", LastName: "Lovelace"},
		Gender:      GenderFemale,
		Contact: TravelerContact{
			EmailAddress: "ada@example.com",
			Phones:       []Phone{{DeviceType: "MOBILE", CountryCallingCode: "44", Number: "7700900123"}},
		},
		Documents: []TravelDocument{{
			DocumentType: "PASSPORT",
			Number:       "123456789",
			ExpiryDate:   "2030-01-01",
			Holder:       true,
		}},
	}
}

func TestTraveler_Normalize(t *testing.T) {
	tr := Traveler{
		Name:        TravelerName{FirstName: "  Ada ", LastName: " Lovelace"},
		DateOfBirth: " 1990-04-12 ",
		Gender:      "f",
		Contact:     TravelerContact{Phones: []Phone{{CountryCallingCode: "44", Number: "1"}}},
		Documents:   []TravelDocument{{DocumentType: "passport", IssuanceCountry: "gb", Nationality: "gb"}},
	}

	tr.Normalize()

	assert.Equal(t, "Ada", tr.Name.FirstName)
	assert.Equal(t, "Lovelace", tr.Name.LastName)
	assert.Equal(t, "1990-04-12", tr.DateOfBirth)
	assert.Equal(t, GenderFemale, tr.Gender)
	assert.Equal(t, "MOBILE", tr.Contact.Phones[0].DeviceType)
	assert.Equal(t, "PASSPORT", tr.Documents[0].DocumentType)
	assert.Equal(t, "GB", tr.Documents[0].IssuanceCountry)
	assert.Equal(t, "GB", tr.Documents[0].Nationality)

	male := Traveler{Gender: "m"}
	male.Normalize()
	assert.Equal(t, GenderMale, male.Gender)
}

func TestTraveler_Validate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(*Traveler)
		wantField string
		wantType  string
	}{
		{name: "valid traveler", mutate: func(*Traveler) {}},
		{name: "no documents is fine", mutate: func(tr *Traveler) { tr.Documents = nil }},
		{
			name:      "missing first name",
			mutate:    func(tr *Traveler) { tr.Name.FirstName = "" },
			wantField: "travelers[0].name.firstName",
			wantType:  "missing",
		},
		{
			name:      "missing last name",
			mutate:    func(tr *Traveler) { tr.Name.LastName = "" },
			wantField: "travelers[0].name.lastName",
			wantType:  "missing",
		},
		{
			name:      "bad birth date",
			mutate:    func(tr *Traveler) { tr.DateOfBirth = "12/04/1990" },
			wantField: "travelers[0].dateOfBirth",
			wantType:  "invalid",
		},
		{
			name:      "birth date in the future",
			mutate:    func(tr *Traveler) { tr.DateOfBirth = "2026-01-01" },
			wantField: "travelers[0].dateOfBirth",
			wantType:  "invalid",
		},
		{
			name:      "unknown gender",
			mutate:    func(tr *Traveler) { tr.Gender = "X" },
			wantField: "travelers[0].gender",
			wantType:  "invalid",
		},
		{
			name:      "missing email",
			mutate:    func(tr *Traveler) { tr.Contact.EmailAddress = "" },
			wantField: "travelers[0].contact.emailAddress",
			wantType:  "missing",
		},
		{
			name:      "bad email",
			mutate:    func(tr *Traveler) { tr.Contact.EmailAddress = "not-an-email" },
			wantField: "travelers[0].contact.emailAddress",
			wantType:  "invalid",
		},
		{
			name:      "incomplete phone",
			mutate:    func(tr *Traveler) { tr.Contact.Phones[0].Number = "" },
			wantField: "travelers[0].contact.phones[0]",
			wantType:  "invalid",
		},
		{
			name:      "document without number",
			mutate:    func(tr *Traveler) { tr.Documents[0].Number = "" },
			wantField: "travelers[0].documents[0].number",
			wantType:  "missing",
		},
		{
			name:      "expired document",
			mutate:    func(tr *Traveler) { tr.Documents[0].ExpiryDate = "2024-12-31" },
			wantField: "travelers[0].documents[0].expiryDate",
			wantType:  "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTraveler()
			tt.mutate(&tr)

			err := tr.Validate("travelers[0]", now)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			switch tt.wantType {
			case "missing":
				var missing *MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, tt.wantField, missing.Field)
			case "invalid":
				var invalid *InvalidValueError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.wantField, invalid.Field)
			}
		})
	}
}

func TestNewMockOrder(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	summary := OfferSummary{OfferID: "1", FlightNumber: "AA 100"}
	travelers := []Traveler{validTraveler()}

	order := NewMockOrder("order-1", "session-1", summary, travelers, createdAt)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, OrderStatusUnconfirmed, order.Status)
	assert.Equal(t, "session-1", order.SessionID)
	assert.Equal(t, summary, order.Offer)
	assert.Equal(t, travelers, order.Travelers)
	require.Len(t, order.Remarks, 1)
	assert.Equal(t, MockOrderRemark, order.Remarks[0].Text)
	assert.Equal(t, TicketingAgreement{Option: TicketingDelayToCancel, Delay: TicketingDelay}, order.TicketingAgreement)
	assert.Equal(t, MockOrderMessage, order.Message)
	assert.Equal(t, createdAt, order.CreatedAt)
}
