package usecase

import (
	"context"
	"testing"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testTraveler() domain.Traveler {
	return domain.Traveler{
		DateOfBirth: "1988-02-29",
		Name:        domain.TravelerName{FirstName: "Grace", LastName: "Hopper"},
		Gender:      "f",
		Contact: domain.TravelerContact{
			EmailAddress: "grace@example.com",
			Phones:       []domain.Phone{{CountryCallingCode: "1", Number: "5550100"}},
		},
		Documents: []domain.TravelDocument{{
			DocumentType:    "passport",
			Number:          "X1234567",
			ExpiryDate:      "2031-01-01",
			IssuanceCountry: "us",
			Holder:          true,
		}},
	}
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)

	sessions := domain.NewMockSearchSessionStore(ctrl)
	sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(t, "sess-1"), nil)

	m := metrics.New(prometheus.NewRegistry())
	uc := NewBookingUseCase(sessions, WithClock(testClock()), WithMetrics(m))
	uc.(*bookingUseCase).newID = func() string { return "order-1" }

	order, err := uc.CreateBooking(context.Background(), "sess-1", "1", []domain.Traveler{testTraveler()})

	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, domain.OrderStatusUnconfirmed, order.Status)
	assert.Equal(t, "sess-1", order.SessionID)
	assert.Equal(t, "1", order.Offer.OfferID)
	assert.Equal(t, testNow, order.CreatedAt)
	assert.Equal(t, domain.MockOrderRemark, order.Remarks[0].Text)
	assert.Equal(t, domain.TicketingDelayToCancel, order.TicketingAgreement.Option)

	require.Len(t, order.Travelers, 1)
	traveler := order.Travelers[0]
	assert.Equal(t, "1", traveler.ID, "id is taken from the traveler pricing")
	assert.Equal(t, domain.GenderFemale, traveler.Gender)
	assert.Equal(t, "MOBILE", traveler.Contact.Phones[0].DeviceType)
	assert.Equal(t, "PASSPORT", traveler.Documents[0].DocumentType)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal))
}

func TestBookingUseCase_CreateBooking_GeneratesUUID(t *testing.T) {
	ctrl := gomock.NewController(t)

	sessions := domain.NewMockSearchSessionStore(ctrl)
	sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(t, "sess-1"), nil)

	uc := NewBookingUseCase(sessions, WithClock(testClock()))

	order, err := uc.CreateBooking(context.Background(), "sess-1", "2", []domain.Traveler{testTraveler()})

	require.NoError(t, err)
	assert.Len(t, order.ID, 36)
}

func TestBookingUseCase_CreateBooking_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		offerID   string
		travelers func() []domain.Traveler
		loads     bool
		wantField string
		wantErr   func(error) bool
	}{
		{
			name:      "no travelers",
			offerID:   "1",
			travelers: func() []domain.Traveler { return nil },
			loads:     true,
			wantField: "travelers",
			wantErr:   domain.IsInvalidRequest,
		},
		{
			name:    "traveler count differs from offer",
			offerID: "1",
			travelers: func() []domain.Traveler {
				return []domain.Traveler{testTraveler(), testTraveler()}
			},
			loads:     true,
			wantField: "travelers",
			wantErr:   domain.IsInvalidRequest,
		},
		{
			name:    "missing last name",
			offerID: "1",
			travelers: func() []domain.Traveler {
				tr := testTraveler()
				tr.Name.LastName = " "
				return []domain.Traveler{tr}
			},
			loads:     true,
			wantField: "travelers[0].name.lastName",
			wantErr:   domain.IsInvalidRequest,
		},
		{
			name:    "birth date after today",
			offerID: "1",
			travelers: func() []domain.Traveler {
				tr := testTraveler()
				tr.DateOfBirth = "2026-06-02"
				return []domain.Traveler{tr}
			},
			loads:     true,
			wantField: "travelers[0].dateOfBirth",
			wantErr:   domain.IsInvalidRequest,
		},
		{
			name:    "bad email",
			offerID: "1",
			travelers: func() []domain.Traveler {
				tr := testTraveler()
				tr.Contact.EmailAddress = "not-an-email"
				return []domain.Traveler{tr}
			},
			loads:     true,
			wantField: "travelers[0].contact.emailAddress",
			wantErr:   domain.IsInvalidRequest,
		},
		{
			name:      "unknown offer",
			offerID:   "99",
			travelers: func() []domain.Traveler { return []domain.Traveler{testTraveler()} },
			loads:     true,
			wantErr:   domain.IsNotFound,
		},
		{
			name:      "missing offer id",
			offerID:   "",
			travelers: func() []domain.Traveler { return []domain.Traveler{testTraveler()} },
			wantField: "offerId",
			wantErr:   domain.IsInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			sessions := domain.NewMockSearchSessionStore(ctrl)
			if tt.loads {
				sessions.EXPECT().Load(gomock.Any(), "sess-1").Return(testSession(t, "sess-1"), nil)
			}
			m := metrics.New(prometheus.NewRegistry())

			uc := NewBookingUseCase(sessions, WithClock(testClock()), WithMetrics(m))

			order, err := uc.CreateBooking(context.Background(), "sess-1", tt.offerID, tt.travelers())

			require.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			if tt.wantField != "" {
				assert.Contains(t, err.Error(), tt.wantField)
			}
			assert.Equal(t, 0.0, testutil.ToFloat64(m.BookingsTotal))
		})
	}
}
