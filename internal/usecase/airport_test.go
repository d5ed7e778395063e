package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAirportUseCase_Lookup(t *testing.T) {
	paris := []domain.Airport{
		{IATACode: "CDG", Name: "CHARLES DE GAULLE", CityName: "PARIS"},
		{IATACode: "ORY", Name: "ORLY", CityName: "PARIS"},
	}

	tests := []struct {
		name    string
		keyword string
		setup   func(*domain.MockAirportLocator)
		want    []domain.Airport
		wantErr func(error) bool
	}{
		{
			name:    "found",
			keyword: "  Paris ",
			setup: func(m *domain.MockAirportLocator) {
				m.EXPECT().LookupAirports(gomock.Any(), "Paris").Return(paris, nil)
			},
			want: paris,
		},
		{
			name:    "nothing found returns empty slice",
			keyword: "Atlantis",
			setup: func(m *domain.MockAirportLocator) {
				m.EXPECT().LookupAirports(gomock.Any(), "Atlantis").Return(nil, nil)
			},
			want: []domain.Airport{},
		},
		{
			name:    "empty keyword",
			keyword: "   ",
			setup:   func(*domain.MockAirportLocator) {},
			wantErr: domain.IsInvalidRequest,
		},
		{
			name:    "keyword too short",
			keyword: "P",
			setup:   func(*domain.MockAirportLocator) {},
			wantErr: domain.IsInvalidRequest,
		},
		{
			name:    "provider failure",
			keyword: "Paris",
			setup: func(m *domain.MockAirportLocator) {
				m.EXPECT().LookupAirports(gomock.Any(), "Paris").
					Return(nil, domain.NewProviderStatusError("amadeus", 503, errors.New("unavailable")))
			},
			wantErr: func(err error) bool { var pe *domain.ProviderError; return errors.As(err, &pe) && pe.Retryable },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			locator := domain.NewMockAirportLocator(ctrl)
			tt.setup(locator)

			uc := NewAirportUseCase(locator, "amadeus", nil)

			airports, err := uc.Lookup(context.Background(), tt.keyword)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, airports)
		})
	}
}
