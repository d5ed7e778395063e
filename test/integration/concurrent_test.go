package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/session"
	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/test/mock"
)

// TestConcurrent_MultipleSearchRequests tests that concurrent searches in
// separate sessions are handled without interference.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	// Arrange
	provider := mock.NewProvider("mock").
		WithDelay(10 * time.Millisecond). // Small delay to increase overlap
		WithOffers(mock.SampleOffers(TravelDate, 3))
	ts := NewTestServer(provider)

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.Search(fmt.Sprintf("session-%d", idx), DefaultSearchBody())
		}(i)
	}

	wg.Wait()

	// Assert - All requests should succeed in their own session
	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		resp, err := results[i].ParseSearchResult()
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("session-%d", i), resp.SessionID)
		assert.Len(t, resp.Offers, 3, "request %d should have 3 offers", i)
	}

	assert.Equal(t, numRequests, provider.CallCount())
}

// TestConcurrent_GeneratedSessionsAreUnique tests that sessions started by
// the server never collide.
func TestConcurrent_GeneratedSessionsAreUnique(t *testing.T) {
	provider := mock.NewProvider("mock").WithOffers(mock.SampleOffers(TravelDate, 1))
	ts := NewTestServer(provider)

	numRequests := 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.Search("", DefaultSearchBody())
			mu.Lock()
			seen[resp.Headers.Get("X-Session-ID")] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, numRequests)
}

// TestConcurrent_FollowUpsAcrossStores runs search, details and pricing
// concurrently against both session store implementations.
func TestConcurrent_FollowUpsAcrossStores(t *testing.T) {
	stores := map[string]func(t *testing.T) domain.SearchSessionStore{
		"memory": func(t *testing.T) domain.SearchSessionStore {
			return session.NewMemoryStore(time.Hour, nil)
		},
		"redis": func(t *testing.T) domain.SearchSessionStore {
			return newRedisSessions(t, miniredis.RunT(t).Addr())
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			provider := mock.NewProvider("mock").WithOffers(mock.SampleOffers(TravelDate, 4))
			ts := NewTestServer(provider, WithSessions(newStore(t)))

			numSessions := 8
			var wg sync.WaitGroup
			failures := make(chan string, numSessions*3)

			for i := 0; i < numSessions; i++ {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					sessionID := fmt.Sprintf("%s-%d", name, idx)
					offerID := fmt.Sprintf("%d", idx%4+1)

					if resp := ts.Search(sessionID, DefaultSearchBody()); resp.Code != http.StatusOK {
						failures <- fmt.Sprintf("search %s: %d", sessionID, resp.Code)
						return
					}
					if resp := ts.OfferDetails(sessionID, offerID); resp.Code != http.StatusOK {
						failures <- fmt.Sprintf("details %s/%s: %d", sessionID, offerID, resp.Code)
					}
					if resp := ts.PriceOffer(sessionID, offerID); resp.Code != http.StatusOK {
						failures <- fmt.Sprintf("pricing %s/%s: %d", sessionID, offerID, resp.Code)
					}
				}(i)
			}

			wg.Wait()
			close(failures)

			for f := range failures {
				t.Error(f)
			}
			assert.Equal(t, numSessions, provider.CallCount())
			assert.Equal(t, numSessions, provider.PriceCount())
		})
	}
}
