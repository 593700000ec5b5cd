package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleRecords() []TrackingRecord {
	return []TrackingRecord{
		{TrackingNumber: "9400100000000000000001", OrderNumber: strPtr("1001"), Status: "In Transit", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-02T00:00:00Z"},
		{TrackingNumber: "9400100000000000000002", OrderNumber: nil, Status: "Delivered", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-03T00:00:00Z"},
		{TrackingNumber: "9400100000000000000003", OrderNumber: strPtr("1003"), Status: "DELIVERED", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-03T00:00:00Z"},
		{TrackingNumber: "9400100000000000000004", OrderNumber: strPtr(""), Status: "Out for Delivery", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-04T00:00:00Z"},
		{TrackingNumber: "9400100000000000000005", OrderNumber: strPtr("1005"), Status: "delivered ", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-04T00:00:00Z"},
	}
}

// TestSearchResult_Decode verifies the worker payload shape, including null order numbers.
func TestSearchResult_Decode(t *testing.T) {
	body := `{"results":[{"tracking_number":"A1","order_number":null,"status":"In Transit","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"},{"tracking_number":"B2","order_number":"77","status":"Delivered","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"}],"count":2}`

	var res SearchResult
	require.NoError(t, json.Unmarshal([]byte(body), &res))

	require.Len(t, res.Results, 2)
	assert.Equal(t, 2, res.Count)
	assert.Nil(t, res.Results[0].OrderNumber)
	assert.Equal(t, "77", *res.Results[1].OrderNumber)
}

func TestTrackingRecord_IsDelivered(t *testing.T) {
	cases := map[string]bool{
		"Delivered":        true,
		"delivered":        true,
		"DELIVERED":        true,
		"dElIvErEd":        true,
		"delivered ":       false,
		"Out for Delivery": false,
		"":                 false,
	}
	for status, want := range cases {
		t.Run(status, func(t *testing.T) {
			assert.Equal(t, want, TrackingRecord{Status: status}.IsDelivered())
		})
	}
}

func TestTrackingRecord_OrderLabel(t *testing.T) {
	assert.Equal(t, OrderPlaceholder, TrackingRecord{}.OrderLabel())
	assert.Equal(t, OrderPlaceholder, TrackingRecord{OrderNumber: strPtr("")}.OrderLabel())
	assert.Equal(t, "1001", TrackingRecord{OrderNumber: strPtr("1001")}.OrderLabel())
}

func TestFormatTimestamp(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		raw  string
		loc  *time.Location
		want string
	}{
		{"RFC3339 UTC", "2024-01-02T15:04:05Z", time.UTC, "1/2/2024, 3:04:05 PM"},
		{"RFC3339 converted", "2024-01-01T00:00:00Z", ny, "12/31/2023, 7:00:00 PM"},
		{"fractional seconds", "2024-07-04T09:30:00.123456Z", time.UTC, "7/4/2024, 9:30:00 AM"},
		{"offset", "2024-07-04T09:30:00+02:00", time.UTC, "7/4/2024, 7:30:00 AM"},
		{"zoneless", "2024-07-04T09:30:00", time.UTC, "7/4/2024, 9:30:00 AM"},
		{"space separated", "2024-07-04 21:30:00", time.UTC, "7/4/2024, 9:30:00 PM"},
		{"date only", "2024-07-04", time.UTC, "7/4/2024, 12:00:00 AM"},
		{"zoneless keeps wall clock", "2024-07-04T09:30:00", est, "7/4/2024, 9:30:00 AM"},
		{"space separated keeps wall clock", "2024-07-04 21:30:00", est, "7/4/2024, 9:30:00 PM"},
		{"date only is UTC midnight", "2024-07-04", est, "7/3/2024, 7:00:00 PM"},
		{"offset converted", "2024-07-04T09:30:00Z", est, "7/4/2024, 4:30:00 AM"},
		{"garbage", "yesterday", time.UTC, InvalidDate},
		{"empty", "", time.UTC, InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.raw, tt.loc))
		})
	}
}

func TestParseTimestamp_ZonelessUsesLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	got, ok := ParseTimestamp("2024-07-04T09:30:00", est)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 7, 4, 14, 30, 0, 0, time.UTC)))

	got, ok = ParseTimestamp("2024-07-04", est)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)))

	_, ok = ParseTimestamp("07/04/2024", est)
	assert.False(t, ok)
}

func TestFetchErrorMessage(t *testing.T) {
	assert.Equal(t, "", FetchErrorMessage(nil))
	assert.Equal(t, MsgFetchFailed, FetchErrorMessage(fmt.Errorf("worker answered 500: %w", ErrUnexpectedStatus)))
	assert.Equal(t, "dial tcp: connection refused", FetchErrorMessage(errors.New("dial tcp: connection refused")))
	assert.Equal(t, MsgGenericError, FetchErrorMessage(errors.New("")))
}

// TestViewState_NewIsLoading verifies a mounted view starts in the loading screen.
func TestViewState_NewIsLoading(t *testing.T) {
	s := NewViewState()
	assert.True(t, s.Loading)
	assert.Equal(t, ModeLoading, s.Mode())
	assert.Empty(t, s.Visible())
}

// TestViewState_AllRowsWhenFilterOff verifies N records produce N rows.
func TestViewState_AllRowsWhenFilterOff(t *testing.T) {
	for n := 0; n <= 5; n++ {
		s := NewViewState()
		s.Loaded(&SearchResult{Results: sampleRecords()[:n], Count: n})

		assert.Len(t, s.Rows(time.UTC), n)
		assert.Equal(t, fmt.Sprintf("Showing %d of %d packages", n, n), s.CountLine())
	}
}

// TestViewState_FilterProperty verifies R is visible iff lower(status) != "delivered".
func TestViewState_FilterProperty(t *testing.T) {
	s := NewViewState()
	s.Loaded(&SearchResult{Results: sampleRecords()})
	s.HideDelivered = true

	visible := map[string]bool{}
	for _, r := range s.Visible() {
		visible[r.TrackingNumber] = true
	}
	for _, r := range s.Records {
		assert.Equal(t, !r.IsDelivered(), visible[r.TrackingNumber], r.TrackingNumber)
	}
	assert.Equal(t, "Showing 3 of 5 packages", s.CountLine())
}

// TestViewState_ToggleRestoresOrder verifies on-then-off restores the full set unchanged.
func TestViewState_ToggleRestoresOrder(t *testing.T) {
	s := NewViewState()
	s.Loaded(&SearchResult{Results: sampleRecords()})
	before := append([]TrackingRecord(nil), s.Visible()...)

	s.HideDelivered = true
	_ = s.Visible()
	s.HideDelivered = false

	if diff := cmp.Diff(before, s.Visible()); diff != "" {
		t.Errorf("visible records changed after toggling (-before +after):\n%s", diff)
	}

	// toggling on twice gives the same projection
	s.HideDelivered = true
	first := s.Visible()
	second := s.Visible()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("filter is not idempotent:\n%s", diff)
	}
}

// TestViewState_SingleInTransitScenario covers one record with a null order number.
func TestViewState_SingleInTransitScenario(t *testing.T) {
	s := NewViewState()
	s.Loaded(&SearchResult{
		Results: []TrackingRecord{{
			TrackingNumber: "A1",
			Status:         "In Transit",
			CreatedAt:      "2024-01-01T00:00:00Z",
			UpdatedAt:      "2024-01-02T00:00:00Z",
		}},
		Count: 1,
	})

	rows := s.Rows(time.UTC)
	require.Len(t, rows, 1)
	assert.Equal(t, ModeTable, s.Mode())
	assert.Equal(t, "N/A", rows[0].OrderNumber)
	assert.Equal(t, "1/1/2024, 12:00:00 AM", rows[0].CreatedAt)
	assert.Equal(t, "1/2/2024, 12:00:00 AM", rows[0].UpdatedAt)
	assert.Equal(t, "Showing 1 of 1 packages", s.CountLine())
}

// TestViewState_DeliveredHiddenScenario covers a delivered record with the filter on.
func TestViewState_DeliveredHiddenScenario(t *testing.T) {
	s := NewViewState()
	s.Loaded(&SearchResult{
		Results: []TrackingRecord{{TrackingNumber: "A1", Status: "Delivered"}},
		Count:   1,
	})
	s.HideDelivered = true

	assert.Empty(t, s.Rows(time.UTC))
	assert.Equal(t, "Showing 0 of 1 packages", s.CountLine())
}

// TestViewState_Failed verifies errors replace the table and keep prior records.
func TestViewState_Failed(t *testing.T) {
	s := NewViewState()
	s.Failed(fmt.Errorf("worker answered 500: %w", ErrUnexpectedStatus))

	assert.False(t, s.Loading)
	assert.Equal(t, ModeError, s.Mode())
	assert.Equal(t, MsgFetchFailed, s.Err)
	assert.Empty(t, s.Records)

	loaded := NewViewState()
	loaded.Loaded(&SearchResult{Results: sampleRecords()})
	loaded.Failed(errors.New("boom"))
	assert.Len(t, loaded.Records, 5)
	assert.Equal(t, ModeError, loaded.Mode())
}

// TestViewState_LoadedClearsError verifies a successful fetch clears a prior error.
func TestViewState_LoadedClearsError(t *testing.T) {
	s := NewViewState()
	s.Settle(nil, errors.New("boom"))
	require.Equal(t, ModeError, s.Mode())

	s.Settle(&SearchResult{Results: sampleRecords()[:1]}, nil)
	assert.Equal(t, ModeTable, s.Mode())
	assert.Empty(t, s.Err)
}

// TestViewState_NullResults verifies a null results array is an empty table.
func TestViewState_NullResults(t *testing.T) {
	var res SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"results":null,"count":0}`), &res))

	s := NewViewState()
	s.Loaded(&res)
	assert.NotNil(t, s.Records)
	assert.Equal(t, "Showing 0 of 0 packages", s.CountLine())
}

func TestViewState_Clone(t *testing.T) {
	s := NewViewState()
	s.Loaded(&SearchResult{Results: sampleRecords()})

	c := s.Clone()
	c.Records[0].Status = "changed"

	assert.Equal(t, "In Transit", s.Records[0].Status)
}
