package domain

import (
	"errors"
	"fmt"
	"time"
)

// Messages shown in place of the table when a fetch fails.
const (
	MsgFetchFailed  = "Failed to fetch tracking data"
	MsgGenericError = "An error occurred"
)

// ErrUnexpectedStatus marks a non-2xx answer from the worker.
var ErrUnexpectedStatus = errors.New("unexpected status")

// FetchErrorMessage collapses any fetch failure into the text shown to the user.
func FetchErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnexpectedStatus):
		return MsgFetchFailed
	case err.Error() == "":
		return MsgGenericError
	default:
		return err.Error()
	}
}

// ViewState is the view model of one mounted tracking view.
type ViewState struct {
	Loading       bool
	Err           string
	Records       []TrackingRecord
	HideDelivered bool
}

// NewViewState returns the state of a freshly mounted view.
func NewViewState() ViewState {
	return ViewState{Loading: true}
}

// Loaded applies a successful fetch. The collection is replaced wholesale.
func (s *ViewState) Loaded(res *SearchResult) {
	s.Loading = false
	s.Err = ""
	if res == nil || res.Results == nil {
		s.Records = []TrackingRecord{}
		return
	}
	s.Records = res.Results
}

// Failed applies a failed fetch; records are kept as they were.
func (s *ViewState) Failed(err error) {
	s.Loading = false
	s.Err = FetchErrorMessage(err)
	if s.Err == "" {
		s.Err = MsgGenericError
	}
}

// Settle applies whichever outcome a fetch produced.
func (s *ViewState) Settle(res *SearchResult, err error) {
	if err != nil {
		s.Failed(err)
		return
	}
	s.Loaded(res)
}

// Visible returns the records that pass the hide-delivered filter, in order.
// It never modifies Records.
func (s ViewState) Visible() []TrackingRecord {
	if !s.HideDelivered {
		return s.Records
	}
	out := make([]TrackingRecord, 0, len(s.Records))
	for _, r := range s.Records {
		if !r.IsDelivered() {
			out = append(out, r)
		}
	}
	return out
}

// Total is the number of stored records.
func (s ViewState) Total() int {
	return len(s.Records)
}

// CountLine reports visible and total counts.
func (s ViewState) CountLine() string {
	return fmt.Sprintf("Showing %d of %d packages", len(s.Visible()), s.Total())
}

// Mode tells a front end which of the mutually exclusive screens to draw.
type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeTable
)

// Mode returns the screen for the current state. Loading wins over error,
// error wins over data.
func (s ViewState) Mode() Mode {
	switch {
	case s.Loading:
		return ModeLoading
	case s.Err != "":
		return ModeError
	default:
		return ModeTable
	}
}

// Clone returns a copy that shares no slice with s.
func (s ViewState) Clone() ViewState {
	c := s
	if s.Records != nil {
		c.Records = append([]TrackingRecord(nil), s.Records...)
	}
	return c
}

// Rows formats the visible records in loc.
func (s ViewState) Rows(loc *time.Location) []Row {
	visible := s.Visible()
	rows := make([]Row, 0, len(visible))
	for _, r := range visible {
		rows = append(rows, r.ToRow(loc))
	}
	return rows
}
