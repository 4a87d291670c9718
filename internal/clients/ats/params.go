package ats

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

var ErrConflictingTimeFilters = errors.New("can't use both presetTimeFrame and explicit dates")

type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

type TimeFrame string

const (
	TimeFrameLast7Days  TimeFrame = "last7days"
	TimeFrameLast30Days TimeFrame = "last30days"
	TimeFrameLast90Days TimeFrame = "last90days"
)

func ToTimeFrame(s string) (TimeFrame, error) {
	switch s {
	case string(TimeFrameLast7Days):
		return TimeFrameLast7Days, nil
	case string(TimeFrameLast30Days):
		return TimeFrameLast30Days, nil
	case string(TimeFrameLast90Days):
		return TimeFrameLast90Days, nil
	default:
		return "", fmt.Errorf("invalid time frame: %v", s)
	}
}

const dateFormat = "2006-01-02"

// ListFilters is the filter set shared by every listing endpoint. Zero values
// mean "not set" and are omitted from the query string; the server performs
// the actual filtering, sorting and pagination.
type ListFilters struct {
	SearchTerm      string
	FromDate        time.Time
	ToDate          time.Time
	PresetTimeFrame TimeFrame
	SortingOptions  SortOrder
	Status          string
	Visibility      string
	HiringManagerID int
	Page            int
	PageSize        int
}

func (f ListFilters) Validate() error {

	if f.PresetTimeFrame != "" && (!f.FromDate.IsZero() || !f.ToDate.IsZero()) {
		return ErrConflictingTimeFilters
	}

	if f.PresetTimeFrame != "" {
		if _, err := ToTimeFrame(string(f.PresetTimeFrame)); err != nil {
			return err
		}
	}

	if f.SortingOptions != "" && f.SortingOptions != SortAscending && f.SortingOptions != SortDescending {
		return fmt.Errorf("invalid sorting option: %v", f.SortingOptions)
	}

	if f.Page < 0 {
		return fmt.Errorf("page must be non-negative")
	}

	if f.PageSize < 0 || f.PageSize > 100 {
		return fmt.Errorf("page size must be between 0 and 100")
	}

	return nil
}

func (f ListFilters) ToUrlParams() url.Values {

	params := url.Values{}

	if f.SearchTerm != "" {
		params.Add("searchTerm", f.SearchTerm)
	}

	if !f.FromDate.IsZero() {
		params.Add("fromDate", f.FromDate.Format(dateFormat))
	}

	if !f.ToDate.IsZero() {
		params.Add("toDate", f.ToDate.Format(dateFormat))
	}

	if f.PresetTimeFrame != "" {
		params.Add("presetTimeFrame", string(f.PresetTimeFrame))
	}

	if f.SortingOptions != "" {
		params.Add("sortingOptions", string(f.SortingOptions))
	}

	if f.Status != "" {
		params.Add("status", f.Status)
	}

	if f.Visibility != "" {
		params.Add("visibility", f.Visibility)
	}

	if f.HiringManagerID != 0 {
		params.Add("hiringManagerId", strconv.Itoa(f.HiringManagerID))
	}

	if f.Page != 0 {
		params.Add("page", strconv.Itoa(f.Page))
	}

	if f.PageSize != 0 {
		params.Add("pageSize", strconv.Itoa(f.PageSize))
	}

	return params
}
