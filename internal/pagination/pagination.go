// Package pagination normalizes untrusted client-supplied paging parameters
// into safe bounds and builds the response envelope for list endpoints.
package pagination

// Paging bounds. Out-of-range client input is clamped, never rejected.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params holds a validated (page, pageSize) pair.
// Construct via Normalize; a zero Params is not valid.
type Params struct {
	Page     int
	PageSize int
}

// Normalize converts arbitrary integers into validated paging parameters:
// page < 1 becomes 1, pageSize < 1 becomes the default, pageSize above the
// maximum is clamped to it. In-range values pass through unchanged.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the number of rows to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the maximum number of rows for this page.
func (p Params) Limit() int {
	return p.PageSize
}

// Envelope wraps one page of data together with paging metadata.
type Envelope struct {
	Data            any   `json:"data"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewEnvelope computes the paging metadata for the given page of data.
// TotalPages is ceil(totalCount/pageSize) and 0 for an empty collection.
func NewEnvelope(data any, p Params, totalCount int64) Envelope {
	totalPages := int((totalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
	return Envelope{
		Data:            data,
		Page:            p.Page,
		PageSize:        p.PageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     int64(p.Page)*int64(p.PageSize) < totalCount,
		HasPreviousPage: p.Page > 1,
	}
}
