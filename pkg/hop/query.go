package hop

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents the filter/pagination parameters accepted by list
// endpoints. The zero value means "return all matching items unpaged".
type QueryParams struct {
	// Name filters items by name. When UseRegex is true it is interpreted
	// as a regular expression by the server.
	Name     string
	UseRegex bool

	// Page and PageSize request a single page of the filtered set. Page is
	// 1-based; when Page is 0 no pagination parameters are emitted and the
	// server returns the full set.
	Page     int
	PageSize int

	// Sort names the column to sort by; SortReverse flips the direction.
	Sort        string
	SortReverse bool

	// Columns restricts which fields the server includes in each item.
	Columns []string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithName sets a literal name filter.
func (q *QueryParams) WithName(name string) *QueryParams {
	q.Name = name
	q.UseRegex = false

	return q
}

// WithNameRegex sets a regular-expression name filter.
func (q *QueryParams) WithNameRegex(pattern string) *QueryParams {
	q.Name = pattern
	q.UseRegex = true

	return q
}

// WithPage requests a specific 1-based page.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size

	return q
}

// WithSort sets the sort column.
func (q *QueryParams) WithSort(column string) *QueryParams {
	q.Sort = column

	return q
}

// WithSortReverse reverses the sort direction.
func (q *QueryParams) WithSortReverse() *QueryParams {
	q.SortReverse = true

	return q
}

// WithColumns restricts the columns included in each item. Repeated calls
// append.
func (q *QueryParams) WithColumns(columns ...string) *QueryParams {
	q.Columns = append(q.Columns, columns...)

	return q
}

// ToValues converts the params to url.Values. Encoding url.Values sorts
// keys, so the same configuration always yields the same query string.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Name != "" {
		values.Set("name", q.Name)

		if q.UseRegex {
			values.Set("use_regex", "true")
		}
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))

		if q.PageSize > 0 {
			values.Set("page_size", strconv.Itoa(q.PageSize))
		}
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	if q.SortReverse {
		values.Set("sort_reverse", "true")
	}

	if len(q.Columns) > 0 {
		values.Set("columns", strings.Join(q.Columns, ","))
	}

	return values
}

// DetailsParams requests sampled time series for rate/length fields. Both
// blocks are optional; when unset the server returns point values only.
type DetailsParams struct {
	// RatesAge/RatesIncr control the message-rate sampling window, in
	// seconds.
	RatesAge  int
	RatesIncr int

	// LengthsAge/LengthsIncr control the queue-length sampling window, in
	// seconds.
	LengthsAge  int
	LengthsIncr int
}

// WithMessageRates sets the message-rate sampling window.
func (d *DetailsParams) WithMessageRates(age, incr int) *DetailsParams {
	d.RatesAge = age
	d.RatesIncr = incr

	return d
}

// WithLengths sets the queue-length sampling window.
func (d *DetailsParams) WithLengths(age, incr int) *DetailsParams {
	d.LengthsAge = age
	d.LengthsIncr = incr

	return d
}

// ToValues converts the sampling parameters to url.Values.
func (d *DetailsParams) ToValues() url.Values {
	values := url.Values{}

	if d == nil {
		return values
	}

	if d.RatesAge > 0 && d.RatesIncr > 0 {
		values.Set("msg_rates_age", strconv.Itoa(d.RatesAge))
		values.Set("msg_rates_incr", strconv.Itoa(d.RatesIncr))
	}

	if d.LengthsAge > 0 && d.LengthsIncr > 0 {
		values.Set("lengths_age", strconv.Itoa(d.LengthsAge))
		values.Set("lengths_incr", strconv.Itoa(d.LengthsIncr))
	}

	return values
}

// CombineValues merges query and sampling parameters into a single set of
// values. Either argument may be nil.
func CombineValues(q *QueryParams, d *DetailsParams) url.Values {
	values := q.ToValues()

	for key, vals := range d.ToValues() {
		for _, v := range vals {
			values.Set(key, v)
		}
	}

	return values
}
