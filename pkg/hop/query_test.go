package hop_test

import (
	"net/url"
	"testing"

	"github.com/ifyun/hop/pkg/hop"
	"github.com/stretchr/testify/assert"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *hop.QueryParams
		expected url.Values
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name:     "empty params",
			params:   hop.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:   "literal name filter",
			params: hop.NewQueryParams().WithName("orders"),
			expected: url.Values{
				"name": []string{"orders"},
			},
		},
		{
			name:   "regex name filter",
			params: hop.NewQueryParams().WithNameRegex("^orders\\..*"),
			expected: url.Values{
				"name":      []string{"^orders\\..*"},
				"use_regex": []string{"true"},
			},
		},
		{
			name:   "pagination",
			params: hop.NewQueryParams().WithPage(2).WithPageSize(50),
			expected: url.Values{
				"page":      []string{"2"},
				"page_size": []string{"50"},
			},
		},
		{
			name:     "page size without page is not emitted",
			params:   hop.NewQueryParams().WithPageSize(50),
			expected: url.Values{},
		},
		{
			name:   "sorting",
			params: hop.NewQueryParams().WithSort("messages").WithSortReverse(),
			expected: url.Values{
				"sort":         []string{"messages"},
				"sort_reverse": []string{"true"},
			},
		},
		{
			name:   "columns",
			params: hop.NewQueryParams().WithColumns("name", "vhost").WithColumns("messages"),
			expected: url.Values{
				"columns": []string{"name,vhost,messages"},
			},
		},
		{
			name: "all options",
			params: hop.NewQueryParams().
				WithNameRegex("^hop\\.").
				WithPage(1).
				WithPageSize(10).
				WithSort("name").
				WithColumns("name"),
			expected: url.Values{
				"name":      []string{"^hop\\."},
				"use_regex": []string{"true"},
				"page":      []string{"1"},
				"page_size": []string{"10"},
				"sort":      []string{"name"},
				"columns":   []string{"name"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.params.ToValues())
		})
	}
}

func TestQueryParams_WithNameResetsRegex(t *testing.T) {
	t.Parallel()

	params := hop.NewQueryParams().WithNameRegex("^a").WithName("exact")
	assert.Equal(t, url.Values{"name": []string{"exact"}}, params.ToValues())
}

func TestDetailsParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *hop.DetailsParams
		expected url.Values
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name:     "empty params",
			params:   &hop.DetailsParams{},
			expected: url.Values{},
		},
		{
			name:   "message rates",
			params: (&hop.DetailsParams{}).WithMessageRates(60, 5),
			expected: url.Values{
				"msg_rates_age":  []string{"60"},
				"msg_rates_incr": []string{"5"},
			},
		},
		{
			name:   "lengths",
			params: (&hop.DetailsParams{}).WithLengths(600, 60),
			expected: url.Values{
				"lengths_age":  []string{"600"},
				"lengths_incr": []string{"60"},
			},
		},
		{
			name:     "age without increment is not emitted",
			params:   &hop.DetailsParams{RatesAge: 60},
			expected: url.Values{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.params.ToValues())
		})
	}
}

func TestCombineValues(t *testing.T) {
	t.Parallel()

	query := hop.NewQueryParams().WithName("orders").WithPage(1).WithPageSize(10)
	details := (&hop.DetailsParams{}).WithMessageRates(60, 5)

	combined := hop.CombineValues(query, details)

	assert.Equal(t, url.Values{
		"name":           []string{"orders"},
		"page":           []string{"1"},
		"page_size":      []string{"10"},
		"msg_rates_age":  []string{"60"},
		"msg_rates_incr": []string{"5"},
	}, combined)
}

func TestCombineValues_NilArguments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, url.Values{}, hop.CombineValues(nil, nil))
}
