package hop

import (
	"bytes"
	"encoding/json"
)

// Page represents one page of a filtered listing. For non-paginated
// responses the decoder synthesizes a single page covering the whole set.
type Page[T any] struct {
	Items         []T `json:"items"`
	Page          int `json:"page"`
	PageCount     int `json:"page_count"`
	ItemCount     int `json:"item_count"`
	FilteredCount int `json:"filtered_count"`
	TotalCount    int `json:"total_count"`
}

// HasNext reports whether a page after this one exists.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.PageCount
}

// pagedEnvelope mirrors the paginated response shape with raw counters so
// that missing fields can be told apart from zero values.
type pagedEnvelope struct {
	Items         json.RawMessage `json:"items"`
	Page          *int            `json:"page"`
	PageCount     *int            `json:"page_count"`
	ItemCount     *int            `json:"item_count"`
	FilteredCount *int            `json:"filtered_count"`
	TotalCount    *int            `json:"total_count"`
}

// DecodePage decodes a list response body into a Page. The server returns a
// counted envelope for paginated requests and a bare JSON array otherwise;
// both shapes are accepted.
func DecodePage[T any](data []byte) (*Page[T], error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, NewDecodeError("empty list response", nil)
	}

	if trimmed[0] == '[' {
		var items []T

		err := json.Unmarshal(trimmed, &items)
		if err != nil {
			return nil, NewDecodeError("unpaged list is not an array of items", err)
		}

		n := len(items)

		return &Page[T]{
			Items:         items,
			Page:          1,
			PageCount:     1,
			ItemCount:     n,
			FilteredCount: n,
			TotalCount:    n,
		}, nil
	}

	var envelope pagedEnvelope

	err := json.Unmarshal(trimmed, &envelope)
	if err != nil {
		return nil, NewDecodeError("paged list envelope is malformed", err)
	}

	if envelope.Page == nil || envelope.PageCount == nil || envelope.ItemCount == nil ||
		envelope.FilteredCount == nil || envelope.TotalCount == nil {
		return nil, NewDecodeError("paged list envelope is missing counters", nil)
	}

	items := []T{}

	if len(envelope.Items) > 0 && !bytes.Equal(bytes.TrimSpace(envelope.Items), []byte("null")) {
		err = json.Unmarshal(envelope.Items, &items)
		if err != nil {
			return nil, NewDecodeError("items is not an array", err)
		}
	}

	return &Page[T]{
		Items:         items,
		Page:          *envelope.Page,
		PageCount:     *envelope.PageCount,
		ItemCount:     *envelope.ItemCount,
		FilteredCount: *envelope.FilteredCount,
		TotalCount:    *envelope.TotalCount,
	}, nil
}

// NextPageParams derives the parameters for the page after the given one,
// preserving every non-pagination filter. Requesting a page beyond
// PageCount is valid and yields an empty page.
func NextPageParams[T any](params *QueryParams, page *Page[T]) *QueryParams {
	next := &QueryParams{}

	if params != nil {
		*next = *params
		next.Columns = append([]string(nil), params.Columns...)
	}

	next.Page = page.Page + 1

	return next
}
