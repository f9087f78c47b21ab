package client

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/ifyun/hop/pkg/hop"
)

// apiPath joins escaped path segments under /api. The default vhost "/"
// escapes to %2F, so every vhost/name segment goes through PathEscape.
func apiPath(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, "/api")

	for _, segment := range segments {
		parts = append(parts, url.PathEscape(segment))
	}

	return strings.Join(parts, "/")
}

// unmarshal decodes a response body, mapping failures to DecodeError.
func unmarshal(body []byte, v interface{}, what string) error {
	err := json.Unmarshal(body, v)
	if err != nil {
		return hop.NewDecodeError(what+" response did not match expected shape", err)
	}

	return nil
}

// normalizePaged defaults the page number for paged listings. The caller's
// params are never modified.
func normalizePaged(params *hop.QueryParams) *hop.QueryParams {
	if params == nil {
		return hop.NewQueryParams().WithPage(1)
	}

	if params.Page == 0 {
		defaulted := *params
		defaulted.Page = 1

		return &defaulted
	}

	return params
}
