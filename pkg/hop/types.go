package hop

import (
	"bytes"
	"encoding/json"
	"strings"
)

// UserTags is the list of tags attached to a user. Modern brokers report it
// as a JSON array; brokers before 3.9 report a single comma-separated
// string. Both shapes decode; encoding always produces the comma-separated
// form, which every broker accepts on writes.
type UserTags []string

// UnmarshalJSON accepts either a JSON array of strings or one
// comma-separated string.
func (t *UserTags) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var joined string

		err := json.Unmarshal(trimmed, &joined)
		if err != nil {
			return err
		}

		if joined == "" {
			*t = UserTags{}

			return nil
		}

		*t = strings.Split(joined, ",")

		return nil
	}

	var tags []string

	err := json.Unmarshal(trimmed, &tags)
	if err != nil {
		return err
	}

	*t = tags

	return nil
}

// MarshalJSON encodes the tags as a comma-separated string.
func (t UserTags) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(t, ","))
}
