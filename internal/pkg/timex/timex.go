package timex

import (
	"encoding/json"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON duration strings
// like "15s" or "168h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	d.Duration = parsed
	return nil
}
