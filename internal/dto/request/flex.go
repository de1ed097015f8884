package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexValue accepts a JSON string or number and keeps its text form. Clients
// of the original API send ids, scores and years both ways, so the request
// layer stays permissive and the services coerce with proper errors.
type FlexValue string

func (v *FlexValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FlexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = FlexValue(n.String())
	return nil
}

func (v FlexValue) String() string { return string(v) }

func (v FlexValue) IsZero() bool { return strings.TrimSpace(string(v)) == "" }

// Int coerces the value to an integer.
func (v FlexValue) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(v)))
}
