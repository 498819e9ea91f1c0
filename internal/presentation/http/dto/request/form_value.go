package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FormValue is a raw form field that clients may send as a JSON string or
// number. Numbers are kept in their shortest decimal form.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("expected a string or number, got %s", data)
	}
	*v = FormValue(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func (v FormValue) String() string {
	return string(v)
}

func optional(v *FormValue) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
