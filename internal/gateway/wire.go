package gateway

import (
	"fmt"
	"strconv"
	"strings"
)

// decimal accepts the backend's monetary values, which arrive either as a
// JSON number or as a decimal string (Django DecimalField serialization).
type decimal float64

func (d *decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid decimal value %q: %w", s, err)
	}
	*d = decimal(f)
	return nil
}
