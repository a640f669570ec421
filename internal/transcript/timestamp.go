package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// TimestampError reports an SRT timestamp that could not be parsed.
type TimestampError struct {
	Value  string
	Reason string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Value, e.Reason)
}

// ParseTimestamp converts an SRT timestamp (HH:MM:SS,mmm) into seconds.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &TimestampError{Value: value, Reason: "empty"}
	}
	hms := strings.Split(value, ":")
	if len(hms) != 3 {
		return 0, &TimestampError{Value: value, Reason: "expected HH:MM:SS,mmm"}
	}
	secParts := strings.Split(hms[2], ",")
	if len(secParts) != 2 {
		return 0, &TimestampError{Value: value, Reason: "missing milliseconds"}
	}

	fields := [4]string{hms[0], hms[1], secParts[0], secParts[1]}
	var nums [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, &TimestampError{Value: value, Reason: fmt.Sprintf("non-numeric component %q", field)}
		}
		if n < 0 {
			return 0, &TimestampError{Value: value, Reason: fmt.Sprintf("negative component %q", field)}
		}
		nums[i] = n
	}

	hours, minutes, seconds, millis := nums[0], nums[1], nums[2], nums[3]
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}
