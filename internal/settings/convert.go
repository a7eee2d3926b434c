package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// ToBool converts a stored value to a bool. Numbers are true when
// non-zero; strings accept "true", "yes", "on" and non-zero integers.
func ToBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		switch s {
		case "true", "yes", "on":
			return true
		case "", "false", "no", "off":
			return false
		}
		n, err := strconv.ParseFloat(s, 64)
		return err == nil && n != 0
	case nil:
		return false
	default:
		return ToInt(v) != 0
	}
}

// ToInt converts a stored value to an int. Unconvertible values yield 0.
func ToInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return int(x)
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return int(x)
	case uint64:
		return int(x)
	case float32:
		return int(x)
	case float64:
		return int(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.ParseInt(s, 0, 64); err == nil {
			return int(n)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// ToString converts a stored value to its string form. nil yields "".
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
