package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec  = errors.New("empty key specification")
	ErrUnknownKey = errors.New("unknown key")
)

// Parse parses a key specification into a Code.
//
// Supported formats:
//   - Key names, case-insensitive: "Escape", "f1", "KP_Enter", "Shift_R"
//   - Single printable characters: "a", "A", "1", ";"
//   - Numeric literals as stored in profiles: "0x1000030", "65"
func Parse(spec string) (Code, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return None, ErrEmptySpec
	}

	if code, ok := byName[strings.ToLower(spec)]; ok {
		return code, nil
	}

	if len(spec) == 1 {
		r := rune(spec[0])
		if l := Letter(r); l != None {
			return l, nil
		}
		if c := Code(r); c.IsPrintable() {
			return c, nil
		}
		return None, fmt.Errorf("%w: %q", ErrUnknownKey, spec)
	}

	if n, ok := parseNumber(spec); ok {
		return Code(n), nil
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownKey, spec)
}

// parseNumber accepts "0x"-prefixed hexadecimal or plain decimal.
func parseNumber(s string) (uint32, bool) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
