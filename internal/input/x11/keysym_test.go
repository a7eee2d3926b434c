package x11

import "testing"

func TestKeycodeToKeysym(t *testing.T) {
	tests := []struct {
		name    string
		keycode int
		want    Keysym
	}{
		{"escape", 9, XKEscape},
		{"digit 1", 10, '1'},
		{"digit 0", 19, '0'},
		{"letter a", 38, 'a'},
		{"letter m", 58, 'm'},
		{"return", 36, XKReturn},
		{"space", 65, XKSpace},
		{"f1", 67, XKF1},
		{"f10", 76, XKF1 + 9},
		{"f11", 95, XKF1 + 10},
		{"f12", 96, XKF12},
		{"keypad enter", 104, XKKPEnter},
		{"right control", 105, XKControlR},
		{"up", 111, XKUp},
		{"delete", 119, XKDelete},
		{"below range", 8, NoSymbol},
		{"unassigned", 93, NoSymbol},
		{"negative", -1, NoSymbol},
		{"far out of range", 4096, NoSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeycodeToKeysym(tt.keycode); got != tt.want {
				t.Errorf("KeycodeToKeysym(%d) = %#x, want %#x", tt.keycode, got, tt.want)
			}
		})
	}
}
