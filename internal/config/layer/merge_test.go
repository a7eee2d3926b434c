package layer

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "nil dst",
			dst:      nil,
			src:      map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "nil src",
			dst:      map[string]any{"a": 1},
			src:      nil,
			expected: map[string]any{"a": 1},
		},
		{
			name:     "src overrides dst",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested merge",
			dst: map[string]any{
				"General": map[string]any{"LogLevel": 2},
			},
			src: map[string]any{
				"General": map[string]any{"LogFile": "x.log"},
			},
			expected: map[string]any{
				"General": map[string]any{"LogLevel": 2, "LogFile": "x.log"},
			},
		},
		{
			name:     "scalar replaces map",
			dst:      map[string]any{"General": map[string]any{"LogLevel": 2}},
			src:      map[string]any{"General": "flat"},
			expected: map[string]any{"General": "flat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.dst, tt.src)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("DeepMerge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetByPath(t *testing.T) {
	data := map[string]any{
		"LaunchInTray": 1,
		"General": map[string]any{
			"LogLevel": 3,
		},
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"LaunchInTray", 1, true},
		{"/LaunchInTray", 1, true},
		{"General/LogLevel", 3, true},
		{"General//LogLevel/", 3, true},
		{"General/Missing", nil, false},
		{"LaunchInTray/Child", nil, false},
		{"", nil, false},
		{"/", nil, false},
	}

	for _, tt := range tests {
		got, found := GetByPath(data, tt.path)
		if found != tt.found || got != tt.want {
			t.Errorf("GetByPath(%q) = %v, %v; want %v, %v", tt.path, got, found, tt.want, tt.found)
		}
	}

	if _, found := GetByPath(nil, "a"); found {
		t.Error("GetByPath(nil) should not find anything")
	}
}

func TestSetByPath(t *testing.T) {
	data := map[string]any{"General": "scalar"}

	SetByPath(data, "Controllers/0/Profile", "a.amgp")
	SetByPath(data, "General/LogLevel", 4)
	SetByPath(data, "", "ignored")

	want := map[string]any{
		"Controllers": map[string]any{
			"0": map[string]any{"Profile": "a.amgp"},
		},
		"General": map[string]any{"LogLevel": 4},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("SetByPath() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteByPath(t *testing.T) {
	data := map[string]any{
		"General": map[string]any{"LogLevel": 4, "LogFile": "x"},
	}

	if !DeleteByPath(data, "General/LogLevel") {
		t.Error("DeleteByPath(General/LogLevel) = false")
	}
	if DeleteByPath(data, "General/LogLevel") {
		t.Error("second delete should report false")
	}
	if DeleteByPath(data, "Missing/Key") {
		t.Error("delete under missing parent should report false")
	}
	if DeleteByPath(data, "") {
		t.Error("delete with empty path should report false")
	}
	if DeleteByPath(nil, "a") {
		t.Error("DeleteByPath(nil) should report false")
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{[]string{"", "LaunchInTray"}, "LaunchInTray"},
		{[]string{"General", "LogLevel"}, "General/LogLevel"},
		{[]string{"Controllers/0", "Profile"}, "Controllers/0/Profile"},
		{[]string{"/General/", "/LogLevel"}, "General/LogLevel"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := JoinPath(tt.segments...); got != tt.want {
			t.Errorf("JoinPath(%q) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func TestFlattenMap(t *testing.T) {
	data := map[string]any{
		"LaunchInTray": 1,
		"General": map[string]any{
			"LogLevel": 3,
			"Nested":   map[string]any{"Deep": "value"},
		},
	}

	want := map[string]any{
		"LaunchInTray":        1,
		"General/LogLevel":    3,
		"General/Nested/Deep": "value",
	}
	if diff := cmp.Diff(want, FlattenMap(data)); diff != "" {
		t.Errorf("FlattenMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffMaps(t *testing.T) {
	old := map[string]any{
		"General": map[string]any{"LogLevel": 4, "LogFile": "a.log"},
		"Removed": "value",
	}
	updated := map[string]any{
		"General": map[string]any{"LogLevel": 2, "LogFile": "a.log"},
		"Added":   "new",
	}

	added, modified, removed := DiffMaps(old, updated)
	sort.Strings(added)
	sort.Strings(modified)
	sort.Strings(removed)

	if diff := cmp.Diff([]string{"Added"}, added); diff != "" {
		t.Errorf("added mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"General/LogLevel"}, modified); diff != "" {
		t.Errorf("modified mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Removed"}, removed); diff != "" {
		t.Errorf("removed mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        any
		b        any
		expected bool
	}{
		{"nil nil", nil, nil, true},
		{"nil non-nil", nil, 1, false},
		{"same int", 1, 1, true},
		{"different int", 1, 2, false},
		{"same map", map[string]any{"a": 1}, map[string]any{"a": 1}, true},
		{"different map", map[string]any{"a": 1}, map[string]any{"a": 2}, false},
		{"same slice", []any{1, 2}, []any{1, 2}, true},
		{"different length slice", []any{1}, []any{1, 2}, false},
		{"map vs scalar", map[string]any{}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valuesEqual(tt.a, tt.b); got != tt.expected {
				t.Errorf("valuesEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
