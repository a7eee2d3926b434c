package migration

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/padmap/internal/input/handler"
	"github.com/dshills/padmap/internal/version"
)

func newMigrator(t *testing.T, doc string, backend string) *XMLMigrator {
	t.Helper()
	h, err := handler.New(backend)
	if err != nil {
		t.Fatal(err)
	}
	return NewXMLMigrator(strings.NewReader(doc), WithHandler(h))
}

func header() string {
	return `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
}

func rootStart() string {
	return fmt.Sprintf(`<joystick configversion="6" appversion="%s">`, version.ProgramVersion)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestNewXMLMigrator_FileVersion(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want int
	}{
		{"version 5", `<joystick configversion="5"></joystick>`, 5},
		{"version 2 after declaration", header() + `<joystick configversion="2"/>`, 2},
		{"padded", `<joystick configversion=" 3 "/>`, 3},
		{"current", `<joystick configversion="6"/>`, 6},
		{"missing attribute", `<joystick/>`, 0},
		{"empty attribute", `<joystick configversion=""/>`, 0},
		{"not a number", `<joystick configversion="five"/>`, 0},
		{"no root", ``, 0},
		{"not xml", `configversion="5"`, 0},
		{"broken start tag", `<joystick configversion="5`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewXMLMigrator(strings.NewReader(tt.doc))
			if got := m.FileVersion(); got != tt.want {
				t.Errorf("FileVersion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewXMLMigrator_Unreadable(t *testing.T) {
	if got := NewXMLMigrator(nil).FileVersion(); got != 0 {
		t.Errorf("nil reader FileVersion() = %d, want 0", got)
	}
	if got := NewXMLMigrator(errReader{}).FileVersion(); got != 0 {
		t.Errorf("failing reader FileVersion() = %d, want 0", got)
	}
}

func TestXMLMigrator_RequiresMigration(t *testing.T) {
	for v := -1; v <= 8; v++ {
		doc := fmt.Sprintf(`<joystick configversion="%d"/>`, v)
		m := NewXMLMigrator(strings.NewReader(doc))
		want := v >= 2 && v <= 5
		if got := m.RequiresMigration(); got != want {
			t.Errorf("version %d RequiresMigration() = %v, want %v", v, got, want)
		}
	}
}

func TestXMLMigrator_MigrateNotRequired(t *testing.T) {
	for _, doc := range []string{
		`<joystick configversion="6"><slot><code>38</code><mode>keyboard</mode></slot></joystick>`,
		`<joystick configversion="1"/>`,
		`<joystick/>`,
		`<joystick configversion="9"><unclosed></joystick>`,
	} {
		m := NewXMLMigrator(strings.NewReader(doc))
		before := m.FileVersion()
		got, err := m.Migrate()
		if err != nil {
			t.Errorf("Migrate(%q) error = %v", doc, err)
		}
		if got != "" {
			t.Errorf("Migrate(%q) = %q, want empty", doc, got)
		}
		if m.FileVersion() != before {
			t.Errorf("FileVersion() changed from %d to %d", before, m.FileVersion())
		}
	}
}

func TestXMLMigrator_MigrateKeyboardXTest(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<joystick configversion="5" appversion="2.10">
    <name>Pad</name>
    <slot>
        <code>38</code>
        <mode>keyboard</mode>
    </slot>
    <slot>
        <mode>keyboard</mode>
        <code>9</code>
    </slot>
</joystick>`

	want := header() + rootStart() + `
    <name>Pad</name>
    <slot>
        <code>0x41</code>
        <mode>keyboard</mode>
    </slot>
    <slot>
        <code>0x1000000</code>
        <mode>keyboard</mode>
    </slot>
</joystick>
`

	m := newMigrator(t, doc, handler.XTest)
	got, err := m.Migrate()
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Migrate() mismatch (-want +got):\n%s", diff)
	}
	if m.FileVersion() != version.ConfigFileVersion {
		t.Errorf("FileVersion() = %d, want %d", m.FileVersion(), version.ConfigFileVersion)
	}
}

func TestXMLMigrator_MigrateNativeFallback(t *testing.T) {
	doc := `<joystick configversion="4"><slot><code>250</code><mode>keyboard</mode></slot></joystick>`

	got, err := newMigrator(t, doc, handler.XTest).Migrate()
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if !strings.Contains(got, "<code>0x600000fa</code>") {
		t.Errorf("Migrate() = %q, want native-tagged code 0x600000fa", got)
	}
}

func TestXMLMigrator_MigrateKeyboardUInput(t *testing.T) {
	doc := `<joystick configversion="5"><slot><code>38</code><mode>keyboard</mode></slot></joystick>`

	want := header() + rootStart() + `
    <slot>
        <mode>keyboard</mode>
    </slot>
</joystick>
`

	got, err := newMigrator(t, doc, handler.UInput).Migrate()
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Migrate() mismatch (-want +got):\n%s", diff)
	}
}

func TestXMLMigrator_MigrateNonKeyboardKeepsDecimal(t *testing.T) {
	tests := []struct {
		mode string
		code string
		want string
	}{
		{"mousebutton", "3", "<code>3</code>"},
		{"mousemovement", "0042", "<code>42</code>"},
		{"cycle", " 17 ", "<code>17</code>"},
		{"mousespeedmod", "-5", "<code>-5</code>"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			for v := 2; v <= 5; v++ {
				doc := fmt.Sprintf(`<joystick configversion="%d"><slot><code>%s</code><mode>%s</mode></slot></joystick>`, v, tt.code, tt.mode)
				got, err := newMigrator(t, doc, handler.XTest).Migrate()
				if err != nil {
					t.Fatalf("Migrate() error = %v", err)
				}
				if !strings.Contains(got, tt.want) {
					t.Errorf("version %d: Migrate() = %q, want %s", v, got, tt.want)
				}
				if strings.Contains(got, "0x") {
					t.Errorf("version %d: Migrate() = %q, code re-encoded as hex", v, got)
				}
				if !strings.Contains(got, "<mode>"+tt.mode+"</mode>") {
					t.Errorf("version %d: Migrate() = %q, mode missing", v, got)
				}
			}
		})
	}
}

func TestXMLMigrator_MigrateUnconvertedSlotKept(t *testing.T) {
	tests := []struct {
		name string
		slot string
		want string
	}{
		{
			"zero code",
			`<slot><code>0</code><mode>keyboard</mode></slot>`,
			"<slot>\n        <code>0</code>\n        <mode>keyboard</mode>\n    </slot>",
		},
		{
			"no mode",
			`<slot><code>12</code></slot>`,
			"<slot>\n        <code>12</code>\n    </slot>",
		},
		{
			"empty slot",
			`<slot></slot>`,
			"<slot></slot>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<joystick configversion="5">` + tt.slot + `</joystick>`
			got, err := newMigrator(t, doc, handler.XTest).Migrate()
			if err != nil {
				t.Fatalf("Migrate() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Migrate() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestXMLMigrator_MigrateOutOfRangeCode(t *testing.T) {
	tests := []struct {
		name string
		slot string
		want string
	}{
		{
			"keyboard above 32 bits",
			`<slot><code>4294967334</code><mode>keyboard</mode></slot>`,
			"<code>4294967334</code>",
		},
		{
			"keyboard below int32",
			`<slot><code>-2147483649</code><mode>keyboard</mode></slot>`,
			"<code>-2147483649</code>",
		},
		{
			"mouse button above int32",
			`<slot><code>2147483648</code><mode>mousebutton</mode></slot>`,
			"<code>2147483648</code>",
		},
		{
			"mouse button at int32 max",
			`<slot><code>2147483647</code><mode>mousebutton</mode></slot>`,
			"<code>2147483647</code>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<joystick configversion="5">` + tt.slot + `</joystick>`
			got, err := newMigrator(t, doc, handler.XTest).Migrate()
			if err != nil {
				t.Fatalf("Migrate() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Migrate() = %q, want to contain %q", got, tt.want)
			}
			if strings.Contains(got, "0x") {
				t.Errorf("Migrate() = %q, out-of-range code converted to a key", got)
			}
		})
	}
}

func TestXMLMigrator_MigratePrologOnOwnLines(t *testing.T) {
	doc := `<?xml version="1.0"?>
<!-- saved profile --><?padmap keep?>
<joystick configversion="5"><name>Pad</name></joystick>
<!-- end -->`

	want := header() + `<!-- saved profile -->
<?padmap keep?>
` + rootStart() + `
    <name>Pad</name>
</joystick>
<!-- end -->
`

	got, err := newMigrator(t, doc, handler.XTest).Migrate()
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Migrate() mismatch (-want +got):\n%s", diff)
	}
}

func TestXMLMigrator_MigratePassThrough(t *testing.T) {
	doc := `<joystick configversion="3" xmlns:x="urn:x" name="pad">
<button index="1">
<code>5</code>
<slots>
<slot>
<extra kind="a">text &amp; more</extra>
<code>2</code>
<mode>mousebutton</mode>
</slot>
</slots>
</button>
<x:meta>v</x:meta>
</joystick>`

	want := header() +
		fmt.Sprintf(`<joystick configversion="6" appversion="%s" xmlns:x="urn:x" name="pad">`, version.ProgramVersion) + `
    <button index="1">
        <code>5</code>
        <slots>
            <slot>
                <extra kind="a">text &amp; more</extra>
                <code>2</code>
                <mode>mousebutton</mode>
            </slot>
        </slots>
    </button>
    <x:meta>v</x:meta>
</joystick>
`

	got, err := newMigrator(t, doc, handler.XTest).Migrate()
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Migrate() mismatch (-want +got):\n%s", diff)
	}
}

func TestXMLMigrator_MigrateStampsRoot(t *testing.T) {
	for v := 2; v <= 5; v++ {
		doc := fmt.Sprintf(`<joystick appversion="1.0" configversion="%d"><name>x</name></joystick>`, v)
		m := newMigrator(t, doc, handler.XTest)
		got, err := m.Migrate()
		if err != nil {
			t.Fatalf("Migrate() error = %v", err)
		}
		if !strings.HasPrefix(got, header()+rootStart()) {
			t.Errorf("version %d: Migrate() = %q, want root stamped with configversion 6", v, got)
		}
		if strings.Count(got, "configversion") != 1 || strings.Count(got, "appversion") != 1 {
			t.Errorf("version %d: Migrate() = %q, duplicated version attributes", v, got)
		}
		if again := NewXMLMigrator(strings.NewReader(got)); again.FileVersion() != 6 || again.RequiresMigration() {
			t.Errorf("migrated output has FileVersion() = %d", again.FileVersion())
		}
	}
}

func TestXMLMigrator_MigrateMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"mismatched end tag", `<joystick configversion="5"><slot><code>1</code></joystick>`},
		{"truncated", `<joystick configversion="5"><slot>`},
		{"bad token", `<joystick configversion="5"><slot><</slot></joystick>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMigrator(t, tt.doc, handler.XTest)
			got, err := m.Migrate()
			if err == nil {
				t.Fatalf("Migrate() = %q, want error", got)
			}
			if !errors.Is(err, ErrMalformedProfile) {
				t.Errorf("errors.Is(%v, ErrMalformedProfile) = false", err)
			}
			var serr *StepError
			if !errors.As(err, &serr) {
				t.Errorf("error %T is not *StepError", err)
			} else if serr.From != 5 || serr.To != 6 {
				t.Errorf("StepError = %d -> %d, want 5 -> 6", serr.From, serr.To)
			}
			if got != "" {
				t.Errorf("Migrate() output = %q on error", got)
			}
			if m.FileVersion() != 5 {
				t.Errorf("FileVersion() = %d after failed migration, want 5", m.FileVersion())
			}
		})
	}
}

func TestStep_Applies(t *testing.T) {
	steps := defaultSteps()
	if len(steps) == 0 {
		t.Fatal("no migration steps registered")
	}
	s := steps[0]
	for v, want := range map[int]bool{1: false, 2: true, 5: true, 6: false} {
		if got := s.Applies(v); got != want {
			t.Errorf("Applies(%d) = %v, want %v", v, got, want)
		}
	}
}
