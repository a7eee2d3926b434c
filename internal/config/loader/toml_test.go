package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/settings.toml", `
LaunchInTray = 1
EventGenerator = "uinput"

[General]
LogLevel = 4
LogFile = "/tmp/padmap.log"
`)

	loader := NewTOMLLoaderWithFS(memfs, "/settings.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]any{
		"LaunchInTray":   int64(1),
		"EventGenerator": "uinput",
		"General": map[string]any{
			"LogLevel": int64(4),
			"LogFile":  "/tmp/padmap.log",
		},
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	memfs := NewMemFS()
	loader := NewTOMLLoaderWithFS(memfs, "/nonexistent.toml")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadEmpty(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.toml", "")

	config, err := NewTOMLLoaderWithFS(memfs, "/empty.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config == nil || len(config) != 0 {
		t.Errorf("config = %v, want empty non-nil map", config)
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[General
LogLevel = 4
`)

	loader := NewTOMLLoaderWithFS(memfs, "/invalid.toml")
	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line == 0 {
		t.Error("Line should be set from the decoder position")
	}
	if !strings.Contains(parseErr.Error(), "at line") {
		t.Errorf("Error() = %q, want line number", parseErr.Error())
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	loader := &TOMLLoader{}

	config, err := loader.LoadFromReader(strings.NewReader(`DisplaySDLMapping = true`))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["DisplaySDLMapping"] != true {
		t.Errorf("DisplaySDLMapping = %v, want true", config["DisplaySDLMapping"])
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	data := map[string]any{
		"LaunchInTray": int64(1),
		"General": map[string]any{
			"LogLevel": int64(3),
			"LogFile":  "padmap.log",
		},
	}

	if err := SaveTOML(path, data); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	got, err := NewTOMLLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(data, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("unexpected leftover temp file: %v", err)
	}
}

func TestEncodeTOML_Nil(t *testing.T) {
	out, err := EncodeTOML(nil)
	if err != nil {
		t.Fatalf("EncodeTOML(nil) error = %v", err)
	}
	if strings.TrimSpace(string(out)) != "" {
		t.Errorf("EncodeTOML(nil) = %q, want empty", out)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
