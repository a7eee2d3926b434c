package migration

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

// BackupSuffix is appended to the profile path for the pre-migration copy.
const BackupSuffix = ".bak"

// FileOptions controls MigrateFile.
type FileOptions struct {
	// Backup keeps a copy of the original file at path + BackupSuffix.
	Backup bool

	// DryRun migrates in memory only.
	DryRun bool
}

// FileResult describes the outcome of MigrateFile.
type FileResult struct {
	Path        string
	FromVersion int
	ToVersion   int
	Changed     bool
	BackupPath  string
	Output      string
}

// MigrateFile migrates the profile at path in place. The file is replaced
// atomically; it is left untouched when no migration is required or when
// fopts.DryRun is set.
func MigrateFile(path string, fopts FileOptions, opts ...Option) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	m := NewXMLMigrator(bytes.NewReader(data), opts...)
	res := &FileResult{
		Path:        path,
		FromVersion: m.FileVersion(),
		ToVersion:   m.FileVersion(),
	}
	if !m.RequiresMigration() {
		return res, nil
	}

	out, err := m.Migrate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.ToVersion = m.FileVersion()
	res.Output = out
	res.Changed = out != "" && out != string(data)
	if !res.Changed || fopts.DryRun {
		return res, nil
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if fopts.Backup {
		res.BackupPath = path + BackupSuffix
		if err := renameio.WriteFile(res.BackupPath, data, perm); err != nil {
			return nil, fmt.Errorf("write profile backup: %w", err)
		}
	}

	if err := replaceFile(path, []byte(out), perm, m); err != nil {
		return nil, err
	}
	return res, nil
}

func replaceFile(path string, data []byte, perm fs.FileMode, m *XMLMigrator) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending profile file: %w", err)
	}
	defer func() {
		// No-op once the file was committed.
		if err := pendingFile.Cleanup(); err != nil {
			m.log.Debug().Err(err).Msg("cleanup pending profile file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write profile data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace profile: %w", err)
	}
	return nil
}
