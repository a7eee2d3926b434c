package migration

import (
	"fmt"

	"github.com/dshills/padmap/internal/version"
)

// Step upgrades documents within a range of schema versions to a newer
// schema version.
type Step struct {
	// From and Through bound the versions the step accepts.
	From    int
	Through int

	// To is the version of the step's output.
	To int

	// Description describes what the step does.
	Description string

	// Migrate rewrites the document.
	Migrate func(m *XMLMigrator, data []byte) ([]byte, error)
}

// Applies reports whether the step accepts documents of version v.
func (s Step) Applies(v int) bool {
	return v >= s.From && v <= s.Through
}

// Run runs the step on data.
func (s Step) Run(m *XMLMigrator, data []byte) ([]byte, error) {
	return s.Migrate(m, data)
}

// StepError reports a failed migration step.
type StepError struct {
	From int
	To   int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("migrating profile from version %d to %d: %v", e.From, e.To, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// defaultSteps returns the registered steps ordered by source version.
func defaultSteps() []Step {
	return []Step{
		{
			From:        version.MinConfigMigrationVersion,
			Through:     version.LatestConfigMigrationVersion,
			To:          version.ConfigFileVersion,
			Description: "keyboard slot codes become application key codes",
			Migrate:     migrateVersion6,
		},
	}
}
