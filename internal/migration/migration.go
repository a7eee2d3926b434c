// Package migration upgrades legacy XML controller profiles to the current
// profile schema.
//
// Profiles carry their schema version in the configversion attribute of the
// root element. Versions 2 through 5 are upgraded to version 6, which moved
// keyboard slot codes from raw X11 keycodes to the application's own key
// codes. Documents of any other version are left alone. Slots with a zero
// code or no mode keep their code and mode elements as read instead of
// losing them.
package migration

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/padmap/internal/input/handler"
	"github.com/dshills/padmap/internal/logging"
	"github.com/dshills/padmap/internal/version"
)

// ErrMalformedProfile is returned when a profile that needs migration is
// not well-formed XML.
var ErrMalformedProfile = errors.New("malformed profile")

// versionAttr is the root attribute holding the profile schema version.
const versionAttr = "configversion"

// XMLMigrator migrates one profile document.
type XMLMigrator struct {
	data        []byte
	fileVersion int

	handler handler.Handler
	log     zerolog.Logger
	steps   []Step
}

// Option configures an XMLMigrator.
type Option func(*XMLMigrator)

// WithHandler sets the event handler backend whose key mapper translates
// keyboard slot codes. The default is the process-wide factory's backend.
func WithHandler(h handler.Handler) Option {
	return func(m *XMLMigrator) {
		if h != nil {
			m.handler = h
		}
	}
}

// WithLogger sets the logger used to report slot conversions.
func WithLogger(l zerolog.Logger) Option {
	return func(m *XMLMigrator) {
		m.log = l
	}
}

// NewXMLMigrator reads the profile document from r. A nil or unreadable
// reader, or a root element without a numeric configversion attribute,
// gives file version 0.
func NewXMLMigrator(r io.Reader, opts ...Option) *XMLMigrator {
	m := &XMLMigrator{
		log:   logging.Default().Component("migration"),
		steps: defaultSteps(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.handler == nil {
		m.handler = handler.Default().Handler()
	}

	if r == nil {
		return m
	}
	data, err := io.ReadAll(r)
	if err != nil {
		m.log.Debug().Err(err).Msg("read profile")
		return m
	}
	m.data = data
	m.fileVersion = readFileVersion(data)
	return m
}

// FileVersion returns the schema version of the document. After a
// successful Migrate it is the version the document was migrated to.
func (m *XMLMigrator) FileVersion() int {
	return m.fileVersion
}

// RequiresMigration reports whether the document is a legacy version that
// can be upgraded.
func (m *XMLMigrator) RequiresMigration() bool {
	return m.fileVersion >= version.MinConfigMigrationVersion &&
		m.fileVersion <= version.LatestConfigMigrationVersion
}

// Migrate upgrades the document and returns the migrated XML. It returns
// "" when the document does not need migration.
func (m *XMLMigrator) Migrate() (string, error) {
	if !m.RequiresMigration() {
		return "", nil
	}

	out := m.data
	migrated := false
	for _, step := range m.steps {
		if !step.Applies(m.fileVersion) {
			continue
		}
		result, err := step.Run(m, out)
		if err != nil {
			return "", &StepError{From: m.fileVersion, To: step.To, Err: err}
		}
		m.log.Debug().
			Int("from", m.fileVersion).
			Int("to", step.To).
			Str("step", step.Description).
			Msg("profile migrated")
		out = result
		m.fileVersion = step.To
		migrated = true
	}

	if !migrated {
		return "", nil
	}
	return string(out), nil
}

// readFileVersion returns the configversion attribute of the root element,
// or 0 when it is missing or not a number.
func readFileVersion(data []byte) int {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.RawToken()
		if err != nil {
			return 0
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Space == "" && attr.Name.Local == versionAttr {
				v, err := strconv.Atoi(strings.TrimSpace(attr.Value))
				if err != nil {
					return 0
				}
				return v
			}
		}
		return 0
	}
}
