package migration

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/padmap/internal/input/handler"
	"github.com/dshills/padmap/internal/input/key"
	"github.com/dshills/padmap/internal/input/x11"
	"github.com/dshills/padmap/internal/version"
)

const (
	slotElement = "slot"
	codeElement = "code"
	modeElement = "mode"

	keyboardMode = "keyboard"
)

// capturedText is the text of a code or mode element held back while a
// slot is open.
type capturedText struct {
	text string
	seen bool
}

// slotState tracks the slot element being rewritten.
type slotState struct {
	open  bool
	depth int // element depth below the slot

	code capturedText
	mode capturedText

	capturing *capturedText
	capDepth  int
	capText   strings.Builder
}

// migrateVersion6 rewrites the document for schema version 6. Every token
// is copied except the root element, which is stamped with the new version,
// and the code and mode children of slot elements, which are re-encoded
// when the slot closes.
func migrateVersion6(m *XMLMigrator, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")

	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		rootSeen bool
		depth    int
		slot     slotState
	)

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedProfile, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			t = flattenStart(t)
			switch {
			case !rootSeen:
				rootSeen = true
				err = enc.EncodeToken(stampRoot(t))
			case slot.capturing != nil:
				slot.capDepth++
			case !slot.open && t.Name.Local == slotElement:
				slot = slotState{open: true}
				err = enc.EncodeToken(t)
			case slot.open && slot.depth == 0 && t.Name.Local == codeElement:
				slot.capture(&slot.code)
			case slot.open && slot.depth == 0 && t.Name.Local == modeElement:
				slot.capture(&slot.mode)
			default:
				if slot.open {
					slot.depth++
				}
				err = enc.EncodeToken(t)
			}

		case xml.EndElement:
			depth--
			t = flattenEnd(t)
			switch {
			case slot.capturing != nil:
				if slot.capDepth > 0 {
					slot.capDepth--
					break
				}
				slot.capturing.text = slot.capText.String()
				slot.capturing.seen = true
				slot.capturing = nil
			case slot.open && slot.depth == 0:
				if err = m.writeSlotCode(enc, &slot); err == nil {
					err = enc.EncodeToken(t)
				}
				slot = slotState{}
			default:
				if slot.open {
					slot.depth--
				}
				err = enc.EncodeToken(t)
			}

		case xml.CharData:
			switch {
			case slot.capturing != nil:
				slot.capText.Write(t)
			case len(bytes.TrimSpace(t)) == 0:
				// Layout is regenerated by the encoder.
			default:
				err = enc.EncodeToken(t.Copy())
			}

		case xml.ProcInst:
			if slot.capturing != nil || t.Target == "xml" {
				break
			}
			err = encodeMisc(enc, t.Copy(), rootSeen, depth)

		case xml.Comment:
			if slot.capturing == nil {
				err = encodeMisc(enc, t.Copy(), rootSeen, depth)
			}

		case xml.Directive:
			if slot.capturing == nil {
				err = encodeMisc(enc, t.Copy(), rootSeen, depth)
			}
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedProfile, err)
		}
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProfile, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// encodeMisc writes a comment, processing instruction or directive.
// Outside the root element each one is put on a line of its own.
func encodeMisc(enc *xml.Encoder, tok xml.Token, rootSeen bool, depth int) error {
	if depth > 0 {
		return enc.EncodeToken(tok)
	}
	if rootSeen {
		if err := enc.EncodeToken(xml.CharData("\n")); err != nil {
			return err
		}
		return enc.EncodeToken(tok)
	}
	if err := enc.EncodeToken(tok); err != nil {
		return err
	}
	return enc.EncodeToken(xml.CharData("\n"))
}

// parseSlotCode reads a decimal slot code. Text that is not a 32-bit
// integer reads as 0.
func parseSlotCode(text string) int {
	code, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0
	}
	return int(code)
}

func (s *slotState) capture(target *capturedText) {
	s.capturing = target
	s.capDepth = 0
	s.capText.Reset()
}

// writeSlotCode writes the code and mode elements of the closing slot.
func (m *XMLMigrator) writeSlotCode(enc *xml.Encoder, slot *slotState) error {
	code := parseSlotCode(slot.code.text)
	mode := strings.TrimSpace(slot.mode.text)

	if code == 0 || mode == "" {
		// Nothing to convert, keep what was read.
		if slot.code.seen {
			if err := writeTextElement(enc, codeElement, slot.code.text); err != nil {
				return err
			}
		}
		if slot.mode.seen {
			return writeTextElement(enc, modeElement, slot.mode.text)
		}
		return nil
	}

	if mode == keyboardMode {
		if converted := m.keyboardCode(code); converted != "" {
			if err := writeTextElement(enc, codeElement, converted); err != nil {
				return err
			}
		}
	} else {
		if err := writeTextElement(enc, codeElement, strconv.Itoa(code)); err != nil {
			return err
		}
	}
	return writeTextElement(enc, modeElement, mode)
}

// keyboardCode converts a legacy X11 keycode to the hex text of an
// application key code. Codes the backend cannot translate keep the raw
// keycode tagged as native; "" means no code can be written.
func (m *XMLMigrator) keyboardCode(keycode int) string {
	if m.handler.Identifier() != handler.XTest {
		m.log.Debug().
			Int("keycode", keycode).
			Str("backend", m.handler.Identifier()).
			Msg("backend cannot translate X11 keycodes, dropping slot code")
		return ""
	}

	sym := x11.KeycodeToKeysym(keycode)
	mapped := m.handler.Mapper().ReturnKey(sym)
	if mapped > 0 {
		m.log.Trace().
			Int("keycode", keycode).
			Uint32("keysym", uint32(sym)).
			Str("key", mapped.String()).
			Msg("slot code converted")
		return mapped.Hex()
	}

	if keycode > 0 {
		native := key.Code(keycode) | key.NativeKeyPrefix
		m.log.Debug().
			Int("keycode", keycode).
			Str("key", native.String()).
			Msg("no key for keycode, keeping native code")
		return native.Hex()
	}
	return ""
}

// stampRoot returns the root element carrying the current schema version
// and program version. Other attributes are kept in order.
func stampRoot(start xml.StartElement) xml.StartElement {
	attrs := []xml.Attr{
		{Name: xml.Name{Local: versionAttr}, Value: strconv.Itoa(version.ConfigFileVersion)},
		{Name: xml.Name{Local: "appversion"}, Value: version.ProgramVersion},
	}
	for _, a := range start.Attr {
		if a.Name.Space == "" && (a.Name.Local == versionAttr || a.Name.Local == "appversion") {
			continue
		}
		attrs = append(attrs, a)
	}
	start.Attr = attrs
	return start
}

func writeTextElement(enc *xml.Encoder, name, text string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// flattenStart folds namespace prefixes into local names so the encoder
// writes them back exactly as read.
func flattenStart(start xml.StartElement) xml.StartElement {
	start = start.Copy()
	start.Name = flattenName(start.Name)
	for i := range start.Attr {
		start.Attr[i].Name = flattenName(start.Attr[i].Name)
	}
	return start
}

func flattenEnd(end xml.EndElement) xml.EndElement {
	end.Name = flattenName(end.Name)
	return end
}

func flattenName(n xml.Name) xml.Name {
	if n.Space == "" {
		return n
	}
	return xml.Name{Local: n.Space + ":" + n.Local}
}
