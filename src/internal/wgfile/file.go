// Package wgfile splits WireGuard configuration text into sections and
// stitches sections back together.
//
// It knows nothing about field semantics: each section is an ordered list of
// raw key/value pairs that wgconf turns into typed values.
package wgfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/maksimkurb/wgconf/src/internal/errors"
	"github.com/maksimkurb/wgconf/src/internal/hashing"
	"github.com/maksimkurb/wgconf/src/internal/log"
	"github.com/maksimkurb/wgconf/src/internal/utils"
	"github.com/maksimkurb/wgconf/src/internal/wgconf"
)

// InterfaceName is the name of the interface section, without brackets.
const InterfaceName = "Interface"

// Section is one bracketed block of a configuration file.
type Section struct {
	// Name is the header without brackets, e.g. "Peer".
	Name string
	// Line is the 1-based line number of the header.
	Line int
	// Fields holds the section lines in file order. Duplicates are kept.
	Fields []wgconf.RawField
}

// Header returns the bracketed section header.
func (s Section) Header() string {
	return "[" + s.Name + "]"
}

// String renders the section with its fields in their original order,
// followed by a blank line.
func (s Section) String() string {
	var sb strings.Builder
	sb.WriteString(s.Header())
	sb.WriteByte('\n')
	for _, f := range s.Fields {
		sb.WriteString(f.Key)
		sb.WriteString(" = ")
		sb.WriteString(f.Value)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// File is a configuration file split into sections.
type File struct {
	Sections []Section
	// Checksum is the hex MD5 of the bytes the file was read from.
	Checksum string
	// Size is the number of bytes read.
	Size int64
}

// Read splits configuration text into sections.
//
// Blank lines and lines starting with '#' are skipped. Keys and values are
// trimmed of surrounding whitespace; everything after the first '=' is the
// value. A field before the first header, a line without '=', or a field
// with an empty key is a parse error.
func Read(r io.Reader) (*File, error) {
	proxy := hashing.NewMD5ReaderProxy(r)
	scanner := bufio.NewScanner(proxy)

	var (
		sections []Section
		current  *Section
		lineNo   int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name := strings.TrimSpace(strings.TrimSuffix(line[1:], "]"))
			if !strings.HasSuffix(line, "]") || name == "" {
				return nil, errors.NewParseError(lineNo, fmt.Sprintf("malformed section header %q", line))
			}
			sections = append(sections, Section{Name: name, Line: lineNo})
			current = &sections[len(sections)-1]
			continue
		}

		if current == nil {
			return nil, errors.NewParseError(lineNo, "field outside of a section")
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, errors.NewParseError(lineNo, fmt.Sprintf("expected 'Key = Value', got %q", line))
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, errors.NewParseError(lineNo, "empty field name")
		}

		current.Fields = append(current.Fields, wgconf.RawField{
			Key:   key,
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewInternalError("failed to read configuration", err)
	}

	return newFile(sections, proxy), nil
}

func newFile(sections []Section, checksum *hashing.ChecksumReaderProxy) *File {
	sum, _ := checksum.GetChecksum()
	log.Debugf("Read %d section(s), %d bytes, md5 %s", len(sections), checksum.BytesRead(), sum)
	return &File{
		Sections: sections,
		Checksum: sum,
		Size:     checksum.BytesRead(),
	}
}

// ReadFile reads and splits the configuration file at path.
func ReadFile(path string) (*File, error) {
	path = filepath.Clean(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer utils.CloseOrWarn(f)

	return Read(f)
}

// InterfaceSection returns the [Interface] section.
//
// A file must contain exactly one interface section.
func (f *File) InterfaceSection() (Section, error) {
	var found []Section
	for _, s := range f.Sections {
		if s.Name == InterfaceName {
			found = append(found, s)
		}
	}

	switch len(found) {
	case 0:
		return Section{}, errors.New(errors.ErrCodeParse, "no [Interface] section found")
	case 1:
		return found[0], nil
	default:
		return Section{}, errors.NewParseError(found[1].Line, "duplicate [Interface] section")
	}
}

// Interface builds the typed interface section of the file.
func (f *File) Interface() (wgconf.Interface, error) {
	s, err := f.InterfaceSection()
	if err != nil {
		return wgconf.Interface{}, err
	}

	if unknown := wgconf.UnknownFields(s.Fields); len(unknown) > 0 {
		log.Debugf("Ignoring unsupported [Interface] fields: %s", strings.Join(unknown, ", "))
	}

	return wgconf.FromRawPairs(s.Fields)
}

// Others returns every section except the interface one, in file order.
func (f *File) Others() []Section {
	var others []Section
	for _, s := range f.Sections {
		if s.Name != InterfaceName {
			others = append(others, s)
		}
	}
	return others
}

// Write renders iface canonically, then the extra [Interface] lines, then
// the other sections as they were read.
//
// Every value must fit on one line; anything else would change the meaning
// of the written file.
func Write(w io.Writer, iface wgconf.Interface, extra []wgconf.RawField, others []Section) error {
	if err := wgconf.CheckLines(iface); err != nil {
		return err
	}

	section := Section{Name: InterfaceName, Fields: append(iface.Fields(), extra...)}
	for _, s := range append([]Section{section}, others...) {
		if _, err := io.WriteString(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

// Format writes the file with a canonical [Interface] section.
//
// The five interface fields come first in fixed order, followed by the
// other interface lines (DNS, MTU, ...) in their original order. A file
// where an interface field is repeated is refused, since only the last value
// would survive. Comments are not preserved.
func (f *File) Format(w io.Writer) error {
	s, err := f.InterfaceSection()
	if err != nil {
		return err
	}

	if repeated := wgconf.RepeatedFields(s.Fields); len(repeated) > 0 {
		return errors.NewParseError(s.Line, fmt.Sprintf(
			"[Interface] repeats %s; merge the values into one line before formatting",
			strings.Join(repeated, ", ")))
	}

	iface, err := f.Interface()
	if err != nil {
		return err
	}
	return Write(w, iface, wgconf.ExtraFields(s.Fields), f.Others())
}
