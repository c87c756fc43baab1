package wgconf

import (
	"io"
	"strconv"
	"strings"
)

// Fields returns the section fields in canonical order with their canonical
// text values.
func (i Interface) Fields() []RawField {
	return []RawField{
		{Key: FieldPrivateKey, Value: i.privateKey.String()},
		{Key: FieldAddress, Value: i.address.String()},
		{Key: FieldListenPort, Value: strconv.FormatUint(uint64(i.listenPort), 10)},
		{Key: FieldPostUp, Value: i.postUp},
		{Key: FieldPostDown, Value: i.postDown},
	}
}

// String renders the section in canonical form: the header, one
// "Key = Value" line per field in fixed order, and a trailing blank line.
func (i Interface) String() string {
	var sb strings.Builder
	sb.WriteString(InterfaceTag)
	sb.WriteByte('\n')
	for _, f := range i.Fields() {
		sb.WriteString(f.Key)
		sb.WriteString(" = ")
		sb.WriteString(f.Value)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Render returns the canonical text of i.
func Render(i Interface) string {
	return i.String()
}

// WriteTo writes the canonical text of i to w.
func (i Interface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, i.String())
	return int64(n), err
}
