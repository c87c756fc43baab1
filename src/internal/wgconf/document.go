package wgconf

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/maksimkurb/wgconf/src/internal/errors"
)

// Document is the structured export form of an interface section, used for
// TOML and JSON output. It carries plain strings and is validated again when
// converted back with Interface.
type Document struct {
	Interface DocumentInterface `toml:"Interface" json:"interface" yaml:"interface"`
}

// DocumentInterface holds the canonical text of each interface field.
type DocumentInterface struct {
	PrivateKey string `toml:"PrivateKey" json:"private_key" yaml:"private_key"`
	Address    string `toml:"Address" json:"address" yaml:"address"`
	ListenPort uint16 `toml:"ListenPort" json:"listen_port" yaml:"listen_port"`
	PostUp     string `toml:"PostUp" json:"post_up" yaml:"post_up"`
	PostDown   string `toml:"PostDown" json:"post_down" yaml:"post_down"`
}

// NewDocument converts i to its export form.
func NewDocument(i Interface) Document {
	return Document{
		Interface: DocumentInterface{
			PrivateKey: i.privateKey.String(),
			Address:    i.address.String(),
			ListenPort: i.listenPort,
			PostUp:     i.postUp,
			PostDown:   i.postDown,
		},
	}
}

// Build validates the document and returns the section it describes.
func (d Document) Build() (Interface, error) {
	return d.Interface.Build()
}

// Build validates the fields through FromRawValues. Hook commands must also
// pass CheckLines, since a document is usually written out as text next.
func (d DocumentInterface) Build() (Interface, error) {
	i, err := FromRawValues(
		d.PrivateKey,
		d.Address,
		strconv.FormatUint(uint64(d.ListenPort), 10),
		d.PostUp,
		d.PostDown,
	)
	if err != nil {
		return Interface{}, err
	}
	if err := CheckLines(i); err != nil {
		return Interface{}, err
	}
	return i, nil
}

// MarshalTOML renders i as a TOML document with an [Interface] table.
func MarshalTOML(i Interface) ([]byte, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(NewDocument(i)); err != nil {
		return nil, errors.NewInternalError("failed to encode TOML", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalTOML parses a TOML document produced by MarshalTOML.
func UnmarshalTOML(data []byte) (Interface, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Interface{}, errors.Wrap(errors.ErrCodeParse, "failed to decode TOML", err)
	}
	return doc.Build()
}

// MarshalYAML renders i as a YAML document with an interface mapping.
func MarshalYAML(i Interface) ([]byte, error) {
	buf := bytes.Buffer{}
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(i)); err != nil {
		return nil, errors.NewInternalError("failed to encode YAML", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.NewInternalError("failed to encode YAML", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML parses a YAML document produced by MarshalYAML.
func UnmarshalYAML(data []byte) (Interface, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Interface{}, errors.Wrap(errors.ErrCodeParse, "failed to decode YAML", err)
	}
	return doc.Build()
}

// MarshalJSON implements json.Marshaler using the Document form.
func (i Interface) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewDocument(i).Interface)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded fields are validated
// exactly like raw values read from a configuration file.
func (i *Interface) UnmarshalJSON(data []byte) error {
	var d DocumentInterface
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := d.Build()
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
