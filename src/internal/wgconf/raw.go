package wgconf

// RawField is a single unparsed "Key = Value" line of a section.
type RawField struct {
	Key   string
	Value string
}

// rawInterface collects raw field values before validation. Absent fields
// stay empty and are rejected by FromRawValues like any other invalid value.
type rawInterface struct {
	privateKey string
	address    string
	listenPort string
	postUp     string
	postDown   string
}

// set stores value under key and reports whether key is a known field.
func (r *rawInterface) set(key, value string) bool {
	switch key {
	case FieldPrivateKey:
		r.privateKey = value
	case FieldAddress:
		r.address = value
	case FieldListenPort:
		r.listenPort = value
	case FieldPostUp:
		r.postUp = value
	case FieldPostDown:
		r.postDown = value
	default:
		return false
	}
	return true
}

func (r *rawInterface) build() (Interface, error) {
	return FromRawValues(r.privateKey, r.address, r.listenPort, r.postUp, r.postDown)
}

// FromRawFields creates an Interface from a field name to raw value mapping.
//
// Unknown keys are ignored. Missing keys are treated as empty values, so a
// mapping without e.g. ListenPort fails exactly like one with ListenPort = "".
func FromRawFields(fields map[string]string) (Interface, error) {
	var raw rawInterface
	for k, v := range fields {
		raw.set(k, v)
	}
	return raw.build()
}

// FromRawPairs creates an Interface from fields in file order.
//
// When a key occurs more than once the last occurrence wins. Unknown keys
// are ignored, missing keys are treated as empty values.
func FromRawPairs(pairs []RawField) (Interface, error) {
	var raw rawInterface
	for _, f := range pairs {
		raw.set(f.Key, f.Value)
	}
	return raw.build()
}

// UnknownFields returns the keys in pairs that are not interface fields,
// in order of first appearance.
func UnknownFields(pairs []RawField) []string {
	var (
		known   rawInterface
		unknown []string
		seen    = make(map[string]bool)
	)
	for _, f := range pairs {
		if known.set(f.Key, "") || seen[f.Key] {
			continue
		}
		seen[f.Key] = true
		unknown = append(unknown, f.Key)
	}
	return unknown
}

// ExtraFields returns every pair whose key is not an interface field, in
// order and with repeats, so the lines can be written back unchanged.
func ExtraFields(pairs []RawField) []RawField {
	var (
		known rawInterface
		extra []RawField
	)
	for _, f := range pairs {
		if !known.set(f.Key, "") {
			extra = append(extra, f)
		}
	}
	return extra
}

// RepeatedFields returns the interface field keys that occur more than once
// in pairs, in order of their second appearance.
func RepeatedFields(pairs []RawField) []string {
	var (
		known    rawInterface
		count    = make(map[string]int)
		repeated []string
	)
	for _, f := range pairs {
		if !known.set(f.Key, "") {
			continue
		}
		count[f.Key]++
		if count[f.Key] == 2 {
			repeated = append(repeated, f.Key)
		}
	}
	return repeated
}
