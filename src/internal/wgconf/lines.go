package wgconf

import (
	"strings"

	"github.com/maksimkurb/wgconf/src/internal/errors"
)

// Hook values that cannot be written as a single "Key = Value" line.
const (
	msgHookLineBreak  = " must be a single line"
	msgHookWhitespace = " must not start or end with whitespace"
)

// CheckLines reports a validation error when a hook value of i would not
// survive a render and re-read: it contains a line break, or surrounding
// whitespace the reader trims.
//
// Constructors store hooks verbatim; callers that accept sections from
// structured input and write them as text check them here.
func CheckLines(i Interface) error {
	for _, f := range []RawField{
		{Key: FieldPostUp, Value: i.postUp},
		{Key: FieldPostDown, Value: i.postDown},
	} {
		if err := checkLine(f); err != nil {
			return err
		}
	}
	return nil
}

func checkLine(f RawField) error {
	if strings.ContainsAny(f.Value, "\r\n") {
		return errors.NewValidationFailed(f.Key + msgHookLineBreak)
	}
	if strings.TrimSpace(f.Value) != f.Value {
		return errors.NewValidationFailed(f.Key + msgHookWhitespace)
	}
	return nil
}
