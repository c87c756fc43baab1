package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
	} else if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "general")...)
	}

	if c.API == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "api",
			Message:   "configuration must contain 'api' section",
		})
	} else if err := validate.Struct(c.API); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "api", "api")...)
	}

	if c.Template == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "template",
			Message:   "configuration must contain 'template' section",
		})
	} else if err := validate.Struct(c.Template); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "template", "template")...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// ValidateStruct runs the settings validator on any struct using the same
// custom tags and toml field names. The API uses it for request bodies.
func ValidateStruct(s interface{}, fieldPrefix string) error {
	if err := validate.Struct(s); err != nil {
		if errs := convertValidatorErrors(err, fieldPrefix, ""); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the toml tag name because of RegisterTagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
