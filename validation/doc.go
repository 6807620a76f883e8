// Package validation checks request and configuration structs before they
// are sent anywhere.
//
// Rules are declared with `validate` struct tags and evaluated by
// go-playground/validator. Field names in failures use the struct's json tag,
// so they match the names the API uses on the wire. Failures are returned as
// an errors.AppError with code INVALID_INPUT and the per-field problems under
// the "fields" detail.
//
//	type ListParams struct {
//	    Limit *int `json:"limit" validate:"omitempty,min=1,max=200"`
//	}
//	err := validation.Validate(params)
//
// The "enum" tag accepts any value implementing Enum and fails for values
// outside the type's closed set.
package validation
