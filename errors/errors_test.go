package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_MissingField_Success(t *testing.T) {
	err := MissingField("audio_url")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if err.Details["field"] != "audio_url" {
		t.Errorf("expected field=audio_url, got %v", err.Details["field"])
	}
	if !IsValidation(err) {
		t.Error("MissingField should be a validation error")
	}
}

func TestAppError_InvalidURL_Success(t *testing.T) {
	err := InvalidURL("https://evil.example/v2/transcript", "https://api.assemblyai.com/v2/")
	if err.Code != ErrCodeInvalidURL {
		t.Errorf("expected INVALID_URL, got %s", err.Code)
	}
	if err.Details["base_url"] != "https://api.assemblyai.com/v2/" {
		t.Errorf("unexpected base_url detail: %v", err.Details["base_url"])
	}
	if IsValidation(err) {
		t.Error("INVALID_URL should not be a validation error")
	}
}

func TestAppError_Deserialization_Success(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := Deserialization("Transcript", cause)
	if err.Code != ErrCodeDeserialization {
		t.Errorf("expected DESERIALIZATION_ERROR, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad")
	err.WithDetail("field", "limit")
	if err.Details["field"] != "limit" {
		t.Errorf("expected field=limit, got %v", err.Details["field"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := Validation("limit: must be at least 1")
	if got := err.Error(); got != "INVALID_INPUT: limit: must be at least 1" {
		t.Errorf("unexpected error string %q", got)
	}

	wrapped := Internal(fmt.Errorf("boom"))
	if !strings.Contains(wrapped.Error(), "(cause: boom)") {
		t.Errorf("expected cause in error string, got %q", wrapped.Error())
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       ErrorCode
		validation bool
	}{
		{"Validation", Validation("x"), ErrCodeInvalidInput, true},
		{"MissingField", MissingField("id"), ErrCodeMissingField, true},
		{"InvalidFormat", InvalidFormat("created_on", "YYYY-MM-DD"), ErrCodeInvalidFormat, true},
		{"InvalidURL", InvalidURL("a", "b"), ErrCodeInvalidURL, false},
		{"Deserialization", Deserialization("Upload", nil), ErrCodeDeserialization, false},
		{"Internal", Internal(nil), ErrCodeInternal, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if IsValidationCode(tc.err.Code) != tc.validation {
				t.Errorf("expected validation=%v for %s", tc.validation, tc.err.Code)
			}
		})
	}
}

func TestHasCode_ThroughWrapping(t *testing.T) {
	base := InvalidURL("x", "y")
	wrapped := fmt.Errorf("next page: %w", base)

	if !HasCode(wrapped, ErrCodeInvalidURL) {
		t.Error("expected HasCode to see through fmt wrapping")
	}
	if HasCode(wrapped, ErrCodeDeserialization) {
		t.Error("unexpected code match")
	}
	if HasCode(fmt.Errorf("plain"), ErrCodeInvalidURL) {
		t.Error("plain error should not match")
	}

	appErr, ok := AsAppError(wrapped)
	if !ok || appErr != base {
		t.Error("expected AsAppError to return the original error")
	}
}
