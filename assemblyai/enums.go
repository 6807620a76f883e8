package assemblyai

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/kbukum/assemblyai-go/errors"
)

// TranscriptStatus is the processing state of a transcript.
type TranscriptStatus string

const (
	StatusQueued     TranscriptStatus = "queued"
	StatusProcessing TranscriptStatus = "processing"
	StatusCompleted  TranscriptStatus = "completed"
	StatusError      TranscriptStatus = "error"
)

// IsValid reports whether s is a known status.
func (s TranscriptStatus) IsValid() bool {
	switch s {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusError:
		return true
	}
	return false
}

// String returns the wire value.
func (s TranscriptStatus) String() string { return string(s) }

// MarshalJSON encodes s as a JSON string. Unknown values are rejected.
func (s TranscriptStatus) MarshalJSON() ([]byte, error) { return marshalEnum(s) }

// UnmarshalJSON decodes a JSON string into s, failing on unknown values.
func (s *TranscriptStatus) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, s) }

// BoostType controls how strongly word_boost terms are weighted.
type BoostType string

const (
	BoostLow     BoostType = "low"
	BoostDefault BoostType = "default"
	BoostHigh    BoostType = "high"
)

// IsValid reports whether b is a known boost weight.
func (b BoostType) IsValid() bool {
	switch b {
	case BoostLow, BoostDefault, BoostHigh:
		return true
	}
	return false
}

// String returns the wire value.
func (b BoostType) String() string { return string(b) }

// MarshalJSON encodes b as a JSON string. Unknown values are rejected.
func (b BoostType) MarshalJSON() ([]byte, error) { return marshalEnum(b) }

// UnmarshalJSON decodes a JSON string into b, failing on unknown values.
func (b *BoostType) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, b) }

// RedactPiiSub selects what replaces redacted PII in the transcript text.
type RedactPiiSub string

const (
	RedactPiiSubEntityName RedactPiiSub = "entity_name"
	RedactPiiSubHash       RedactPiiSub = "hash"
)

// IsValid reports whether r is a known substitution policy.
func (r RedactPiiSub) IsValid() bool {
	return r == RedactPiiSubEntityName || r == RedactPiiSubHash
}

// String returns the wire value.
func (r RedactPiiSub) String() string { return string(r) }

// MarshalJSON encodes r as a JSON string. Unknown values are rejected.
func (r RedactPiiSub) MarshalJSON() ([]byte, error) { return marshalEnum(r) }

// UnmarshalJSON decodes a JSON string into r, failing on unknown values.
func (r *RedactPiiSub) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, r) }

// LanguageCode is a supported spoken language.
type LanguageCode string

const (
	LanguageEnglish           LanguageCode = "en"
	LanguageEnglishAustralian LanguageCode = "en_au"
	LanguageEnglishBritish    LanguageCode = "en_uk"
	LanguageEnglishAmerican   LanguageCode = "en_us"
	LanguageSpanish           LanguageCode = "es"
	LanguageFrench            LanguageCode = "fr"
	LanguageItalian           LanguageCode = "it"
	LanguageGerman            LanguageCode = "de"
	LanguagePortuguese        LanguageCode = "pt"
	LanguageDutch             LanguageCode = "nl"
	LanguageHindi             LanguageCode = "hi"
	LanguageJapanese          LanguageCode = "ja"
)

// legacyJapanese is accepted on decode and normalized to LanguageJapanese.
const legacyJapanese LanguageCode = "jp"

// IsValid reports whether l is a known supported language.
func (l LanguageCode) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageEnglishAustralian, LanguageEnglishBritish, LanguageEnglishAmerican,
		LanguageSpanish, LanguageFrench, LanguageItalian, LanguageGerman,
		LanguagePortuguese, LanguageDutch, LanguageHindi, LanguageJapanese:
		return true
	}
	return false
}

// String returns the language code as sent to the API.
func (l LanguageCode) String() string { return string(l) }

// MarshalJSON encodes l as a JSON string. Unknown values are rejected.
func (l LanguageCode) MarshalJSON() ([]byte, error) { return marshalEnum(l) }

// UnmarshalJSON decodes a language code, mapping the legacy "jp" to LanguageJapanese.
func (l *LanguageCode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil && LanguageCode(raw) == legacyJapanese {
		*l = LanguageJapanese
		return nil
	}
	return unmarshalEnum(data, l)
}

// Sentiment is the polarity detected for a sentence.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// IsValid reports whether s is a known sentiment label.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// String returns the wire value.
func (s Sentiment) String() string { return string(s) }

// MarshalJSON encodes s as a JSON string. Unknown values are rejected.
func (s Sentiment) MarshalJSON() ([]byte, error) { return marshalEnum(s) }

// UnmarshalJSON decodes a JSON string into s, failing on unknown values.
func (s *Sentiment) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, s) }

// EntityType is a category of detected or redacted entity.
type EntityType string

const (
	EntityBloodType              EntityType = "blood_type"
	EntityCreditCardCVV          EntityType = "credit_card_cvv"
	EntityCreditCardExpiration   EntityType = "credit_card_expiration"
	EntityCreditCardNumber       EntityType = "credit_card_number"
	EntityDate                   EntityType = "date"
	EntityDateOfBirth            EntityType = "date_of_birth"
	EntityDrug                   EntityType = "drug"
	EntityEvent                  EntityType = "event"
	EntityEmailAddress           EntityType = "email_address"
	EntityInjury                 EntityType = "injury"
	EntityLanguage               EntityType = "language"
	EntityLocation               EntityType = "location"
	EntityMedicalCondition       EntityType = "medical_condition"
	EntityMedicalProcess         EntityType = "medical_process"
	EntityMoneyAmount            EntityType = "money_amount"
	EntityNationality            EntityType = "nationality"
	EntityOccupation             EntityType = "occupation"
	EntityOrganization           EntityType = "organization"
	EntityPersonAge              EntityType = "person_age"
	EntityPersonName             EntityType = "person_name"
	EntityPhoneNumber            EntityType = "phone_number"
	EntityPoliticalAffiliation   EntityType = "political_affiliation"
	EntityReligion               EntityType = "religion"
	EntityUSSocialSecurityNumber EntityType = "us_social_security_number"
	EntityDriversLicense         EntityType = "drivers_license"
	EntityBankingInformation     EntityType = "banking_information"
)

var entityTypes = map[EntityType]struct{}{
	EntityBloodType: {}, EntityCreditCardCVV: {}, EntityCreditCardExpiration: {},
	EntityCreditCardNumber: {}, EntityDate: {}, EntityDateOfBirth: {}, EntityDrug: {},
	EntityEvent: {}, EntityEmailAddress: {}, EntityInjury: {}, EntityLanguage: {},
	EntityLocation: {}, EntityMedicalCondition: {}, EntityMedicalProcess: {},
	EntityMoneyAmount: {}, EntityNationality: {}, EntityOccupation: {},
	EntityOrganization: {}, EntityPersonAge: {}, EntityPersonName: {},
	EntityPhoneNumber: {}, EntityPoliticalAffiliation: {}, EntityReligion: {},
	EntityUSSocialSecurityNumber: {}, EntityDriversLicense: {}, EntityBankingInformation: {},
}

// EntityTypes returns every known entity type in lexical order.
func EntityTypes() []EntityType {
	out := make([]EntityType, 0, len(entityTypes))
	for e := range entityTypes {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// IsValid reports whether e is a known entity type.
func (e EntityType) IsValid() bool {
	_, ok := entityTypes[e]
	return ok
}

// String returns the wire value.
func (e EntityType) String() string { return string(e) }

// MarshalJSON encodes e as a JSON string. Unknown values are rejected.
func (e EntityType) MarshalJSON() ([]byte, error) { return marshalEnum(e) }

// UnmarshalJSON decodes a JSON string into e, failing on unknown values.
func (e *EntityType) UnmarshalJSON(data []byte) error { return unmarshalEnum(data, e) }

type enum interface {
	~string
	IsValid() bool
}

// marshalEnum refuses values outside the enum.
func marshalEnum[T enum](v T) ([]byte, error) {
	if !v.IsValid() {
		return nil, errors.Validation(fmt.Sprintf("unknown %T value %q", v, string(v)))
	}
	return json.Marshal(string(v))
}

// unmarshalEnum decodes a wire string into a closed enum. Unknown values fail
// closed; JSON null leaves the target untouched.
func unmarshalEnum[T enum](data []byte, out *T) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Deserialization(fmt.Sprintf("%T", *out), err)
	}
	v := T(raw)
	if !v.IsValid() {
		return errors.Deserialization(fmt.Sprintf("%T", *out), fmt.Errorf("unknown value %q", raw)).
			WithDetail("value", raw)
	}
	*out = v
	return nil
}
