package models

import (
	"encoding/json"
	"strconv"
)

// Ref is a reference to another record. Depending on query depth, upstream
// payloads may carry a raw numeric id, the same id as a string, or the fully
// expanded object. All comparisons resolve to the canonical id first, so the
// three forms are interchangeable.
type Ref struct {
	id    int
	raw   string
	valid bool
}

// RefTo builds a reference from a known record id.
func RefTo(id int) Ref {
	return Ref{id: id, raw: strconv.Itoa(id), valid: true}
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return !r.valid
}

// ID returns the canonical numeric id, with ok=false when the reference is
// unset or carries a non-numeric identifier.
func (r Ref) ID() (int, bool) {
	if !r.valid || r.raw == "" {
		return 0, false
	}
	if r.id == 0 && r.raw != "0" {
		return 0, false
	}
	return r.id, true
}

// Matches reports whether the reference points at the given record id,
// tolerating string and numeric representations of the same identifier.
func (r Ref) Matches(id int) bool {
	canonical, ok := r.ID()
	if !ok {
		return false
	}
	return canonical == id
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	if id, ok := r.ID(); ok {
		return json.Marshal(id)
	}
	return json.Marshal(r.raw)
}

// UnmarshalJSON accepts a number, a string, null, or an expanded object
// carrying an "id" field.
func (r *Ref) UnmarshalJSON(data []byte) error {
	*r = Ref{}

	var asInt int
	if err := json.Unmarshal(data, &asInt); err == nil {
		*r = RefTo(asInt)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == "" {
			return nil
		}
		r.raw = asString
		r.valid = true
		if id, err := strconv.Atoi(asString); err == nil {
			r.id = id
		}
		return nil
	}

	if string(data) == "null" {
		return nil
	}

	var expanded struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &expanded); err != nil {
		return err
	}
	if expanded.ID == nil {
		return nil
	}
	return r.UnmarshalJSON(expanded.ID)
}

// NullableRefID converts a reference to the *int shape the repositories store.
func NullableRefID(r Ref) *int {
	if id, ok := r.ID(); ok {
		return &id
	}
	return nil
}

// RefFromNullableID is the inverse of NullableRefID.
func RefFromNullableID(id *int) Ref {
	if id == nil {
		return Ref{}
	}
	return RefTo(*id)
}
