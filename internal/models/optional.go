package models

import (
	json "github.com/goccy/go-json"
)

// OptionalString keeps "not reported" apart from "reported as empty".
// Absent and null JSON values both decode to the invalid state.
type OptionalString struct {
	Value string
	Valid bool
}

func Some(v string) OptionalString {
	return OptionalString{Value: v, Valid: true}
}

func None() OptionalString {
	return OptionalString{}
}

func (o OptionalString) Get() (string, bool) {
	return o.Value, o.Valid
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None()
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
