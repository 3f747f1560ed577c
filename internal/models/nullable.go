package models

import (
	"encoding/json"
	"time"
)

// NullableString is a string field on a PATCH body that can distinguish:
//   - field absent:            Set=false, Valid=false
//   - field present with null: Set=true,  Valid=false
//   - field present with value: Set=true, Valid=true
//
// Standard unmarshaling into *string collapses the first two cases, which
// makes it impossible to clear a field.
type NullableString struct {
	Value string
	Valid bool
	Set   bool
}

func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true

	if string(data) == "null" {
		ns.Valid = false
		ns.Value = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ns.Value = s
	ns.Valid = true
	return nil
}

func (ns NullableString) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.Value)
}

// ToPtr returns nil when the value is null, a pointer to Value otherwise.
func (ns NullableString) ToPtr() *string {
	if !ns.Valid {
		return nil
	}
	return &ns.Value
}

// NullableTime is the time.Time counterpart of NullableString. It lets a
// client close an episode with "end_time": <timestamp> or reopen it with
// "end_time": null.
type NullableTime struct {
	Value time.Time
	Valid bool
	Set   bool
}

func (nt *NullableTime) UnmarshalJSON(data []byte) error {
	nt.Set = true

	if string(data) == "null" {
		nt.Valid = false
		nt.Value = time.Time{}
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	nt.Value = t
	nt.Valid = true
	return nil
}

func (nt NullableTime) MarshalJSON() ([]byte, error) {
	if !nt.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nt.Value)
}

// ToPtr returns nil when the value is null, a pointer to Value otherwise.
func (nt NullableTime) ToPtr() *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Value
}
