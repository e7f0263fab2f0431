package domain

import (
	"bytes"
	"encoding/json"
)

// Patch is a decoded merge-patch body. Keys absent from the request are
// left untouched; keys present with null clear nullable columns.
type Patch map[string]json.RawMessage

func ParsePatch(body []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	if p == nil {
		p = Patch{}
	}
	return p, nil
}

func (p Patch) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Patch) IsNull(key string) bool {
	raw, ok := p[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (p Patch) decode(key string, dst any, kind string) *ValidationError {
	if err := json.Unmarshal(p[key], dst); err != nil {
		return invalid(key, "must be "+kind)
	}
	return nil
}

func (p Patch) String(key string, dst *string) *ValidationError {
	if !p.Has(key) {
		return nil
	}
	if p.IsNull(key) {
		return invalid(key, "must not be null")
	}
	return p.decode(key, dst, "a string")
}

func (p Patch) OptionalString(key string, dst **string) *ValidationError {
	if !p.Has(key) {
		return nil
	}
	if p.IsNull(key) {
		*dst = nil
		return nil
	}
	var v string
	if err := p.decode(key, &v, "a string"); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func (p Patch) Int(key string, dst *int) *ValidationError {
	if !p.Has(key) {
		return nil
	}
	if p.IsNull(key) {
		return invalid(key, "must not be null")
	}
	return p.decode(key, dst, "an integer")
}

func (p Patch) OptionalInt(key string, dst **int) *ValidationError {
	if !p.Has(key) {
		return nil
	}
	if p.IsNull(key) {
		*dst = nil
		return nil
	}
	var v int
	if err := p.decode(key, &v, "an integer"); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func (p Patch) Uint(key string, dst *uint) *ValidationError {
	if !p.Has(key) {
		return nil
	}
	if p.IsNull(key) {
		return invalid(key, "must not be null")
	}
	return p.decode(key, dst, "a positive integer id")
}

func (p Patch) OptionalUint(key string, dst **uint) *ValidationError {
	if !p.Has(key) {
		return nil
	}
	if p.IsNull(key) {
		*dst = nil
		return nil
	}
	var v uint
	if err := p.decode(key, &v, "a positive integer id"); err != nil {
		return err
	}
	*dst = &v
	return nil
}

func (p Patch) Float(key string, dst *float64) *ValidationError {
	if !p.Has(key) {
		return nil
	}
	if p.IsNull(key) {
		return invalid(key, "must not be null")
	}
	return p.decode(key, dst, "a number")
}
