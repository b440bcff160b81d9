// Package schema decodes JSON payloads and validates them against the
// struct-tag rules of the target type.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v (a struct or pointer to struct) against its tags.
func Validate(v any) error {
	return validate.Struct(v)
}

// Decode unmarshals data into a T and validates it.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	if err := validate.Struct(&v); err != nil {
		return v, err
	}
	return v, nil
}

// DecodeList unmarshals a JSON array and validates every element. A JSON
// null decodes to an empty list.
func DecodeList[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
