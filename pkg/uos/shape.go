package uos

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/mapstructure"
)

// Validator checks a decoded JSON value before it is converted into a DTO.
type Validator func(v any) error

// RequireKeys accepts JSON objects that carry every key with a non-null value.
func RequireKeys(keys ...string) Validator {
	rules := make([]*validation.KeyRules, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, validation.Key(k, validation.NotNil))
	}
	mapRule := validation.Map(rules...).AllowExtraKeys()

	return func(v any) error {
		m, ok := v.(map[string]any)
		if !ok || m == nil {
			return errors.New("must be an object")
		}
		return mapRule.Validate(m)
	}
}

// Decode converts a decoded JSON value into out using the json field tags.
// Scalars are converted loosely, so a numeric id still decodes into a string.
func Decode(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}
	return nil
}

// Field validates payload[name] and decodes it into a T.
func Field[T any](payload Payload, name string, validate Validator) (T, error) {
	var out T
	v, ok := payload[name]
	if !ok {
		return out, fmt.Errorf("field %q is missing", name)
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return out, fmt.Errorf("field %q: %w", name, err)
		}
	}
	if err := Decode(v, &out); err != nil {
		return out, fmt.Errorf("field %q: %w", name, err)
	}
	return out, nil
}

// ErrNotArray is returned by Items when the field is not a JSON array.
var ErrNotArray = errors.New("not an array")

// Items decodes the array payload[name]. Entries that fail validate or cannot
// be decoded are skipped; their number is returned as skipped.
func Items[T any](payload Payload, name string, validate Validator) (items []T, skipped int, err error) {
	raw, ok := payload[name].([]any)
	if !ok {
		return nil, 0, fmt.Errorf("field %q: %w", name, ErrNotArray)
	}

	items = make([]T, 0, len(raw))
	for _, entry := range raw {
		if validate != nil {
			if err := validate(entry); err != nil {
				skipped++
				continue
			}
		}
		var item T
		if err := Decode(entry, &item); err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped, nil
}

// Int reads a JSON number field, returning 0 when absent or not a number.
func Int(payload Payload, name string) int {
	if f, ok := payload[name].(float64); ok {
		return int(f)
	}
	return 0
}
