package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupt is returned by GetJSON when a stored value is not valid JSON
// for the requested type.
var ErrCorrupt = errors.New("corrupt value")

// GetJSON loads key and decodes it into a T. A missing key yields (nil, nil);
// an undecodable value yields ErrCorrupt.
func GetJSON[T any](ctx context.Context, r Repository, key string) (*T, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: kv[%s]: %v", ErrCorrupt, key, err)
	}
	return &v, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode kv[%s]: %w", key, err)
	}
	return r.Set(ctx, key, raw)
}
