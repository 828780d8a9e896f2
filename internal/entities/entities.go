package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderClosed       = errors.New("order already delivered or cancelled")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrDriverNotFound    = errors.New("driver not found")
	ErrUnsupportedFilter = errors.New("unsupported filter")
	ErrCorruptedCache    = errors.New("corrupted cache entry")
)

// Marshal кодирует сущности для кэша.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptedCache, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(Product{})
	gob.Register(ShippingInfo{})
	gob.Register(Driver{})
}
