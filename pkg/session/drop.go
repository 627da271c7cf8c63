package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edp1096/toy-circuit/pkg/device"
)

var ErrMalformedPayload = errors.New("malformed drop payload")

type dropPayload struct {
	ComponentType string `json:"componentType"`
}

// DecodeDrop reads the palette drag payload {"componentType": "..."}.
func DecodeDrop(data []byte) (device.Type, error) {
	var p dropPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	t, err := device.ParseType(p.ComponentType)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return t, nil
}

// EncodeDrop builds the payload the palette attaches to a drag.
func EncodeDrop(t device.Type) ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", device.ErrUnknownType, int(t))
	}
	return json.Marshal(dropPayload{ComponentType: t.String()})
}
