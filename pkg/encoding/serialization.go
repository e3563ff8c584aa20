package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Serializable provides a clean, simple interface for serializing and deserializing values.
type Serializable interface {
	Serialize() ([]byte, error)
	Deserialize([]byte) error
}

// ToJSON renders v as indented JSON.
func ToJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// FromJSON decodes data into v, rejecting fields v does not declare.
func FromJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}

// ToMap converts a tagged struct into a generic JSON object.
func ToMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err = json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Overlay applies a generic object (as decoded from YAML or JSON) on top of
// the current contents of dst. Keys dst does not declare are rejected.
func Overlay(params map[string]any, dst any) error {
	if len(params) == 0 {
		return nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	return FromJSON(data, dst)
}

