package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"hotel/config"

	"gopkg.in/yaml.v3"
)

const indent = 4

// Codec turns a whole collection into a human readable document and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Extension() string
}

func NewCodec(format string) (Codec, error) {
	switch format {
	case config.StorageFormatJSON, "":
		return jsonCodec{}, nil
	case config.StorageFormatYAML:
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported storage format %q", format)
	}
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}

	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode json: %w", err)
	}

	return nil
}

func (jsonCodec) Extension() string {
	return ".json"
}

type yamlCodec struct{}

func (yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode yaml: %w", err)
	}

	return nil
}

func (yamlCodec) Extension() string {
	return ".yaml"
}
