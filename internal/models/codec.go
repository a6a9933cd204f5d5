package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

func unmarshalNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// DecodeFields parses a JSON object into payload fields.
func DecodeFields(data []byte) (Fields, error) {
	var f Fields
	if err := unmarshalNumber(data, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// DecodeValue parses exactly one JSON value. Numbers stay json.Number.
func DecodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}
