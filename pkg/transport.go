// Package pkg provides small reusable helpers shared across gradekit.
package pkg

import (
	"encoding/base64"
	"fmt"
)

// EncodeBlob encodes arbitrary bytes into the binary-safe transport form
// used at the sink boundary.
func EncodeBlob(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBlob reverses EncodeBlob.
func DecodeBlob(blob string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("decode transport blob: %w", err)
	}

	return data, nil
}

// EncodeText encodes a string field for embedding in the report payload.
func EncodeText(text string) string {
	return EncodeBlob([]byte(text))
}

// DecodeText reverses EncodeText.
func DecodeText(field string) (string, error) {
	data, err := DecodeBlob(field)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
