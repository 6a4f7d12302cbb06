// Package hash computes stable content digests for vault items.
// The digest is BLAKE2b-256 over the canonical JSON form of the payload, so
// two peers that independently arrive at the same content produce the same
// hash regardless of key ordering in the serialized form.
package hash

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fn вычисляет дайджест содержимого элемента.
// Возвращает hex-encoded строку.
type Fn func(data []byte) (string, error)

// Content hashes the payload with BLAKE2b-256 over its canonical JSON form.
// Nil or empty payloads hash the empty JSON document, so metadata-only
// changes still get a stable digest.
func Content(data []byte) (string, error) {
	canonical, err := canonicalize(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	sum := blake2b.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalize приводит JSON к канонической форме: encoding/json сортирует
// ключи map при сериализации, поэтому decode/encode раунд убирает различия
// в порядке ключей и пробелах.
func canonicalize(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte("null"), nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}

	canonical, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode payload: %w", err)
	}

	return canonical, nil
}
