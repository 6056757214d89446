package main

import (
	"context"
	"fmt"
	"os"

	"bookshelf/internal/book"

	jsoniter "github.com/json-iterator/go"
)

// seedBooks creates every book listed in the JSON array at path, in order.
func seedBooks(ctx context.Context, svc *book.Service, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var payloads []book.Payload
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &payloads); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	for i, p := range payloads {
		if _, err := svc.Create(ctx, p); err != nil {
			return i, fmt.Errorf("book %d: %w", i, err)
		}
	}
	return len(payloads), nil
}
