// Package utils holds the small shared helpers: deal-file parsing and
// markdown handling for reports.
package utils

import (
	"fmt"
	"os"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

// ParseDealFile unmarshals a deal file into the target struct. Files are
// HJSON, which is a superset of JSON: analysts keep comments and unquoted
// keys in their assumption files, and plain JSON exports still parse.
func ParseDealFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read deal file: %w", err)
	}
	if err := hjson.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse deal file %s: %w", path, err)
	}
	return nil
}

// ParseDealString is ParseDealFile for in-memory content (the HTTP layer
// accepts the same format as the files).
func ParseDealString(content string, target interface{}) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("empty deal content")
	}
	if err := hjson.Unmarshal([]byte(content), target); err != nil {
		return fmt.Errorf("parse deal content: %w", err)
	}
	return nil
}
