package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrDocumentNotFound indicates the question document does not exist.
var ErrDocumentNotFound = errors.New("question document not found")

// ErrDocumentMalformed indicates the document is not a list of values.
var ErrDocumentMalformed = errors.New("question document is malformed")

// LoadDocument reads a question document and returns its elements in order.
// Files ending in .yml or .yaml are decoded as YAML, everything else as JSON.
func LoadDocument(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read question document: %w: %w", ErrDocumentNotFound, err)
		}
		return nil, fmt.Errorf("read question document: %w: %w", ErrDocumentMalformed, err)
	}
	items, err := parseDocument(data, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentMalformed, err)
	}
	return items, nil
}

func parseDocument(data []byte, path string) ([]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		doc any
		err error
	)
	if ext == ".yml" || ext == ".yaml" {
		doc, err = parseYAMLDocument(data)
	} else {
		doc, err = parseJSONDocument(data)
	}
	if err != nil {
		return nil, err
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of questions, got %s", kindOf(doc))
	}
	return items, nil
}

func parseJSONDocument(data []byte) (any, error) {
	var doc any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (any, error) {
	var doc any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
