package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// BuiltinSource selects the catalog embedded in the binary.
const BuiltinSource = "builtin"

// maxCatalogBytes caps how much of a remote catalog is read.
const maxCatalogBytes = 32 << 20

//go:embed data/questions.json
var builtinCatalog []byte

// Load reads the catalog from source and normalizes every record.
//
// source is "builtin" (or empty) for the embedded catalog, an http(s) URL, or a
// filesystem path. Any failure is returned as a *LoadError.
func Load(ctx context.Context, source string) ([]Question, error) {
	if source == "" {
		source = BuiltinSource
	}

	raw, err := read(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	questions, err := Decode(raw)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return questions, nil
}

// Decode parses a catalog document. The document must be a JSON array;
// individual records are not validated and are normalized defensively.
func Decode(raw []byte) ([]Question, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse JSON: unexpected data after the document")
	}
	if err := validateShape(doc); err != nil {
		return nil, err
	}

	items, _ := doc.([]any)
	questions := make([]Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, decodeQuestion(item))
	}
	return questions, nil
}

func read(ctx context.Context, source string) ([]byte, error) {
	switch {
	case source == BuiltinSource:
		return builtinCatalog, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetch(ctx, source)
	default:
		return os.ReadFile(source)
	}
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// decodeQuestion maps one raw record onto a Question. Non-object records
// and wrongly typed fields collapse to zero values.
func decodeQuestion(item any) Question {
	m, _ := item.(map[string]any)

	solution := stringField(m["javaSolution"])
	if solution == "" {
		solution = stringField(m["solution"])
	}

	return Question{
		ID:       intField(m["id"]),
		Name:     stringField(m["questionName"]),
		Topic:    stringField(m["topic"]),
		SubTopic: stringField(m["subTopic"]),
		Link:     stringField(m["questionLink"]),
		Solution: solution,
	}
}

func stringField(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func intField(v any) int {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil && f == math.Trunc(f) {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return 0
}
