// internal/snapshot/loader.go
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// MalformedSnapshotError reports a snapshot document that is structurally
// invalid or fails a range check. It is never silently coerced; callers are
// expected to treat it as a hard failure.
type MalformedSnapshotError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *MalformedSnapshotError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed snapshot: %s", e.Reason)
	}
	return fmt.Sprintf("malformed snapshot %s: %s", e.Path, e.Reason)
}

// Load reads a snapshot document from disk and parses it.
func Load(path string) (*PerformanceSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	snap, err := Parse(data)
	if err != nil {
		if malformed, ok := err.(*MalformedSnapshotError); ok {
			malformed.Path = path
		}
		return nil, err
	}
	return snap, nil
}

// Parse validates and decodes a snapshot document from raw bytes.
func Parse(data []byte) (*PerformanceSnapshot, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var snap PerformanceSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &MalformedSnapshotError{Reason: fmt.Sprintf("decode: %v", err)}
	}

	if err := validateSamples(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// validateSchema checks the document structure against the snapshot JSON
// schema: required keys, numeric types, non-negative values, and the quality
// score bounds.
func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(snapshotSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &MalformedSnapshotError{Reason: fmt.Sprintf("not a JSON document: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	reasons := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		reasons = append(reasons, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &MalformedSnapshotError{Reason: strings.Join(reasons, "; ")}
}

// validateSamples enforces the raw-sample invariants the schema cannot
// express: a present raw_data array must be non-empty and each entry must
// end at or after it started.
func validateSamples(snap *PerformanceSnapshot) error {
	if snap.RawSamples == nil {
		return nil
	}
	if len(snap.RawSamples) == 0 {
		return &MalformedSnapshotError{Reason: "raw_data present but empty"}
	}
	for i, sample := range snap.RawSamples {
		if sample.EndTime.Before(sample.StartTime) {
			return &MalformedSnapshotError{
				Reason: fmt.Sprintf("raw_data[%d] (%s): end_time precedes start_time", i, sample.RequestID),
			}
		}
	}
	return nil
}
