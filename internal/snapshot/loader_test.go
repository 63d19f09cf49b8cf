// internal/snapshot/loader_test.go
package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSnapshotJSON = `{
  "metadata": {
    "endpoint_id": "chat-completions",
    "timestamp_utc": "2026-08-01T12:00:00Z",
    "sample_count": 50,
    "concurrency": 5
  },
  "metrics": {
    "latency": {"mean": 910, "median": 905, "p50": 900, "p95": 1000, "p99": 1200, "min": 800, "max": 1250, "std_dev": 55},
    "tokens": {"mean_input": 24, "mean_output": 12, "total": 1800, "input_tokens": 1200, "output_tokens": 600, "tokens_per_second": 120},
    "cost": {"per_request": 0.002, "per_1000": 2.0, "total_cost": 0.1, "input_cost": 0.06, "output_cost": 0.04},
    "throughput": {"requests_per_second": 10, "tokens_per_second": 120, "bytes_per_second": 4096},
    "quality": {"score": 0.7}
  },
  "raw_data": [
    {"request_id": "r-1", "start_time": "2026-08-01T12:00:00Z", "end_time": "2026-08-01T12:00:01Z", "latency_ms": 980, "tokens_in": 24, "tokens_out": 12, "cost_usd": 0.002, "succeeded": true},
    {"request_id": "r-2", "start_time": "2026-08-01T12:00:01Z", "end_time": "2026-08-01T12:00:02Z", "latency_ms": 1020, "tokens_in": 25, "tokens_out": 11, "cost_usd": 0.002, "succeeded": true}
  ]
}`

func TestParseValidSnapshot(t *testing.T) {
	snap, err := Parse([]byte(validSnapshotJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if snap.Metadata.EndpointID != "chat-completions" {
		t.Errorf("endpoint_id = %q", snap.Metadata.EndpointID)
	}
	if snap.Metadata.SampleCount != 50 {
		t.Errorf("sample_count = %d, want 50", snap.Metadata.SampleCount)
	}
	if snap.Metrics.Latency.P95 != 1000 {
		t.Errorf("latency p95 = %v, want 1000", snap.Metrics.Latency.P95)
	}
	if snap.Metrics.Quality == nil || snap.Metrics.Quality.Score != 0.7 {
		t.Errorf("quality = %+v, want score 0.7", snap.Metrics.Quality)
	}
	if len(snap.RawSamples) != 2 {
		t.Fatalf("raw samples = %d, want 2", len(snap.RawSamples))
	}

	latencies := snap.LatencySeries()
	if len(latencies) != 2 || latencies[0] != 980 || latencies[1] != 1020 {
		t.Errorf("latency series = %v", latencies)
	}
	tokens := snap.TokenSeries()
	if len(tokens) != 2 || tokens[0] != 36 || tokens[1] != 36 {
		t.Errorf("token series = %v", tokens)
	}
}

func TestParseQualityOptional(t *testing.T) {
	doc := strings.Replace(validSnapshotJSON, ",\n    \"quality\": {\"score\": 0.7}", "", 1)

	snap, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if snap.Metrics.Quality != nil {
		t.Errorf("quality = %+v, want nil", snap.Metrics.Quality)
	}
}

func TestParseRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"metadata":`},
		{"missing metrics", `{"metadata": {"endpoint_id": "e", "timestamp_utc": "2026-08-01T12:00:00Z", "sample_count": 1}}`},
		{"missing endpoint id", strings.Replace(validSnapshotJSON, `"endpoint_id": "chat-completions",`, "", 1)},
		{"empty endpoint id", strings.Replace(validSnapshotJSON, `"chat-completions"`, `""`, 1)},
		{"negative latency", strings.Replace(validSnapshotJSON, `"p95": 1000`, `"p95": -1`, 1)},
		{"quality above one", strings.Replace(validSnapshotJSON, `{"score": 0.7}`, `{"score": 1.3}`, 1)},
		{"negative sample count", strings.Replace(validSnapshotJSON, `"sample_count": 50`, `"sample_count": -2`, 1)},
		{"empty raw data", validSnapshotJSON[:strings.Index(validSnapshotJSON, `"raw_data"`)] + "\"raw_data\": []\n}"},
		{"sample ends before it starts", strings.Replace(validSnapshotJSON,
			`"end_time": "2026-08-01T12:00:01Z"`, `"end_time": "2026-08-01T11:59:59Z"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			var malformed *MalformedSnapshotError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %T %v, want *MalformedSnapshotError", err, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	if err := os.WriteFile(path, []byte(validSnapshotJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Metadata.EndpointID != "chat-completions" {
		t.Errorf("endpoint_id = %q", snap.Metadata.EndpointID)
	}
}

func TestLoadReportsPathInErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"metadata": {}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Load(path)
	var malformed *MalformedSnapshotError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %T %v, want *MalformedSnapshotError", err, err)
	}
	if malformed.Path != path {
		t.Errorf("error path = %q, want %q", malformed.Path, path)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error text %q does not mention the file path", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Load succeeded, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped not-exist", err)
	}
}
