// internal/snapshot/schema.go
package snapshot

// nonNegative is the schema fragment shared by every aggregate metric value.
var nonNegative = map[string]any{"type": "number", "minimum": 0}

func statsObject(required []string) map[string]any {
	properties := make(map[string]any, len(required))
	for _, name := range required {
		properties[name] = nonNegative
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// snapshotSchema is the JSON schema every snapshot document must satisfy
// before decoding. Range checks beyond simple bounds live in the loader.
var snapshotSchema = map[string]any{
	"type":     "object",
	"required": []string{"metadata", "metrics"},
	"properties": map[string]any{
		"metadata": map[string]any{
			"type":     "object",
			"required": []string{"endpoint_id", "timestamp_utc", "sample_count"},
			"properties": map[string]any{
				"endpoint_id":   map[string]any{"type": "string", "minLength": 1},
				"timestamp_utc": map[string]any{"type": "string"},
				"sample_count":  map[string]any{"type": "integer", "minimum": 0},
				"concurrency":   map[string]any{"type": "integer", "minimum": 0},
			},
		},
		"metrics": map[string]any{
			"type":     "object",
			"required": []string{"latency", "tokens", "cost", "throughput"},
			"properties": map[string]any{
				"latency": statsObject([]string{"mean", "median", "p50", "p95", "p99", "min", "max", "std_dev"}),
				"tokens":  statsObject([]string{"mean_input", "mean_output", "total", "input_tokens", "output_tokens", "tokens_per_second"}),
				"cost":    statsObject([]string{"per_request", "per_1000", "total_cost", "input_cost", "output_cost"}),
				"quality": map[string]any{
					"type":     "object",
					"required": []string{"score"},
					"properties": map[string]any{
						"score": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
				},
				"throughput": statsObject([]string{"requests_per_second", "tokens_per_second", "bytes_per_second"}),
			},
		},
		"raw_data": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"request_id", "start_time", "end_time", "latency_ms"},
				"properties": map[string]any{
					"request_id": map[string]any{"type": "string"},
					"start_time": map[string]any{"type": "string"},
					"end_time":   map[string]any{"type": "string"},
					"latency_ms": nonNegative,
					"tokens_in":  map[string]any{"type": "integer", "minimum": 0},
					"tokens_out": map[string]any{"type": "integer", "minimum": 0},
					"cost_usd":   nonNegative,
					"succeeded":  map[string]any{"type": "boolean"},
					"error":      map[string]any{"type": "string"},
				},
			},
		},
	},
}
