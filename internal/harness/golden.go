package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/lanegen/internal/manifest"
)

// TraceSnapshot captures a scenario execution for golden comparison.
// Serialized with canonical JSON so the bytes are deterministic.
type TraceSnapshot struct {
	ScenarioName string
	Lane         string
	Trace        []TraceEvent
}

// toCanonicalMap converts the snapshot to plain maps for
// manifest.MarshalCanonical. Empty values stay out of the map so the
// golden bytes do not carry noise fields.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"seq":     event.Seq,
			"op":      event.Op,
			"args":    event.Args,
			"outcome": event.Outcome,
		}
		if event.Value != "" {
			eventMap["value"] = event.Value
		}
		traceList[i] = eventMap
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"lane":          s.Lane,
		"trace":         traceList,
	}
}

// RunWithGolden executes a scenario and compares the trace against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an already-obtained result against the
// scenario's golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	snapshot := TraceSnapshot{
		ScenarioName: scenario.Name,
		Lane:         scenario.Lane,
		Trace:        result.Trace,
	}
	traceJSON, err := manifest.MarshalCanonical(snapshot.toCanonicalMap())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)
	return nil
}
