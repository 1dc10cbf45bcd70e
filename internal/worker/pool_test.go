package worker

import (
	"strings"
	"sync/atomic"
	"testing"
)

func TestMap_PreservesInputOrder(t *testing.T) {
	inputs := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	results := Map(4, inputs, func(s string) string {
		return strings.ToUpper(s)
	})

	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}
	for i, in := range inputs {
		if results[i] != strings.ToUpper(in) {
			t.Errorf("result %d: expected %q, got %q", i, strings.ToUpper(in), results[i])
		}
	}
}

func TestMap_RunsEveryInputOnce(t *testing.T) {
	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = "x"
	}

	var calls int32
	Map(8, inputs, func(s string) int {
		atomic.AddInt32(&calls, 1)
		return 0
	})

	if calls != 100 {
		t.Errorf("expected 100 calls, got %d", calls)
	}
}

func TestMap_EmptyInput(t *testing.T) {
	results := Map(4, nil, func(s string) int { return 1 })
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestMap_ZeroWorkers(t *testing.T) {
	results := Map(0, []string{"a", "b"}, func(s string) string { return s })
	if len(results) != 2 || results[0] != "a" || results[1] != "b" {
		t.Errorf("unexpected results: %v", results)
	}
}

func TestMap_MatchesSerialExecution(t *testing.T) {
	inputs := []string{"one", "two", "three", "four", "five"}
	fn := func(s string) int { return len(s) }

	serial := Map(1, inputs, fn)
	parallel := Map(4, inputs, fn)

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("result %d: serial %d != parallel %d", i, serial[i], parallel[i])
		}
	}
}
