package mobile

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRunReturnsOutputs(t *testing.T) {
	var res runResult
	if err := json.Unmarshal([]byte(Run("INPUT X\nPRINT X * 2\n", `["21"]`)), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.Error != "" {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	if len(res.Outputs) != 2 || res.Outputs[1].Text != "42" || !res.Outputs[1].NewLine {
		t.Fatalf("unexpected outputs: %+v", res.Outputs)
	}
}

func TestRunKeepsOutputBeforeFailure(t *testing.T) {
	var res runResult
	if err := json.Unmarshal([]byte(Run("PRINT 1\nPRINT 1/0\n", "")), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.Error != "runtime: error at line 1: division by zero" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if len(res.Outputs) != 1 || res.Outputs[0].Text != "1" {
		t.Fatalf("unexpected outputs: %+v", res.Outputs)
	}
}

func TestRunReportsBadInput(t *testing.T) {
	var res runResult
	if err := json.Unmarshal([]byte(Run("PRINT 1", "{")), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.HasPrefix(res.Error, "invalid inputs json") {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if err := json.Unmarshal([]byte(Run("LET = 1", "")), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.HasPrefix(res.Error, "parse: ") {
		t.Fatalf("unexpected error: %q", res.Error)
	}
}

func TestTranspile(t *testing.T) {
	var res transpileResult
	if err := json.Unmarshal([]byte(Transpile("PRINT 1\n")), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.Error != "" || !strings.Contains(res.Source, "package main") {
		t.Fatalf("unexpected result: %+v", res)
	}
	if err := json.Unmarshal([]byte(Transpile("NEXT I\n")), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.HasPrefix(res.Error, "compile: ") {
		t.Fatalf("unexpected error: %q", res.Error)
	}
}
