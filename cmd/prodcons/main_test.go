package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/randomizedcoder/go-prodcons/internal/prodcons"
	"github.com/randomizedcoder/go-prodcons/internal/report"
)

func sampleReport() *prodcons.Report {
	return &prodcons.Report{
		ID:          "run-blocking",
		Variant:     prodcons.Blocking,
		Backend:     "ring",
		Items:       5,
		Capacity:    2,
		Consumers:   1,
		Produced:    5,
		Consumed:    5,
		PerConsumer: []int{5},
		InOrder:     true,
		MaxLen:      2,
		Duration:    40 * time.Millisecond,
	}
}

func TestWriteReport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.bin")
	if err := writeReport(path, report.FormatMsgpack, []*prodcons.Report{sampleReport()}); err != nil {
		t.Fatalf("writeReport: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := report.DecodeMsgpack(f)
	if err != nil {
		t.Fatalf("DecodeMsgpack: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 report, got %d", len(got))
	}
	if got[0].ID != "run-blocking" || got[0].Consumed != 5 {
		t.Errorf("report did not survive the file: %+v", got[0])
	}
}

func TestWriteReport_CreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "run.json")
	if err := writeReport(path, report.FormatJSON, []*prodcons.Report{sampleReport()}); err == nil {
		t.Error("expected an error for an uncreatable path")
	}
}
