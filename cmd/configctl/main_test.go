package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFeatureListRepeats(t *testing.T) {
	var features featureList
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&features, "feature", "")

	if err := fs.Parse([]string{"-feature", "a", "-feature", " b "}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(features) != 2 || features[0] != "a" || features[1] != "b" {
		t.Errorf("features = %v, want [a b]", features)
	}
	if features.String() != "a,b" {
		t.Errorf("String() = %q", features.String())
	}

	if err := fs.Parse([]string{"-feature", "  "}); err == nil {
		t.Error("expected error for blank feature")
	}
}

func TestReadDocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"merchantId":"m"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := readDocument(path)
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if string(got) != `{"merchantId":"m"}` {
		t.Errorf("got %q", got)
	}

	if _, err := readDocument(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
