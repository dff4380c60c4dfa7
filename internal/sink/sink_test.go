package sink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBufferSinkAccumulatesAndFinishes(t *testing.T) {
	s := NewBuffer()
	if err := s.Append([]byte("hello ")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := s.Append([]byte("world")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	artifact, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish returned error: %v", err)
	}
	if string(artifact.Bytes) != "hello world" {
		t.Errorf("expected accumulated bytes %q, got %q", "hello world", artifact.Bytes)
	}
	if artifact.ByteCount != len("hello world") {
		t.Errorf("expected byte count %d, got %d", len("hello world"), artifact.ByteCount)
	}
}

func TestBufferSinkAbortDiscards(t *testing.T) {
	s := NewBuffer()
	s.Append([]byte("discard me"))
	if err := s.Abort(); err != nil {
		t.Fatalf("Abort returned error: %v", err)
	}
	artifact, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish returned error: %v", err)
	}
	if len(artifact.Bytes) != 0 {
		t.Errorf("expected no bytes after Abort, got %q", artifact.Bytes)
	}
}

func TestFileSinkWritesAndReportsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if err := s.Append([]byte("content")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	artifact, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish returned error: %v", err)
	}
	if artifact.Path != path {
		t.Errorf("expected path %q, got %q", path, artifact.Path)
	}
	if artifact.ByteCount != len("content") {
		t.Errorf("expected byte count %d, got %d", len("content"), artifact.ByteCount)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read output file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("expected file contents %q, got %q", "content", data)
	}
}

func TestFileSinkAbortRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.pdf")

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	s.Append([]byte("partial"))
	if err := s.Abort(); err != nil {
		t.Fatalf("Abort returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected the partial file to be removed, stat err = %v", err)
	}
}
