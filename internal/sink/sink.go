// Package sink implements the OutputSink (spec §4.1): a forward-only
// byte-accumulation contract with two concrete variants, File and
// Buffer. Expressed as a capability-set interface rather than a class
// hierarchy, per spec §9's enums-plus-dispatch guidance for the two
// polymorphic contracts in this system.
//
// Grounded on the teacher's single bytes.Buffer accumulation in
// internal/pdf/generator.go, split into an explicit interface so the
// writer never has to know whether it is streaming to a file or
// building an in-memory artifact for an HTTP response.
package sink

import (
	"bufio"
	"os"
)

// Sink is the contract PdfWriter appends to: forward-only byte writes,
// terminated exactly once.
type Sink interface {
	Append(p []byte) error
	Finish() (Artifact, error)
	// Abort releases any underlying resource without producing an
	// artifact (spec §5 cancellation: "releases the OutputSink,
	// discarding any in-progress buffer").
	Abort() error
}

// Artifact is what Finish yields: a file path for File sinks, the
// accumulated bytes for Buffer sinks, and the byte count either way.
type Artifact struct {
	Path      string
	Bytes     []byte
	ByteCount int
}

// bufferSink accumulates bytes in memory.
type bufferSink struct {
	buf      []byte
	finished bool
}

// NewBuffer returns a Sink that accumulates entirely in memory.
func NewBuffer() Sink { return &bufferSink{} }

func (s *bufferSink) Append(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}

func (s *bufferSink) Finish() (Artifact, error) {
	s.finished = true
	return Artifact{Bytes: s.buf, ByteCount: len(s.buf)}, nil
}

func (s *bufferSink) Abort() error {
	s.buf = nil
	return nil
}

// fileSink streams bytes to an open file handle.
type fileSink struct {
	path string
	f    *os.File
	w    *bufio.Writer
	n    int
}

// NewFile opens path for writing and returns a Sink that streams to it.
// The caller owns path's lifecycle; Abort removes the partial file.
func NewFile(path string) (Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &fileSink{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

func (s *fileSink) Append(p []byte) error {
	n, err := s.w.Write(p)
	s.n += n
	return err
}

func (s *fileSink) Finish() (Artifact, error) {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return Artifact{}, err
	}
	if err := s.f.Close(); err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: s.path, ByteCount: s.n}, nil
}

func (s *fileSink) Abort() error {
	s.f.Close()
	return os.Remove(s.path)
}
