package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteRunHeader(t *testing.T) {
	var buf bytes.Buffer
	writeRunHeader(&buf)
	line := buf.String()
	if !strings.HasPrefix(line, "--- tiergen ") || !strings.HasSuffix(line, " ---\n") {
		t.Fatalf("unexpected header %q", line)
	}
}
