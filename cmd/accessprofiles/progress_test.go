package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBarUpdate(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(&buf, 10)

	bar.update(1, 2, "P1")
	out := buf.String()
	if !strings.HasPrefix(out, "\r|") {
		t.Errorf("Expected carriage-return rewrite, got %q", out)
	}
	if !strings.Contains(out, "50.00%") || !strings.Contains(out, "(1/2) P1") {
		t.Errorf("Expected percent and count in output, got %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Error("Unfinished bar must not emit a newline")
	}

	bar.update(2, 2, "P2")
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Completed bar must finish with a newline")
	}
}

func TestRenderProgress(t *testing.T) {
	var buf bytes.Buffer
	renderProgress(&buf, []string{"P1", "P2"})

	out := buf.String()
	if !strings.Contains(out, "(1/2) P1") || !strings.Contains(out, "(2/2) P2") {
		t.Errorf("Expected one step per profile, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected a closing newline after the final step")
	}
}

func TestProgressBarZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	newProgressBar(&buf, 10).update(0, 0, "x")
	if buf.Len() != 0 {
		t.Errorf("Expected no output for zero total, got %q", buf.String())
	}
}
