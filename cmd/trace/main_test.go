package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunTracesEveryTick(t *testing.T) {
	for _, backend := range []string{"cp", "grid"} {
		t.Run(backend, func(t *testing.T) {
			var out bytes.Buffer
			err := run(options{level: "flat", prefab: "player.yaml", backend: backend, ticks: 120}, &out)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			if len(lines) != 120 {
				t.Fatalf("got %d lines, want 120", len(lines))
			}
			if !strings.HasPrefix(lines[0], "tick=0000 ") {
				t.Fatalf("unexpected first line %q", lines[0])
			}
			for _, want := range []string{"landed", "jumped", "facing=right"} {
				if !strings.Contains(out.String(), want) {
					t.Fatalf("trace has no %q", want)
				}
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"unknown level", options{level: "nowhere", prefab: "player.yaml", ticks: 1}},
		{"unknown backend", options{level: "flat", prefab: "player.yaml", backend: "box2d", ticks: 1}},
		{"unknown script", options{level: "flat", prefab: "player.yaml", script: "missing", ticks: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts, &bytes.Buffer{}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRunUsesDiskOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prefabs", "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	script := []byte("horizontal = -1.0\n")
	if err := os.WriteFile(filepath.Join(dir, "prefabs", "scripts", "left.tengo"), script, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	var out bytes.Buffer
	if err := run(options{level: "flat", prefab: "player.yaml", backend: "grid", script: "left", ticks: 30}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "facing=left") {
		t.Fatalf("disk script was not used")
	}
}
