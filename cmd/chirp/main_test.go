package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	want := []string{"start", "stop", "status", "daemon", "enqueue", "params", "tasks", "decode", "encode", "config"}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "chirp.toml")
	content := fmt.Sprintf("[paths]\nlog_dir = %q\n", filepath.Join(dir, "logs"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEncodeDecodeRoundTripThroughFiles(t *testing.T) {
	configPath := writeTestConfig(t)
	segment := filepath.Join(t.TempDir(), "segment.pcm")

	encodeOut := &bytes.Buffer{}
	encode := newRootCommand()
	encode.SetOut(encodeOut)
	encode.SetErr(encodeOut)
	encode.SetArgs([]string{"--config", configPath, "encode", "-o", segment, "HI"})
	if err := encode.Execute(); err != nil {
		t.Fatalf("encode: %v (output: %s)", err, encodeOut.String())
	}

	decodeOut := &bytes.Buffer{}
	decode := newRootCommand()
	decode.SetOut(decodeOut)
	decode.SetErr(decodeOut)
	decode.SetArgs([]string{"--config", configPath, "decode", segment})
	if err := decode.Execute(); err != nil {
		t.Fatalf("decode: %v (output: %s)", err, decodeOut.String())
	}

	if got := strings.TrimSpace(decodeOut.String()); got != "HI" {
		t.Fatalf("decoded %q, want HI", got)
	}
}

func TestEncodeRequiresOutputFlag(t *testing.T) {
	configPath := writeTestConfig(t)

	out := &bytes.Buffer{}
	root := newRootCommand()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"--config", configPath, "encode", "NOOP"})
	if err := root.Execute(); err == nil {
		t.Fatal("encode without --output succeeded")
	}
}
