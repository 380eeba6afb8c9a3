package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testDir = os.DirFS("testdata")

// inOut maps every testdata/<dir>/*.in.txt to its expected output file.
func inOut(t *testing.T, dir string) map[string]string {
	m := make(map[string]string)
	err := fs.WalkDir(testDir, dir, func(path string, d fs.DirEntry, err error) error {
		parts := strings.Split(path, ".")
		if len(parts) == 3 && parts[1] == "in" {
			m[path] = strings.Join([]string{parts[0], "out.txt"}, ".")
		}
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(m) == 0 {
		t.Fatalf("no inputs under testdata/%s", dir)
	}
	return m
}

func test(dir string, args ...string) func(t *testing.T) {
	return func(t *testing.T) {
		for in, out := range inOut(t, dir) {
			var got bytes.Buffer
			run(append(args, filepath.Join("testdata", in)), strings.NewReader(""), &got, &got)
			want, err := fs.ReadFile(testDir, out)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got.Bytes(), want) {
				t.Errorf("%s does not match output:\n`%s`", out, got.Bytes())
			}
		}
	}
}

func TestGolden(t *testing.T) {
	for _, mode := range []struct{ name, flag string }{
		{"SmallStep", "-small-step"},
		{"BigStep", "-big-step"},
	} {
		t.Run(mode.name, func(t *testing.T) {
			t.Run("Plain", test("plain", mode.flag))
			t.Run("Trace", test("trace", mode.flag, "-trace"))
			t.Run("DeBruijn", test("debruijn", mode.flag, "-debruijn"))
		})
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"testdata/plain/church.in.txt"}, 2},
		{[]string{"-small-step", "-big-step", "testdata/plain/church.in.txt"}, 2},
		{[]string{"-small-step"}, 2},
		{[]string{"-small-step", "testdata/missing.in.txt"}, 2},
		{[]string{"-nope", "-small-step", "testdata/plain/church.in.txt"}, 2},
		{[]string{"-small-step", "testdata/plain/church.in.txt"}, 0},
		{[]string{"-big-step", "testdata/plain/undefined.in.txt"}, 1},
		{[]string{"-small-step", "testdata/plain/partial.in.txt"}, 1},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := run(tt.args, strings.NewReader(""), &out, &out); got != tt.want {
			t.Errorf("run(%q) = %d, want %d\n%s", tt.args, got, tt.want, out.Bytes())
		}
	}
}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	run(nil, strings.NewReader(""), &stdout, &stderr)
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "usage: untyped") {
		t.Errorf("stderr %q does not start with usage", stderr.String())
	}
}

func TestStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-small-step", "-"}, strings.NewReader("(lambda x { x x }) (lambda y { y })"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.Bytes())
	}
	want := "((lambda x. (x x)) (lambda y. y))\n==> (lambda y. y)\n"
	if stdout.String() != want {
		t.Errorf("got %q, want %q", stdout.String(), want)
	}
}
