package uniq_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitfield/uniq"
	"github.com/google/go-cmp/cmp"
)

func TestEcho(t *testing.T) {
	t.Parallel()
	want := "Hello, world."
	got, err := uniq.Echo(want).String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
}

func TestFile(t *testing.T) {
	t.Parallel()
	want := "hello world\n"
	got, err := uniq.File("testdata/hello.txt").String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
}

func TestFileSetsErrorForNonexistentFile(t *testing.T) {
	t.Parallel()
	p := uniq.File("testdata/doesntexist.txt")
	if p.Error() == nil {
		t.Fatal("want error opening nonexistent file, got nil")
	}
	if !os.IsNotExist(p.Error()) {
		t.Errorf("want not-exist error, got %v", p.Error())
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()
	want := "1\n2\n3\n"
	got, err := uniq.Slice([]string{"1", "2", "3"}).String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
	got, err = uniq.Slice(nil).String()
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("want empty pipe from empty slice, got %q", got)
	}
}

func TestStdin(t *testing.T) {
	t.Parallel()
	// dummy test to prove coverage
	uniq.Stdin()
	// now the real test
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), "UNIQ_TEST=stdin")
	cmd.Stdin = strings.NewReader("x\ny\nx\n")
	got, err := cmd.Output()
	if err != nil {
		t.Fatal(err)
	}
	want := "   2 x\n   1 y\n"
	if want != string(got) {
		t.Error(cmp.Diff(want, string(got)))
	}
}

func TestSourcesReplaceInvalidUTF8(t *testing.T) {
	t.Parallel()
	want := []string{"caf\uFFFD", "ok"}
	got, err := uniq.File("testdata/latin1.txt").Uniq(uniq.Options{}).Lines()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestSourcesStripCarriageReturns(t *testing.T) {
	t.Parallel()
	want := []string{"a", "b"}
	got, err := uniq.Echo("a\r\nb\r\na\n").Uniq(uniq.Options{}).Lines()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestSourcesTreatLoneCarriageReturnAsLineEnd(t *testing.T) {
	t.Parallel()
	want := []string{"   2 a", "   1 b"}
	got, err := uniq.Echo("a\rb\na\n").Uniq(uniq.Options{Count: true}).Lines()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestSourcesHandleLongLines(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 1<<20)
	got, err := uniq.Echo(long + "\n" + long + "\n").Lines()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != long {
		t.Errorf("want 2 lines of %d bytes", len(long))
	}
}

func TestIsRegularFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "regular.txt")
	if err := os.WriteFile(file, []byte("hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tcs := []struct {
		path string
		want bool
	}{
		{file, true},
		{dir, false},
		{filepath.Join(dir, "missing.txt"), false},
		{"", false},
	}
	for _, tc := range tcs {
		if got := uniq.IsRegularFile(tc.path); got != tc.want {
			t.Errorf("IsRegularFile(%q): want %t, got %t", tc.path, tc.want, got)
		}
	}
}
