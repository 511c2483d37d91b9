package internals

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"
)

func TestReportWriter(t *testing.T) {
	fd, err := ioutil.TempFile("", "hashcalc-report")
	if err != nil {
		t.Fatal(err)
	}
	path := fd.Name()
	fd.Close()
	defer os.Remove(path)

	report, err := NewReportWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	sel := mustSelection(t, ``)
	if err := report.HeadLine(sel); err != nil {
		t.Fatal(err)
	}
	if err := report.TailLine(HashMD5, abcMD5, 3, `/evidence/a.txt`); err != nil {
		t.Fatal(err)
	}
	if err := report.Close(); err != nil {
		t.Fatal(err)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf(`expected 2 report lines, got %d`, len(lines))
	}
	if !strings.HasPrefix(lines[0], `# 1.0.0 `) || !strings.HasSuffix(lines[0], ` MD5,SHA1`) {
		t.Errorf(`unexpected headline '%s'`, lines[0])
	}
	if lines[1] != abcMD5+` MD5 3 /evidence/a.txt` {
		t.Errorf(`unexpected tailline '%s'`, lines[1])
	}
}

func TestReportWriterStdout(t *testing.T) {
	report, err := NewReportWriter(`-`)
	if err != nil {
		t.Fatal(err)
	}
	if report.File != os.Stdout {
		t.Errorf(`expected '-' to select stdout`)
	}
	if err := report.Close(); err != nil {
		t.Errorf(`expected closing a stdout report to be a no-op, got %s`, err.Error())
	}
}
