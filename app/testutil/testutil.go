package testutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
	"github.com/warpfork/go-testmark"

	agentapp "github.com/warptools/code-review-agent/app"
	"github.com/warptools/code-review-agent/app/base/helpgen"
)

/*
	Fixture files are markdown documents containing testmark hunks.
	Each top-level directory of hunks is one test case:

	- {case}/args -- whitespace-separated arguments, not including the program name.  Optional; absent means no arguments.
	- {case}/stdin -- fed to the program.  Optional.
	- {case}/stdout -- expected stdout, compared after trimming.  Optional; regenerated with -testmark.regen.
	- {case}/stderr-contains -- every non-blank line must appear in stderr.  Optional.
	- {case}/exitcode -- expected exit code.  Optional; defaults to 0.
*/

// TestFileContainingCLIFixtures runs every case in the named fixture file against a freshly built program.
func TestFileContainingCLIFixtures(t *testing.T, fileName string) {
	t.Logf("loading test file: %q", fileName)
	doc, err := testmark.ReadFile(fileName)
	if err != nil {
		t.Fatalf("fixture file parse failed?!: %s", err)
	}
	helpgen.Mode = helpgen.Mode_Markdown

	doc.BuildDirIndex()
	patches := testmark.PatchAccumulator{}
	for _, dir := range doc.DirEnt.ChildrenList {
		dir := dir
		t.Run(dir.Name, func(t *testing.T) {
			runCase(t, dir, &patches)
		})
	}
	if *testmark.Regen {
		patches.WriteFileWithPatches(doc, fileName)
	}
}

func runCase(t *testing.T, dir *testmark.DirEnt, patches *testmark.PatchAccumulator) {
	args := strings.Fields(hunkString(dir, "args"))
	stdin := strings.NewReader(hunkString(dir, "stdin"))
	exitCode, stdout, stderr := Exec(t, args, stdin)

	if hunk := findHunk(dir, "stdout"); hunk != nil {
		if *testmark.Regen {
			newHunk := *hunk
			newHunk.Body = []byte(stdout)
			patches.AppendPatch(newHunk)
		} else {
			qt.Assert(t, cleanOutput(stdout), qt.Equals, cleanOutput(string(hunk.Body)))
		}
	}
	for _, line := range strings.Split(hunkString(dir, "stderr-contains"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		qt.Assert(t, stderr, qt.Contains, line)
	}
	expectCode := 0
	if s := strings.TrimSpace(hunkString(dir, "exitcode")); s != "" {
		expectCode, _ = strconv.Atoi(s)
	}
	qt.Assert(t, exitCode, qt.Equals, expectCode)
}

// Exec builds the program, dispatches args, and reports the exit code main would use along with both output streams.
func Exec(t *testing.T, args []string, stdin io.Reader) (int, string, string) {
	var bufout, buferr bytes.Buffer
	reg, err := agentapp.New(stdin, &bufout, &buferr)
	qt.Assert(t, err, qt.IsNil)

	_, err = reg.Dispatch(context.Background(), args)
	exitCode := 0
	if err != nil {
		exitCode = 1
	}

	t.Logf("Args: %v", args)
	for err != nil {
		t.Logf("Code: %s", serum.Code(err))
		t.Logf("Message: %s", serum.Message(err))
		t.Logf("Details: %v", serum.Details(err))
		err = errors.Unwrap(err)
		if err != nil {
			t.Logf("caused by:")
		}
	}
	t.Logf("⌄⌄⌄ stdout ⌄⌄⌄\n%s", bufout.String())
	t.Logf("⌄⌄⌄ stderr ⌄⌄⌄\n%s", buferr.String())
	return exitCode, bufout.String(), buferr.String()
}

func findHunk(dir *testmark.DirEnt, name string) *testmark.Hunk {
	child, ok := dir.Children[name]
	if !ok || child.Hunk == nil {
		return nil
	}
	return child.Hunk
}

func hunkString(dir *testmark.DirEnt, name string) string {
	hunk := findHunk(dir, name)
	if hunk == nil {
		return ""
	}
	return string(hunk.Body)
}

func cleanOutput(str string) string {
	return strings.TrimSpace(str)
}
