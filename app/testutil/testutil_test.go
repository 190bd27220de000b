package testutil

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/warpfork/go-testmark"
)

func TestFindHunk(t *testing.T) {
	doc, err := testmark.ReadFile("../testdata/cli.md")
	qt.Assert(t, err, qt.IsNil)
	doc.BuildDirIndex()

	dir := doc.DirEnt.Children["ping"]
	qt.Assert(t, dir, qt.IsNotNil)

	hunk := findHunk(dir, "args")
	qt.Assert(t, hunk, qt.IsNotNil)
	qt.Assert(t, hunk.Name, qt.Equals, "ping/args")
	qt.Assert(t, hunkString(dir, "stdout"), qt.Equals, "pong\n")

	qt.Assert(t, findHunk(dir, "stdin"), qt.IsNil)
	qt.Assert(t, hunkString(dir, "stdin"), qt.Equals, "")
}

func TestRegenPatchReplacesBody(t *testing.T) {
	doc, err := testmark.ReadFile("../testdata/cli.md")
	qt.Assert(t, err, qt.IsNil)
	doc.BuildDirIndex()
	dir := doc.DirEnt.Children["ping"]

	patches := testmark.PatchAccumulator{}
	newHunk := *findHunk(dir, "stdout")
	newHunk.Body = []byte("pang\n")
	patches.AppendPatch(newHunk)

	patched := testmark.Patch(doc, patches.Patches...)
	patched.BuildDirIndex()
	qt.Assert(t, hunkString(patched.DirEnt.Children["ping"], "stdout"), qt.Equals, "pang\n")
	qt.Assert(t, hunkString(patched.DirEnt.Children["ping"], "args"), qt.Equals, "ping\n")
}
