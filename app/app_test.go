package agentapp_test

import (
	"testing"

	"github.com/warptools/code-review-agent/app/testutil"
)

func TestCLIFixtures(t *testing.T) {
	testutil.TestFileContainingCLIFixtures(t, "testdata/cli.md")
}

func TestCLIHelpFixtures(t *testing.T) {
	testutil.TestFileContainingCLIFixtures(t, "testdata/help.md")
}
