package pending

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// materialize writes a txtar archive as a file tree under dir.
func materialize(t *testing.T, dir string, archive string) {
	t.Helper()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, f.Data, 0644))
	}
}

const sampleTree = `
-- pkg/a/x_test.TestOne.received.txt --
new output
-- pkg/a/x_test.TestOne.approved.txt --
old output
-- pkg/a/x_test.TestTwo.approved.txt --
settled
-- pkg/b/approval_tests/y_test.TestThree.received.json --
{"fresh": true}
-- pkg/b/unrelated.txt --
not an artifact
`

func TestScan(t *testing.T) {
	dir := t.TempDir()
	materialize(t, dir, sampleTree)

	pairs, err := Scan(dir)
	require.NoError(t, err)

	var got []string
	for _, p := range pairs {
		rel, relErr := filepath.Rel(dir, p.Received)
		require.NoError(t, relErr)
		got = append(got, filepath.ToSlash(rel))
	}
	want := []string{
		"pkg/a/x_test.TestOne.received.txt",
		"pkg/b/approval_tests/y_test.TestThree.received.json",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scan results mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, pairs[0].FirstRun, "approved counterpart exists")
	assert.True(t, pairs[1].FirstRun, "no approved counterpart yet")
}

func TestScan_EmptyTree(t *testing.T) {
	pairs, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	materialize(t, dir, sampleTree)

	received := filepath.Join(dir, "pkg", "a", "x_test.TestOne.received.txt")
	p, err := Find(received)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pkg", "a", "x_test.TestOne.approved.txt"), p.Approved)
	assert.False(t, p.FirstRun)
}

func TestFind_RejectsNonArtifacts(t *testing.T) {
	_, err := Find("some/random.txt")
	assert.Error(t, err)
}

func TestFind_MissingFile(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "x.received.txt"))
	assert.Error(t, err)
}

func TestApprove_MovesBytesIntact(t *testing.T) {
	dir := t.TempDir()
	materialize(t, dir, sampleTree)

	p, err := Find(filepath.Join(dir, "pkg", "a", "x_test.TestOne.received.txt"))
	require.NoError(t, err)
	require.NoError(t, Approve(p))

	data, err := os.ReadFile(p.Approved)
	require.NoError(t, err)
	assert.Equal(t, "new output\n", string(data))
	assert.NoFileExists(t, p.Received)
}

func TestApprove_FirstRunCreatesApproved(t *testing.T) {
	dir := t.TempDir()
	materialize(t, dir, sampleTree)

	p, err := Find(filepath.Join(dir, "pkg", "b", "approval_tests", "y_test.TestThree.received.json"))
	require.NoError(t, err)
	require.True(t, p.FirstRun)
	require.NoError(t, Approve(p))

	assert.FileExists(t, p.Approved)
}

func TestReject_RemovesReceivedOnly(t *testing.T) {
	dir := t.TempDir()
	materialize(t, dir, sampleTree)

	p, err := Find(filepath.Join(dir, "pkg", "a", "x_test.TestOne.received.txt"))
	require.NoError(t, err)
	require.NoError(t, Reject(p))

	assert.NoFileExists(t, p.Received)
	data, err := os.ReadFile(p.Approved)
	require.NoError(t, err)
	assert.Equal(t, "old output\n", string(data))
}

func TestRenderDiff(t *testing.T) {
	dir := t.TempDir()
	materialize(t, dir, sampleTree)

	p, err := Find(filepath.Join(dir, "pkg", "a", "x_test.TestOne.received.txt"))
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderDiff(&buf, p)
	assert.Contains(t, buf.String(), "--- Diff ---")
	assert.Contains(t, buf.String(), "new output")
}

func TestPair_Name(t *testing.T) {
	p := Pair{Received: filepath.Join("a", "x_test.TestOne.received.txt")}
	assert.Equal(t, "x_test.TestOne.txt", p.Name())
}
