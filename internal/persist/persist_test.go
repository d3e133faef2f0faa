package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestDADocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "da.json")

	doc := DADocument{
		Base:  []*int{intp(2), nil, intp(5)},
		Check: []*int{nil, intp(0), intp(0)},
	}
	require.NoError(t, WriteDA(path, doc))

	got, err := ReadDA(path)
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestTMDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tm.json")

	doc := TMDocument{
		Mat: [][]Edge{
			{{Label: 'a', ChildID: 1}, {Label: 'b', ChildID: 2}},
			{},
			{{Label: 'c', ChildID: 3}},
			{},
		},
	}
	require.NoError(t, WriteTM(path, doc))

	got, err := ReadTM(path)
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestReadDAMissingFile(t *testing.T) {
	_, err := ReadDA(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
