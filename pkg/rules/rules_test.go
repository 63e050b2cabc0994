package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/pathinfo"
)

func TestExplicitList(t *testing.T) {
	c := NewExplicitList([]string{"one.txt", "two.txt"})
	assert.Equal(t, KindExplicitList, c.Kind())

	got, err := c.Compute(pathinfo.Parse("a.txt"), 1)
	require.NoError(t, err)
	assert.Equal(t, "one.txt", got)

	got, err = c.Compute(pathinfo.Parse("b.txt"), 2)
	require.NoError(t, err)
	assert.Equal(t, "two.txt", got)

	// Running past the supplied list is an error on the pair.
	_, err = c.Compute(pathinfo.Parse("c.txt"), 3)
	assert.Error(t, err)
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		orig string
		seq  int
		want string
	}{
		{
			name: "uppercase stem",
			src:  "{{.Directory}}/{{.Stem | upper}}{{.Ext}}",
			orig: "docs/report.txt",
			want: "docs/REPORT.txt",
		},
		{
			name: "sequence numbering",
			src:  "img-{{pad 3 .Seq}}{{.Ext}}",
			orig: "photo.jpg",
			seq:  7,
			want: "img-007.jpg",
		},
		{
			name: "regexp replace",
			src:  `{{reReplace "[0-9]+" "N" .Name}}`,
			orig: "track01.mp3",
			want: "trackN.mpN",
		},
		{
			name: "prefix trim",
			src:  `{{.Directory}}/{{trimPrefix "draft-" .Name}}`,
			orig: "out/draft-paper.md",
			want: "out/paper.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewTemplate(tt.src)
			require.NoError(t, err)
			assert.Equal(t, KindTemplate, c.Kind())

			seq := tt.seq
			if seq == 0 {
				seq = 1
			}
			got, err := c.Compute(pathinfo.Parse(tt.orig), seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateParseError(t *testing.T) {
	_, err := NewTemplate("{{.Stem")
	assert.Error(t, err)
}

func TestTemplateExecError(t *testing.T) {
	c, err := NewTemplate(`{{reReplace "[" "x" .Name}}`)
	require.NoError(t, err)

	_, err = c.Compute(pathinfo.Parse("a.txt"), 1)
	assert.Error(t, err)
}

func TestPatternFilter(t *testing.T) {
	keep, err := NewPatternFilter(`\.txt$`, true)
	require.NoError(t, err)

	ok, err := keep.Keep(pathinfo.Parse("a.txt"), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = keep.Keep(pathinfo.Parse("a.jpg"), 2)
	require.NoError(t, err)
	assert.False(t, ok)

	exclude, err := NewPatternFilter(`^tmp/`, false)
	require.NoError(t, err)

	ok, err = exclude.Keep(pathinfo.Parse("tmp/scratch.txt"), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = exclude.Keep(pathinfo.Parse("docs/a.txt"), 2)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = NewPatternFilter("[", true)
	assert.Error(t, err)
}

func TestComputerFunc(t *testing.T) {
	c := ComputerFunc(func(orig pathinfo.PathInfo, seq int) (string, error) {
		return orig.Full + ".bak", nil
	})
	assert.Equal(t, KindCallback, c.Kind())

	got, err := c.Compute(pathinfo.Parse("a.txt"), 1)
	require.NoError(t, err)
	assert.Equal(t, "a.txt.bak", got)
}
