package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_ParsesRowsAndSkipsHeader(t *testing.T) {
	input := strings.Join([]string{
		"title,batik,jsvg,svgsalamander,echosvg",
		"a/1.svg,1,2,3,1",
		"a/2.svg,0,1,1,1",
		"b/1.svg,2,1,1,2",
	}, "\n") + "\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{Name: "a/1.svg", Outcomes: [Slots]Outcome{Passed, Failed, Crashed, Passed}}, rows[0])
	assert.Equal(t, Unknown, rows[1].Outcomes[0])
	assert.Equal(t, "b", rows[2].Group())
}

func TestRead_AcceptsHeaderOfAnyWidth(t *testing.T) {
	input := "title,chrome,resvg,batik,inkscape,librsvg,jsvg\nx.svg,1,1,1,1\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRead_KeepsBareQuotesInIdentifiers(t *testing.T) {
	input := "title,a,b,c,d\ntext/\"quoted\".svg,1,2,1,1\n\"a,b/1.svg\",2,1,1,1\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `text/"quoted".svg`, rows[0].Name)
	assert.Equal(t, Passed, rows[0].Outcomes[0])
	assert.Equal(t, "a,b/1.svg", rows[1].Name)
}

func TestRead_Empty(t *testing.T) {
	rows, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_FailsFast(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "too few fields",
			input:   "title\na/1.svg,1,1,1\n",
			wantErr: ErrArity,
			wantMsg: "line 2",
		},
		{
			name:    "too many fields",
			input:   "a/1.svg,1,1,1,1,1\n",
			wantErr: ErrArity,
			wantMsg: "want 5, got 6",
		},
		{
			name:    "non-numeric code",
			input:   "a/1.svg,1,x,1,1\n",
			wantErr: ErrOutcome,
			wantMsg: "column 3",
		},
		{
			name:    "code out of range",
			input:   "a/1.svg,1,1,1,4\n",
			wantErr: ErrOutcome,
			wantMsg: `"4"`,
		},
		{
			name:    "negative code",
			input:   "a/1.svg,-1,1,1,1\n",
			wantErr: ErrOutcome,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, rows)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "results.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile_PrefixesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("a.svg,1,1\n"), 0o600))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"structure/svg/zero-size.svg", "structure"},
		{"shapes/rect.svg", "shapes"},
		{"standalone.svg", "standalone.svg"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupOf(tt.name), tt.name)
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "passed", Passed.String())
	assert.Equal(t, "crashed", Crashed.String())
	assert.Equal(t, "outcome(7)", Outcome(7).String())
}
