package tasklist

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/qasummary/internal/model"
	"github.com/Makepad-fr/qasummary/internal/store/filestore"
)

func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tasks.md",
		[]byte("## Tasks\n- [ ] 1.1 Setup env\n- [x] 1.2 Implement feature\n- [ ] 2.1 Write tests\n"), 0o644))

	got := Format(ParseFile(filestore.New(fs), "/tasks.md"))
	assert.Equal(t, []string{
		"[Todo] Setup env",
		"[Done] Implement feature",
		"[Todo] Write tests",
	}, got)
}

func TestParseFileMissing(t *testing.T) {
	store := filestore.New(afero.NewMemMapFs())

	assert.Empty(t, ParseFile(store, "/does/not/exist.md"))
	assert.Empty(t, ParseFile(store, ""))
}

func TestParseFileDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tasks", 0o755))

	assert.Empty(t, ParseFile(filestore.New(fs), "/tasks"))
}

func TestParseIgnoresItemsOutsideSection(t *testing.T) {
	in := strings.Join([]string{
		"# Project",
		"- [x] 0.1 Before the heading",
		"## Tasks",
		"- [ ] 1.1 Inside",
		"## Notes",
		"- [x] 3.1 After the section",
		"## Tasks",
		"- [x] 4.1 Never reached",
	}, "\n")

	got := Parse(strings.NewReader(in))
	assert.Equal(t, []model.Task{{Status: model.StatusTodo, Description: "Inside"}}, got)
}

func TestParseHeadingCaseAndIndent(t *testing.T) {
	in := "   ## TASKS  \n  - [x] 1.1 Indented item\n"

	got := Parse(strings.NewReader(in))
	require.Len(t, got, 1)
	assert.Equal(t, "[Done] Indented item", got[0].String())
}

func TestParseSkipsMalformedLines(t *testing.T) {
	in := strings.Join([]string{
		"## Tasks",
		"- [ ] no numbering",
		"- [X] 1.1 upper-case mark",
		"- [  ] 1.2 two spaces",
		"* [ ] 1.3 wrong bullet",
		"- [ ] 1 single number",
		"some prose",
		"",
		"- [x] 10.20   Trailing spaces   ",
		"-  [ ] 1.4 double space after dash",
	}, "\n")

	got := Format(Parse(strings.NewReader(in)))
	assert.Equal(t, []string{"[Done] Trailing spaces"}, got)
}

func TestParseCRLF(t *testing.T) {
	in := "## Tasks\r\n- [ ] 1.1 Windows line\r\n"

	assert.Equal(t, []string{"[Todo] Windows line"}, Format(Parse(strings.NewReader(in))))
}

func TestParseNoHeading(t *testing.T) {
	in := "- [ ] 1.1 Orphan\n- [x] 1.2 Orphan too\n"

	assert.Empty(t, Parse(strings.NewReader(in)))
}

func TestFormatEmpty(t *testing.T) {
	assert.Empty(t, Format(nil))
}

func TestParseLongLineInsideSection(t *testing.T) {
	long := "- " + strings.Repeat("a", 2*1024*1024)
	in := "## Tasks\n- [ ] 1.1 First\n" + long + "\n- [x] 1.2 Second\n"

	got := Format(Parse(strings.NewReader(in)))
	assert.Equal(t, []string{"[Todo] First", "[Done] Second"}, got)
}

func TestParseLastLineWithoutNewline(t *testing.T) {
	in := "## Tasks\n- [x] 1.1 No trailing newline"

	assert.Equal(t, []string{"[Done] No trailing newline"}, Format(Parse(strings.NewReader(in))))
}
