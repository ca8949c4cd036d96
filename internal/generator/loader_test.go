package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enumsYML = `package: model
enums:
  - name: user_record
    doc: UserRecordField identifies a column of the users table.
    fields:
      - user_id
      - display_name
    rename:
      user_id: ID
  - name: audit_event
    suffix: ""
    file: audit_gen.go
    fields: [created_at, deleted_at]
`

func writeEnums(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enums.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEnums(t *testing.T) {
	path := writeEnums(t, enumsYML)

	f, err := LoadEnums(path)
	require.NoError(t, err)

	assert.Equal(t, "model", f.Package)
	require.Len(t, f.Enums, 2)

	user := f.Enums[0]
	assert.Equal(t, "user_record", user.Name.Text())
	assert.Nil(t, user.Suffix)
	assert.Equal(t, path, user.Name.Location().File())
	assert.Equal(t, 3, user.Name.Location().Line())
	assert.Equal(t, 11, user.Name.Location().Column())

	require.Len(t, user.Fields, 2)
	assert.Equal(t, "display_name", user.Fields[1].Text())
	assert.Equal(t, 7, user.Fields[1].Location().Line())
	assert.Equal(t, 9, user.Fields[1].Location().Column())

	require.Contains(t, user.Rename, "user_id")
	assert.Equal(t, "ID", user.Rename["user_id"].Value)
	assert.Equal(t, path, user.Rename["user_id"].Location().File())
	assert.Equal(t, 9, user.Rename["user_id"].Location().Line())

	audit := f.Enums[1]
	require.NotNil(t, audit.Suffix)
	assert.Empty(t, *audit.Suffix)
	assert.Equal(t, "audit_gen.go", audit.File)
	assert.Equal(t, []string{"created_at", "deleted_at"},
		[]string{audit.Fields[0].Text(), audit.Fields[1].Text()})
	assert.Equal(t, 13, audit.Fields[0].Location().Line())
}

func TestLoadEnums_Errors(t *testing.T) {
	_, err := LoadEnums(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "reading enums file")

	path := writeEnums(t, "enums:\n  - name: [not, a, name]\n")
	_, err = LoadEnums(path)
	assert.ErrorContains(t, err, "line 2: expected a name")
}
