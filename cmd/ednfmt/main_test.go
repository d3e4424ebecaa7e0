package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcard/edn/lang"
	"github.com/tcard/edn/reader"
)

const schema = `
; person schema
{:db/ident :person/name, :db/valueType :db.type/string}
{:db/ident :person/friends
 :db/valueType :db.type/ref
 :db/doc "people they know"}
[:person/name :name (:person/name)]
`

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	status := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return status, stdout.String(), stderr.String()
}

func TestFormat(t *testing.T) {
	status, out, _ := runWith(t, schema)
	require.Equal(t, 0, status)
	assert.Equal(t, `{:db/ident :person/name, :db/valueType :db.type/string}
{:db/ident :person/friends, :db/valueType :db.type/ref, :db/doc "people they know"}
[:person/name :name (:person/name)]
`, out)
}

func TestKeywordsMode(t *testing.T) {
	status, out, _ := runWith(t, schema, "-mode", "keywords")
	require.Equal(t, 0, status)
	assert.Equal(t, []string{
		":db/ident",
		":person/name",
		":db/valueType",
		":db.type/string",
		":person/friends",
		":db.type/ref",
		":db/doc",
		":name",
	}, strings.Fields(out))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ednfmt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mode: keywords\nseparator: \" \"\n"), 0o600))
	input := filepath.Join(dir, "in.edn")
	require.NoError(t, os.WriteFile(input, []byte("[:a :b/c :a]"), 0o600))

	status, out, _ := runWith(t, "", "-config", cfgPath, input)
	require.Equal(t, 0, status)
	assert.Equal(t, ":a :b/c ", out)

	status, out, _ = runWith(t, "", "-config", cfgPath, "-mode", "format", input)
	require.Equal(t, 0, status)
	assert.Equal(t, "[:a :b/c :a] ", out)
}

func TestReadErrorIsLogged(t *testing.T) {
	status, out, errOut := runWith(t, ":ok ::bad")
	assert.Equal(t, 1, status)
	assert.Equal(t, ":ok\n", out)
	assert.Contains(t, errOut, "Failed to read form")
	assert.Contains(t, errOut, "form=2")
}

func TestMissingFile(t *testing.T) {
	status, _, errOut := runWith(t, "", filepath.Join(t.TempDir(), "nope.edn"))
	assert.Equal(t, 1, status)
	assert.Contains(t, errOut, "Failed to open input")
}

func TestBadFlags(t *testing.T) {
	status, _, errOut := runWith(t, "", "-mode", "pretty")
	assert.Equal(t, 2, status)
	assert.Contains(t, errOut, "unknown mode")

	status, _, errOut = runWith(t, "", "-config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, 2, status)
	assert.Contains(t, errOut, "failed to load config")
}

func TestDebugLogging(t *testing.T) {
	status, _, errOut := runWith(t, ":a :b", "-log-level", "debug")
	require.Equal(t, 0, status)
	assert.Contains(t, errOut, "Finished input")
	assert.Contains(t, errOut, "forms=2")
}

func TestCollectKeywords(t *testing.T) {
	form, err := reader.FromString(`{:a [:b {:c d}] e (:a)}`).Read()
	require.NoError(t, err)
	assert.Equal(t, []lang.Keyword{
		lang.NewKeyword("a"),
		lang.NewKeyword("b"),
		lang.NewKeyword("c"),
		lang.NewKeyword("a"),
	}, collectKeywords(form, nil))
}
