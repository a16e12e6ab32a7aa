package pathvar

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathvar/pkg/errors"
	"github.com/arthur-debert/pathvar/pkg/output"
	"github.com/arthur-debert/pathvar/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_WritesSession(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")

	res := run("append", "/bin")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Stdout)

	res = run("list", "--format", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/usr/bin\n/bin\n", res.Stdout)
}

func TestAppend_EmptyVariable(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("MANPATH", "")

	require.NoError(t, run("append", "-v", "MANPATH", "/usr/share/man").Err)

	res := run("list", "-v", "MANPATH", "-f", "json")
	require.NoError(t, res.Err)
	var doc output.ListDocument
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &doc))
	assert.Equal(t, []string{"", "/usr/share/man"}, doc.Entries)
}

func TestPrependAndRemove(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", testutil.JoinList("/usr/bin", "/bin"))

	require.NoError(t, run("prepend", "/opt/bin").Err)
	require.NoError(t, run("remove", "/usr/bin").Err)

	res := run("list", "-f", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/opt/bin\n/bin\n", res.Stdout)
}

func TestDedupe(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("MANPATH", testutil.JoinList("/a", "/b", "/a"))

	res := run("dedupe", "-v", "MANPATH")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Stdout)

	res = run("list", "--var", "MANPATH", "--format", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/a\n/b\n", res.Stdout)
}

func TestAppend_VariableNotSet(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.UnsetVar("MYVAR")

	res := run("append", "/bin", "--var", "MYVAR")
	require.Error(t, res.Err)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrVariableNotSet))
	assert.Equal(t, "MYVAR", errors.GetErrorDetails(res.Err)["variable"])
	assert.Empty(t, res.Stdout)
	assert.Equal(t, "Error [VARIABLE_NOT_SET]: Variable MYVAR not set", output.RenderError(res.Err, false))
}

func TestAppend_InvalidEncoding(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")

	res := run("append", "/tmp/\xff")
	require.Error(t, res.Err)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrInvalidPathEncoding))

	res = run("list", "--format", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/usr/bin\n", res.Stdout)
}

func TestAppend_RequiresOneArg(t *testing.T) {
	testutil.NewTestEnvironment(t)

	assert.Error(t, run("append").Err)
	assert.Error(t, run("append", "/a", "/b").Err)
}

func TestList_JSON(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", testutil.JoinList("/usr/bin", "/bin"))

	res := run("list", "--format", "json")
	require.NoError(t, res.Err)

	var doc output.ListDocument
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &doc))
	assert.Equal(t, "PATH", doc.Variable)
	assert.Equal(t, []string{"/usr/bin", "/bin"}, doc.Entries)
}

func TestList_FormatFromConfig(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")
	t.Setenv("PATHVAR_OUTPUT_FORMAT", "json")

	res := run("list")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, `"variable": "PATH"`)
}

func TestList_BadFormat(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")

	res := run("list", "--format", "xml")
	require.Error(t, res.Err)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrInvalidInput))
}

func TestDefaultVariableFromConfigFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("MANPATH", "/usr/share/man")

	cfgFile := env.WriteConfig("custom.toml", "[pathvar]\nvariable = \"MANPATH\"\n")

	require.NoError(t, run("--config", cfgFile, "append", "/opt/man").Err)

	res := run("--config", cfgFile, "list", "--format", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/usr/share/man\n/opt/man\n", res.Stdout)
}

func TestUserConfigIsFound(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")
	env.WriteConfig("config.yaml", "output:\n  format: json\n")

	res := run("list")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, `"entries"`)
}

func TestConfigFileMissing(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run("--config", filepath.Join(t.TempDir(), "nope.toml"), "list")
	require.Error(t, res.Err)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrConfigLoad))
}

func TestEnv_RendersSessionChanges(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")

	res := run("env")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Stdout)

	require.NoError(t, run("append", "/bin").Err)

	res = run("env")
	require.NoError(t, res.Err)
	assert.Equal(t, "export PATH='"+testutil.JoinList("/usr/bin", "/bin")+"';\n", res.Stdout)

	res = run("env", "--shell", "fish")
	require.NoError(t, res.Err)
	assert.Equal(t, "set -gx PATH '/usr/bin' '/bin';\n", res.Stdout)
}

func TestEnv_BadShell(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run("env", "--shell", "tcsh")
	require.Error(t, res.Err)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrInvalidInput))
}

func TestSessions_AreIsolatedByID(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")

	require.NoError(t, run("--session", "one", "append", "/bin").Err)

	res := run("--session", "two", "list", "--format", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/usr/bin\n", res.Stdout)

	res = run("--session", "one", "list", "--format", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/usr/bin\n/bin\n", res.Stdout)
}

func TestSessionPathAndReset(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("PATH", "/usr/bin")

	res := run("session", "path")
	require.NoError(t, res.Err)
	sessionFile := env.SessionFile()
	assert.Equal(t, sessionFile+"\n", res.Stdout)

	require.NoError(t, run("append", "/bin").Err)
	assert.FileExists(t, sessionFile)

	res = run("session", "reset")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stderr, "Session test reset")
	assert.NoFileExists(t, sessionFile)

	res = run("list", "--format", "text")
	require.NoError(t, res.Err)
	assert.Equal(t, "/usr/bin\n", res.Stdout)
}

func TestSessionDirFromEnv(t *testing.T) {
	testutil.NewTestEnvironment(t)
	dir := t.TempDir()
	t.Setenv("PATHVAR_SESSION_DIR", dir)

	res := run("session", "path")
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "test.toml")+"\n", res.Stdout)
}

func TestVersion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run("version")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "pathvar version dev")
}

func TestCompletion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run("completion", "bash")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "pathvar")

	assert.Error(t, run("completion", "tcsh").Err)
}

func TestHelpTopics(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run("help", "sessions")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "# Sessions")

	res = run("topics")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "compare")
	assert.Contains(t, res.Stdout, "--var")
}

func TestNoCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run()
	require.Error(t, res.Err)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrInvalidInput))
}

func TestVerboseIsLongOnly(t *testing.T) {
	rootCmd := NewRootCmd()
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Empty(t, flag.Shorthand)

	appendCmd, _, err := rootCmd.Find([]string{"append"})
	require.NoError(t, err)
	assert.Equal(t, "v", appendCmd.Flags().Lookup("var").Shorthand)
}
