package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveFixtures_Empty(t *testing.T) {
	require.Equal(t, "", ResolveFixtures(""))
}

func TestResolveFixtures_File(t *testing.T) {
	result := ResolveFixtures(filepath.FromSlash("/path/to/data.yaml"))
	require.Equal(t, filepath.FromSlash("/path/to/data.yaml"), result)
}

func TestResolveFixtures_YMLUppercase(t *testing.T) {
	result := ResolveFixtures(filepath.FromSlash("/path/to/DATA.YML"))
	require.Equal(t, filepath.FromSlash("/path/to/DATA.YML"), result)
}

func TestResolveFixtures_Directory(t *testing.T) {
	result := ResolveFixtures(filepath.FromSlash("/path/to/project/"))
	require.Equal(t, filepath.FromSlash("/path/to/project/"+FixturesName), result)
}

func TestResolveFixtures_Relative(t *testing.T) {
	require.Equal(t, FixturesName, ResolveFixtures("."))
	require.Equal(t, "data.yaml", ResolveFixtures("./data.yaml"))
}

func TestResolveFixtures_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	result := ResolveFixtures("~" + string(filepath.Separator) + "data.yaml")
	require.Equal(t, filepath.Join(home, "data.yaml"), result)
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.FromSlash("/xdg/config"))
	dir, err := ConfigDir()
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("/xdg/config/gitpanes"), dir)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("/xdg/config/gitpanes/config.yaml"), path)
}

func TestConfigDir_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	dir, err := ConfigDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "gitpanes"), dir)
}

func TestStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", filepath.FromSlash("/xdg/state"))
	dir, err := StateDir()
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("/xdg/state/gitpanes"), dir)

	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)
	dir, err = StateDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "state", "gitpanes"), dir)
}
