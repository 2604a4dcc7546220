package panel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_LookupAndOrder(t *testing.T) {
	r := NewRegistry(
		Registration{ID: "a", Name: "A"},
		Registration{ID: "b", Name: "B"},
		Registration{ID: "a", Name: "duplicate"},
	)

	require.Equal(t, []string{"a", "b"}, r.IDs())
	reg, ok := r.Lookup("a")
	require.True(t, ok)
	require.Equal(t, "A", reg.Name)

	_, ok = r.Lookup("missing")
	require.False(t, ok)
}

func TestRegistry_Enabled(t *testing.T) {
	r := NewRegistry(Registration{ID: "a"}, Registration{ID: "b"}, Registration{ID: "c"})

	require.Equal(t, []string{"a", "b", "c"}, r.Enabled(nil).IDs())
	require.Equal(t, []string{"a", "c"}, r.Enabled([]string{"c", "a", "zzz"}).IDs())
}

func TestRegistry_AllIsACopy(t *testing.T) {
	r := NewRegistry(Registration{ID: "a"})
	all := r.All()
	all[0].ID = "mutated"
	require.Equal(t, []string{"a"}, r.IDs())
}

func TestSource_String(t *testing.T) {
	require.Equal(t, "built-in", SourceBuiltIn.String())
	require.Equal(t, "unknown", Source(42).String())
}
