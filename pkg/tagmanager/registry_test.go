package tagmanager

import (
	"testing"

	"github.com/harper/taggit/pkg/tags"
	"github.com/harper/taggit/pkg/xattrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"darwin"}, r.Platforms())

	m, err := r.Create("darwin", Deps{Store: xattrs.NewMemStore()})
	require.NoError(t, err)
	assert.IsType(t, &MacOS{}, m)
}

func TestCreateUnsupported(t *testing.T) {
	_, err := DefaultRegistry().Create("windows", Deps{Store: xattrs.NewMemStore()})
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestRegisterDuplicate(t *testing.T) {
	r := DefaultRegistry()
	err := r.Register("darwin", NewMacOSFactory())
	assert.ErrorIs(t, err, ErrDuplicatePlatform)
}

func TestCreateRequiresStore(t *testing.T) {
	_, err := DefaultRegistry().Create("darwin", Deps{})
	assert.Error(t, err)
}

func TestRegisterCustomPlatform(t *testing.T) {
	r := NewRegistry()
	store := xattrs.NewMemStore()
	require.NoError(t, r.Register("memory", NewMacOSFactory()))

	m, err := r.Create("memory", Deps{Store: store})
	require.NoError(t, err)
	require.NoError(t, m.Add("f", tags.Name("x")))

	raw := xattrs.NewAttribute(store).ReadRaw("f")
	assert.Equal(t, []string{"x\n0"}, raw)
}
