package libxc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/feather-lang/libxc"
)

func newFunctional(t *testing.T, id int32, polarization libxc.Polarization) *libxc.Functional {
	t.Helper()
	f, err := libxc.New(id, polarization)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestNew(t *testing.T) {
	f := newFunctional(t, 32, libxc.Polarized)
	assert.Equal(t, int32(32), f.Number())
	assert.Equal(t, libxc.Polarized, f.Polarization())
}

func TestNewFromName(t *testing.T) {
	f, err := libxc.NewFromName("XC_GGA_X_GAM", libxc.Unpolarized)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int32(32), f.Number())
	assert.Equal(t, libxc.Unpolarized, f.Polarization())
}

func TestNewFromNameInvalid(t *testing.T) {
	f, err := libxc.NewFromName("INVALID_NAME", libxc.Unpolarized)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, libxc.ErrInvalidName)
}

func TestNewInvalidID(t *testing.T) {
	f, err := libxc.New(0, libxc.Unpolarized)
	assert.Nil(t, f)

	var initErr *libxc.InitError
	require.True(t, errors.As(err, &initErr), "expected *InitError, got %v", err)
	assert.Equal(t, int32(0), initErr.ID)
	assert.Equal(t, libxc.Unpolarized, initErr.Polarization)
	assert.NotZero(t, initErr.Code)
}

func TestNewInvalidPolarization(t *testing.T) {
	var zero libxc.Polarization
	for _, polarization := range []libxc.Polarization{zero, 7, -1} {
		f, err := libxc.New(1, polarization)
		assert.Nil(t, f)
		assert.ErrorIs(t, err, libxc.ErrInvalidPolarization, "polarization %d", polarization)
	}

	f, err := libxc.NewFromName("XC_GGA_X_GAM", 0)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, libxc.ErrInvalidPolarization)
}

func TestNumberMatchesID(t *testing.T) {
	for _, id := range libxc.AvailableFunctionalNumbers() {
		for _, polarization := range []libxc.Polarization{libxc.Unpolarized, libxc.Polarized} {
			f, err := libxc.New(id, polarization)
			require.NoError(t, err, "id %d %s", id, polarization)
			assert.Equal(t, id, f.Number())
			require.NoError(t, f.Close())
		}
	}
}

func TestName(t *testing.T) {
	f := newFunctional(t, 1, libxc.Polarized)
	assert.Equal(t, "Slater exchange", f.Name())
}

func TestKind(t *testing.T) {
	f := newFunctional(t, 1, libxc.Unpolarized)
	assert.Equal(t, libxc.Exchange, f.Kind())
}

func TestFamily(t *testing.T) {
	f := newFunctional(t, 32, libxc.Unpolarized)
	assert.Equal(t, libxc.FamilyGGA, f.Family())
}

func TestFlags(t *testing.T) {
	f := newFunctional(t, 1, libxc.Unpolarized)
	flags := f.Flags()
	assert.Equal(t, libxc.Flags(135), flags)
	assert.True(t, flags.Has(libxc.FlagHaveExc))
	assert.True(t, flags.Has(libxc.FlagHaveVxc|libxc.FlagHaveFxc))
	assert.True(t, flags.Has(libxc.Flag3D))
	assert.False(t, flags.Has(libxc.Flag1D))
}

func TestReferences(t *testing.T) {
	f := newFunctional(t, 1, libxc.Unpolarized)
	refs := f.References()
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		assert.NotEmpty(t, ref.Text)
	}
}

func TestInfo(t *testing.T) {
	f := newFunctional(t, 1, libxc.Polarized)
	info := f.Info()
	assert.Equal(t, int32(1), info.Number)
	assert.Equal(t, "Slater exchange", info.Name)
	assert.Equal(t, libxc.Exchange, info.Kind)
	assert.Equal(t, libxc.FamilyLDA, info.Family)
	assert.Equal(t, libxc.Flags(135), info.Flags)
	assert.Equal(t, libxc.Polarized, info.Polarization)
	assert.Equal(t, f.References(), info.References)
}

func TestClone(t *testing.T) {
	f, err := libxc.New(1, libxc.Unpolarized)
	require.NoError(t, err)

	cloned, err := f.Clone()
	require.NoError(t, err)
	defer cloned.Close()

	assert.Equal(t, f.Name(), cloned.Name())
	assert.Equal(t, f.Polarization(), cloned.Polarization())

	require.NoError(t, f.Close())
	assert.Equal(t, "Slater exchange", cloned.Name())
	assert.Equal(t, int32(1), cloned.Number())
}

func TestCloneOutlivedByOriginal(t *testing.T) {
	f := newFunctional(t, 32, libxc.Polarized)

	cloned, err := f.Clone()
	require.NoError(t, err)
	require.NoError(t, cloned.Close())

	assert.Equal(t, int32(32), f.Number())
	assert.Equal(t, libxc.FamilyGGA, f.Family())
}

func TestCloseTwice(t *testing.T) {
	f, err := libxc.New(1, libxc.Unpolarized)
	require.NoError(t, err)
	assert.NoError(t, f.Close())
	assert.NoError(t, f.Close())
}

func TestUseAfterClose(t *testing.T) {
	f, err := libxc.New(1, libxc.Unpolarized)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Panics(t, func() { f.Name() })
	assert.Panics(t, func() { f.Clone() })
}

func TestLifecycleLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	libxc.SetLogger(zap.New(core))
	defer libxc.SetLogger(nil)

	f, err := libxc.New(1, libxc.Unpolarized)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = libxc.New(0, libxc.Unpolarized)
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("functional initialized").Len())
	assert.Equal(t, 1, logs.FilterMessage("functional released").Len())
	assert.Equal(t, 1, logs.FilterMessage("functional init failed").Len())
}
