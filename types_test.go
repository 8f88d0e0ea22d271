package libxc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPolarizationNativeValues(t *testing.T) {
	assert.Equal(t, Polarization(1), Unpolarized)
	assert.Equal(t, Polarization(2), Polarized)
}

func TestPolarizationValid(t *testing.T) {
	assert.True(t, Unpolarized.valid())
	assert.True(t, Polarized.valid())
	assert.False(t, Polarization(0).valid())
	assert.False(t, Polarization(7).valid())
}

func TestParsePolarization(t *testing.T) {
	p, err := ParsePolarization("Polarized")
	require.NoError(t, err)
	assert.Equal(t, Polarized, p)

	p, err = ParsePolarization(Unpolarized.String())
	require.NoError(t, err)
	assert.Equal(t, Unpolarized, p)

	p, err = ParsePolarization("spin")
	assert.ErrorIs(t, err, ErrInvalidPolarization)
	assert.False(t, p.valid())
}

func TestKindFromCode(t *testing.T) {
	assert.Equal(t, Exchange, kindFromCode(0))
	assert.Equal(t, Correlation, kindFromCode(1))
	assert.Equal(t, ExchangeCorrelation, kindFromCode(2))
	assert.Equal(t, Kinetic, kindFromCode(3))
	assert.Panics(t, func() { kindFromCode(4) })
	assert.Panics(t, func() { kindFromCode(-1) })
}

func TestFamilyFromCode(t *testing.T) {
	assert.Equal(t, FamilyUnknown, familyFromCode(-1))
	assert.Equal(t, FamilyLDA, familyFromCode(1))
	assert.Equal(t, FamilyGGA, familyFromCode(2))
	assert.Equal(t, FamilyHybridLDA, familyFromCode(128))
	assert.Panics(t, func() { familyFromCode(3) })
	assert.Panics(t, func() { familyFromCode(0) })
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "exchange-correlation", ExchangeCorrelation.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "hyb_gga", FamilyHybridGGA.String())
	assert.Equal(t, "Family(3)", Family(3).String())
	assert.Equal(t, "polarized", Polarized.String())
	assert.Equal(t, "0x87", Flags(135).String())
}

func TestInfoEncoding(t *testing.T) {
	info := Info{
		Number:       1,
		Name:         "Slater exchange",
		Kind:         Exchange,
		Family:       FamilyLDA,
		Flags:        135,
		Polarization: Unpolarized,
	}

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":1,"name":"Slater exchange","kind":"exchange","family":"lda","flags":135,"polarization":"unpolarized"}`, string(data))

	data, err = yaml.Marshal(info)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: exchange\n")
	assert.Contains(t, string(data), "family: lda\n")
	assert.Contains(t, string(data), "flags: 135\n")
}
