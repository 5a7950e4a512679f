package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moo-lab/hypervolume/apis/config/v1alpha1"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/indicators"
)

func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode([]byte(`
apiVersion: hypervolume.moo-lab.io/v1alpha1
kind: IndicatorConfiguration
referencePoint: [1, 1]
`))
	require.NoError(t, err)
	assert.Equal(t, v1alpha1.SchemeGroupVersion, cfg.APIVersion)
	assert.Equal(t, []float64{1, 1}, cfg.ReferencePoint)
	require.NotNil(t, cfg.Offset)
	assert.Zero(t, *cfg.Offset)
	assert.Equal(t, []string{"HV"}, cfg.Indicators)

	kinds, err := Kinds(cfg)
	require.NoError(t, err)
	assert.Equal(t, []indicators.Kind{indicators.KindHypervolume}, kinds)
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":        "referencePoint: [1, 1]\nreference: x\n",
		"wrong apiVersion":     "apiVersion: v1\nreferencePoint: [1, 1]\n",
		"wrong kind":           "kind: Pod\nreferencePoint: [1, 1]\n",
		"no reference":         "indicators: [HV]\n",
		"epsilon without file": "referencePoint: [1, 1]\nindicators: [HV, EPSILON]\n",
		"unknown indicator":    "referencePoint: [1, 1]\nindicators: [SPREAD]\n",
		"negative offset":      "referencePoint: [1, 1]\noffset: -1\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(input))
			assert.ErrorIs(t, err, framework.ErrInvalidConfiguration)
		})
	}
}

func TestLoadAndReference(t *testing.T) {
	dir := t.TempDir()
	frontPath := filepath.Join(dir, "ZDT1.pf")
	require.NoError(t, os.WriteFile(frontPath, []byte("0 1\n1 0\n"), 0o600))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
referenceFrontFile: `+frontPath+`
offset: 0.1
indicators: [hv, igd]
`), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	kinds, err := Kinds(cfg)
	require.NoError(t, err)
	assert.Equal(t, []indicators.Kind{indicators.KindHypervolume, indicators.KindInvertedGenerationalDistance}, kinds)

	ref, err := Reference(cfg)
	require.NoError(t, err)
	assert.Nil(t, ref.Point)
	assert.Equal(t, framework.Front{{0, 1}, {1, 0}}, ref.Front)
	assert.InDelta(t, 0.1, ref.Offset, 1e-12)

	hv, err := indicators.New(indicators.KindHypervolume, ref)
	require.NoError(t, err)
	got, err := hv.Compute(framework.Front{{0.5, 0.5}})
	require.NoError(t, err)
	assert.InDelta(t, 0.36, got, 1e-12)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestReferencePointTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	frontPath := filepath.Join(dir, "front.pf")
	require.NoError(t, os.WriteFile(frontPath, []byte("0 1\n1 0\n"), 0o600))

	cfg, err := Decode([]byte(`
referencePoint: [2, 2]
referenceFrontFile: ` + frontPath + `
indicators: [HV, GD]
`))
	require.NoError(t, err)

	ref, err := Reference(cfg)
	require.NoError(t, err)

	hv, err := indicators.New(indicators.KindHypervolume, ref)
	require.NoError(t, err)
	got, err := hv.Compute(framework.Front{{1, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)

	gd, err := indicators.New(indicators.KindGenerationalDistance, ref)
	require.NoError(t, err)
	got, err = gd.Compute(framework.Front{{0, 2}})
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)
}
