package drink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNocco(t *testing.T) {
	n := NewNocco("Starting with a refreshing energy drink")

	assert.Equal(t, "Starting with a refreshing energy drink", n.Description())
	assert.Equal(t, 180, n.CaffeineLevel())
	assert.Equal(t, "adding bubbles with pressure: 3 bar", n.AddBubbles(3))
}

func TestDecorators(t *testing.T) {
	tests := []struct {
		name     string
		dec      Decorator
		suffix   string
		caffeine int
	}{
		{"BCAA", BCAA, ", add BCAA", 180},
		{"Vitamins", Vitamins, ", add lots of vitamins", 180},
		{"Celsius", CelsiusEmulator, ", add more caffeine and worse taste", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.dec(NewNocco("base"))
			assert.Equal(t, "base"+tt.suffix, d.Description())
			assert.Equal(t, tt.caffeine, d.CaffeineLevel())
		})
	}
}

func TestMix_FullChain(t *testing.T) {
	d := Mix(NewNocco("Starting"), BCAA, Vitamins, CelsiusEmulator)

	assert.Equal(t,
		"Starting, add BCAA, add lots of vitamins, add more caffeine and worse taste",
		d.Description())
	assert.Equal(t, 200, d.CaffeineLevel())
	assert.Equal(t, "adding bubbles with pressure: 2 bar", d.AddBubbles(2))
}

func TestMix_StackingTwice(t *testing.T) {
	d := Mix(NewNocco("x"), CelsiusEmulator, CelsiusEmulator, nil)
	assert.Equal(t, 220, d.CaffeineLevel())
}

func TestSupplement_Custom(t *testing.T) {
	d := Supplement("add taurine", 5)(NewNocco("x"))
	assert.Equal(t, "x, add taurine", d.Description())
	assert.Equal(t, 185, d.CaffeineLevel())
}

func TestLayers(t *testing.T) {
	base := NewNocco("x")
	d := Mix(base, BCAA, Vitamins)

	layers := Layers(d)
	require.Len(t, layers, 3)
	assert.Equal(t, d, layers[0])
	assert.Equal(t, "x, add BCAA", layers[1].Description())
	assert.Same(t, base, layers[2])

	assert.Nil(t, Unwrap(base))
}
