package compress

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	compressible := bytes.Repeat([]byte(`{"x":0.5,"y":-1.25},`), 500)

	random := make([]byte, 4096)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range random {
		random[i] = byte(rng.IntN(256))
	}

	for _, typ := range []Type{None, LZ4, ZSTD} {
		for name, data := range map[string][]byte{"compressible": compressible, "random": random, "empty": {}} {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				enc, err := Encode(typ, data)
				require.NoError(t, err)

				dec, err := Decode(typ, enc)
				require.NoError(t, err)
				assert.Equal(t, len(data), len(dec))
				assert.True(t, bytes.Equal(data, dec))
			})
		}
	}
}

func TestEncode_Shrinks(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 1000)

	for _, typ := range []Type{LZ4, ZSTD} {
		enc, err := Encode(typ, data)
		require.NoError(t, err)
		assert.Less(t, len(enc), len(data)/2, typ.String())
	}
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode(ZSTD, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrCorrupt)

	enc, err := Encode(LZ4, bytes.Repeat([]byte("a"), 1024))
	require.NoError(t, err)
	_, err = Decode(LZ4, enc[:len(enc)-4])
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Type
	}{{"", None}, {"none", None}, {"LZ4", LZ4}, {" zstd", ZSTD}} {
		got, err := Parse(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := Parse("brotli")
	assert.Error(t, err)
	assert.Equal(t, "unknown(9)", Type(9).String())
}
