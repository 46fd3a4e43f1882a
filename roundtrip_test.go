package hufftree

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeRoundTripInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(1))

	uniform := make([]byte, 4096)
	rng.Read(uniform)

	skewed := make([]byte, 4096)
	for i := range skewed {
		// Geometric distribution: long codes for rare symbols.
		var b byte
		for b < 40 && rng.Intn(2) == 0 {
			b++
		}
		skewed[i] = b
	}

	alphabet := make([]byte, NumSymbols)
	for i := range alphabet {
		alphabet[i] = byte(i)
	}

	return map[string][]byte{
		"empty":    {},
		"one-byte": {0x00},
		"repeated": bytes.Repeat([]byte{0xff}, 1000),
		"two":      []byte("ab"),
		"aab":      []byte("aab"),
		"text":     []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 37)),
		"digits":   []byte("0123456789 9876543210"),
		"alphabet": alphabet,
		"uniform":  uniform,
		"skewed":   skewed,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, input := range makeRoundTripInputs() {
		input := input
		t.Run(name, func(t *testing.T) {
			encoded, err := EncodeBytes(input)
			require.NoError(t, err)

			decoded, err := DecodeBytes(encoded)
			require.NoError(t, err)
			require.Equal(t, len(input), len(decoded))
			require.True(t, bytes.Equal(input, decoded), "decoded bytes differ from input")
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	for name, input := range makeRoundTripInputs() {
		input := input
		t.Run(name, func(t *testing.T) {
			first, err := EncodeBytes(input)
			require.NoError(t, err)
			second, err := EncodeBytes(input)
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}

func TestEncode_PayloadLength(t *testing.T) {
	for name, input := range makeRoundTripInputs() {
		input := input
		t.Run(name, func(t *testing.T) {
			var h Histogram
			h.Scan(input)

			var e Encoder
			e.Init(&h)

			var header bytes.Buffer
			require.NoError(t, WriteHeader(&header, e.Count(), e.Root()))

			encoded, err := EncodeBytes(input)
			require.NoError(t, err)

			bits := e.Table().EncodedBits(&h)
			expectPayload := int((bits + 7) / 8)
			require.Equal(t, header.Len()+expectPayload, len(encoded))
		})
	}
}

func TestDeriveCodes_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		var h Histogram
		distinct := 1 + rng.Intn(NumSymbols)
		for i := 0; i < distinct; i++ {
			h.Counts[rng.Intn(NumSymbols)] += uint64(1 + rng.Intn(1000))
		}

		table := DeriveCodes(BuildTree(&h))
		require.Equal(t, h.Distinct(), table.Len())

		var codes []Code
		for symbol := 0; symbol < NumSymbols; symbol++ {
			if hc, found := table.Lookup(byte(symbol)); found {
				codes = append(codes, hc)
			}
		}
		for i := range codes {
			for j := range codes {
				if i != j {
					require.False(t, codes[i].HasPrefix(codes[j]), "%s has prefix %s", codes[i], codes[j])
				}
			}
		}
	}
}

func TestCountFrequencies(t *testing.T) {
	input := bytes.Repeat([]byte("hello, world"), 1000)

	h, err := CountFrequencies(bytes.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, uint64(len(input)), h.Total)
	require.Equal(t, uint64(3000), h.Counts['l'])
	require.Equal(t, uint64(0), h.Counts['z'])
	require.Equal(t, 9, h.Distinct())
}
