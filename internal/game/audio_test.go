package game

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong/internal/pong"
)

func TestSoundKeyDistinct(t *testing.T) {
	seen := map[uint64]bool{}
	for kind := SoundPaddleHit; kind <= SoundMenuSelect; kind++ {
		for v := 0; v <= maxPitchSteps; v++ {
			k := soundKey(kind, v)
			assert.False(t, seen[k], "kind %d variant %d", kind, v)
			seen[k] = true
		}
	}
}

func TestGeneratedSoundsAreStereoFloat(t *testing.T) {
	for kind := SoundPaddleHit; kind <= SoundMenuSelect; kind++ {
		buf := generateSound(kind, 0)
		require.NotEmpty(t, buf, "kind %d", kind)
		require.Zero(t, len(buf)%8, "kind %d", kind)
		for i := 0; i < len(buf); i += 8 {
			l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
			r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:]))
			if l != r || l < -1 || l > 1 {
				t.Fatalf("kind %d frame %d: bad sample %v/%v", kind, i/8, l, r)
			}
		}
	}
	assert.Nil(t, generateSound(SoundKind(99), 0))
}

func TestSampleBankCaches(t *testing.T) {
	b := newSampleBank()
	first := b.samples(SoundPaddleHit, 3)
	second := b.samples(SoundPaddleHit, 3)
	require.NotEmpty(t, first)
	assert.True(t, &first[0] == &second[0], "cached buffer reused")
	assert.Equal(t, 1, b.cache.Len())

	other := b.samples(SoundPaddleHit, 4)
	assert.NotEqual(t, first, other, "pitch variants differ")
	assert.Equal(t, 2, b.cache.Len())
}

func TestHitPitchStep(t *testing.T) {
	assert.Equal(t, 0, hitPitchStep(pong.InitialBallSpeed))
	assert.Equal(t, 0, hitPitchStep(1))
	assert.Equal(t, 3, hitPitchStep(pong.InitialBallSpeed+3))
	assert.Equal(t, maxPitchSteps, hitPitchStep(200))
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	p := make([]byte, 3)

	n, err := r.Read(p)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = r.Read(p)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{4, 5}, p[:n])

	n, err = r.Read(p)
	assert.Equal(t, io.EOF, err)
	assert.Zero(t, n)
}

func TestMutedAudioIsSilent(t *testing.T) {
	a, err := InitAudio(true)
	require.NoError(t, err)
	assert.Nil(t, a.ctx)

	bus := pong.NewEventBus()
	BindAudio(a, bus)
	assert.NotPanics(t, func() {
		bus.Emit(pong.Event{Type: pong.EventPaddleHit, Data: 9})
		bus.Emit(pong.Event{Type: pong.EventGameOver})
	})
	assert.Zero(t, a.bank.cache.Len())

	var none *AudioSystem
	assert.NotPanics(t, func() { none.Play(SoundGoal, 0) })
}
