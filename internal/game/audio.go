package game

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/kamstrup/intmap"

	"pong/internal/pong"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundPaddleHit SoundKind = iota
	SoundWallBounce
	SoundGoalPost
	SoundGoal
	SoundGameOver
	SoundMenuSelect
)

// Paddle hit pitch rises one semitone per speed step above the serve speed,
// up to this many steps.
const maxPitchSteps = 24

var sfxVolume float64 = 0.58

// sampleBank caches generated sample buffers keyed by kind and variant.
type sampleBank struct {
	mu    sync.Mutex
	cache *intmap.Map[uint64, []byte]
}

func newSampleBank() *sampleBank {
	return &sampleBank{cache: intmap.New[uint64, []byte](16)}
}

func soundKey(kind SoundKind, variant int) uint64 {
	return uint64(kind)<<32 | uint64(uint32(variant))
}

// samples returns the buffer for kind/variant, generating it on first use.
func (b *sampleBank) samples(kind SoundKind, variant int) []byte {
	key := soundKey(kind, variant)
	b.mu.Lock()
	defer b.mu.Unlock()
	if buf, ok := b.cache.Get(key); ok {
		return buf
	}
	buf := generateSound(kind, variant)
	if len(buf) > 0 {
		b.cache.Put(key, buf)
	}
	return buf
}

// AudioSystem plays procedural sound effects. A nil or muted system is silent.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
	bank  *sampleBank
	muted bool
}

// InitAudio opens the audio device. When muted no device is opened.
func InitAudio(muted bool) (*AudioSystem, error) {
	a := &AudioSystem{bank: newSampleBank(), muted: muted}
	if muted {
		return a, nil
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a.ctx = ctx
	a.ready = ready
	return a, nil
}

// Play plays a sound effect without blocking the caller.
func (a *AudioSystem) Play(kind SoundKind, variant int) {
	if a == nil || a.muted || a.ctx == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.bank.samples(kind, variant)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// BindAudio plays a sound for every match event on bus.
func BindAudio(a *AudioSystem, bus *pong.EventBus) {
	bus.Subscribe(pong.EventPaddleHit, func(e pong.Event) {
		a.Play(SoundPaddleHit, hitPitchStep(e.Data))
	})
	bus.Subscribe(pong.EventWallBounce, func(pong.Event) {
		a.Play(SoundWallBounce, 0)
	})
	bus.Subscribe(pong.EventGoalPost, func(pong.Event) {
		a.Play(SoundGoalPost, 0)
	})
	bus.Subscribe(pong.EventGoal, func(pong.Event) {
		a.Play(SoundGoal, 0)
	})
	bus.Subscribe(pong.EventGameOver, func(pong.Event) {
		a.Play(SoundGameOver, 0)
	})
	bus.Subscribe(pong.EventRestart, func(pong.Event) {
		a.Play(SoundMenuSelect, 0)
	})
}

// hitPitchStep maps ball speed to a pitch step in [0, maxPitchSteps].
func hitPitchStep(speed int) int {
	step := speed - pong.InitialBallSpeed
	if step < 0 {
		return 0
	}
	if step > maxPitchSteps {
		return maxPitchSteps
	}
	return step
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind, variant int) []byte {
	switch kind {
	case SoundPaddleHit:
		return genPaddleHit(variant)
	case SoundWallBounce:
		return genWallBounce()
	case SoundGoalPost:
		return genGoalPost()
	case SoundGoal:
		return genGoal()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genPaddleHit: short square-ish blip, pitch raised by step semitones.
func genPaddleHit(step int) []byte {
	freq := 440 * math.Pow(2, float64(step)/12)
	n := int(0.07 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.45, 0.2, 0.2)
		s := fm(t, freq, 1.0, 1.8*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWallBounce: low dull tick.
func genWallBounce() []byte {
	n := int(0.05 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		s := fm(t, 226, 0.5, 1.2*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGoalPost: metallic ring, inharmonic FM ratio.
func genGoalPost() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		s := fm(t, 660, 1.41, 4.0*env) * env * 0.35
		if p < 0.03 {
			s += lcg(&seed) * (1 - p/0.03) * 0.3
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGoal: ascending FM bell staircase, each note rings over the next.
func genGoal() []byte {
	notes := []float64{440, 554.37, 659.25, 880}
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.22*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: crisp click + brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
