package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundPop SoundKind = iota
	SoundCombo
	SoundMenuSelect
	SoundSessionStart
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

// activePops limits simultaneous pop sounds — fast streaks otherwise stack
// players until the mix clips.
var activePops int32
var popVariantCounter uint64

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayPopSound plays a pop whose pitch follows the bubble radius:
// small bubbles chirp high, big ones land low and round.
func PlayPopSound(radius float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if atomic.LoadInt32(&activePops) >= 6 {
		return
	}
	atomic.AddInt32(&activePops, 1)
	samples := genPopScaled(radius)
	go func() {
		defer atomic.AddInt32(&activePops, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayComboSound plays the streak arpeggio, transposed up a semitone per
// streak step past the first tier so climbing streaks audibly climb too.
func PlayComboSound(streak int) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := genComboScaled(streak)
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
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

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
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

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPop:
		return genPopScaled(14.0)
	case SoundCombo:
		return genComboScaled(ComboMinStreak)
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundSessionStart:
		return genSessionStart()
	}
	return nil
}

// genPopScaled: snappy FM pop with a rising chirp as the skin lets go.
// Radius maps to pitch; larger bubbles also carry a wetter low body.
func genPopScaled(radius float64) []byte {
	norm := clampF((radius-RadiusMin)/(RadiusMax-RadiusMin), 0, 1)
	variant := atomic.AddUint64(&popVariantCounter, 1)
	detune := 1.0 + 0.02*float64(int(variant%5)-2)

	dur := 0.07 + 0.05*norm
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	base := (1050.0 - 640.0*norm) * detune
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.008, 0.5, 0.0, 0.12)
		freq := base * (1.0 + 0.55*p)
		s := fm(t, freq, 2.0, 3.2*env) * env * 0.5
		// Wet body under big bubbles.
		s += math.Sin(2*math.Pi*freq*0.5*t) * env * (0.05 + 0.22*norm)
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genComboScaled: ascending FM bell arpeggio — C5 E5 G5 C6, shifted up a
// semitone for every streak step past the first tier.
func genComboScaled(streak int) []byte {
	steps := clamp(streak, ComboMinStreak, StreakCap) - ComboMinStreak
	trans := math.Pow(2, float64(steps)/12.0)

	freqs := []float64{523.25, 659.25, 783.99, 1046.5}
	noteLen := SampleRate * 65 / 1000
	tail := int(0.16 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		freq *= trans
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: crisp click + brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 60 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1250 - 620*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.36
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSessionStart: short ascending FM bell staircase.
func genSessionStart() []byte {
	notes := []float64{392.0, 523.25, 659.25} // G4 C5 E5
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.22*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, 3.5, 4.5*env) * env * 0.26
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.06
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Music system -------------------------------------------------------

type musicReader struct {
	t        float64
	measure  int
	chordIdx int
	menuMode bool
	seed     uint64
	lp       float64 // shared lowpass state for the water bed
}

var musicVolume float64 = 0.10
var sfxVolume float64 = 0.58

func StartMenuMusic()    { startMusic(true, 0.16) }
func StartSessionMusic() { startMusic(false, 0.11) }

func SetMusicVolume(vol float64) {
	musicVolume = vol
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.SetVolume(vol)
	}
}

func startMusic(menuMode bool, volume float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	musicVolume = volume
	reader := &musicReader{
		seed:     uint64(time.Now().UnixNano()),
		menuMode: menuMode,
	}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(volume)
	globalAudio.musicPlayer = player
	player.Play()
}

// fmPad returns a lush pad sample from a chord — detuned FM oscillators per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

// Read streams the ambient loop: a slow chord swell over a heavily
// lowpassed water bed. Menu mode drops the pulse and sparkle so the
// title screen sits quieter than play.
func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}

	chords := [][]float64{
		{130.81, 164.81, 196.00, 246.94}, // Cmaj7
		{110.00, 130.81, 164.81, 196.00}, // Am7
		{87.31, 110.00, 130.81, 174.61},  // Fmaj
		{98.00, 123.47, 146.83, 196.00},  // G add8
	}
	const chordLen = 8.0 // seconds per chord

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate

		step := int(m.t / chordLen)
		if step != m.measure {
			m.measure = step
			m.chordIdx = (m.chordIdx + 1) % len(chords)
		}
		chord := chords[m.chordIdx]
		prog := math.Mod(m.t, chordLen) / chordLen

		// Pad swells in and out across each chord, over a soft sub floor.
		swell := 0.35 + 0.65*math.Sin(math.Pi*prog)
		s := fmPad(m.t, chord, swell) * 0.9
		s += math.Sin(2*math.Pi*chord[0]*0.5*m.t) * swell * 0.10

		if !m.menuMode {
			// Gentle two-second pulse plus a sparse high sparkle.
			pulse := math.Mod(m.t, 2.0)
			s += math.Sin(2*math.Pi*chord[0]*m.t) * math.Exp(-pulse*4.5) * 0.07

			spkStep := int(m.t / 4.0)
			note := chord[(spkStep*2+1)%len(chord)] * 4
			spkTrig := math.Mod(m.t, 4.0)
			s += fmArp(m.t, note, math.Exp(-spkTrig*2.2)) * 0.18
		}

		// Water bed: near-DC noise breathing very slowly.
		m.lp = m.lp*0.992 + lcg(&m.seed)*0.008
		s += m.lp * (0.5 + 0.5*math.Sin(2*math.Pi*0.07*m.t)) * 0.5

		s = softSat(s)
		pan := 0.10 * math.Sin(2*math.Pi*0.05*m.t)
		left := softSat(s * (1 - pan))
		right := softSat(s * (1 + pan))
		putStereoF32LR(p, i, left, right)
	}
	return len(p), nil
}
