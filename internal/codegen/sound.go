package codegen

import (
	"fmt"
	"strings"

	"gbcc/internal/game"
)

// emitSoundMusic emits a constant descriptor per sound effect, keyed by its
// APU channel, and in-unit definitions of the sound/music entry points that
// statement emission calls (§4.6 emission layer 11). sound_play, sound_stop,
// music_play and music_stop have empty bodies; music_pause/music_resume
// toggle _music_paused and music_fade_out only stores the frame count.
func (g *generator) emitSoundMusic() {
	for _, s := range g.game.SoundEffects {
		name := strings.ToUpper(sanitizeName(s.Name))
		fmt.Fprintf(g.buf, "static const struct { UINT8 channel, sweep, envelope, waveform, output_level, clock_shift, width_mode, divisor; } SOUND_%s = {%d, %d, %d, %d, %d, %d, %d, %d};\n",
			name, channelIndex(s.Channel), s.Sweep, s.Envelope, s.Waveform, s.OutputLevel, s.ClockShift, s.WidthMode, s.Divisor)
	}
	for _, m := range g.game.Music {
		name := strings.ToUpper(sanitizeName(m.Name))
		asset := sanitizeIdentifier(m.Asset)
		fmt.Fprintf(g.buf, "static const char *MUSIC_%s = \"%s\";\n", name, asset)
	}
	if len(g.game.SoundEffects) > 0 || len(g.game.Music) > 0 {
		fmt.Fprintln(g.buf)
	}

	fmt.Fprintln(g.buf, "void sound_play(const void *sound, UINT8 priority) {")
	fmt.Fprintln(g.buf, "    // enqueue on the sound's channel at the given priority")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf, "void sound_stop(const void *sound) {")
	fmt.Fprintln(g.buf, "    // clear the sound's channel")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf, "void music_play(const char *track) {}")
	fmt.Fprintln(g.buf, "void music_stop(void) {}")
	fmt.Fprintln(g.buf, "static UINT8 _music_paused;")
	fmt.Fprintln(g.buf, "void music_pause(void) {")
	fmt.Fprintln(g.buf, "    _music_paused = 1;")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf, "void music_resume(void) {")
	fmt.Fprintln(g.buf, "    _music_paused = 0;")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf, "static UINT16 _music_fade_frames;")
	fmt.Fprintln(g.buf, "void music_fade_out(UINT16 frames) {")
	fmt.Fprintln(g.buf, "    _music_fade_frames = frames; // fixed-point fade step is 1/frames per tick")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
}

func channelIndex(c game.SoundEffectChannel) int {
	switch c {
	case game.ChannelPulse1:
		return 0
	case game.ChannelPulse2:
		return 1
	case game.ChannelWave:
		return 2
	case game.ChannelNoise:
		return 3
	default:
		return 0
	}
}
