// Package audio decodes cue files up front and plays them on a single
// shared speaker channel.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/f3rmion/abc/internal/assets"
)

// ErrUnknownCue is returned when asked to play a cue that was never loaded.
var ErrUnknownCue = errors.New("unknown cue")

// SampleRate is the speaker rate; cues with other rates are resampled.
const SampleRate = beep.SampleRate(44100)

// MinVolume mutes output entirely.
const MinVolume = -10.0

// Options configures a Player.
type Options struct {
	Volume float64 // Log2 gain; 0 is unchanged, MinVolume or below is silent
	Silent bool    // Load and validate cues but never open a device
}

// Player holds decoded cues in memory.
type Player struct {
	mu      sync.Mutex
	buffers map[string]*beep.Buffer
	opts    Options
	started bool
}

// Open decodes every named cue from catalog and, unless silent, opens the
// speaker. Any missing or undecodable cue fails the whole call.
func Open(catalog assets.Catalog, names []string, opts Options) (*Player, error) {
	p := &Player{
		buffers: make(map[string]*beep.Buffer, len(names)),
		opts:    opts,
	}

	var errs []error
	for _, name := range names {
		path := catalog.AssetPath(name)
		buf, err := Decode(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p.buffers[path] = buf
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if !opts.Silent {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			return nil, fmt.Errorf("initialising speaker: %w", err)
		}
		p.started = true
	}

	return p, nil
}

// Decode reads a cue file fully into memory at SampleRate. The decoder is
// chosen by extension: .ogg, .wav or .mp3.
func Decode(path string) (*beep.Buffer, error) {
	if err := assets.CheckFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", assets.ErrMissingAsset, path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s: unsupported format %q", assets.ErrMissingAsset, path, ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: decoding %s: %v", assets.ErrMissingAsset, path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != SampleRate {
		src = beep.Resample(4, format.SampleRate, SampleRate, stream)
		format.SampleRate = SampleRate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", assets.ErrMissingAsset, path, err)
	}
	return buf, nil
}

// PlayCue stops whatever is playing and starts the cue. Cues never overlap.
func (p *Player) PlayCue(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.buffers[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCue, id)
	}

	if !p.started {
		return nil
	}

	speaker.Clear()
	speaker.Play(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   p.opts.Volume,
		Silent:   p.opts.Volume <= MinVolume,
	})
	return nil
}

// Cues returns the number of loaded cues.
func (p *Player) Cues() int {
	return len(p.buffers)
}

// Length returns the playing time of a decoded cue.
func Length(buf *beep.Buffer) time.Duration {
	return buf.Format().SampleRate.D(buf.Len())
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		speaker.Clear()
		speaker.Close()
		p.started = false
	}
}
