package media

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// chunkFrames is how many frames a source decodes per call.
const chunkFrames = 4096

// sampleSource yields interleaved samples scaled to [-1, 1].
type sampleSource interface {
	// next returns the next run of samples, or io.EOF after the last one.
	// The slice is only valid until the following call.
	next() ([]float64, error)
	rate() int
	channels() int
	// frames is the total frame count, or -1 when unknown.
	frames() int64
}

func openSamples(f *os.File, format Format) (sampleSource, error) {
	switch format {
	case FormatWAV:
		return openWAV(f)
	case FormatFLAC:
		return openFLAC(f)
	case FormatMP3:
		return openMP3(f)
	case FormatOGG:
		return openOGG(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// fullScale returns the magnitude of the most negative integer sample of a
// signed bit depth.
func fullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

type wavSamples struct {
	dec    *wav.Decoder
	buf    *audio.IntBuffer
	out    []float64
	n      int64
	scale  float64
	offset int // 8-bit WAV is unsigned
}

func openWAV(f *os.File) (*wavSamples, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bits := int(dec.BitDepth)
	s := &wavSamples{dec: dec, scale: fullScale(bits)}
	switch bits {
	case 8:
		s.offset = 128
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit WAV", ErrUnsupportedFormat, bits)
	}
	ch := int(dec.NumChans)
	if ch < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, ch)
	}
	s.n = dec.PCMLen() / int64(ch*bits/8)
	s.buf = &audio.IntBuffer{
		Format: &audio.Format{NumChannels: ch, SampleRate: int(dec.SampleRate)},
		Data:   make([]int, chunkFrames*ch),
	}
	s.out = make([]float64, len(s.buf.Data))
	return s, nil
}

func (s *wavSamples) next() ([]float64, error) {
	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, io.EOF
	}
	for i, v := range s.buf.Data[:n] {
		s.out[i] = float64(v-s.offset) / s.scale
	}
	return s.out[:n], nil
}

func (s *wavSamples) rate() int     { return int(s.dec.SampleRate) }
func (s *wavSamples) channels() int { return int(s.dec.NumChans) }
func (s *wavSamples) frames() int64 { return s.n }

type flacSamples struct {
	stream *flac.Stream
	out    []float64
	scale  float64
}

func openFLAC(f *os.File) (*flacSamples, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	return &flacSamples{stream: stream, scale: fullScale(int(stream.Info.BitsPerSample))}, nil
}

func (s *flacSamples) next() ([]float64, error) {
	fr, err := s.stream.ParseNext()
	if err != nil {
		return nil, err
	}
	ch := len(fr.Subframes)
	n := int(fr.BlockSize)
	s.out = s.out[:0]
	for i := range n {
		for c := range ch {
			s.out = append(s.out, float64(fr.Subframes[c].Samples[i])/s.scale)
		}
	}
	return s.out, nil
}

func (s *flacSamples) rate() int     { return int(s.stream.Info.SampleRate) }
func (s *flacSamples) channels() int { return int(s.stream.Info.NChannels) }

func (s *flacSamples) frames() int64 {
	if s.stream.Info.NSamples == 0 {
		return -1
	}
	return int64(s.stream.Info.NSamples)
}

// mp3Samples reads go-mp3's output, which is always 16-bit stereo.
type mp3Samples struct {
	dec *mp3.Decoder
	raw []byte
	out []float64
}

func openMP3(f *os.File) (*mp3Samples, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	return &mp3Samples{
		dec: dec,
		raw: make([]byte, chunkFrames*4),
		out: make([]float64, chunkFrames*2),
	}, nil
}

func (s *mp3Samples) next() ([]float64, error) {
	n, err := io.ReadFull(s.dec, s.raw)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	samples := n / 2
	for i := range samples {
		s.out[i] = float64(int16(binary.LittleEndian.Uint16(s.raw[2*i:]))) / 32768
	}
	if samples > 0 && errors.Is(err, io.EOF) {
		// Hand back the tail now and report the end on the next call.
		err = nil
	}
	return s.out[:samples], err
}

func (s *mp3Samples) rate() int     { return s.dec.SampleRate() }
func (s *mp3Samples) channels() int { return 2 }

func (s *mp3Samples) frames() int64 {
	if n := s.dec.Length(); n > 0 {
		return n / 4
	}
	return -1
}

// oggSamples reads Vorbis audio, which decodes to floats already in range.
type oggSamples struct {
	r   *oggvorbis.Reader
	buf []float32
	out []float64
}

func openOGG(f *os.File) (*oggSamples, error) {
	r, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	n := chunkFrames * max(r.Channels(), 1)
	return &oggSamples{r: r, buf: make([]float32, n), out: make([]float64, n)}, nil
}

func (s *oggSamples) next() ([]float64, error) {
	n, err := s.r.Read(s.buf)
	for i, v := range s.buf[:n] {
		s.out[i] = float64(min(max(v, -1), 1))
	}
	if n > 0 && errors.Is(err, io.EOF) {
		err = nil
	}
	if n == 0 && err == nil {
		err = io.EOF
	}
	return s.out[:n], err
}

func (s *oggSamples) rate() int     { return s.r.SampleRate() }
func (s *oggSamples) channels() int { return s.r.Channels() }

func (s *oggSamples) frames() int64 {
	if n := s.r.Length(); n > 0 {
		return n
	}
	return -1
}
