package media

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// DefaultSampleRate is the rate EncodeWAV callers use when none is given.
const DefaultSampleRate = 44100

// AudioInfo describes a decoded audio path.
type AudioInfo struct {
	SampleRate int
	Channels   int
	Frames     int64 // source frames, or -1 when the decoder cannot tell
	Stride     int   // every Stride-th frame became a point
}

// DecodeAudio reads an audio file as an XY path: the left channel is the real
// axis and the right channel the imaginary axis, both scaled to [-1, 1]. Mono
// input lies on the real axis. When maxPoints > 0 the path is thinned to at
// most maxPoints evenly strided frames.
func DecodeAudio(f *os.File, format Format, maxPoints int) ([]complex128, AudioInfo, error) {
	src, err := openSamples(f, format)
	if err != nil {
		return nil, AudioInfo{}, err
	}

	info := AudioInfo{
		SampleRate: src.rate(),
		Channels:   src.channels(),
		Frames:     src.frames(),
		Stride:     1,
	}
	if info.Channels < 1 {
		return nil, info, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, info.Channels)
	}
	if maxPoints > 0 && info.Frames > int64(maxPoints) {
		info.Stride = int((info.Frames + int64(maxPoints) - 1) / int64(maxPoints))
	}

	ch := info.Channels
	points := make([]complex128, 0, min(max(maxPoints, 0), maxPrealloc))
	var carry []float64
	frame := 0
	for {
		chunk, err := src.next()
		if len(chunk) > 0 {
			carry = append(carry, chunk...)
			whole := len(carry) / ch * ch
			for off := 0; off < whole; off += ch {
				if frame%info.Stride == 0 {
					points = append(points, xy(carry[off:off+ch]))
				}
				frame++
			}
			carry = append(carry[:0], carry[whole:]...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, info, fmt.Errorf("decoding %s: %w", format, err)
		}
	}

	// Sources that cannot report their length are thinned afterwards.
	if maxPoints > 0 && len(points) > maxPoints {
		stride := (len(points) + maxPoints - 1) / maxPoints
		thinned := make([]complex128, 0, maxPoints)
		for i := 0; i < len(points); i += stride {
			thinned = append(thinned, points[i])
		}
		points = thinned
		info.Stride *= stride
	}

	if len(points) == 0 {
		return nil, info, ErrNoPoints
	}
	return points, info, nil
}

// xy maps one interleaved frame to a point.
func xy(frame []float64) complex128 {
	if len(frame) > 1 {
		return complex(frame[0], frame[1])
	}
	return complex(frame[0], 0)
}

// EncodeWAV writes points as 16-bit stereo PCM, real part on the left
// channel and imaginary part on the right. The path is scaled so its largest
// coordinate reaches full scale.
func EncodeWAV(w io.WriteSeeker, points []complex128, sampleRate int) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	peak := 0.0
	for _, p := range points {
		peak = max(peak, math.Abs(real(p)), math.Abs(imag(p)))
	}
	scale := 0.0
	if peak > 0 {
		scale = 32767 / peak
	}

	data := make([]int, 0, len(points)*2)
	for _, p := range points {
		data = append(data, int(real(p)*scale), int(imag(p)*scale))
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding WAV: %w", err)
	}
	return enc.Close()
}
