package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/queue"
	"github.com/olivier-w/clepi/internal/shape"
)

// BuildGallery turns command line arguments into gallery drawings. Each
// argument is a path file, a gallery manifest or "shape:<name>". No
// arguments yields every generated shape.
func BuildGallery(args []string) ([]queue.Drawing, error) {
	if len(args) == 0 {
		return ShapeGallery(), nil
	}

	var drawings []queue.Drawing
	for _, arg := range args {
		if media.IsGalleryExt(filepath.Ext(arg)) {
			entries, err := media.ParseGallery(arg)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				drawings = append(drawings, drawingFromEntry(e))
			}
			continue
		}

		if name, ok := strings.CutPrefix(arg, media.ShapePrefix); ok {
			drawings = append(drawings, drawingFromEntry(media.Entry{Shape: strings.ToLower(name)}))
			continue
		}
		if !media.IsSupportedExt(filepath.Ext(arg)) {
			return nil, fmt.Errorf("%w: %s (supported: %s)", media.ErrUnsupportedFormat, arg, media.SupportedExtsList())
		}
		drawings = append(drawings, drawingFromEntry(media.Entry{Path: arg}))
	}
	if len(drawings) == 0 {
		return nil, fmt.Errorf("gallery is empty")
	}
	return drawings, nil
}

// ShapeGallery lists every generated shape.
func ShapeGallery() []queue.Drawing {
	names := shape.Names()
	drawings := make([]queue.Drawing, len(names))
	for i, name := range names {
		drawings[i] = drawingFromEntry(media.Entry{Shape: name})
	}
	return drawings
}

func drawingFromEntry(e media.Entry) queue.Drawing {
	return queue.Drawing{
		Name:  e.Label(),
		Path:  e.Path,
		Shape: e.Shape,
	}
}

// drawingSource loads gallery drawings.
type drawingSource struct {
	loader      *media.Loader
	shapePoints int
	shapeSize   float64
	resample    int
}

// load returns the display name and points of d.
func (s drawingSource) load(d queue.Drawing) (string, []complex128, error) {
	var (
		name   = d.Name
		points []complex128
		err    error
	)
	if d.Shape != "" {
		points, err = shape.Generate(d.Shape, s.shapePoints, s.shapeSize)
	} else {
		var p media.Path
		p, err = s.loader.Load(d.Path)
		points = p.Points
		// A file listed without a name takes its own title.
		fileLabel := media.Entry{Path: d.Path}.Label()
		if name == "" || name == fileLabel {
			name = p.Name
		}
	}
	if err != nil {
		return "", nil, err
	}
	if s.resample > 0 {
		points = shape.ResampleEvenly(points, s.resample, true)
	}
	return name, points, nil
}
