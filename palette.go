package pastel

import (
	"github.com/setanarut/pastel/utils"
)

const (
	// Quality is the pixel sampling stride; higher is coarser and faster.
	Quality = 10
	// MaxColors is the number of dominant colors requested from the extractor.
	MaxColors = 5
	// MinColors is the number of dominant colors the display palette consumes.
	MinColors = 3
)

// DisplayPalette is the rendered swatch order:
// lighter main, main, darker main, first accent, second accent.
type DisplayPalette [5]RGB

// Hex returns the hex label of every swatch in display order.
func (p DisplayPalette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// BuildDisplayPalette turns dominance-ordered colors into the display palette.
// dominant[0] supplies the variations, dominant[1] and dominant[2] the accents.
func BuildDisplayPalette(dominant []RGB) (DisplayPalette, error) {
	if len(dominant) < MinColors {
		return DisplayPalette{}, &PaletteError{Count: len(dominant)}
	}
	v := DeriveVariations(dominant[0])
	return DisplayPalette{
		ToPastel(v.Lighter),
		ToPastel(v.Original),
		ToPastel(v.Darker),
		ToPastel(dominant[1]),
		ToPastel(dominant[2]),
	}, nil
}

// Extractor produces dominance-ordered colors for the image at path.
type Extractor interface {
	Extract(path string) ([]RGB, error)
}

// ImageExtractor decodes the file at path and clusters its pixels.
type ImageExtractor struct{}

func (ImageExtractor) Extract(path string) ([]RGB, error) {
	img, err := utils.ReadImage(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	weighted := utils.ExtractPalette(img, Quality, MaxColors)
	out := make([]RGB, 0, len(weighted))
	for _, w := range weighted {
		out = append(out, FromColorful(w.Col))
	}
	if len(out) < MinColors {
		return nil, &PaletteError{Count: len(out)}
	}
	return out, nil
}

// Pipeline runs extraction and transformation for one path.
type Pipeline struct {
	Extractor Extractor
}

// NewPipeline returns a Pipeline backed by ImageExtractor.
func NewPipeline() *Pipeline {
	return &Pipeline{Extractor: ImageExtractor{}}
}

// Run extracts the dominant colors of path and builds the display palette.
func (p *Pipeline) Run(path string) (DisplayPalette, error) {
	dominant, err := p.Extractor.Extract(path)
	if err != nil {
		return DisplayPalette{}, err
	}
	return BuildDisplayPalette(dominant)
}
