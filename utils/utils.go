package utils

import (
	"cmp"
	"image"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/floats"
)

// WeightedColor is a palette candidate and the share of the image it covers.
type WeightedColor struct {
	Col    colorful.Color
	Weight float64
}

// ExtractPalette returns up to k distinct colors, heaviest first.
// The same pixels always give the same palette. k-means, which starts from a
// random state, only runs when dominantcolor finds nothing; quality is its
// sampling stride.
func ExtractPalette(img image.Image, quality, k int) []WeightedColor {
	if k <= 0 {
		return nil
	}
	sample := Downscale(img, MaxSampleDimension)
	cands := DominantCandidates(sample, k)
	if len(cands) == 0 {
		cands = KMeansCandidates(sample, quality, k)
	}
	out := SelectDiverseWeightedColors(MergeDuplicates(cands), k)
	SortByWeight(out)
	return out
}

func DominantCandidates(img image.Image, k int) []WeightedColor {
	if k <= 0 {
		return nil
	}
	nCandidates := max(24, k*8)
	found := dominantcolor.FindWeight(img, nCandidates)
	out := make([]WeightedColor, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		out = append(out, WeightedColor{Col: col.Clamped(), Weight: w})
	}
	return out
}

// KMeansCandidates partitions every quality-th opaque pixel into clusters.
// Weights are cluster populations.
func KMeansCandidates(img image.Image, quality, k int) []WeightedColor {
	if k <= 0 {
		return nil
	}
	quality = max(quality, 1)

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	dataset := make(clusters.Observations, 0, width*height/quality+1)
	for i := 0; i < width*height; i += quality {
		x := b.Min.X + i%width
		y := b.Min.Y + i/width
		r16, g16, b16, a16 := img.At(x, y).RGBA()
		if a16 == 0 {
			continue
		}
		dataset = append(dataset, clusters.Coordinates{
			float64(r16) / 65535.0,
			float64(g16) / 65535.0,
			float64(b16) / 65535.0,
		})
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	out := make([]WeightedColor, 0, len(cc))
	for _, c := range cc {
		center := c.Center
		if len(center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{
			R: center[0],
			G: center[1],
			B: center[2],
		}.Clamped()
		out = append(out, WeightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return out
}

// MergeDuplicates keeps first-seen order.
func MergeDuplicates(cands []WeightedColor) []WeightedColor {
	type key struct{ r, g, b uint8 }
	index := make(map[key]int, len(cands))
	out := make([]WeightedColor, 0, len(cands))
	for _, c := range cands {
		r, g, b := c.Col.Clamped().RGB255()
		k := key{r, g, b}
		if i, ok := index[k]; ok {
			out[i].Weight += c.Weight
			continue
		}
		index[k] = len(out)
		out = append(out, WeightedColor{
			Col:    colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0},
			Weight: c.Weight,
		})
	}
	return out
}

func SortByWeight(palette []WeightedColor) {
	slices.SortStableFunc(palette, func(a, b WeightedColor) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
}

func SelectDiverseWeightedColors(cands []WeightedColor, k int) []WeightedColor {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		c   WeightedColor
		lab []float64
	}
	items := make([]item, 0, len(cands))
	weights := make([]float64, 0, len(cands))
	for _, c := range cands {
		col := c.Col.Clamped()
		l, a, b := col.Lab()
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		weights = append(weights, w)
		items = append(items, item{
			c:   WeightedColor{Col: col, Weight: w},
			lab: []float64{l, a, b},
		})
	}
	k = min(k, len(items))
	maxW := floats.Max(weights)
	if maxW <= 0 {
		maxW = 1.0
	}

	selectedIdx := make([]int, 0, k)
	selected := make([]bool, len(items))

	// Seed with strongest color to stay close to dominant tones.
	bestSeed := floats.MaxIdx(weights)
	selectedIdx = append(selectedIdx, bestSeed)
	selected[bestSeed] = true

	for len(selectedIdx) < k {
		bestIdx := -1
		bestScore := -1.0
		for i := range items {
			if selected[i] {
				continue
			}
			minD := math.MaxFloat64
			for _, s := range selectedIdx {
				minD = min(minD, floats.Distance(items[i].lab, items[s].lab, 2))
			}
			normW := items[i].c.Weight / maxW
			score := minD * (0.55 + 0.45*math.Sqrt(normW))
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		selected[bestIdx] = true
		selectedIdx = append(selectedIdx, bestIdx)
	}

	out := make([]WeightedColor, 0, len(selectedIdx))
	for _, idx := range selectedIdx {
		out = append(out, items[idx].c)
	}
	return out
}
