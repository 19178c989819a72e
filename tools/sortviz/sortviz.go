// Command sortviz renders a before/after dot plot of a sort run: element
// value against index, input on the left, sorted output on the right.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/zeebo/errs/v2"
	"github.com/zeebo/mwc"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/histdb/hsort"
	"github.com/histdb/hsort/sorttest"
)

var (
	dist = flag.String("dist", "random", "input distribution: random, fewunique, sorted, reversed, nearlysorted, sawtooth, organpipe")
	n    = flag.Int("n", 512, "number of elements")
	out  = flag.String("o", "sort.png", "output png path")
)

const (
	panelW = 512
	panelH = 256
	gap    = 16
	labelH = 16
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sortviz: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	before, err := generate(*dist, *n)
	if err != nil {
		return err
	}

	after := append([]int64(nil), before...)
	hsort.Sort(after)

	img := image.NewRGBA(image.Rect(0, 0, 2*panelW+3*gap, panelH+labelH+2*gap))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	plot(img, before, gap, gap, *dist)
	plot(img, after, 2*gap+panelW, gap, "sorted")

	fh, err := os.Create(*out)
	if err != nil {
		return errs.Wrap(err)
	}
	if err := png.Encode(fh, img); err != nil {
		return errs.Combine(errs.Wrap(err), fh.Close())
	}
	return errs.Wrap(fh.Close())
}

func generate(dist string, n int) ([]int64, error) {
	rng := mwc.Rand()

	switch dist {
	case "random":
		return sorttest.Uniform(rng, n), nil
	case "fewunique":
		return sorttest.FewUnique(rng, n, 16), nil
	case "sorted":
		return sorttest.Sorted(n), nil
	case "reversed":
		return sorttest.Reversed(n), nil
	case "nearlysorted":
		return sorttest.NearlySorted(rng, n, n/50+1), nil
	case "sawtooth":
		return sorttest.Sawtooth(n, n/8+1), nil
	case "organpipe":
		return sorttest.OrganPipe(n), nil
	}
	return nil, errs.Errorf("unknown distribution %q", dist)
}

func plot(img *image.RGBA, v []int64, x0, y0 int, label string) {
	lo, hi := int64(0), int64(1)
	if len(v) > 0 {
		lo, hi = v[0], v[0]
		for _, val := range v {
			lo = min(lo, val)
			hi = max(hi, val)
		}
		if lo == hi {
			hi = lo + 1
		}
	}

	scale := float64(panelH-1) / (float64(hi) - float64(lo))

	dot := color.RGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff}
	for i, val := range v {
		px := x0 + i*(panelW-1)/max(len(v)-1, 1)
		py := y0 + (panelH - 1) - int(scale*(float64(val)-float64(lo)))
		img.Set(px, py, dot)
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x0, y0+panelH+labelH-3),
	}
	d.DrawString(label)
}
