// Command layout-inspect parses a grid2 layout string and prints the laid out
// tree for a given window size.
//
//	layout-inspect -size 80x24 "g 0 1 h s 1 1 1 s 1 1 2"
//	layout-inspect -file layout.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/tilekit/config"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/grid2"
)

var (
	size  = flag.String("size", "80x24", "Window size as WxH")
	file  = flag.String("file", "", "Read the layout from a file instead of the arguments")
	snap  = flag.Bool("snap", true, "Round extents to whole cells")
	quiet = flag.Bool("q", false, "Only validate, print the normalized layout")
)

func main() {
	flag.Parse()

	var w, h int
	if _, err := fmt.Sscanf(*size, "%dx%d", &w, &h); err != nil || w < 0 || h < 0 {
		fmt.Fprintf(os.Stderr, "invalid size %q, expected WxH\n", *size)
		os.Exit(2)
	}

	g := grid2.New(grid2.Options{Snap: *snap})
	var err error
	switch {
	case *file != "":
		err = config.LoadLayout(*file, g)
	case flag.NArg() > 0:
		err = grid2.Parse(strings.Join(flag.Args(), " "), g)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if pe, ok := errors.Cause(err).(*grid2.ParseError); ok {
			fmt.Fprintf(os.Stderr, "at token %d (%s)\n", pe.Pos, pe.Code)
		}
		os.Exit(1)
	}

	fmt.Println(g)
	if *quiet {
		return
	}
	g.SizeHint(geom.R(0, 0, float64(w), float64(h)))
	dump(os.Stdout, g)
}

// dump prints one line per node, indented by depth
func dump(out io.Writer, g *grid2.Grid) {
	depth := func(id grid2.NodeID) int {
		d := 0
		for p := g.Parent(id); p != grid2.NoNode; p = g.Parent(p) {
			d++
		}
		return d
	}

	it := g.Iterator()
	for id := it.Next(); id != grid2.NoNode; id = it.Next() {
		indent := strings.Repeat("  ", depth(id))
		wt := g.Weights(id)
		if g.IsDivision(id) {
			fmt.Fprintf(out, "%s%s #%d area=%s sep=%s fixed=%s var=%s\n",
				indent, g.Orientation(id), id, g.Area(id), g.Rect(id), vec(wt.Fixed), vec(wt.Variable))
			continue
		}
		fmt.Fprintf(out, "%sslot #%d tag=%d weight=%s rect=%s\n",
			indent, id, g.Tag(id), vec(g.Weight(id)), g.Rect(id))
	}
}

func vec(v geom.Vec2) string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}
