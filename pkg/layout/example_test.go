package layout_test

import (
	"fmt"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/layout"
)

func ExampleResolve() {
	// Three wide labels on nearby ticks: the ends get pushed outward,
	// the middle one is pinned in place by its neighbors.
	labels := []axis.Label{
		{Anchor: 0, Size: 1.5, Text: "gene-a"},
		{Anchor: 1, Size: 1.5, Text: "gene-b"},
		{Anchor: 2, Size: 1.5, Text: "gene-c"},
	}

	placements, _ := layout.Resolve(labels, layout.Options{Padding: 0.1})
	for _, p := range placements {
		fmt.Printf("%s: %.1f -> %.1f\n", p.Text, p.Anchor, p.Position)
	}
	// Output:
	// gene-a: 0.0 -> -0.6
	// gene-b: 1.0 -> 1.0
	// gene-c: 2.0 -> 2.6
}

func ExampleResolve_noOverlap() {
	// Labels that already fit are returned untouched.
	labels := []axis.Label{
		{Anchor: 0, Size: 1, Text: "jan"},
		{Anchor: 4, Size: 1, Text: "feb"},
	}

	placements, _ := layout.Resolve(labels, layout.Options{Padding: 0.5})
	fmt.Println("residual:", layout.TotalOverlap(placements, 0.5))
	fmt.Println("moved:", placements[0].Moved(1e-9), placements[1].Moved(1e-9))
	// Output:
	// residual: 0
	// moved: false false
}

func ExampleLeaders() {
	placements := []layout.Placement{
		{Anchor: 2, Position: 4, Size: 1, Text: "shifted"},
		{Anchor: 8, Position: 8, Size: 1, Text: "still"},
	}

	leaders := layout.Leaders(placements, layout.LeaderGeom{
		Side:      axis.SideBottom,
		PerpShift: 5,
	})
	fmt.Println("leaders:", len(leaders))
	fmt.Println("for:", leaders[0].Text)
	// Output:
	// leaders: 1
	// for: shifted
}
