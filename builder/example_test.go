package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/builder"
	"github.com/katalvlaran/lvlath3d/matrix"
	"github.com/katalvlaran/lvlath3d/vector"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildList
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build a cube wireframe lifted 5 units along Y: the vertex buffer comes
//	from BuildList, the index pairs from PlatonicEdges.
func ExampleBuildList() {
	lift := matrix.CreateTranslation(vector.Point(0, 5, 0))
	list, err := builder.BuildList(
		[]builder.BuilderOption{builder.WithTransform(lift)},
		builder.PlatonicSolid(builder.Cube, true),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	edges, _ := builder.PlatonicEdges(builder.Cube)
	center, _ := list.At(list.Index())
	fmt.Printf("vertices=%d edges=%d floats=%d\n", list.Count(), len(edges), len(list.Floats()))
	fmt.Printf("center=(%.0f, %.0f, %.0f)\n", center.X, center.Y, center.Z)
	// Output:
	// vertices=9 edges=12 floats=36
	// center=(0, 5, 0)
}
