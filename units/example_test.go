package units_test

import (
	"fmt"

	"github.com/katalvlaran/sival/units"
)

// ExampleToArea converts a data-sheet cone area to square metres.
func ExampleToArea() {
	fmt.Printf("%.4f m2\n", units.ToArea(330, "cm2"))
	// Output:
	// 0.0330 m2
}

// ExampleConvert shows the strict path rejecting an unknown tag.
func ExampleConvert() {
	v, err := units.Convert(units.Volume, 48, "L")
	fmt.Printf("%.3f %v\n", v, err)

	_, err = units.Convert(units.Mass, 1, "stone")
	fmt.Println(err)
	// Output:
	// 0.048 <nil>
	// mass "stone": units: unknown unit tag
}
