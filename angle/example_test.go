// SPDX-License-Identifier: MIT

package angle_test

import (
	"fmt"

	"github.com/katalvlaran/mathval/angle"
)

func ExampleParseDMS() {
	v, _ := angle.ParseDMS("-33d51m54s")
	fmt.Println(v)
	fmt.Printf("%.4f\n", v.ToDegrees())
	// Output:
	// -33°51'54"
	// -33.8650
}

func ExampleNormalize() {
	fmt.Println(angle.Normalize(270, angle.NegativeTo180))
	fmt.Println(angle.Normalize(-90, angle.ZeroTo360))
	// Output:
	// -90
	// 270
}
