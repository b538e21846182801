package anchor_test

import (
	"fmt"

	"github.com/matzehuels/anchorage/pkg/anchor"
)

func ExampleSlotOf() {
	for _, a := range []anchor.Attribute{anchor.Leading, anchor.Bottom, anchor.CenterY, anchor.Width} {
		fmt.Println(a, "->", anchor.SlotOf(a))
	}
	// Output:
	// leading -> near
	// bottom -> far
	// centerY -> center
	// width -> dimension
}

func ExampleConflicts() {
	fmt.Println(anchor.Conflicts(anchor.Left, anchor.CenterX))
	fmt.Println(anchor.Conflicts(anchor.Left, anchor.Right))
	fmt.Println(anchor.Conflicts(anchor.Width, anchor.Left))
	// Output:
	// true
	// false
	// false
}
