package buffer_test

import (
	"fmt"

	"github.com/katalvlaran/pict/buffer"
	"github.com/katalvlaran/pict/pixel"
)

// ExampleBuffer_ViewMut demonstrates the exclusive-view lifecycle: acquire,
// split into two independently mutable halves, fill each, release.
func ExampleBuffer_ViewMut() {
	buf, err := buffer.New[pixel.RGB8](4, 2)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	vm, err := buf.ViewMut()
	if err != nil {
		fmt.Println("view:", err)
		return
	}

	left, right, err := vm.SplitXAtMut(2)
	if err != nil {
		fmt.Println("split:", err)
		return
	}
	_ = left.Fill(pixel.RGB8{R: 255})
	_ = right.Fill(pixel.RGB8{G: 255})
	left.Release()
	right.Release()

	view := buf.View()
	for y := buffer.Dimension(0); y < view.Height(); y++ {
		row, _ := view.Row(y)
		for x, px := range row {
			if x > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("(%d,%d,%d)", px.R, px.G, px.B)
		}
		fmt.Println()
	}
	// Output:
	// (255,0,0) (255,0,0) (0,255,0) (0,255,0)
	// (255,0,0) (255,0,0) (0,255,0) (0,255,0)
}

// ExampleViewMut_ViewMutMultiple carves disjoint quadrants out of one view
// and shows the all-or-nothing overlap rejection.
func ExampleViewMut_ViewMutMultiple() {
	buf, _ := buffer.New[pixel.Luma8](4, 4)
	vm, _ := buf.ViewMut()

	_, err := vm.ViewMutMultiple([]buffer.Rect{
		{X: 0, Y: 0, W: 3, H: 3},
		{X: 1, Y: 1, W: 2, H: 2},
	})
	fmt.Println("overlapping:", err != nil)

	children, err := vm.ViewMutMultiple([]buffer.Rect{
		{X: 0, Y: 0, W: 2, H: 2},
		{X: 2, Y: 2, W: 2, H: 2},
	})
	fmt.Println("disjoint:", err == nil, "children:", len(children))
	for _, c := range children {
		c.Release()
	}
	// Output:
	// overlapping: true
	// disjoint: true children: 2
}
