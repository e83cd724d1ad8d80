package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/adventkit/circuit"
	"github.com/katalvlaran/adventkit/ilp"
)

// ExampleMachine solves one machine both ways: two presses, (1,3) then
// (2,3), light exactly lights 1 and 2; ten total presses hit every
// voltage target.
func ExampleMachine() {
	m, err := circuit.ParseMachine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	presses, _ := m.MinPresses()
	voltage, _ := m.MinVoltagePresses(ilp.BranchBound{})
	fmt.Println(presses)
	fmt.Println(voltage)
	// Output:
	// 2
	// 10
}
