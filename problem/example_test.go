package problem_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tpsolve/problem"
)

func ExampleNew() {
	p, _ := problem.New(2, 2)
	p.Costs = [][]float64{{4, 6}, {3, 2}}
	p.Supply = []float64{10, 15}
	p.Demand = []float64{12, 13}

	res, err := p.Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, row := range res.AllocationRows() {
		fmt.Println(p.SourceLabel(i), row)
	}
	fmt.Println("cost:", res.ExactCost)
	// Output:
	// S1 [10 0]
	// S2 [2 13]
	// cost: 72
}

func ExampleEncode() {
	p, _ := problem.New(2, 3)
	_ = problem.Encode(os.Stdout, p, "yaml")
	// Output:
	// costs:
	//   - [0, 0, 0]
	//   - [0, 0, 0]
	// supply: [0, 0]
	// demand: [0, 0, 0]
}
