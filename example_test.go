package calculator_test

import (
	"fmt"

	"github.com/zephyrtronium/calculator"
)

func ExampleCompute() {
	for _, src := range []string{"3 + 4 * 2", "(3 + 4) * 2", "2 ^ 3 ^ 2", "-5 + 3", "10 / 0"} {
		r, err := calculator.Compute(src)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println("Result:", r)
	}

	// Output:
	// Result: 11
	// Result: 14
	// Result: 64
	// Result: -2
	// Error: 4: divide by zero for "/"
}

func ExampleNew() {
	e := calculator.New(calculator.RightAssociativePow(), calculator.LegacySubstitution())
	a, _ := e.Compute("2 ^ 3 ^ 2")
	b, _ := e.Compute("pi")
	post, _ := e.Postfix("2 ^ 3 ^ 2")
	fmt.Println(a, b, calculator.FormatTokens(post))

	// Output:
	// 512 3.141593 2 3 2 ^ ^
}
