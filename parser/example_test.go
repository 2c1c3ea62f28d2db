package parser_test

import (
	"fmt"

	"github.com/moussetc/letsroll/parser"
)

func ExampleParse() {
	req, err := parser.Parse("(heroD20KeepBest(2))x3Total")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(req.Dice[0].Identifier)
	fmt.Println(req.Dice[0].Spec)
	fmt.Println(req)
	// Output:
	// hero
	// 1D20
	// (hero 1D20 KeepBest(2)) x3 Total
}

func ExampleParse_invalid() {
	_, err := parser.Parse("2D6 garbage")
	fmt.Println(err)
	// Output:
	// offset 4: unexpected input after a complete request
}
