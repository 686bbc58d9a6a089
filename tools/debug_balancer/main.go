package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/paystruct/salary-breakdown/internal/calculation"
	"github.com/paystruct/salary-breakdown/internal/config"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: debug_balancer <structure-file> <assignment-file>")
		return
	}
	p := config.NewInputParser()
	p.MigrateLegacy = true
	structure, err := p.LoadStructure(os.Args[1])
	if err != nil {
		panic(err)
	}
	a, err := p.LoadAssignment(os.Args[2], structure)
	if err != nil {
		panic(err)
	}

	b := calc.Compute(structure, a.GrossSalary, a.Toggles, a.Overrides)
	nonBalancer := decimal.Zero
	for _, e := range b.Earnings {
		flag := ""
		if e.IsBalancer {
			flag = " [balancer]"
		} else {
			nonBalancer = nonBalancer.Add(e.Amount)
		}
		if !e.IsEnabled {
			flag += " [off]"
		}
		fmt.Printf("%-24s %14s%s\n", e.Name, e.Amount.StringFixed(2), flag)
	}
	fmt.Printf("Gross: %s  Non-balancer sum: %s  Residual: %s\n",
		a.GrossSalary.StringFixed(2), nonBalancer.StringFixed(2), a.GrossSalary.Sub(nonBalancer).StringFixed(2))
	fmt.Printf("Valid: %v %s\n", b.IsValid, b.ErrorMessage)

	if floor, ok := calc.MinimumGross(structure, a.Toggles, a.Overrides); ok {
		fmt.Printf("Minimum valid gross: %s\n", floor.StringFixed(2))
	} else {
		fmt.Println("No gross salary yields a valid breakdown with these toggles and overrides")
	}
}
