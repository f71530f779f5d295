package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/mortgage-explorer/internal/calculation"
	"github.com/rpgo/mortgage-explorer/internal/config"
	"github.com/rpgo/mortgage-explorer/internal/domain"
)

func main() {
	p := config.NewInputParser()
	cfg := p.CreateExampleConfiguration()
	if len(os.Args) >= 2 {
		loaded, err := p.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}
	if cfg.Projection == nil {
		fmt.Println("no projection block")
		return
	}

	params := cfg.Projection.Parameters()
	points := calc.ProjectNetWorth(params)
	fmt.Printf("%5s %14s %14s %14s  %s\n", "Year", "Cash", "Mortgage", "Rent", "Leader")
	for _, pt := range points {
		fmt.Printf("%5d %14.2f %14.2f %14.2f  %s\n", pt.Year, pt.Scenario1, pt.Scenario2, pt.Scenario3, pt.Leader())
	}

	fmt.Println()
	for i, a := range domain.Strategies {
		for _, b := range domain.Strategies[i+1:] {
			ab := calc.FindCrossover(points, a, b)
			ba := calc.FindCrossover(points, b, a)
			fmt.Printf("%-8s vs %-8s: %s ahead from %d (%v), %s ahead from %d (%v)\n",
				a, b, a, ab.Year, ab.Found, b, ba.Year, ba.Found)
		}
	}
}
