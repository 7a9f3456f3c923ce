package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coursecatalog/catalog/internal/services"
)

func newCalcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Logged arithmetic",
	}

	ops := []struct {
		use   string
		short string
		apply func(calc calculator, x, y float64) float64
	}{
		{"add <a> <b>", "Print a + b", calculator.Add},
		{"subtract <a> <b>", "Print a - b", calculator.Subtract},
	}

	for _, op := range ops {
		op := op // per-iteration copy; go.mod targets go 1.21 loop semantics
		cmd.AddCommand(&cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid number %q", args[0])
				}
				y, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid number %q", args[1])
				}

				calc := services.NewCalculatorService(services.NewLoggerService(a.log))
				result := op.apply(calc, x, y)

				if a.asJSON {
					return a.printJSON(map[string]float64{"result": result})
				}
				_, err = fmt.Fprintln(a.out, strconv.FormatFloat(result, 'f', -1, 64))
				return err
			},
		})
	}

	return cmd
}

// calculator is the arithmetic the calc commands expose
type calculator interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
}
