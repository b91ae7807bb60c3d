// Package repl implements the interactive library console.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"zetanom/pkg/food"
)

const prompt = "> "

// Run reads commands from in until "q" or end of input. Supported commands:
//
//	count  print the number of foods in the library
//	q      quit
func Run(ctx context.Context, in io.Reader, out io.Writer, foodService food.FoodService) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "count":
			count, err := foodService.CountFoods(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "The library has %d foods.\n", count)
		case "q":
			fmt.Fprintln(out, "Bye!")
			return nil
		default:
			fmt.Fprintln(out, "Unknown command.")
		}
	}
}
