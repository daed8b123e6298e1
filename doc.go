/*
Package tmsim simulates unary arithmetic on tape machines.

Numbers are written on a tape as reversed binary numerals separated by Blank
cells. Each operation is a small deterministic machine that only reads, writes
and moves a cursor one cell at a time. Multiplication runs the addition machine
as a subroutine once per unit of its first operand, and exponentiation runs the
multiplication machine once per unit of the exponent.

# Layout

	add  3 5   B11B101B
	mult 4 6   B001B011B0B
	exp  2 5   B01B101B1B

The result is always the last numeral of the final tape. After a top-level run
the tape is trimmed so that the Blank preceding the result is at index 0.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/tmsim"
		"github.com/aretw0/tmsim/pkg/domain"
	)

	func main() {
		eng := tmsim.New()

		rec, err := eng.Run(context.Background(), domain.OpMultiply, 4, 6, true)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(rec.Trace)
		fmt.Println(rec.Result.Value) // 24
	}

The plain helpers SimulateAdd, SimulateMultiply and SimulateExponent return
the final tape and the boundary, the index of the Blank preceding the result
numeral, without any bookkeeping.
*/
package tmsim
