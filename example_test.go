package tmsim_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/numeral"
)

func ExampleSimulateMultiply() {
	t, boundary := tmsim.SimulateMultiply(4, 6)
	fmt.Println(t, boundary, numeral.Read(t, boundary))
	// Output: B00011B 0 24
}

func ExampleEngine_Run() {
	eng := tmsim.New()

	rec, err := eng.Run(context.Background(), domain.OpExponent, 3, 2, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rec.ID, rec.Result.Value, rec.Result.Tape)
	// Output: exp_3_2 9 B1001B
}
