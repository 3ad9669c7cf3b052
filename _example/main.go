package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/hupe1980/raggo"
	"github.com/hupe1980/raggo/exec"
	"github.com/hupe1980/raggo/persist"
	"github.com/hupe1980/raggo/sparsity"
)

func main() {
	ctx := context.Background()

	const (
		nodes     = 100000
		neighbors = 12
	)

	fmt.Println("--- Parallel adjacency build ---")
	fmt.Println("Nodes:", nodes)

	adjacency, err := raggo.New[int64](nodes, neighbors)
	if err != nil {
		log.Fatal(err)
	}
	v := adjacency.View()

	start := time.Now()
	// Each goroutine fills a distinct block of sub-arrays; no locks.
	exec.Parallel{}.ForEach(nodes, func(i int) {
		for j := 0; j < neighbors; j++ {
			v.EmplaceBack(i, int64((i*31+j*17)%nodes))
		}
	})
	fmt.Println("Build:", time.Since(start))

	start = time.Now()
	adjacency.Compress()
	fmt.Println("Compress:", time.Since(start))
	fmt.Println("Values:", adjacency.ValueCapacity())

	fmt.Println("--- Snapshot round trip ---")
	logger := raggo.NewTextLogger(slog.LevelInfo)

	var buf bytes.Buffer
	start = time.Now()
	if err := persist.Save(ctx, &buf, adjacency.ViewConst(), persist.WithLogger(logger)); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Save:", time.Since(start), "bytes:", buf.Len())

	start = time.Now()
	restored, err := persist.Load[int64](ctx, &buf, persist.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Load:", time.Since(start))
	fmt.Println("Row 0:", restored.Sub(0))

	fmt.Println("--- Sparsity pattern ---")
	pattern, err := sparsity.New[int](4, 2)
	if err != nil {
		log.Fatal(err)
	}
	pattern.InsertNonZeros(0, []int{3, 1, 2})
	pattern.InsertNonZero(2, 7)
	pattern.RemoveNonZero(0, 2)
	for row := 0; row < pattern.NumRows(); row++ {
		fmt.Printf("row %d: %v\n", row, pattern.Columns(row))
	}
}
