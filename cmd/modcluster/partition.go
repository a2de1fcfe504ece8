// SPDX-License-Identifier: MIT
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/katalvlaran/modcluster/division"
	"github.com/katalvlaran/modcluster/spectral"
)

func runPartition(args []string) int {
	fs := flag.NewFlagSet("partition", flag.ContinueOnError)
	seed := fs.Int64("seed", 1, "random seed for power-iteration start vectors")
	epsilon := fs.Float64("epsilon", spectral.DefaultEpsilon, "convergence and divisibility threshold")
	verbose := fs.Bool("v", false, "log each division/indivisible decision")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 2 {
		logger.Println("usage: modcluster partition [-seed N] [-epsilon E] [-v] <input-adjacency> <output-division>")
		return 2
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	if err := partitionFile(inPath, outPath, *seed, *epsilon, *verbose); err != nil {
		logger.Println(err)
		return 1
	}

	return 0
}

func partitionFile(inPath, outPath string, seed int64, epsilon float64, verbose bool) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	adj, err := division.ReadAdjacency(in)
	if err != nil {
		return fmt.Errorf("reading adjacency: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := runPartitionInto(adj, out, seed, epsilon, verbose); err != nil {
		out.Close()
		os.Remove(outPath)

		return err
	}

	return out.Close()
}

func runPartitionInto(adj *spectral.Adjacency, out *os.File, seed int64, epsilon float64, verbose bool) error {
	writer, err := division.NewWriter(out)
	if err != nil {
		return fmt.Errorf("starting division writer: %w", err)
	}

	opts := []spectral.PartitionOption{
		spectral.WithRand(rand.New(rand.NewSource(seed))),
		spectral.WithEpsilon(epsilon),
		spectral.WithSink(writer),
	}
	if verbose {
		opts = append(opts, spectral.WithDecisionLogger(func(size int, divisible bool) {
			if divisible {
				logger.Printf("divide: submatrix of size %d split", size)
			} else {
				logger.Printf("indivisible: submatrix of size %d emitted whole", size)
			}
		}))
	}

	if _, err := spectral.Partition(adj, opts...); err != nil {
		return fmt.Errorf("partitioning: %w", err)
	}

	if err := writer.Finalize(); err != nil {
		return fmt.Errorf("finalizing output: %w", err)
	}

	return nil
}
