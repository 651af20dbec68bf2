package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"robotreadme/internal/adapter/fs"
	"robotreadme/internal/adapter/tokenizer"
)

func main() {
	file := flag.String("f", "", "Text file to tokenize")
	models := flag.String("models", "gpt2,cl100k_base,o200k_base,words,whitespace,estimate", "Comma-separated tokenizer names")
	backend := flag.String("backend", "offline", "BPE backend: remote or offline")
	rounds := flag.Int("n", 5, "Rounds per tokenizer")
	flag.Parse()

	if *file == "" {
		fmt.Println("Usage: go run ./cmd/benchmark -f input.txt [-models gpt2,cl100k_base] [-n 5]")
		fmt.Println("\nReports per tokenizer:")
		fmt.Println("  1. Token count and ratio to the first tokenizer")
		fmt.Println("  2. Mean time per count and throughput")
		os.Exit(1)
	}

	text, err := fs.ReadText(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b, err := tokenizer.ParseBackend(*backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	registry := tokenizer.NewRegistry(b)

	if *rounds <= 0 {
		*rounds = 1
	}

	fmt.Println("TOKENIZER BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("File:   %s\n", *file)
	fmt.Printf("Size:   %d bytes, %d runes\n", len(text), len([]rune(text)))
	fmt.Printf("Rounds: %d\n\n", *rounds)
	fmt.Printf("%-16s %10s %8s %12s %14s\n", "TOKENIZER", "TOKENS", "RATIO", "MEAN", "TOKENS/SEC")
	fmt.Println(strings.Repeat("-", 70))

	baseline := 0
	for _, name := range strings.Split(*models, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		loadStart := time.Now()
		tok, err := registry.Resolve(name)
		if err != nil {
			fmt.Printf("%-16s %v\n", name, err)
			continue
		}
		loadTime := time.Since(loadStart)

		var n int
		start := time.Now()
		for i := 0; i < *rounds; i++ {
			n, err = tok.CountTokens(text)
			if err != nil {
				break
			}
		}
		if err != nil {
			fmt.Printf("%-16s %v\n", name, err)
			continue
		}
		mean := time.Since(start) / time.Duration(*rounds)

		if baseline == 0 {
			baseline = n
		}
		ratio := 0.0
		if baseline > 0 {
			ratio = float64(n) / float64(baseline)
		}
		throughput := 0.0
		if mean > 0 {
			throughput = float64(n) / mean.Seconds()
		}

		fmt.Printf("%-16s %10d %8.2f %12s %14.0f\n", name, n, ratio, mean.Round(time.Microsecond), throughput)
		if loadTime > 100*time.Millisecond {
			fmt.Printf("%-16s (load: %s)\n", "", loadTime.Round(time.Millisecond))
		}
	}
	fmt.Println(strings.Repeat("=", 70))
}
