package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/rjvanvoorhis/amq"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "amqbench",
		Usage: "execute membership queries with different datastructures",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "total-keys",
				Aliases: []string{"t"},
				Value:   100000,
				Usage:   "the number of keys to generate for the test",
			},
			&cli.UintFlag{
				Name:    "positive-keys",
				Aliases: []string{"p"},
				Value:   1000,
				Usage:   "the number of true positives",
			},
			&cli.UintFlag{
				Name:    "kmer-size",
				Aliases: []string{"k"},
				Value:   30,
				Usage:   "the number of characters in each key",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Value: 42,
				Usage: "seed for the random source generating the dataset",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "bloom-filter",
				Usage: "use a bloom filter with a configurable false positive rate",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:     "fpp",
						Usage:    "the desired false positive rate",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return benchmark(c, func(keys []string) (amq.Filter, error) {
						return amq.NewBloomFilter(keys, c.Float64("fpp"))
					})
				},
			},
			{
				Name:  "mphf",
				Usage: "use a minimal perfect hash function",
				Action: func(c *cli.Context) error {
					return benchmark(c, func(keys []string) (amq.Filter, error) {
						return amq.NewMPHF(keys)
					})
				},
			},
			{
				Name:  "fingerprint",
				Usage: "use a fingerprint array with a configurable fingerprint size to tune the false positive rate",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:     "width",
						Usage:    "the number of bits to store for each keys fingerprint",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					width := c.Uint("width")
					if width > 64 {
						return fmt.Errorf("width must be at most 64, got %d", width)
					}
					return benchmark(c, func(keys []string) (amq.Filter, error) {
						return amq.NewFingerprintArray(keys, uint8(width))
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// benchmark generates the split dataset, builds the selected backend
// over the positive keys, runs the experiment, and prints the result
// record as json on stdout.
func benchmark(c *cli.Context, build func(keys []string) (amq.Filter, error)) error {
	rng := rand.New(rand.NewSource(int64(c.Uint64("seed"))))
	keys, err := amq.NewSplitKeys(
		rng,
		int(c.Uint("positive-keys")),
		int(c.Uint("total-keys")),
		int(c.Uint("kmer-size")),
	)
	if err != nil {
		return fmt.Errorf("generating dataset: %w", err)
	}

	filter, err := build(keys.Positives)
	if err != nil {
		return err
	}

	out, err := json.Marshal(amq.Run(keys, filter))
	if err != nil {
		return fmt.Errorf("could not serialize results: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
