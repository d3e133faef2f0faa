// Command build_tm reads a newline-delimited key file, builds a trie
// matrix, asserts every key round-trips through it, and persists the
// result as a JSON document.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/koeppl/yasco-da/internal/keysource"
	"github.com/koeppl/yasco-da/internal/persist"
	"github.com/koeppl/yasco-da/internal/triematrix"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
)

var negativeSuffix = []byte("hogehoge")

func main() {
	app := cli.NewApp()
	app.Name = "build_tm"
	app.Usage = "builds a trie matrix from a key file"
	app.Flags = []cli.Flag{inputFlag, outputFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	log.SetOutput(os.Stdout)
	input := c.String(inputFlag.Name)
	output := c.String(outputFlag.Name)
	if input == "" {
		return cli.NewExitError("build_tm: --input is required", 1)
	}
	if output == "" {
		return cli.NewExitError("build_tm: --output is required", 1)
	}

	keys, err := keysource.Load(input)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	log.Printf("# of keys = %d", len(keys))

	tm := triematrix.Build(keys)
	log.Printf("RESULT method=matrix file=%s keys=%d nodes=%d", input, len(keys), tm.NumNodes())

	for _, key := range keys {
		if !tm.Contains(key) {
			return cli.NewExitError(
				errors.Errorf("build_tm: key %q not contained after build", key).Error(), 1)
		}
		negative := append(append([]byte{}, key...), negativeSuffix...)
		if tm.Contains(negative) {
			return cli.NewExitError(
				errors.Errorf("build_tm: suffixed key %q unexpectedly contained", negative).Error(), 1)
		}
	}

	if err := persist.WriteTM(output, tm.ToDocument()); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
