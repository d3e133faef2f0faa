// Command build_da reads a newline-delimited key file, builds a double
// array trie, asserts every key round-trips through it, and persists the
// result as a JSON document.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/koeppl/yasco-da/internal/doublearray"
	"github.com/koeppl/yasco-da/internal/keysource"
	"github.com/koeppl/yasco-da/internal/persist"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
)

// negativeSuffix is appended to every key to build a query that must not
// be contained, carried over from the original reference driver.
var negativeSuffix = []byte("hogehoge")

func main() {
	app := cli.NewApp()
	app.Name = "build_da"
	app.Usage = "builds a double array trie from a key file"
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
		return cli.NewExitError("build_da: --input is required", 1)
	}
	if output == "" {
		return cli.NewExitError("build_da: --output is required", 1)
	}

	keys, err := keysource.Load(input)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	log.Printf("# of keys = %d", len(keys))

	da := doublearray.Build(keys)
	log.Printf("Size of double array is %d", da.Len())
	density := float64(0)
	if da.Len() > 0 {
		density = float64(da.NumUsed()) / float64(da.Len())
	}
	log.Printf("%d/%d=%.5f is used", da.NumUsed(), da.Len(), density)
	log.Printf("RESULT method=greedy file=%s keys=%d length=%d filledentries=%d",
		input, len(keys), da.Len(), da.NumUsed())

	for _, key := range keys {
		if !da.Contains(key) {
			return cli.NewExitError(
				errors.Errorf("build_da: key %q not contained after build", key).Error(), 1)
		}
		negative := append(append([]byte{}, key...), negativeSuffix...)
		if da.Contains(negative) {
			return cli.NewExitError(
				errors.Errorf("build_da: suffixed key %q unexpectedly contained", negative).Error(), 1)
		}
	}

	if err := persist.WriteDA(output, da.MarshalDocument()); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
