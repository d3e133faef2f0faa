// Command identify_da loads two persisted double array documents,
// enumerates both, and asserts their key multisets are identical.
package main

import (
	"bytes"
	"log"
	"os"
	"sort"

	"github.com/koeppl/yasco-da/internal/doublearray"
	"github.com/koeppl/yasco-da/internal/persist"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
)

func main() {
	app := cli.NewApp()
	app.Name = "identify_da"
	app.Usage = "compares the enumerated key sets of two double array documents"
	app.Flags = []cli.Flag{input1Flag, input2Flag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	path1 := c.String(input1Flag.Name)
	path2 := c.String(input2Flag.Name)
	if path1 == "" {
		return cli.NewExitError("identify_da: --input1 is required", 1)
	}
	if path2 == "" {
		return cli.NewExitError("identify_da: --input2 is required", 1)
	}

	da1, err := loadDA(path1)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	da2, err := loadDA(path2)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	keys1 := sortedKeys(da1.Enumerate())
	keys2 := sortedKeys(da2.Enumerate())

	log.Printf("|da1|=%d, |da2|=%d", da1.Len(), da2.Len())
	log.Printf("|keys1|=%d, |keys2|=%d", len(keys1), len(keys2))

	if len(keys1) != len(keys2) {
		return cli.NewExitError(
			errors.Errorf("identify_da: key count mismatch, %d != %d", len(keys1), len(keys2)).Error(), 1)
	}
	for i := range keys1 {
		if !bytes.Equal(keys1[i], keys2[i]) {
			return cli.NewExitError(
				errors.Errorf("identify_da: key mismatch at position %d: %q != %q", i, keys1[i], keys2[i]).Error(), 1)
		}
	}
	return nil
}

func loadDA(path string) (*doublearray.DoubleArray, error) {
	doc, err := persist.ReadDA(path)
	if err != nil {
		return nil, err
	}
	return doublearray.FromDocument(doc), nil
}

func sortedKeys(keys [][]byte) [][]byte {
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i], keys[j]) < 0
	})
	return keys
}
