package main

import cli "gopkg.in/urfave/cli.v1"

var (
	inputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "path to the newline-delimited key file",
	}
	outputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "path to write the double array JSON document to",
	}
)
