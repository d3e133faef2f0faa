package main

import cli "gopkg.in/urfave/cli.v1"

var (
	input1Flag = cli.StringFlag{
		Name:  "input1",
		Usage: "path to the first double array JSON document",
	}
	input2Flag = cli.StringFlag{
		Name:  "input2",
		Usage: "path to the second double array JSON document",
	}
)
