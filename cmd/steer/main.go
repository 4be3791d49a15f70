// Package main is the steer command itself.
package main

import (
	"log"
	"os"

	"github.com/roarracing/purepursuit/cli"
)

func main() {
	app := cli.NewApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
