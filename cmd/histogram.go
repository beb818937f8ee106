package main

import (
	"os"
	"github.com/jgbaldwinbrown/histogram/pkg"
)

func main() {
	os.Exit(histogram.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
