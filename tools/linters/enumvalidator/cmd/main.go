package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"kamau.dev/portfolio/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
