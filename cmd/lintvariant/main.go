package main

import (
	"github.com/variantgen/variantgen/internal/lintvariant"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(lintvariant.Analyzer)
}
