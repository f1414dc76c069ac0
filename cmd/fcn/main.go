package main

import (
	"os"

	"FcnLang/cmd/fcn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
