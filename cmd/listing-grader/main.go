// Package main is the entry point for the listing-grader server.
package main

import (
	"os"

	"github.com/sellersage/listing-grader/cmd/listing-grader/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
