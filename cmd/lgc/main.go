// Package main is the entry point for the lgc CLI client.
package main

import (
	"github.com/sellersage/listing-grader/cmd/lgc/cmd"
)

func main() {
	cmd.Execute()
}
