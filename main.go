// Package main is the entry point for the rotomet CLI tool, which caches
// fantasy-basketball league data and computes category value, trend, and
// streaming analytics over it.
package main

import "github.com/rotomet/rotomet/cmd"

func main() {
	cmd.Execute()
}
