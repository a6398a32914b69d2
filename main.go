// Package main is the entry point for the plate CLI.
package main

import "plate.dev/pkg/plate/cmd"

func main() {
	cmd.Execute()
}
