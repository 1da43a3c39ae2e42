// Package main is the entry point for the gradekit CLI.
package main

import "gradekit.dev/pkg/gradekit/cmd"

func main() {
	cmd.Execute()
}
