// Package main is the entry point for the siun status frontend.
//
// It prints the result of the last siun update check for status bars
// and terminals. All command handling lives in the cmd package.
package main

import "github.com/ajxudir/siun/cmd"

func main() {
	cmd.Execute()
}
