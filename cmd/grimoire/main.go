// Command grimoire compiles Grimoire CSS spells into stylesheets (spec.md
// §6). See cmd/grimoire/root.go for the command tree.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
