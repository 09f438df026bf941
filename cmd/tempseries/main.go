// Command tempseries reports statistics about a series of temperatures.
package main

import "github.com/sartorproj/tempseries/internal/cli"

func main() {
	cli.Execute()
}
