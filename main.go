// Package main is the routelens CLI entrypoint.
package main

import (
	"github.com/routelens/routelens/cmd"
)

func main() {
	cmd.Execute()
}
