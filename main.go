package main

import (
	"os"

	"github.com/wilbanksalexis/Powering/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
