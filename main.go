package main

import (
	"os"

	"classical-ciphers-backend/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
