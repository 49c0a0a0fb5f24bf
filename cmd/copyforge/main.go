package main

import (
	"log"

	"github.com/copyforge/copyforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
