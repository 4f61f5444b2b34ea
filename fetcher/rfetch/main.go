package main

import (
	"log"
	"os"

	"github.com/viant/resilient/fetcher"
)

func main() {
	if err := fetcher.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
