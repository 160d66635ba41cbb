package main

import (
	"log"
	"os"

	"gitlab.com/yarbelk/lwc/lib/lwc"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lwc: ")
	if err := lwc.Main(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
