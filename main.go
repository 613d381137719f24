package main

import (
	"log"

	"github.com/talentscout/intake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
