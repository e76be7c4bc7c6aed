package main

import (
	"log"
	"os"

	"github.com/silbinarywolf/fish-fiesta/cmd/dev-server/internal/devwebserver"
)

func main() {
	if err := devwebserver.Serve(os.Args[1:]); err != nil {
		log.Fatalf("%+v", err)
	}
}
