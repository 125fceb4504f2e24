package main

import (
	"os"

	"github.com/dhemric/spaenv/internal/spaenv"
)

func main() {
	os.Exit(spaenv.Main())
}
