package main

import (
	"os"

	"github.com/leonardinius/gospi/cmd"
)

func main() {
	app := cmd.NewApp()
	os.Exit(app.Main(os.Args[1:]))
}
