package main

import (
	"os"

	"github.com/CoolCat467/fix-lwjgl/src/commands"
	"github.com/CoolCat467/fix-lwjgl/src/print"
)

var (
	version = "1.3.2"
)

func main() {
	code, err := commands.Run(os.Args[1:], version)
	if err != nil {
		print.Erro(err)
		os.Exit(1)
	}
	os.Exit(code)
}
