package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/networktomp-dev/search/internal/app"
	"github.com/networktomp-dev/search/internal/parser"
)

func main() {
	// инициализировать параметры запуска из аргументов командной строки
	param, err := parser.ParseArgs(os.Args[1:])
	if errors.Is(err, parser.ErrHelp) {
		fmt.Println(parser.HelpText())
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// запуск поиска
	if err := app.Run(param, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
