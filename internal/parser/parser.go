// Package parser puts os.Args into SearchParam structure and validates it for any issues
package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/networktomp-dev/search/internal/model"
	"github.com/networktomp-dev/search/internal/ranges"
	"github.com/spf13/pflag"
)

// ErrHelp reports that the user asked for the help dialog instead of a search.
var ErrHelp = pflag.ErrHelp

// onceBool - флаг без аргумента, дополнительно считает сколько раз его передали
type onceBool struct {
	value bool
	count int
}

func (b *onceBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = v
	b.count++
	return nil
}

func (b *onceBool) Type() string   { return "bool" }
func (b *onceBool) String() string { return strconv.FormatBool(b.value) }

// onceString - флаг с обязательным аргументом, тоже считает повторы
type onceString struct {
	value string
	count int
}

func (s *onceString) Set(v string) error {
	s.value = v
	s.count++
	return nil
}

func (s *onceString) Type() string   { return "string" }
func (s *onceString) String() string { return s.value }

// ParseArgs собирает из аргументов командной строки готовый SearchParam.
// Запрос помощи возвращается как ErrHelp, остальные ошибки уже содержат
// готовый текст для показа пользователю.
func ParseArgs(args []string) (*model.SearchParam, error) {
	flagParser := pflag.NewFlagSet("search", pflag.ContinueOnError)
	flagParser.SortFlags = false
	flagParser.SetOutput(io.Discard) // тексты ошибок печатаем сами, а не pflag

	help := flagParser.BoolP("help", "h", false, "Show this help dialog")

	var ignoreCase, isolate, lines, removeDupes onceBool
	var rangeArg, save onceString
	addNoArgFlag(flagParser, &ignoreCase, "ignore-case", "i", "Search is not case sensitive")
	addNoArgFlag(flagParser, &isolate, "isolate", "I", "Only return a word where it is an exact match")
	addNoArgFlag(flagParser, &lines, "lines", "l", "Display line numbers and the starting position of the word")
	flagParser.VarP(&rangeArg, "range", "r", "Display results only from a given range of lines")
	addNoArgFlag(flagParser, &removeDupes, "remove-dupes", "R", "Only shows the line once, regardless of matches")
	flagParser.VarP(&save, "save", "s", "Save results to a file")

	// парсим аргументы
	err := flagParser.Parse(args)
	if *help {
		// --help перебивает любые другие проблемы, до которых разбор успел дойти
		return nil, ErrHelp
	}
	if err != nil {
		return nil, fmt.Errorf("search: %v\nTry 'search --help' for more information", err)
	}

	// каждый флаг можно употребить не больше одного раза, в любом написании
	for _, f := range []struct {
		count int
		name  string
	}{
		{ignoreCase.count, "ignore-case"},
		{isolate.count, "isolate"},
		{lines.count, "lines"},
		{rangeArg.count, "range"},
		{removeDupes.count, "remove-dupes"},
		{save.count, "save"},
	} {
		if f.count > 1 {
			return nil, fmt.Errorf("ERROR: You can only employ a flag once (--%s)", f.name)
		}
	}

	// разбираемся с TERM и FILE, лишние позиционные аргументы игнорируем
	switch flagParser.NArg() {
	case 0:
		return nil, errors.New("USAGE: search [OPTION]... TERM FILE\nTry 'search --help' for more information")
	case 1:
		return nil, errors.New("ERROR: Missing search file path.")
	}

	param := model.SearchParam{
		IgnoreCase:    ignoreCase.value,
		IsolateWords:  isolate.value,
		ShowPositions: lines.value,
		DedupeLines:   removeDupes.value,
		SaveToFile:    save.count > 0,
		Term:          flagParser.Arg(0),
		FilePath:      flagParser.Arg(1),
		SavePath:      save.value,
	}

	// термин проверяем до любой работы с файлами
	switch {
	case param.Term == "":
		return nil, errors.New("ERROR: Search term cannot be empty.")
	case len(param.Term) >= model.MaxTermLength:
		return nil, errors.New("ERROR: Search term is too long.")
	}

	if rangeArg.count > 0 {
		r, err := ranges.Parse(rangeArg.value)
		if err != nil {
			return nil, errors.New("ERROR: Invalid range format. Please use NUM-NUM or a non-negative number.")
		}
		param.RangeFilter = true
		param.Range = r
	}

	return &param, nil
}

// addNoArgFlag регистрирует флаг, который употребляется без аргумента
func addNoArgFlag(flagParser *pflag.FlagSet, v *onceBool, name, short, usage string) {
	flagParser.VarP(v, name, short, usage)
	flagParser.Lookup(name).NoOptDefVal = "true"
}

// HelpText returns the -h/--help dialog.
func HelpText() string {
	return "Search help:\n" +
		"\tUSAGE: search [OPTION]... TERM FILE\n" +
		"\n" +
		"\t-h, --help\t\tShow this help dialog\n" +
		"\t-i, --ignore-case\tSearch is not case sensitive\n" +
		"\t-I, --isolate\t\tOnly return a word where it is an exact match (not part of a compound word).\n" +
		"\t-l, --lines\t\tDisplay line numbers and the starting position of the word.\n" +
		"\t-r, --range NUM-NUM\tDisplay results only from a given range of lines (e.g., -r 50-75).\n" +
		"\t-R, --remove-dupes\tOnly shows the line once, regardless of matches (Not fully implemented yet).\n" +
		"\t-s, --save FILE\t\tSave results to a file.\n" +
		"\n" +
		"\tEG: search Port /etc/ssh/sshd_config | grep 22"
}
