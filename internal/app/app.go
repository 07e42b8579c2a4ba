// Package app wires one configured search together: input file, output sink, scan, summary
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/networktomp-dev/search/internal/display"
	"github.com/networktomp-dev/search/internal/model"
	"github.com/networktomp-dev/search/internal/processor"
	"github.com/networktomp-dev/search/internal/reader"
)

// Run выполняет один поиск от открытия файла до итоговой сводки.
// Результаты уходят в stdout либо в файл сохранения, статус - в stderr.
func Run(param *model.SearchParam, stdout, stderr io.Writer) error {
	// открываем файл поиска
	searchFile, err := reader.OpenFile(param.FilePath)
	if err != nil {
		return err
	}
	defer searchFile.Close()

	// выбираем куда писать результаты
	sink, dest := stdout, "stdout"
	if param.SaveToFile {
		saveFile, err := os.Create(param.SavePath)
		if err != nil {
			return fmt.Errorf("search: Could not open save file %q: %v", param.SavePath, err)
		}
		defer saveFile.Close()
		sink, dest = saveFile, param.SavePath
	}

	// рассказываем что собираемся делать
	display.Announce(stderr, param)

	// сам поиск, через буфер чтобы не дёргать запись на каждой строке
	buffered := bufio.NewWriter(sink)
	totals := processor.Run(param, searchFile, buffered)
	_ = buffered.Flush() // после начала сканирования фатальных условий уже нет

	// печатаем сводку
	display.Summary(stderr, totals.Results, dest)
	return nil
}
