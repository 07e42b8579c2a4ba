// Package processor runs the line-by-line search over the input and writes matched lines out
package processor

import (
	"fmt"
	"io"

	"github.com/networktomp-dev/search/internal/matcher"
	"github.com/networktomp-dev/search/internal/model"
	"github.com/networktomp-dev/search/internal/reader"
)

// Totals - счётчики одного прогона поиска
type Totals struct {
	Lines   int // сколько строк прочитано из файла
	Results int // сколько совпадений найдено
}

// Run читает input построчно, прогоняет каждую строку через matcher
// и печатает совпавшие строки в out. Возвращает счётчики прогона.
func Run(param *model.SearchParam, in io.Reader, out io.Writer) Totals {
	var totals Totals
	scanner := reader.NewLineScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		totals.Lines++ // нумерация строк с единицы, пустые строки тоже считаем
		if param.RangeFilter && !param.Range.Contains(totals.Lines) {
			continue //-r: строка вне диапазона - даже не ищем в ней
		}
		for from := 0; ; {
			at := matcher.Find(param, line, from)
			if at < 0 {
				break
			}
			totals.Results++
			if param.ShowPositions { //-l: номер строки и позиция, обе с единицы
				fmt.Fprintf(out, "LINE %d, POS %d: ", totals.Lines, at+1)
			}
			fmt.Fprintln(out, line)
			if param.DedupeLines {
				break //-R: строку показываем не больше одного раза
			}
			from = at + len(param.Term) // совпадения не перекрываются
		}
	}
	// ошибку чтения не отличаем от конца файла - скан просто заканчивается
	return totals
}
