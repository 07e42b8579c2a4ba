// Package model contains the data structure for storing initially provided flags and search values
package model

import "github.com/networktomp-dev/search/internal/ranges"

// Практические лимиты сканирования: строки длиннее лимита не дочитываются
// механизмом чтения, термины длиннее отклоняются еще на этапе конфигурации
const (
	MaxLineLength = 2048
	MaxTermLength = 128
)

// SearchParam - хранит в себе все возможные флаги и параметры запуска поиска
type SearchParam struct {
	IgnoreCase    bool         // i - игнорировать регистр (только ASCII)
	IsolateWords  bool         // I - термин должен стоять отдельным словом, не частью составного
	ShowPositions bool         // l - выводить номер строки и позицию начала совпадения
	RangeFilter   bool         // r - искать только в заданном диапазоне строк
	DedupeLines   bool         // R - показывать совпавшую строку не более одного раза
	SaveToFile    bool         // s - сохранять результаты в файл вместо stdout
	Range         ranges.Range // нормализованный диапазон строк, действует при RangeFilter
	Term          string       // искомая подстрока
	FilePath      string       // путь к файлу для поиска
	SavePath      string       // путь к файлу результатов, действует при SaveToFile
}
