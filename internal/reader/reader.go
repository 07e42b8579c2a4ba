package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/networktomp-dev/search/internal/model"
)

func OpenFile(name string) (*os.File, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("search: Could not open search file %q: %v", name, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return nil, fmt.Errorf("search: Search file %q is a directory", name)
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("search: Could not open search file %q: %v", name, err)
	}
	return file, nil
}

// NewLineScanner returns a line scanner bounded by model.MaxLineLength.
// A longer line stops the scan the same way the end of input does.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, model.MaxLineLength), model.MaxLineLength)
	return scanner
}
