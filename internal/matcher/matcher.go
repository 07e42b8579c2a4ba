// Package matcher scans the input line for the search term and reports the match offset
package matcher

import "github.com/networktomp-dev/search/internal/model"

// Find returns the byte offset of the leftmost occurrence of param.Term in
// line[from:] that satisfies the active options, or -1 when the rest of the
// line holds no such occurrence. Absence of a match is not an error.
func Find(param *model.SearchParam, line string, from int) int {
	term := param.Term
	if term == "" || from < 0 {
		return -1
	}

	// наивный проход по кандидатам слева направо, сдвиг всегда на один байт
	for i := from; i+len(term) <= len(line); i++ {
		if !termAt(line, i, term, param.IgnoreCase) {
			continue
		}
		if param.IsolateWords && !isolatedAt(line, i, len(term)) { //-I
			continue
		}
		return i
	}
	return -1
}

func termAt(line string, i int, term string, fold bool) bool {
	for j := 0; j < len(term); j++ {
		a, b := line[i+j], term[j]
		if fold { //-i
			a, b = upperASCII(a), upperASCII(b)
		}
		if a != b {
			return false
		}
	}
	return true
}

// isolatedAt reports whether the match span [i, i+n) stands apart from word
// characters on both sides.
func isolatedAt(line string, i, n int) bool {
	startOK := i == 0 || !wordByte(line[i-1])
	endOK := i+n == len(line) || !wordByte(line[i+n])
	return startOK && endOK
}

// словом считаем ASCII-букву, цифру или подчеркивание
func wordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// upperASCII folds 'a'..'z' only - bytes outside ASCII never fold.
func upperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
