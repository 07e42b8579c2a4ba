package matcher_test

import (
	"testing"

	"github.com/networktomp-dev/search/internal/matcher"
	"github.com/networktomp-dev/search/internal/model"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	cases := []struct {
		name  string
		param model.SearchParam
		line  string
		from  int
		want  int
	}{
		{
			name:  "Positive - match at line start",
			param: model.SearchParam{Term: "Port"},
			line:  "Port 22",
			want:  0,
		},
		{
			name:  "Positive - match in the middle",
			param: model.SearchParam{Term: "Port"},
			line:  "the Port is open",
			want:  4,
		},
		{
			name:  "Positive - term equal to the whole line",
			param: model.SearchParam{Term: "Port"},
			line:  "Port",
			want:  0,
		},
		{
			name:  "Negative - case differs without ignore-case",
			param: model.SearchParam{Term: "port"},
			line:  "Port 22",
			want:  -1,
		},
		{
			name:  "Positive - ignore-case folds lower term to upper line",
			param: model.SearchParam{Term: "port", IgnoreCase: true},
			line:  "PORT forwarding",
			want:  0,
		},
		{
			name:  "Positive - ignore-case folds upper term to lower line",
			param: model.SearchParam{Term: "PORT", IgnoreCase: true},
			line:  "a port",
			want:  2,
		},
		{
			name:  "Positive - ignore-case leaves non-letters alone",
			param: model.SearchParam{Term: "a+b", IgnoreCase: true},
			line:  "A+B",
			want:  0,
		},
		{
			name:  "Negative - ignore-case never folds non-ASCII",
			param: model.SearchParam{Term: "straße", IgnoreCase: true},
			line:  "STRASSE",
			want:  -1,
		},
		{
			name:  "Negative - term longer than line",
			param: model.SearchParam{Term: "Port 22 extra"},
			line:  "Port 22",
			want:  -1,
		},
		{
			name:  "Negative - empty line",
			param: model.SearchParam{Term: "Port"},
			line:  "",
			want:  -1,
		},
		{
			name:  "Negative - empty term",
			param: model.SearchParam{Term: ""},
			line:  "Port 22",
			want:  -1,
		},
		{
			name:  "Positive - isolated word at both ends of the span",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "a Port.",
			want:  2,
		},
		{
			name:  "Negative - word character glued on the left",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "xPort",
			want:  -1,
		},
		{
			name:  "Negative - underscore counts as word character on the left",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "_Port",
			want:  -1,
		},
		{
			name:  "Negative - digit counts as word character on the right",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "Port2",
			want:  -1,
		},
		{
			name:  "Negative - word character glued on the right",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "Portx and more",
			want:  -1,
		},
		{
			name:  "Positive - hash is not a word character",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "#Port 22",
			want:  1,
		},
		{
			name:  "Positive - isolated match at end of line",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "open Port",
			want:  5,
		},
		{
			name:  "Positive - failed isolation keeps scanning rightwards",
			param: model.SearchParam{Term: "Port", IsolateWords: true},
			line:  "xPort Port",
			want:  6,
		},
		{
			name:  "Positive - isolation with ignore-case together",
			param: model.SearchParam{Term: "Port", IgnoreCase: true, IsolateWords: true},
			line:  "PORT forwarding enabled",
			want:  0,
		},
		{
			name:  "Positive - resume from offset finds the next occurrence",
			param: model.SearchParam{Term: "Port"},
			line:  "Port Port",
			from:  1,
			want:  5,
		},
		{
			name:  "Positive - matcher itself allows overlapping candidates",
			param: model.SearchParam{Term: "aa"},
			line:  "aaaa",
			from:  1,
			want:  1,
		},
		{
			name:  "Negative - offset beyond the last possible candidate",
			param: model.SearchParam{Term: "Port"},
			line:  "Port",
			from:  1,
			want:  -1,
		},
		{
			name:  "Negative - offset past end of line",
			param: model.SearchParam{Term: "a"},
			line:  "abc",
			from:  3,
			want:  -1,
		},
		{
			name:  "Negative - negative offset",
			param: model.SearchParam{Term: "a"},
			line:  "abc",
			from:  -1,
			want:  -1,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.Find(&tt.param, tt.line, tt.from)

			require.Equal(t, tt.want, got)
		})
	}
}

// свойство изоляции: вокруг найденного совпадения не должно быть словесных байтов
func TestFindIsolationInvariant(t *testing.T) {
	param := model.SearchParam{Term: "ab", IsolateWords: true}
	lines := []string{"ab", "ab ab", "xab ab", "abx ab", "ab_ab ab", "1ab ab2 ab"}

	for _, line := range lines {
		from := 0
		for {
			at := matcher.Find(&param, line, from)
			if at < 0 {
				break
			}
			if at > 0 {
				require.False(t, isWord(line[at-1]), "line %q: word byte before match at %d", line, at)
			}
			if end := at + len(param.Term); end < len(line) {
				require.False(t, isWord(line[end]), "line %q: word byte after match at %d", line, at)
			}
			from = at + len(param.Term)
		}
	}
}

func isWord(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
