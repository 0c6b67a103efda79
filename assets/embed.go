// assets/embed.go
//
// Embedded default word lists.
// These keep the engine usable with zero configuration: when no word-list
// files are provided via the environment, internal/words falls back to the
// lists embedded here.
//
//   - answers.txt: legal secrets (the "possible" pool).
//   - allowed.txt: extra legal guesses; the full allowed pool is
//     answers ∪ allowed.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded secret-word list.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded extra-guess list.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
