package genai

import (
	"regexp"
	"strings"
)

// maxTasks caps how many lines of a response are kept.
const maxTasks = 5

// numericPrefix matches lines the model numbered despite being told
// not to.
var numericPrefix = regexp.MustCompile(`^\d+[.)]?\s*`)

// ParseTaskLines splits a raw model response into usable task titles:
// one per line, trimmed, with blank and numbered lines dropped, keeping
// at most maxTasks in their original order.
func ParseTaskLines(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || numericPrefix.MatchString(line) {
			continue
		}
		titles = append(titles, line)
		if len(titles) == maxTasks {
			break
		}
	}
	return titles
}
