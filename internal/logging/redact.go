package logging

import (
	"regexp"
	"strings"
)

const Mask = "*****"

var (
	// Matches a "password" key at any escaping depth, so bodies embedded as
	// strings inside the payload are masked as well. Group 1 is the run of
	// backslashes that escapes quotes at that depth.
	jsonPasswordKey = regexp.MustCompile(`(?i)(\\*)"(password)(\\*)"\s*:\s*`)
	formPassword    = regexp.MustCompile(`(?i)(password)\s*=\s*[^&\s"\\]*`)
)

// Redact masks password values in a serialized payload. JSON values are
// replaced with a masked string whether they were strings or bare scalars.
func Redact(payload string) string {
	payload = redactJSON(payload)
	return formPassword.ReplaceAllString(payload, `${1}=`+Mask)
}

func redactJSON(payload string) string {
	matches := jsonPasswordKey.FindAllStringSubmatchIndex(payload, -1)
	if matches == nil {
		return payload
	}

	var b strings.Builder
	b.Grow(len(payload))
	last := 0
	for _, m := range matches {
		if m[0] < last {
			// key sits inside a value that was already masked
			continue
		}
		escape := payload[m[2]:m[3]]
		end, ok := valueEnd(payload, m[1], len(escape))
		if !ok {
			continue
		}

		b.WriteString(payload[last:m[0]])
		b.WriteString(escape + `"` + payload[m[4]:m[5]] + payload[m[6]:m[7]] + `":`)
		b.WriteString(escape + `"` + Mask + escape + `"`)
		last = end
	}
	b.WriteString(payload[last:])
	return b.String()
}

// valueEnd returns the index just past the value starting at i, where quotes
// delimiting strings at this depth are preceded by k backslashes. An
// unterminated string runs to the end of the payload.
func valueEnd(s string, i, k int) (int, bool) {
	open := strings.Repeat(`\`, k) + `"`
	if !strings.HasPrefix(s[i:], open) {
		j := i
		for j < len(s) && !strings.ContainsRune(",}] \t\r\n\\\"", rune(s[j])) {
			j++
		}
		return j, j > i
	}

	// One level deeper every backslash doubles, so a closing quote is
	// preceded by k backslashes plus a multiple of 2(k+1).
	period := 2 * (k + 1)
	run := 0
	for j := i + len(open); j < len(s); j++ {
		switch s[j] {
		case '\\':
			run++
		case '"':
			if run%period == k {
				return j + 1, true
			}
			run = 0
		default:
			run = 0
		}
	}
	return len(s), true
}
