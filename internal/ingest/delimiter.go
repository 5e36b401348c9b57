package ingest

import (
	"strings"
	"unicode"
)

// delimiterSampleSize bounds how much of the file the detectors inspect.
const delimiterSampleSize = 1024

// DefaultDelimiter is the fallback when no detector succeeds. The accounting
// system exports use semicolons almost exclusively.
const DefaultDelimiter = ';'

// delimiterDetector is one strategy of the ordered detection chain.
type delimiterDetector struct {
	name   string
	detect func(sample string) (rune, bool)
}

// delimiterDetectors are tried in priority order. The sniffer goes first and
// the simple presence checks mirror the historical `;`, `,`, tab priority.
var delimiterDetectors = []delimiterDetector{
	{name: "sniff", detect: sniffDelimiter},
	{name: "semicolon", detect: presenceDetector(';')},
	{name: "comma", detect: presenceDetector(',')},
	{name: "tab", detect: presenceDetector('\t')},
}

// DetectDelimiter guesses the field delimiter of a delimited text file from
// its first kilobyte. It never fails: when every strategy declines, the
// default semicolon is returned.
func DetectDelimiter(text string) rune {
	sample := text
	if len(sample) > delimiterSampleSize {
		sample = sample[:delimiterSampleSize]
	}
	for _, d := range delimiterDetectors {
		r, ok := d.detect(sample)
		if !ok {
			continue
		}
		// An alphanumeric "delimiter" is a sniffing artifact, not a real one.
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return r
	}
	return DefaultDelimiter
}

// sniffCandidates are the separators the sniffer considers, most likely first.
var sniffCandidates = []rune{';', ',', '\t', '|'}

// sniffDelimiter looks for a candidate that appears a consistent, non-zero
// number of times on every sampled line.
func sniffDelimiter(sample string) (rune, bool) {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return 0, false
	}
	for _, cand := range sniffCandidates {
		count := strings.Count(lines[0], string(cand))
		if count == 0 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if strings.Count(line, string(cand)) != count {
				consistent = false
				break
			}
		}
		if consistent {
			return cand, true
		}
	}
	return 0, false
}

func presenceDetector(r rune) func(string) (rune, bool) {
	return func(sample string) (rune, bool) {
		if strings.ContainsRune(sample, r) {
			return r, true
		}
		return 0, false
	}
}

// sampleLines returns the complete non-empty lines of the sample, dropping a
// trailing fragment that may have been cut by the sample boundary.
func sampleLines(sample string) []string {
	raw := strings.Split(sample, "\n")
	if len(raw) > 1 && !strings.HasSuffix(sample, "\n") {
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
