package namefile

import "regexp"

// Grammar fragments, composed left to right. Each block after the stem is
// introduced by its separator and is optional; a non-participating group
// decodes to absent, never to the empty string.
const (
	stemFragment    = `^(?P<stem>\w+)`
	tagsFragment    = `(?:-(?P<tags>[\w-]+))?`
	dateFragment    = `(?:\.(?P<date>\d{8}))?`
	versionFragment = `(?:\.(?P<version>[\w.]+))?`
	suffixFragment  = `\.(?P<suffix>\w*[a-zA-Z])$`
)

// validStemRE and validTagRE check a single already-sanitized value.
// validSuffixRE additionally requires the trailing letter that separates a
// suffix from a version segment.
var (
	validStemRE   = regexp.MustCompile(`^\w+$`)
	validTagRE    = regexp.MustCompile(`^\w+$`)
	validSuffixRE = regexp.MustCompile(`^\w*[a-zA-Z]$`)
)

// filePattern and dirPattern are the two whole-name grammars. Parse tries
// filePattern first: the ends-in-letter suffix group is what distinguishes
// a trailing suffix from a trailing version, so a name like "stem.1.0.txt"
// must be claimed by the file grammar before the directory grammar can
// swallow ".txt" into its version block. Swapping the order breaks
// round-tripping for any name carrying both version and suffix.
var (
	filePattern = regexp.MustCompile(stemFragment + tagsFragment + dateFragment + versionFragment + suffixFragment)
	dirPattern  = regexp.MustCompile(stemFragment + tagsFragment + dateFragment + versionFragment + `$`)
)

// rawName holds the capture groups of a matched name before normalization.
// Every group's grammar requires at least one character, so the empty
// string unambiguously means the group did not participate.
type rawName struct {
	stem    string
	tags    string // hyphen-joined run; split on "-" during decode
	date    string
	version string
	suffix  string // empty for directory names
}

// matchName matches name against the file grammar, then the directory
// grammar. It reports false when neither matches.
func matchName(name string) (rawName, bool) {
	for _, pattern := range []*regexp.Regexp{filePattern, dirPattern} {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		var raw rawName
		for i, group := range pattern.SubexpNames() {
			switch group {
			case "stem":
				raw.stem = m[i]
			case "tags":
				raw.tags = m[i]
			case "date":
				raw.date = m[i]
			case "version":
				raw.version = m[i]
			case "suffix":
				raw.suffix = m[i]
			}
		}
		return raw, true
	}
	return rawName{}, false
}
