// Package version implements the dotted version grammar accepted in
// structured file names.
//
// The grammar covers a numeric release (one or more dot-separated numerals)
// followed by optional pre-release, post-release, and dev-release segments,
// in that order:
//
//	1.0    1.0.0    2.1rc1    1.0.0.post3    0.9.dev2    1.0a1.post2.dev1
//
// Every segment is built from word characters and dots only, so a rendered
// version never collides with the hyphen used as a tag separator in names.
// Anything outside the grammar (hyphens, "+local" build metadata, epoch
// markers, bare words) is a legacy or non-conforming form and is rejected.
//
// Equality and ordering are semantic, not textual: "1.0" equals "1.0.0",
// and within one release value dev-releases sort before pre-releases,
// pre-releases before the final release, and post-releases after it.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnsupported is returned by Parse for any string outside the accepted
// grammar, including legacy forms such as "1.0-dev1".
var ErrUnsupported = errors.New("unsupported version")

var versionRE = regexp.MustCompile(`(?i)^` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?:\.?(?P<prelabel>alpha|beta|preview|pre|rc|a|b|c)(?P<prenum>[0-9]*))?` +
	`(?:\.?(?:post|rev|r)(?P<postnum>[0-9]*))?` +
	`(?:\.?dev(?P<devnum>[0-9]*))?` +
	`$`)

var (
	idxRelease  = versionRE.SubexpIndex("release")
	idxPreLabel = versionRE.SubexpIndex("prelabel")
	idxPreNum   = versionRE.SubexpIndex("prenum")
	idxPostNum  = versionRE.SubexpIndex("postnum")
	idxDevNum   = versionRE.SubexpIndex("devnum")
)

// Version is a parsed, normalized version. The zero value is not a valid
// version; obtain one through Parse or MustParse.
type Version struct {
	release []int
	pre     string // "a", "b" or "rc"; empty when absent
	preNum  int
	post    int // -1 when absent
	dev     int // -1 when absent
}

// Parse parses s against the accepted grammar. The error wraps
// ErrUnsupported and names the offending input.
func Parse(s string) (Version, error) {
	loc := versionRE.FindStringSubmatchIndex(s)
	if loc == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	// group returns the capture text and whether the group participated in
	// the match. A participating-but-empty numeral group means the segment
	// is present with an implicit number of zero ("1.0.dev" == "1.0.dev0").
	group := func(i int) (string, bool) {
		if loc[2*i] < 0 {
			return "", false
		}
		return s[loc[2*i]:loc[2*i+1]], true
	}

	v := Version{post: -1, dev: -1}
	release, _ := group(idxRelease)
	for _, part := range strings.Split(release, ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
		}
		v.release = append(v.release, n)
	}
	if label, ok := group(idxPreLabel); ok {
		num, _ := group(idxPreNum)
		n, err := segmentNum(num)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
		}
		v.pre = canonicalPreLabel(label)
		v.preNum = n
	}
	if num, ok := group(idxPostNum); ok {
		n, err := segmentNum(num)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
		}
		v.post = n
	}
	if num, ok := group(idxDevNum); ok {
		n, err := segmentNum(num)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
		}
		v.dev = n
	}
	return v, nil
}

// MustParse is Parse that panics on error, for static version literals.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// canonicalPreLabel maps the accepted pre-release spellings onto the three
// canonical labels.
func canonicalPreLabel(label string) string {
	switch strings.ToLower(label) {
	case "a", "alpha":
		return "a"
	case "b", "beta":
		return "b"
	default: // c, rc, pre, preview
		return "rc"
	}
}

// segmentNum converts a segment numeral, defaulting an absent numeral to
// zero. Numerals too large for int are an error, matching the release path.
func segmentNum(digits string) (int, error) {
	if digits == "" {
		return 0, nil
	}
	return strconv.Atoi(digits)
}

// String renders the canonical textual form: release numerals as parsed
// (leading zeros dropped), the pre-release attached without a separator,
// post- and dev-releases as ".postN" and ".devN".
func (v Version) String() string {
	var b strings.Builder
	for i, n := range v.release {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(n))
	}
	if v.pre != "" {
		b.WriteString(v.pre)
		b.WriteString(strconv.Itoa(v.preNum))
	}
	if v.post >= 0 {
		b.WriteString(".post")
		b.WriteString(strconv.Itoa(v.post))
	}
	if v.dev >= 0 {
		b.WriteString(".dev")
		b.WriteString(strconv.Itoa(v.dev))
	}
	return b.String()
}

// Compare returns -1, 0 or 1 ordering v against o. Releases compare
// numerically with implicit zero-padding, so 1.0 equals 1.0.0. For equal
// releases the order is dev < pre < final < post, with pre-release labels
// ordering a < b < rc.
func (v Version) Compare(o Version) int {
	if c := compareRelease(v.release, o.release); c != 0 {
		return c
	}
	vRank, vNum := v.preKey()
	oRank, oNum := o.preKey()
	if vRank != oRank {
		return sign(vRank - oRank)
	}
	if vNum != oNum {
		return sign(vNum - oNum)
	}
	if c := sign(v.postKey() - o.postKey()); c != 0 {
		return c
	}
	return sign(v.devKey() - o.devKey())
}

// Equal reports semantic equality, i.e. Compare(o) == 0.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

func compareRelease(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if x != y {
			return sign(x - y)
		}
	}
	return 0
}

// preKey ranks the pre-release segment. A dev-only version sorts below any
// pre-release of the same release; a final release sorts above all of them.
func (v Version) preKey() (rank, num int) {
	switch {
	case v.pre == "a":
		return 1, v.preNum
	case v.pre == "b":
		return 2, v.preNum
	case v.pre == "rc":
		return 3, v.preNum
	case v.post < 0 && v.dev >= 0:
		return 0, 0
	default:
		return 4, 0
	}
}

func (v Version) postKey() int {
	return v.post
}

// devKey sorts versions without a dev segment after those with one.
func (v Version) devKey() int {
	if v.dev < 0 {
		return 1 << 30
	}
	return v.dev
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
