// Package namefile is a bidirectional codec between a structured
// file/directory descriptor and a single string name.
//
// A Descriptor holds a base name ("stem"), an optional sorted set of tags,
// an optional calendar date, an optional version, and an optional suffix.
// A descriptor without a suffix denotes a directory name rather than a file
// name. Name encodes a descriptor into its canonical string form:
//
//	stem[-tag1-tag2...][.YYYYMMDD][.version][.suffix]
//
// and Parse decodes such a string back into a descriptor. The two are
// mutual near-inverses: Parse(d.Name()) is equal to d for every valid
// descriptor d, and Parse(s).Name() == s for every s produced by Name.
//
// Descriptors are immutable values: all sanitization, normalization and
// validation happens in New (or Parse), and construction is all-or-nothing.
// The codec never touches the filesystem; it operates on strings only.
package namefile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eykd/namefile-go/internal/version"
)

// invalidStemChars are replaced with underscores during sanitization. They
// are exactly the characters that collide with the grammar's separators
// (plus the path separator and space, which never survive into a name).
const invalidStemChars = ".- /"

// SanitizeStem replaces each grammar-conflicting character in stem with an
// underscore. Sanitization is idempotent. The error wraps ErrEmptyStem
// when the input is empty.
func SanitizeStem(stem string) (string, error) {
	for _, c := range invalidStemChars {
		stem = strings.ReplaceAll(stem, string(c), "_")
	}
	if stem == "" {
		return "", ErrEmptyStem
	}
	return stem, nil
}

// Descriptor is the immutable value holding the five name components.
// The zero value is not a valid descriptor; use New or Parse.
type Descriptor struct {
	stem    string
	suffix  string // empty means directory name
	tags    []string
	date    Date
	hasDate bool
	version *version.Version
}

// dateKind distinguishes the accepted date input shapes.
type dateKind int

const (
	dateAbsent dateKind = iota
	dateToday
	dateExplicit
)

// input collects option values before normalization runs.
type input struct {
	suffix      string
	tags        []string
	dateKind    dateKind
	date        Date
	versionText string
	hasText     bool
	version     *version.Version
}

// Option configures one optional descriptor field for New.
type Option func(*input)

// WithSuffix sets the suffix, marking the name as a file name. The empty
// string is equivalent to omitting the option.
func WithSuffix(suffix string) Option {
	return func(in *input) { in.suffix = suffix }
}

// WithTags appends tags. Input order is irrelevant; tags are sanitized,
// deduplicated and stored in ascending sort order. Empty strings are
// treated as "no tag" and never error.
func WithTags(tags ...string) Option {
	return func(in *input) { in.tags = append(in.tags, tags...) }
}

// WithDate sets an explicit calendar date.
func WithDate(d Date) Option {
	return func(in *input) {
		in.dateKind = dateExplicit
		in.date = d
	}
}

// WithDateTime sets the date from a date-time value, truncated to its date
// component.
func WithDateTime(t time.Time) Option {
	return func(in *input) {
		in.dateKind = dateExplicit
		in.date = DateOf(t)
	}
}

// WithToday stamps the descriptor with the current date, read from the
// system clock at construction time.
func WithToday() Option {
	return func(in *input) { in.dateKind = dateToday }
}

// WithVersion sets the version from text, parsed against the accepted
// grammar during construction. Legacy forms make New fail with
// ErrUnsupportedVersion.
func WithVersion(text string) Option {
	return func(in *input) {
		in.versionText = text
		in.hasText = true
	}
}

// WithParsedVersion sets an already-parsed version, passed through
// unchanged.
func WithParsedVersion(v version.Version) Option {
	return func(in *input) { in.version = &v }
}

// New constructs a validated Descriptor. Normalization runs field by field
// and fails fast: stem, then suffix, tags, version, date. The returned
// error wraps the matching sentinel and names the offending value.
func New(stem string, opts ...Option) (Descriptor, error) {
	var in input
	for _, opt := range opts {
		opt(&in)
	}

	var d Descriptor
	var err error
	if d.stem, err = processStem(stem); err != nil {
		return Descriptor{}, err
	}
	if d.suffix, err = processSuffix(in.suffix); err != nil {
		return Descriptor{}, err
	}
	if d.tags, err = processTags(in.tags); err != nil {
		return Descriptor{}, err
	}
	if d.version, err = processVersion(&in); err != nil {
		return Descriptor{}, err
	}
	if d.date, d.hasDate, err = processDate(&in); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

func processStem(stem string) (string, error) {
	s, err := SanitizeStem(stem)
	if err != nil {
		return "", err
	}
	if !validStemRE.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStem, s)
	}
	return s, nil
}

func processSuffix(suffix string) (string, error) {
	if suffix == "" {
		return "", nil
	}
	if !validSuffixRE.MatchString(suffix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSuffix, suffix)
	}
	return suffix, nil
}

func processTags(tags []string) ([]string, error) {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		s, err := SanitizeStem(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
		if !validTagRE.MatchString(s) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, s)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

func processVersion(in *input) (*version.Version, error) {
	if in.hasText {
		v, err := version.Parse(in.versionText)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return in.version, nil
}

func processDate(in *input) (Date, bool, error) {
	switch in.dateKind {
	case dateToday:
		return Today(), true, nil
	case dateExplicit:
		if !in.date.valid() {
			return Date{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, in.date.String())
		}
		return in.date, true, nil
	default:
		return Date{}, false, nil
	}
}

// Parse decodes a name produced by (or conforming to) the name grammar.
// The file-name grammar is tried before the directory-name grammar; see
// the pattern documentation in schema.go for why that order is required.
// Strings matching neither grammar fail with ErrInvalidName.
func Parse(name string) (Descriptor, error) {
	raw, ok := matchName(name)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	opts := make([]Option, 0, 4)
	if raw.suffix != "" {
		opts = append(opts, WithSuffix(raw.suffix))
	}
	if raw.tags != "" {
		opts = append(opts, WithTags(strings.Split(raw.tags, "-")...))
	}
	if raw.date != "" {
		d, err := ParseDate(raw.date)
		if err != nil {
			return Descriptor{}, err
		}
		opts = append(opts, WithDate(d))
	}
	if raw.version != "" {
		opts = append(opts, WithVersion(raw.version))
	}
	return New(raw.stem, opts...)
}

// Name encodes the descriptor into its canonical string form. It is a pure
// function of the normalized fields and cannot fail.
func (d Descriptor) Name() string {
	var b strings.Builder
	b.WriteString(d.stem)
	for _, tag := range d.tags {
		b.WriteByte('-')
		b.WriteString(tag)
	}
	if d.hasDate {
		b.WriteByte('.')
		b.WriteString(d.date.String())
	}
	if d.version != nil {
		b.WriteByte('.')
		b.WriteString(d.version.String())
	}
	if d.suffix != "" {
		b.WriteByte('.')
		b.WriteString(d.suffix)
	}
	return b.String()
}

// String is an alias for Name.
func (d Descriptor) String() string {
	return d.Name()
}

// Stem returns the sanitized stem.
func (d Descriptor) Stem() string {
	return d.stem
}

// Suffix returns the suffix and whether one is present.
func (d Descriptor) Suffix() (string, bool) {
	return d.suffix, d.suffix != ""
}

// Tags returns a copy of the sorted tag set.
func (d Descriptor) Tags() []string {
	out := make([]string, len(d.tags))
	copy(out, d.tags)
	return out
}

// Date returns the date and whether one is present.
func (d Descriptor) Date() (Date, bool) {
	return d.date, d.hasDate
}

// Version returns the parsed version and whether one is present.
func (d Descriptor) Version() (version.Version, bool) {
	if d.version == nil {
		return version.Version{}, false
	}
	return *d.version, true
}

// IsFile reports whether the descriptor denotes a file name.
func (d Descriptor) IsFile() bool {
	return d.suffix != ""
}

// IsDir reports whether the descriptor denotes a directory name.
func (d Descriptor) IsDir() bool {
	return d.suffix == ""
}

// Equal reports structural equality over the five normalized fields. Tag
// input order and the original textual form of the version are not part of
// equality; versions compare semantically, so "1.0" equals "1.0.0".
func (d Descriptor) Equal(o Descriptor) bool {
	if d.stem != o.stem || d.suffix != o.suffix || d.hasDate != o.hasDate {
		return false
	}
	if d.hasDate && d.date != o.date {
		return false
	}
	if len(d.tags) != len(o.tags) {
		return false
	}
	for i := range d.tags {
		if d.tags[i] != o.tags[i] {
			return false
		}
	}
	switch {
	case d.version == nil && o.version == nil:
		return true
	case d.version == nil || o.version == nil:
		return false
	default:
		return d.version.Equal(*o.version)
	}
}
