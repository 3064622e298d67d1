package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Unicode spaces count too: Word puts a no-break space before colons in
	// French typography.
	skillsHeading = regexp.MustCompile(`(?i)skills[\s\p{Z}\x{FEFF}]*:[\s\p{Z}\x{FEFF}]*`)
	leadingNoise  = regexp.MustCompile(`^[^\w]+`)

	defaultSeparators = regexp.MustCompile(`[-•\n]`)
	strictSeparators  = regexp.MustCompile(`[•\n,;]`)

	// A line holding nothing but a short title and a colon, e.g. "References:".
	headingLine = regexp.MustCompile(`(?m)^[ \t]*[A-Z][A-Za-z&/ ]{1,40}:[ \t]*\r?$`)
)

// ParserOptions switches on stricter section handling. The zero value parses
// the way uploads always have: the section runs to end of document and hyphens
// separate items.
type ParserOptions struct {
	// StopAtHeading ends the section at the next heading-shaped line.
	StopAtHeading bool
	// StrictSeparators splits on newline, bullet, comma and semicolon only,
	// keeping hyphenated terms such as "front-end" whole.
	StrictSeparators bool
}

type Parser struct {
	opts ParserOptions
}

func NewParser(opts ParserOptions) *Parser {
	return &Parser{opts: opts}
}

var defaultParser = NewParser(ParserOptions{})

// ParseSkills extracts the skills listed after the first "Skills:" heading.
func ParseSkills(text string) ([]string, error) {
	return defaultParser.Parse(text)
}

// Parse returns the section's entries in order of appearance. A heading with
// nothing usable after it yields an empty, non-nil list.
func (p *Parser) Parse(text string) ([]string, error) {
	loc := skillsHeading.FindStringIndex(text)
	if loc == nil {
		return nil, &Error{Kind: SectionNotFound}
	}
	body := text[loc[1]:]
	if p.opts.StopAtHeading {
		if end := headingLine.FindStringIndex(body); end != nil {
			body = body[:end[0]]
		}
	}

	separators := defaultSeparators
	if p.opts.StrictSeparators {
		separators = strictSeparators
	}

	skills := []string{}
	for _, fragment := range separators.Split(body, -1) {
		skill := strings.TrimSpace(leadingNoise.ReplaceAllString(fragment, ""))
		if utf8.RuneCountInString(skill) <= 1 {
			continue
		}
		skills = append(skills, skill)
	}
	return skills, nil
}
