package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/cmmoran/emmetcpp/internal/fault"
	"github.com/cmmoran/emmetcpp/internal/model"
)

// accessors resolves the getter/setter prefix of an attribute set with a
// fixed two character lookahead:
//
//	<digit>...        no accessors
//	g<digit>...       getter
//	s<digit>...       setter
//	?<digit>...       none, any other single character
//	??<digit>...      getter and setter, any two characters
//
// The lookahead counts characters, not bytes. When none of the patterns
// match, the set has no accessors.
func accessors(set string) (getter, setter bool, err error) {
	first, n := utf8.DecodeRuneInString(set)
	if isDigitRune(first) {
		return false, false, nil
	}
	rest := set[n:]
	if rest == "" {
		return false, false, fault.Grammarf("attribute set %q has no count", set)
	}
	second, n := utf8.DecodeRuneInString(rest)
	if isDigitRune(second) {
		return first == 'g', first == 's', nil
	}
	rest = rest[n:]
	if rest == "" {
		return false, false, fault.Grammarf("attribute set %q has no count", set)
	}
	third, _ := utf8.DecodeRuneInString(rest)
	if isDigitRune(third) {
		return true, true, nil
	}
	return false, false, nil
}

func isDigitRune(r rune) bool {
	return '0' <= r && r <= '9'
}

// MaxAttributeCount bounds the count of a single count+type group.
const MaxAttributeCount = 4096

// groupStarts returns the offsets of every digit run that begins the set or
// follows a non-digit character.
func groupStarts(set string) []int {
	starts := make([]int, 0, 2)
	for i := 0; i < len(set); i++ {
		if isDigit(set[i]) && (i == 0 || !isDigit(set[i-1])) {
			starts = append(starts, i)
		}
	}
	return starts
}

// parseAttributeSet appends the attributes described by one attribute-set
// segment. Every attribute takes the next value of the parser's sequence counter.
func (p *Parser) parseAttributeSet(set string, attrs []model.Attribute) ([]model.Attribute, error) {
	if set == "" {
		return nil, fault.Grammarf("empty attribute set in %q", p.Description)
	}
	getter, setter, err := accessors(set)
	if err != nil {
		return nil, err
	}

	starts := groupStarts(set)
	if len(starts) == 0 {
		return nil, fault.Grammarf("attribute set %q has no count", set)
	}

	for i, start := range starts {
		countEnd := start
		for countEnd < len(set) && isDigit(set[countEnd]) {
			countEnd++
		}
		typeEnd := len(set)
		if i+1 < len(starts) {
			typeEnd = starts[i+1]
		}

		count, err := strconv.Atoi(set[start:countEnd])
		if err != nil {
			return nil, fault.Grammarf("attribute count %q in %q is not a valid number", set[start:countEnd], set)
		}
		if count > MaxAttributeCount {
			return nil, fault.Grammarf("attribute count %d in %q exceeds the limit of %d", count, set, MaxAttributeCount)
		}
		typ := set[countEnd:typeEnd]
		if typ == "" {
			return nil, fault.Grammarf("attribute count %d in %q has no type", count, set)
		}

		for j := 0; j < count; j++ {
			attrs = append(attrs, model.Attribute{
				Type:   typ,
				Getter: getter,
				Setter: setter,
				Index:  p.nextIndex,
			})
			p.nextIndex++
		}
	}

	return attrs, nil
}
