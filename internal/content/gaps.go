package content

import (
	"fmt"
	"strings"
)

// gapConvention is the marker numbering style of a fill-in-the-gaps template.
type gapConvention int

const (
	gapSimple   gapConvention = iota // repeated {} markers
	gapZeroBase                      // {0}, {1}, ...
	gapOneBase                       // {1}, {2}, ...
)

// FillInTheGaps is a cloze exercise: a template with gap markers is filled by
// picking words from an option pool. Filling is strictly ordered (a stack of
// append/remove-last), with one escape hatch: ClearGap blanks a single
// position and returns its word to the pool.
type FillInTheGaps struct {
	base
	template     string
	correctWords []string
	wordOptions  []string
	convention   gapConvention

	filled     []string
	clickOrder []int // indices into wordOptions, parallel to fills via FillGapAt
}

// NewFillInTheGaps creates a fill-in-the-gaps container. It fails when the
// template mixes gap marker conventions ({} vs numbered), which would be
// silently misinterpreted at display time.
func NewFillInTheGaps(id int, template string, correctWords, wordOptions []string) (*FillInTheGaps, error) {
	conv, err := detectGapConvention(template)
	if err != nil {
		return nil, err
	}
	return &FillInTheGaps{
		base:         base{id: id, kind: KindFillInTheGaps},
		template:     template,
		correctWords: correctWords,
		wordOptions:  wordOptions,
		convention:   conv,
	}, nil
}

// detectGapConvention classifies the template's markers and rejects mixed
// conventions. A template with no markers at all is legal (zero gaps).
func detectGapConvention(template string) (gapConvention, error) {
	simple := strings.Contains(template, "{}")
	zero := strings.Contains(template, "{0}")
	one := strings.Contains(template, "{1}")

	switch {
	case simple && (zero || one):
		return gapSimple, fmt.Errorf("template mixes {} and numbered gap markers")
	case zero:
		return gapZeroBase, nil
	case one:
		return gapOneBase, nil
	default:
		return gapSimple, nil
	}
}

func (f *FillInTheGaps) Template() string        { return f.template }
func (f *FillInTheGaps) CorrectWords() []string  { return f.correctWords }
func (f *FillInTheGaps) WordOptions() []string   { return f.wordOptions }
func (f *FillInTheGaps) FilledWords() []string   { return f.filled }
func (f *FillInTheGaps) ClickOrder() []int       { return f.clickOrder }
func (f *FillInTheGaps) GapCount() int           { return len(f.correctWords) }
func (f *FillInTheGaps) AllGapsFilled() bool     { return len(f.filled) >= len(f.correctWords) }
func (f *FillInTheGaps) RequiresValidation() bool { return true }

// FillGap places word into the next unfilled gap.
func (f *FillInTheGaps) FillGap(word string) error {
	if len(f.filled) >= len(f.correctWords) {
		return &InvalidMutationError{Op: "fill gap", Detail: "all gaps already filled"}
	}
	f.filled = append(f.filled, word)
	return nil
}

// FillGapAt places the word option at optionIndex into the next unfilled gap
// and records the click order.
func (f *FillInTheGaps) FillGapAt(optionIndex int) error {
	if optionIndex < 0 || optionIndex >= len(f.wordOptions) {
		return invalidIndex("fill gap", optionIndex, len(f.wordOptions))
	}
	if err := f.FillGap(f.wordOptions[optionIndex]); err != nil {
		return err
	}
	f.clickOrder = append(f.clickOrder, optionIndex)
	return nil
}

// RemoveLastWord removes the most recently placed word.
func (f *FillInTheGaps) RemoveLastWord() error {
	if len(f.filled) == 0 {
		return &InvalidMutationError{Op: "remove last word", Detail: "no gaps filled"}
	}
	f.filled = f.filled[:len(f.filled)-1]
	if len(f.clickOrder) > 0 {
		f.clickOrder = f.clickOrder[:len(f.clickOrder)-1]
	}
	return nil
}

// ClearGap blanks the word at gapIndex and returns it to the option pool.
// Later gaps keep their words, so the container is temporarily inconsistent;
// IsCorrect treats a blanked gap as not correct.
func (f *FillInTheGaps) ClearGap(gapIndex int) error {
	if gapIndex < 0 || gapIndex >= len(f.filled) {
		return invalidIndex("clear gap", gapIndex, len(f.filled))
	}
	word := f.filled[gapIndex]
	f.filled[gapIndex] = ""
	if word != "" {
		f.wordOptions = append(f.wordOptions, word)
	}
	return nil
}

// IsCorrect reports whether every gap is filled with its correct word,
// position by position, case-insensitively. Partial or blanked state is not
// correct.
func (f *FillInTheGaps) IsCorrect() bool {
	if len(f.filled) != len(f.correctWords) {
		return false
	}
	for i, want := range f.correctWords {
		if f.filled[i] == "" || !strings.EqualFold(f.filled[i], want) {
			return false
		}
	}
	return true
}

// ClickOrderCorrect reports whether the chips were clicked in the exact order
// that spells out the correct words.
func (f *FillInTheGaps) ClickOrderCorrect() bool {
	if len(f.clickOrder) != len(f.correctWords) {
		return false
	}
	for i, idx := range f.clickOrder {
		if idx < 0 || idx >= len(f.wordOptions) {
			return false
		}
		if !strings.EqualFold(f.wordOptions[idx], f.correctWords[i]) {
			return false
		}
	}
	return true
}

// DisplayText renders the template with filled gaps shown as [word] and
// unfilled gaps shown as placeholder.
func (f *FillInTheGaps) DisplayText(placeholder string) string {
	out := f.template

	if f.convention == gapSimple {
		for _, word := range f.filled {
			repl := placeholder
			if word != "" {
				repl = "[" + word + "]"
			}
			out = strings.Replace(out, "{}", repl, 1)
		}
		return strings.ReplaceAll(out, "{}", placeholder)
	}

	offset := 0
	if f.convention == gapOneBase {
		offset = 1
	}
	for i := range f.correctWords {
		marker := fmt.Sprintf("{%d}", i+offset)
		repl := placeholder
		if i < len(f.filled) && f.filled[i] != "" {
			repl = "[" + f.filled[i] + "]"
		}
		out = strings.ReplaceAll(out, marker, repl)
	}
	return out
}
