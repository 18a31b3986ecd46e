package content

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxRecapDepth bounds recursive recap nesting. The source document is a
// tree, so no cycle guard is needed, but depth is still capped for safety.
const MaxRecapDepth = 5

// Factory reconstructs typed containers from untyped JSON documents. Each
// produced container receives a strictly increasing id scoped to the
// factory; a single lesson that concatenates containers from several source
// challenges parses them all through one factory so ids stay unique.
type Factory struct {
	nextID int
}

// NewFactory creates a factory whose ids start at 0.
func NewFactory() *Factory { return &Factory{} }

// NewFactoryAt creates a factory whose ids start at startID. Used when a
// caller appends to an already-numbered container list.
func NewFactoryAt(startID int) *Factory { return &Factory{nextID: startID} }

// NextID returns the id the next parsed container will receive.
func (f *Factory) NextID() int { return f.nextID }

// kindAliases maps normalized kind spellings to the canonical Kind. Both
// "MULTIPLE_CHOICE_QUIZ" and "MultipleChoiceQuiz" documents normalize to the
// same entry.
var kindAliases = func() map[string]Kind {
	kinds := []Kind{
		KindTitle, KindText, KindMultipleChoiceQuiz, KindReverseQuiz,
		KindFillInTheGaps, KindSortingTask, KindErrorSpotting,
		KindWireConnecting, KindRecap, KindVideo,
	}
	m := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		m[normalizeKind(string(k))] = k
	}
	return m
}()

func normalizeKind(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "_", "")
}

// ParseJSON parses a single container document from raw JSON.
func (f *Factory) ParseJSON(data []byte) (Container, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode container document: %w", err)
	}
	return f.Parse(doc)
}

// Parse produces exactly one typed container from doc, or fails with
// *MalformedContentError or *UnknownKindError.
func (f *Factory) Parse(doc map[string]any) (Container, error) {
	c, err := f.parse(doc, 0)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ParseList parses an ordered list of container documents. It aborts on the
// first bad entry: a partially loaded lesson would carry silently wrong ids.
func (f *Factory) ParseList(docs []any) ([]Container, error) {
	containers := make([]Container, 0, len(docs))
	for i, raw := range docs {
		doc, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("container %d: expected object, got %T", i, raw)
		}
		c, err := f.Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("container %d: %w", i, err)
		}
		containers = append(containers, c)
	}
	return containers, nil
}

func (f *Factory) parse(doc map[string]any, depth int) (Container, error) {
	rawKind, ok := doc["kind"].(string)
	if !ok {
		// Documents produced by earlier content versions use "type".
		rawKind, ok = doc["type"].(string)
	}
	if !ok || rawKind == "" {
		return nil, &MalformedContentError{Field: "kind", Reason: "missing or not a string"}
	}

	kind, ok := kindAliases[normalizeKind(rawKind)]
	if !ok {
		return nil, &UnknownKindError{Value: rawKind}
	}

	id := f.nextID
	f.nextID++

	p := fieldParser{kind: kind, doc: doc}

	switch kind {
	case KindTitle:
		c := NewTitle(id, p.str("title"))
		return c, p.err
	case KindText:
		c := NewText(id, p.str("text"))
		return c, p.err
	case KindVideo:
		return NewVideo(id, p.optStr("url")), p.err
	case KindMultipleChoiceQuiz:
		c := NewMultipleChoiceQuiz(id,
			p.str("question"),
			p.strSlice("options"),
			p.intSlice("correctAnswerIndices"),
			p.optBool("allowMultipleAnswers"))
		c.SetExplanation(p.optStr("explanationText"))
		return c, p.err
	case KindReverseQuiz:
		c := NewReverseQuiz(id,
			p.str("answer"),
			p.strSlice("questionOptions"),
			p.integer("correctQuestionIndex"))
		c.SetExplanation(p.optStr("explanationText"))
		return c, p.err
	case KindFillInTheGaps:
		template := p.str("textTemplate")
		correct := p.strSlice("correctWords")
		options := p.strSlice("wordOptions")
		if p.err != nil {
			return nil, p.err
		}
		c, err := NewFillInTheGaps(id, template, correct, options)
		if err != nil {
			return nil, &MalformedContentError{Kind: kind, Field: "textTemplate", Reason: err.Error()}
		}
		return c, nil
	case KindSortingTask:
		c := NewSortingTask(id, p.str("instructions"), p.strSlice("correctOrder"))
		return c, p.err
	case KindErrorSpotting:
		c := NewErrorSpotting(id,
			p.str("instructions"),
			p.strSlice("items"),
			p.integer("errorIndex"))
		c.SetExplanation(p.optStr("explanationText"))
		return c, p.err
	case KindWireConnecting:
		c := NewWireConnecting(id,
			p.str("instructions"),
			p.strSlice("leftItems"),
			p.strSlice("rightItems"),
			p.intMap("correctMatches"))
		return c, p.err
	case KindRecap:
		return f.parseRecap(id, p, depth)
	}

	return nil, &UnknownKindError{Value: rawKind}
}

func (f *Factory) parseRecap(id int, p fieldParser, depth int) (Container, error) {
	recap := NewRecap(id, p.optStr("recapTitle"))
	if p.err != nil {
		return nil, p.err
	}

	raw, ok := p.doc["wrappedContainer"]
	if !ok || raw == nil {
		return recap, nil
	}
	inner, ok := raw.(map[string]any)
	if !ok {
		return nil, &MalformedContentError{Kind: KindRecap, Field: "wrappedContainer", Reason: "not an object"}
	}
	if depth+1 >= MaxRecapDepth {
		return nil, &MalformedContentError{
			Kind:   KindRecap,
			Field:  "wrappedContainer",
			Reason: fmt.Sprintf("recap nesting exceeds depth %d", MaxRecapDepth),
		}
	}

	wrapped, err := f.parse(inner, depth+1)
	if err != nil {
		return nil, fmt.Errorf("wrappedContainer: %w", err)
	}
	recap.SetWrapped(wrapped)
	return recap, nil
}

// fieldParser extracts typed fields from an untyped document, remembering
// the first failure so call sites stay linear.
type fieldParser struct {
	kind Kind
	doc  map[string]any
	err  error
}

func (p *fieldParser) fail(field, reason string) {
	if p.err == nil {
		p.err = &MalformedContentError{Kind: p.kind, Field: field, Reason: reason}
	}
}

func (p *fieldParser) str(field string) string {
	v, ok := p.doc[field]
	if !ok {
		p.fail(field, "missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		p.fail(field, fmt.Sprintf("expected string, got %T", v))
		return ""
	}
	return s
}

func (p *fieldParser) optStr(field string) string {
	if v, ok := p.doc[field]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (p *fieldParser) optBool(field string) bool {
	if v, ok := p.doc[field]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func (p *fieldParser) integer(field string) int {
	v, ok := p.doc[field]
	if !ok {
		p.fail(field, "missing")
		return 0
	}
	n, ok := asInt(v)
	if !ok {
		p.fail(field, fmt.Sprintf("expected integer, got %v", v))
		return 0
	}
	return n
}

func (p *fieldParser) strSlice(field string) []string {
	v, ok := p.doc[field]
	if !ok {
		p.fail(field, "missing")
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		p.fail(field, fmt.Sprintf("expected array, got %T", v))
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			p.fail(field, fmt.Sprintf("element %d: expected string, got %T", i, item))
			return nil
		}
		out[i] = s
	}
	return out
}

func (p *fieldParser) intSlice(field string) []int {
	v, ok := p.doc[field]
	if !ok {
		p.fail(field, "missing")
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		p.fail(field, fmt.Sprintf("expected array, got %T", v))
		return nil
	}
	out := make([]int, len(items))
	for i, item := range items {
		n, ok := asInt(item)
		if !ok {
			p.fail(field, fmt.Sprintf("element %d: expected integer, got %v", i, item))
			return nil
		}
		out[i] = n
	}
	return out
}

// intMap parses an object whose keys are base-10 integer strings and whose
// values are integers, e.g. WireConnecting's correctMatches.
func (p *fieldParser) intMap(field string) map[int]int {
	v, ok := p.doc[field]
	if !ok {
		p.fail(field, "missing")
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		p.fail(field, fmt.Sprintf("expected object, got %T", v))
		return nil
	}
	out := make(map[int]int, len(obj))
	for key, val := range obj {
		k, err := strconv.Atoi(key)
		if err != nil {
			p.fail(field, fmt.Sprintf("key %q: not an integer", key))
			return nil
		}
		n, ok := asInt(val)
		if !ok {
			p.fail(field, fmt.Sprintf("key %q: expected integer value, got %v", key, val))
			return nil
		}
		out[k] = n
	}
	return out
}

// asInt accepts the numeric representations encoding/json can produce.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}
