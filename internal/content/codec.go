package content

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EncodeDocument converts a container back into the untyped document shape
// the factory consumes. The reverse of Factory.Parse; user progress state is
// not serialized.
func EncodeDocument(c Container) (map[string]any, error) {
	doc := map[string]any{
		"kind": string(c.Kind()),
		"id":   c.ID(),
	}

	switch v := c.(type) {
	case *Title:
		doc["title"] = v.Title()
	case *Text:
		doc["text"] = v.Text()
	case *Video:
		if v.URL() != "" {
			doc["url"] = v.URL()
		}
	case *MultipleChoiceQuiz:
		doc["question"] = v.Question()
		doc["options"] = toAnySlice(v.Options())
		doc["correctAnswerIndices"] = intToAnySlice(v.CorrectIndices())
		doc["allowMultipleAnswers"] = v.AllowMultiple()
		if v.Explanation() != "" {
			doc["explanationText"] = v.Explanation()
		}
	case *ReverseQuiz:
		doc["answer"] = v.Answer()
		doc["questionOptions"] = toAnySlice(v.QuestionOptions())
		doc["correctQuestionIndex"] = v.CorrectIndex()
		if v.Explanation() != "" {
			doc["explanationText"] = v.Explanation()
		}
	case *FillInTheGaps:
		doc["textTemplate"] = v.Template()
		doc["correctWords"] = toAnySlice(v.CorrectWords())
		doc["wordOptions"] = toAnySlice(v.WordOptions())
	case *SortingTask:
		doc["instructions"] = v.Instructions()
		doc["correctOrder"] = toAnySlice(v.CorrectOrder())
	case *ErrorSpotting:
		doc["instructions"] = v.Instructions()
		doc["items"] = toAnySlice(v.Items())
		doc["errorIndex"] = v.ErrorIndex()
		if v.Explanation() != "" {
			doc["explanationText"] = v.Explanation()
		}
	case *WireConnecting:
		doc["instructions"] = v.Instructions()
		doc["leftItems"] = toAnySlice(v.LeftItems())
		doc["rightItems"] = toAnySlice(v.RightItems())
		matches := make(map[string]any, len(v.CorrectMatches()))
		for left, right := range v.CorrectMatches() {
			matches[strconv.Itoa(left)] = right
		}
		doc["correctMatches"] = matches
	case *Recap:
		if v.Title() != "" {
			doc["recapTitle"] = v.Title()
		}
		if v.Wrapped() != nil {
			inner, err := EncodeDocument(v.Wrapped())
			if err != nil {
				return nil, fmt.Errorf("wrappedContainer: %w", err)
			}
			doc["wrappedContainer"] = inner
		}
	default:
		return nil, fmt.Errorf("cannot encode container kind %s (%T)", c.Kind(), c)
	}

	return doc, nil
}

// EncodeJSON serializes a container document to raw JSON.
func EncodeJSON(c Container) ([]byte, error) {
	doc, err := EncodeDocument(c)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// EncodeList serializes an ordered container list to a JSON array of
// documents.
func EncodeList(containers []Container) ([]byte, error) {
	docs := make([]any, len(containers))
	for i, c := range containers {
		doc, err := EncodeDocument(c)
		if err != nil {
			return nil, fmt.Errorf("container %d: %w", i, err)
		}
		docs[i] = doc
	}
	return json.Marshal(docs)
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func intToAnySlice(in []int) []any {
	out := make([]any, len(in))
	for i, n := range in {
		out[i] = n
	}
	return out
}
