package content

// Title is a section heading. Not evaluated.
type Title struct {
	base
	title string
}

// NewTitle creates a title container.
func NewTitle(id int, title string) *Title {
	return &Title{base: base{id: id, kind: KindTitle}, title: title}
}

func (t *Title) Title() string            { return t.title }
func (t *Title) RequiresValidation() bool { return false }
func (t *Title) IsCorrect() bool          { return false }

// Text is a plain body-text block. Not evaluated.
type Text struct {
	base
	text string
}

// NewText creates a text container.
func NewText(id int, text string) *Text {
	return &Text{base: base{id: id, kind: KindText}, text: text}
}

func (t *Text) Text() string             { return t.text }
func (t *Text) RequiresValidation() bool { return false }
func (t *Text) IsCorrect() bool          { return false }

// Video references an external video resource. Not evaluated.
type Video struct {
	base
	url string
}

// NewVideo creates a video container.
func NewVideo(id int, url string) *Video {
	return &Video{base: base{id: id, kind: KindVideo}, url: url}
}

func (v *Video) URL() string              { return v.url }
func (v *Video) RequiresValidation() bool { return false }
func (v *Video) IsCorrect() bool          { return false }
