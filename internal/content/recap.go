package content

// Recap visually re-frames another container as revision content. It owns
// its wrapped container exclusively and delegates every query to it. A Recap
// without a wrapped container is legal and reports no validation required.
type Recap struct {
	base
	title   string
	wrapped Container
}

// DefaultRecapTitle is used when the document carries no recap title.
const DefaultRecapTitle = "Recap"

// NewRecap creates a recap container. The wrapped container may be set later.
func NewRecap(id int, title string) *Recap {
	if title == "" {
		title = DefaultRecapTitle
	}
	return &Recap{base: base{id: id, kind: KindRecap}, title: title}
}

func (r *Recap) Title() string      { return r.title }
func (r *Recap) Wrapped() Container { return r.wrapped }

// SetWrapped hands ownership of c to the recap.
func (r *Recap) SetWrapped(c Container) { r.wrapped = c }

func (r *Recap) RequiresValidation() bool {
	if r.wrapped == nil {
		return false
	}
	return r.wrapped.RequiresValidation()
}

func (r *Recap) IsCorrect() bool {
	if r.wrapped == nil {
		return false
	}
	return r.wrapped.IsCorrect()
}
