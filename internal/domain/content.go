package domain

import (
	"fmt"

	tlerrors "ticklist/internal/errors"
)

// Kind discriminates the content variants the host shell can hold.
type Kind string

const (
	KindList Kind = "list"
	KindNote Kind = "note"
)

// Note is the payload for KindNote content: free-form markdown.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Content is a tagged variant: exactly one payload is set, matching Kind.
// Dispatch on Kind with an exhaustive switch rather than probing payloads.
type Content struct {
	Kind Kind  `json:"kind"`
	List *List `json:"list,omitempty"`
	Note *Note `json:"note,omitempty"`
}

// ListContent wraps a list as content.
func ListContent(l List) Content {
	return Content{Kind: KindList, List: &l}
}

// NoteContent wraps a note as content.
func NoteContent(n Note) Content {
	return Content{Kind: KindNote, Note: &n}
}

// Validate checks that the payload matches the discriminant.
func (c Content) Validate() error {
	switch c.Kind {
	case KindList:
		if c.List == nil || c.Note != nil {
			return tlerrors.New(tlerrors.CodeUnknownKind, "list content requires exactly a list payload", nil)
		}
		return nil
	case KindNote:
		if c.Note == nil || c.List != nil {
			return tlerrors.New(tlerrors.CodeUnknownKind, "note content requires exactly a note payload", nil)
		}
		return nil
	default:
		return tlerrors.New(tlerrors.CodeUnknownKind, fmt.Sprintf("unknown content kind %q", c.Kind), nil)
	}
}

// Title returns the display title for any content kind.
func (c Content) Title() string {
	switch c.Kind {
	case KindList:
		if c.List != nil {
			return c.List.Title
		}
	case KindNote:
		if c.Note != nil {
			return c.Note.Title
		}
	}
	return ""
}
