package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/validate"
)

type SearchInput struct {
	Book    string `json:"book" validate:"required"`
	Chapter int    `json:"chapter" validate:"required|min:1"`
}

// ParseSearchInput validates the raw form values of a chapter search. The
// chapter is read as a base-10 whole number, so "08" is 8 and "0x10" is
// rejected; anything else is reported as ErrInvalidChapter.
func ParseSearchInput(book, chapter string) (SearchInput, error) {
	in := SearchInput{Book: strings.TrimSpace(book)}
	if in.Book == "" {
		return in, ErrInvalidBook
	}

	n, err := strconv.Atoi(strings.TrimSpace(chapter))
	if err != nil {
		return in, fmt.Errorf("%w: %q", ErrInvalidChapter, chapter)
	}
	in.Chapter = n

	v := validate.Struct(&in)
	if !v.Validate() {
		return in, fmt.Errorf("%w: %s", ErrInvalidChapter, v.Errors.One())
	}
	return in, nil
}
