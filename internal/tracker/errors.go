package tracker

import "errors"

var (
	ErrInvalidBook          = errors.New("book name is required")
	ErrInvalidChapter       = errors.New("chapter must be a whole number of 1 or more")
	ErrInvalidGoal          = errors.New("daily goal must be 1 or more")
	ErrChapterNotFound      = errors.New("chapter not found")
	ErrChapterUnavailable   = errors.New("chapter service unavailable")
	ErrNoChapterLoaded      = errors.New("no chapter loaded")
	ErrAlreadyMarked        = errors.New("chapter already marked as read")
	ErrConfirmationRequired = errors.New("reset must be confirmed with a valid token")
)

// IsValidation reports whether err was caused by bad user input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidBook) ||
		errors.Is(err, ErrInvalidChapter) ||
		errors.Is(err, ErrInvalidGoal)
}
