package chat

import "errors"

var (
	ErrEmptyQuestion   = errors.New("question is required")
	ErrQuestionTooLong = errors.New("question is too long")
)

const maxQuestionLength = 4000
