// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")
	ErrAlreadyVoted     = errors.New("already voted on this question")
	ErrQuestionClosed   = errors.New("question is not open for voting")

	// ErrNoSelection is returned when no choice was submitted at all.
	// It matches ErrChoiceNotFound with errors.Is.
	ErrNoSelection = fmt.Errorf("no choice selected: %w", ErrChoiceNotFound)
)
