package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern is returned when the search pattern has zero length.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrRegex matches every *RegexError through errors.Is.
	ErrRegex = errors.New("regex error")
	// ErrInvalidSpan is returned when a highlight span breaks its bounds or ordering.
	ErrInvalidSpan = errors.New("invalid span")
)

// RegexError はパターンのコンパイル失敗を表し、コンパイラの診断を保持します。
type RegexError struct {
	Pattern string
	Err     error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("regex error: %v", e.Err)
}

func (e *RegexError) Unwrap() error { return e.Err }

func (e *RegexError) Is(target error) bool { return target == ErrRegex }
