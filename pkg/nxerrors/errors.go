package nxerrors

import (
	"errors"
	"fmt"
)

// Kind identifies the class of an error surfaced by gerbilini.
type Kind string

const (
	// KindMissingEquals 表示键值行缺少 '='。
	KindMissingEquals Kind = "missing_equals"
	// KindExpectedSectionTitle 表示在任何 section 标题之前出现了键值行。
	KindExpectedSectionTitle Kind = "expected_section_title"
	// KindBrokenSectionTitle 表示 '[' 之后没有对应的 ']'。
	KindBrokenSectionTitle Kind = "broken_section_title"
	// KindDuplicateSection 表示 section 名称重复。
	KindDuplicateSection Kind = "duplicate_section"
	// KindDuplicateSectionKey 表示同一 section 内 key 重复。
	KindDuplicateSectionKey Kind = "duplicate_section_key"
	// KindInvalidInput indicates the caller passed an unusable argument.
	KindInvalidInput Kind = "invalid_input"
	// KindRender indicates an export of a parsed document failed.
	KindRender Kind = "render"
)

// Sentinels for errors.Is; an *Error matches the sentinel of its Kind.
var (
	ErrMissingEquals        = &Error{Kind: KindMissingEquals}
	ErrExpectedSectionTitle = &Error{Kind: KindExpectedSectionTitle}
	ErrBrokenSectionTitle   = &Error{Kind: KindBrokenSectionTitle}
	ErrDuplicateSection     = &Error{Kind: KindDuplicateSection}
	ErrDuplicateSectionKey  = &Error{Kind: KindDuplicateSectionKey}
	ErrInvalidInput         = &Error{Kind: KindInvalidInput}
	ErrRender               = &Error{Kind: KindRender}
)

// Error 包装底层错误并附加 Kind 以及出错位置，方便调用方根据类型处理。
// Line 从 1 开始；0 表示与具体行无关。
type Error struct {
	Kind    Kind
	Line    int
	Section string
	Key     string
	Err     error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	var msg string
	switch e.Kind {
	case KindMissingEquals:
		msg = "missing '=' to separate key and value"
	case KindExpectedSectionTitle:
		msg = "expected a section title"
	case KindBrokenSectionTitle:
		msg = "expected ']' to close '['"
	case KindDuplicateSection:
		msg = fmt.Sprintf("duplicate section %q", e.Section)
	case KindDuplicateSectionKey:
		msg = fmt.Sprintf("duplicate key %q in section %q", e.Key, e.Section)
	default:
		if e.Err == nil {
			msg = string(e.Kind)
		} else {
			msg = fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap 允许 errors.Is/As 访问底层错误。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// New 创建指定 Kind 的错误。
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// AtLine creates a line-scoped parse error.
func AtLine(kind Kind, line int) *Error {
	return &Error{Kind: kind, Line: line}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
