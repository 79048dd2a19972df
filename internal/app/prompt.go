package app

import (
	"strconv"
	"strings"
)

type RequestKind int

const (
	AskInput RequestKind = iota
	AskConfirm
)

// Field is one text input of an input request.
type Field struct {
	Key         string
	Label       string
	Value       string // prefilled value
	Placeholder string
}

// Request asks the user for input or for confirmation of a destructive
// action.
type Request struct {
	Kind        RequestKind
	Title       string
	Description string
	Fields      []Field
}

// Answer is delivered once per request. OK is false when the user cancelled
// or declined; handlers abort without mutating anything in that case.
type Answer struct {
	OK     bool
	Values map[string]string
}

// Text returns the trimmed value of the named field.
func (a Answer) Text(key string) string {
	return strings.TrimSpace(a.Values[key])
}

// Int parses the named field as a whole number.
func (a Answer) Int(key string) (int, bool) {
	n, err := strconv.Atoi(a.Text(key))
	return n, err == nil
}

// Prompter gathers input without blocking the caller. The handler resumes
// in answer, which the implementation calls exactly once.
type Prompter interface {
	Ask(req Request, answer func(Answer))
}

func inputRequest(title string, fields ...Field) Request {
	return Request{Kind: AskInput, Title: title, Fields: fields}
}

func confirmRequest(title, description string) Request {
	return Request{Kind: AskConfirm, Title: title, Description: description}
}

// ask sends req and calls fn only when the user accepted it.
func ask(p Prompter, req Request, fn func(Answer)) {
	p.Ask(req, func(a Answer) {
		if a.OK {
			fn(a)
		}
	})
}
