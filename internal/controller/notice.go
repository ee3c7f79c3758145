package controller

import (
	"strings"

	"github.com/curio-app/curio/internal/common"
)

// Level classifies a Notice for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is the single user-visible message produced by a command.
type Notice struct {
	Level Level
	Text  string
}

// Result is what a controller command hands back to the presentation layer:
// at most one notice and an optional route to navigate to.
type Result struct {
	Notice   Notice
	Redirect string
}

func successResult(text string) Result {
	return Result{Notice: Notice{Level: LevelSuccess, Text: text}}
}

func errorResult(err error) Result {
	return Result{Notice: Notice{Level: LevelError, Text: userMessage(err)}}
}

func errorText(text string) Result {
	return Result{Notice: Notice{Level: LevelError, Text: text}}
}

// userMessage strips the machine-matchable sentinel prefix so the text reads
// like a plain sentence.
func userMessage(err error) string {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, common.ErrValidation.Error()+": ")
	return msg
}
