package parser

import (
	"strings"

	"github.com/vk/b26c/internal/bast"
)

// argCutset is trimmed from both ends of every argument token.
const argCutset = " \t\n\r"

// ParseEntityLine parses one line into a command and its arguments.
//
// Without a `??` marker the whole line is the command. Otherwise the text
// before the first marker is the command, untouched, and the rest is the
// argument payload: one wrapping pair of parentheses is dropped, the payload is
// split on commas, every token is trimmed and empty tokens are skipped.
// Parentheses inside a token are kept as they are.
func ParseEntityLine(line string) bast.Entity {
	command, payload, found := strings.Cut(line, bast.ArgsMarker)
	if !found {
		return bast.Entity{Command: line}
	}

	if len(payload) >= 2 && payload[0] == '(' && payload[len(payload)-1] == ')' {
		payload = payload[1 : len(payload)-1]
	}

	var args []string
	for _, token := range strings.Split(payload, ",") {
		token = strings.Trim(token, argCutset)
		if token != "" {
			args = append(args, token)
		}
	}
	return bast.Entity{Command: command, Args: args}
}
