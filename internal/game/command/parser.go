package command

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxRepeat bounds the repeat count accepted by Parse.
const MaxRepeat = 99

// ParseResult holds the command word and repeat count from a line of input.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Count is how many times to run the command; 1 when not given.
	Count int
}

// Parse splits a line such as "k" or "left 3" into a command word and a
// repeat count.
//
// Postcondition: If line is blank, Command is empty and Count is zero.
// Returns an error if the count is not an integer in [1, MaxRepeat] or extra
// words follow it.
func Parse(line string) (ParseResult, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParseResult{}, nil
	}
	res := ParseResult{Command: strings.ToLower(fields[0]), Count: 1}
	switch len(fields) {
	case 1:
		return res, nil
	case 2:
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > MaxRepeat {
			return ParseResult{}, fmt.Errorf("repeat count must be a number from 1 to %d, got %q", MaxRepeat, fields[1])
		}
		res.Count = n
		return res, nil
	default:
		return ParseResult{}, fmt.Errorf("expected a command and an optional count, got %q", line)
	}
}
