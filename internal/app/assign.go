package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eqscope/eq"
)

// Assign parses "name=value" and stores it in params. Booleans may be
// written as true/false or on/off.
func Assign(params *eq.Parameters, assignment string) error {
	name, raw, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("app: %q is not name=value", assignment)
	}

	id, err := eq.Lookup(name)
	if err != nil {
		return err
	}

	v, err := parseValue(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("app: %s: %w", id, err)
	}

	_, err = params.Set(id, v)

	return err
}

func parseValue(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "true", "on", "yes":
		return 1, nil
	case "false", "off", "no":
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}
