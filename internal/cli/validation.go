package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseID parses a numeric entity ID from a command argument.
// Returns an error with a helpful message for non-numeric input.
func parseID(arg, entityType string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID '%s'. Expected a number, e.g. 'shopfloor %s list' to find it", entityType, arg, entityType)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s ID '%s'. IDs are positive numbers", entityType, arg)
	}
	return id, nil
}
