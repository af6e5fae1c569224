package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/explore/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// encodeStack joins screen routes one per line, bottom first.
func encodeStack(stack []domain.Screen) string {
	routes := make([]string, len(stack))
	for i, s := range stack {
		routes[i] = s.Route()
	}
	return strings.Join(routes, "\n")
}

func decodeStack(raw string) ([]domain.Screen, error) {
	if raw == "" {
		return nil, nil
	}
	lines := strings.Split(raw, "\n")
	stack := make([]domain.Screen, 0, len(lines))
	for _, line := range lines {
		s, err := domain.ParseRoute(line)
		if err != nil {
			return nil, fmt.Errorf("decoding stack: %w", err)
		}
		stack = append(stack, s)
	}
	return stack, nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
