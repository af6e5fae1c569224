package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IntentKind names a user or system action.
type IntentKind string

const (
	IntentGoToCategories IntentKind = "categories"
	IntentSelectCategory IntentKind = "select"
	IntentSelectItem     IntentKind = "item"
	IntentBack           IntentKind = "back"
	IntentGoHome         IntentKind = "home"
	IntentSystemBack     IntentKind = "system-back"
)

// ErrInvalidIntent is returned by ParseIntent for unrecognized input.
var ErrInvalidIntent = errors.New("invalid intent")

// Intent is a single action submitted to the state machine. Category is
// used by SelectCategory, LocationID by SelectItem.
type Intent struct {
	Kind       IntentKind
	Category   string
	LocationID int
}

func GoToCategories() Intent { return Intent{Kind: IntentGoToCategories} }
func Back() Intent           { return Intent{Kind: IntentBack} }
func GoHome() Intent         { return Intent{Kind: IntentGoHome} }
func SystemBack() Intent     { return Intent{Kind: IntentSystemBack} }

func SelectCategory(category string) Intent {
	return Intent{Kind: IntentSelectCategory, Category: category}
}

func SelectItem(id int) Intent {
	return Intent{Kind: IntentSelectItem, LocationID: id}
}

// String renders the intent in the form ParseIntent accepts.
func (i Intent) String() string {
	switch i.Kind {
	case IntentSelectCategory:
		return string(i.Kind) + ":" + i.Category
	case IntentSelectItem:
		return string(i.Kind) + ":" + strconv.Itoa(i.LocationID)
	default:
		return string(i.Kind)
	}
}

// ParseIntent reads the textual form used by the walk command:
// "categories", "select:<category>", "item:<id>", "back", "home",
// "system-back".
func ParseIntent(s string) (Intent, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch IntentKind(strings.ToLower(name)) {
	case IntentGoToCategories:
		if !hasArg {
			return GoToCategories(), nil
		}
	case IntentBack:
		if !hasArg {
			return Back(), nil
		}
	case IntentGoHome:
		if !hasArg {
			return GoHome(), nil
		}
	case IntentSystemBack:
		if !hasArg {
			return SystemBack(), nil
		}
	case IntentSelectCategory:
		if hasArg && arg != "" {
			return SelectCategory(arg), nil
		}
	case IntentSelectItem:
		if hasArg {
			id, err := strconv.Atoi(arg)
			if err == nil {
				return SelectItem(id), nil
			}
		}
	}
	return Intent{}, fmt.Errorf("%w: %q", ErrInvalidIntent, s)
}
