package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ScreenKind identifies which of the four tour screens is shown.
type ScreenKind string

const (
	ScreenHome       ScreenKind = "home"
	ScreenCategories ScreenKind = "categories"
	ScreenList       ScreenKind = "list"
	ScreenDetail     ScreenKind = "detail"
)

// ErrInvalidRoute is returned by ParseRoute for strings that name no screen.
var ErrInvalidRoute = errors.New("invalid route")

// Screen is one navigation destination. Category is set for List and
// Detail; LocationID only for Detail. Use the constructors rather than
// building the struct by hand.
type Screen struct {
	Kind       ScreenKind
	Category   string
	LocationID int
}

func HomeScreen() Screen       { return Screen{Kind: ScreenHome} }
func CategoriesScreen() Screen { return Screen{Kind: ScreenCategories} }

func ListScreen(category string) Screen {
	return Screen{Kind: ScreenList, Category: category}
}

func DetailScreen(category string, id int) Screen {
	return Screen{Kind: ScreenDetail, Category: category, LocationID: id}
}

// Route renders the screen as a path: home, categories, list/{category},
// detail/{category}/{id}. Categories are path-escaped.
func (s Screen) Route() string {
	switch s.Kind {
	case ScreenHome:
		return "home"
	case ScreenCategories:
		return "categories"
	case ScreenList:
		return "list/" + url.PathEscape(s.Category)
	case ScreenDetail:
		return fmt.Sprintf("detail/%s/%d", url.PathEscape(s.Category), s.LocationID)
	default:
		return ""
	}
}

func (s Screen) String() string {
	switch s.Kind {
	case ScreenHome:
		return "Home"
	case ScreenCategories:
		return "Categories"
	case ScreenList:
		return fmt.Sprintf("List(%q)", s.Category)
	case ScreenDetail:
		return fmt.Sprintf("Detail(%q, %d)", s.Category, s.LocationID)
	default:
		return "Unknown"
	}
}

// ParseRoute is the inverse of Screen.Route. It checks shape only;
// whether the category or id exists is the catalog's concern.
func ParseRoute(route string) (Screen, error) {
	parts := strings.Split(strings.Trim(route, "/"), "/")
	switch parts[0] {
	case "home":
		if len(parts) == 1 {
			return HomeScreen(), nil
		}
	case "categories":
		if len(parts) == 1 {
			return CategoriesScreen(), nil
		}
	case "list":
		if len(parts) == 2 {
			cat, err := url.PathUnescape(parts[1])
			if err == nil && cat != "" {
				return ListScreen(cat), nil
			}
		}
	case "detail":
		if len(parts) == 3 {
			cat, err := url.PathUnescape(parts[1])
			if err != nil || cat == "" {
				break
			}
			id, err := strconv.Atoi(parts[2])
			if err != nil {
				break
			}
			return DetailScreen(cat, id), nil
		}
	}
	return Screen{}, fmt.Errorf("%w: %q", ErrInvalidRoute, route)
}
