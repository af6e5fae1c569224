package cli

import (
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/spf13/pflag"
)

// routeFlag is a --start/--from flag value parsed with domain.ParseRoute.
// The zero value means "not set".
type routeFlag struct {
	screen domain.Screen
}

var _ pflag.Value = (*routeFlag)(nil)

func (f *routeFlag) String() string {
	if f.screen.Kind == "" {
		return ""
	}
	return f.screen.Route()
}

func (f *routeFlag) Set(s string) error {
	sc, err := domain.ParseRoute(s)
	if err != nil {
		return err
	}
	f.screen = sc
	return nil
}

func (f *routeFlag) Type() string { return "route" }
