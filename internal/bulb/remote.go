package bulb

import "strings"

// Remote is the protocol configuration of one remote type.
type Remote struct {
	// Name is the remote type as used in topics and configuration.
	Name string
	// NumGroups is the highest group id the remote can address.
	NumGroups uint8
}

//nolint:gochecknoglobals // Static protocol table.
var remotes = map[string]*Remote{
	"rgbw":    {Name: "rgbw", NumGroups: 4},
	"cct":     {Name: "cct", NumGroups: 4},
	"rgb_cct": {Name: "rgb_cct", NumGroups: 4},
	"rgb":     {Name: "rgb", NumGroups: 0},
	"fut089":  {Name: "fut089", NumGroups: 8},
	"fut091":  {Name: "fut091", NumGroups: 4},
	"fut020":  {Name: "fut020", NumGroups: 0},
}

// LookupRemote resolves the protocol configuration for a remote type.
func LookupRemote(name string) (*Remote, bool) {
	r, ok := remotes[strings.ToLower(strings.TrimSpace(name))]

	return r, ok
}
