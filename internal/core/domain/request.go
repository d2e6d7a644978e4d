package domain

import (
	"net/url"
	"sort"
	"strings"
)

type Param struct {
	Name  string
	Value string
}

// Params holds query parameters in the order they were submitted.
type Params []Param

// ParseParams splits a raw query string keeping parameter order. Pieces that
// fail to unescape are kept verbatim.
func ParseParams(rawQuery string) Params {
	var params Params
	for _, pair := range strings.Split(rawQuery, "&") {
		name, value, _ := strings.Cut(pair, "=")
		if name == "" {
			continue
		}
		params = append(params, Param{Name: unescape(name), Value: unescape(value)})
	}
	return params
}

// ParamsFromMap is used when only an unordered mapping is available; names are sorted.
func ParamsFromMap(m map[string]string) Params {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make(Params, 0, len(names))
	for _, name := range names {
		params = append(params, Param{Name: name, Value: m[name]})
	}
	return params
}

func (p Params) Get(name string) string {
	for _, param := range p {
		if param.Name == name {
			return param.Value
		}
	}
	return ""
}

func (p Params) Values() []string {
	values := make([]string, 0, len(p))
	for _, param := range p {
		values = append(values, param.Value)
	}
	return values
}

func (p Params) Empty() bool {
	return len(p) == 0
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return u
}
