package decl

import "strconv"

// Options are the call-time options of Declarator.Generate.
type Options struct {
	// DepsOnly suppresses registration of the declarator's own primary
	// artifact; everything it depends on is still declared.
	DepsOnly bool
}

// OptionsFromMap converts loosely typed call-time options into Options.
// It recognizes "dependenciesOnly" and the older "depsOnly" key.
// Values of unexpected type are treated as false.
func OptionsFromMap(kw map[string]any) Options {
	var opts Options
	for _, key := range [...]string{"dependenciesOnly", "depsOnly"} {
		if v, ok := kw[key]; ok && truthy(v) {
			opts.DepsOnly = true
		}
	}
	return opts
}

func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	}
	return false
}
