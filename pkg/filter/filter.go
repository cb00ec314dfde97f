// Package filter selects packages with Tengo boolean expressions such as
//
//	kind == "SdkPlatformPackage" && apiLevel >= 31
//
// Each package is exposed to the expression through the variables listed in
// Variables.
package filter

import (
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
)

const resultVar = "matched__"

// Variables lists the names bound for every package, in declaration order.
var Variables = []string{
	"kind", "path", "revision", "displayText", "description", "state",
	"installed", "valid", "location", "extension", "apiLevel", "abi",
}

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expr     string
	compiled *tengo.Compiled
	mutex    sync.Mutex
}

// Compile parses expr. The "text" and "math" modules may be imported.
func Compile(expr string) (*Filter, error) {
	script := tengo.NewScript([]byte(resultVar + " := (" + expr + ")"))
	script.SetImports(stdlib.GetModuleMap("text", "math"))

	for name, value := range bindings(sdk.View{}) {
		if err := script.Add(name, value); err != nil {
			return nil, errors.Wrapf(errors.ErrFilterCompile, "%s: %v", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFilterCompile, "%q: %v", expr, err)
	}

	return &Filter{expr: expr, compiled: compiled}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the expression against p.
func (f *Filter) Match(p sdk.Package) (bool, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	for name, value := range bindings(sdk.NewView(p)) {
		if err := f.compiled.Set(name, value); err != nil {
			return false, errors.Wrapf(errors.ErrFilterRun, "%s: %v", name, err)
		}
	}

	if err := f.compiled.Run(); err != nil {
		return false, errors.Wrapf(errors.ErrFilterRun, "%s: %v", p.SdkStylePath(), err)
	}

	matched, ok := f.compiled.Get(resultVar).Value().(bool)
	if !ok {
		return false, errors.Wrapf(errors.ErrFilterResult, "%q", f.expr)
	}
	return matched, nil
}

// Apply keeps the packages p for which the expression holds.
func (f *Filter) Apply(packages []sdk.Package) ([]sdk.Package, error) {
	result := make([]sdk.Package, 0, len(packages))
	for _, p := range packages {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func bindings(v sdk.View) map[string]interface{} {
	apiLevel := sdk.UnknownAPILevel
	if v.APILevel != nil {
		apiLevel = *v.APILevel
	}

	return map[string]interface{}{
		"kind":        v.Kind,
		"path":        v.SdkStylePath,
		"revision":    v.Revision,
		"displayText": v.DisplayText,
		"description": v.Description,
		"state":       v.State,
		"installed":   v.State == sdk.StateInstalled.String(),
		"valid":       v.Valid,
		"location":    v.InstalledLocation,
		"extension":   v.Extension,
		"apiLevel":    apiLevel,
		"abi":         v.ABI,
	}
}
