package suite

import (
	"embed"
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
)

//go:embed suites/*.cue
var builtin embed.FS

// CompileError reports a problem in a suite definition, with the CUE
// position when one is available.
type CompileError struct {
	File    string
	Field   string
	Message string
	Pos     token.Pos
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Message)
}

// Builtin compiles and validates the embedded suite definitions, in
// filename order.
func Builtin() ([]Spec, error) {
	entries, err := builtin.ReadDir("suites")
	if err != nil {
		return nil, fmt.Errorf("reading embedded suites: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	specs := make([]Spec, 0, len(names))
	for _, name := range names {
		src, err := builtin.ReadFile("suites/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded suite %s: %w", name, err)
		}
		spec, err := Compile(name, src)
		if err != nil {
			return nil, err
		}
		specs = append(specs, *spec)
	}
	return specs, nil
}

// Compile parses one CUE suite definition. The file must define a top-level
// `suite` struct; fields are read individually so errors carry positions.
func Compile(filename string, src []byte) (*Spec, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling %s: %w", filename, err)
	}

	sv := v.LookupPath(cue.ParsePath("suite"))
	if !sv.Exists() {
		return nil, &CompileError{File: filename, Field: "suite", Message: "top-level suite struct is required", Pos: v.Pos()}
	}

	spec := &Spec{}
	var err error
	if spec.Name, err = stringField(sv, filename, "name"); err != nil {
		return nil, err
	}
	if spec.Lane, err = stringField(sv, filename, "lane"); err != nil {
		return nil, err
	}
	family, err := stringField(sv, filename, "family")
	if err != nil {
		return nil, err
	}
	spec.Family = Family(family)
	if spec.MaxFinite, err = stringField(sv, filename, "max_finite"); err != nil {
		return nil, err
	}

	if spec.UnaryOps, err = stringListField(sv, filename, "unary_ops"); err != nil {
		return nil, err
	}
	if spec.BinaryOps, err = stringListField(sv, filename, "binary_ops"); err != nil {
		return nil, err
	}
	if spec.Floats, err = stringListField(sv, filename, "floats"); err != nil {
		return nil, err
	}
	if spec.Literals, err = stringListField(sv, filename, "literals"); err != nil {
		return nil, err
	}
	if spec.NaNs, err = stringListField(sv, filename, "nans"); err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, &CompileError{File: filename, Field: "suite", Message: err.Error(), Pos: sv.Pos()}
	}
	return spec, nil
}

func stringField(v cue.Value, file, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &CompileError{File: file, Field: field, Message: field + " is required", Pos: v.Pos()}
	}
	s, err := fv.String()
	if err != nil {
		return "", &CompileError{File: file, Field: field, Message: err.Error(), Pos: fv.Pos()}
	}
	return s, nil
}

func stringListField(v cue.Value, file, field string) ([]string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil, nil
	}
	iter, err := fv.List()
	if err != nil {
		return nil, &CompileError{File: file, Field: field, Message: err.Error(), Pos: fv.Pos()}
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{File: file, Field: field, Message: err.Error(), Pos: iter.Value().Pos()}
		}
		out = append(out, s)
	}
	return out, nil
}
