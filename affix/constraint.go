package affix

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
)

// Constraint is a compiled, declarative guard on where an MPRE subword may
// appear in a multi-prefix chain (spec §4.4 Stage 7, §9 design notes).
//
// The original's Hebrew-only rules ("ו may appear only as the first
// prefix"; "a non-ו prefix followed by a single ו in the residual is
// rejected") are hardcoded Go `if subword == "ו"` branches in spec prose.
// §9 explicitly asks for these to become "declarative constraints in the
// affix table" so "the code path becomes language-agnostic; the affix file
// carries the differences". The third rule ("collapse a duplicate leading
// ו") rewrites the residual rather than accepting or rejecting a
// placement, so it is not a Constraint at all — see MPREEntry.
// CollapseDuplicate. This is grounded on the teacher's own use of CEL
// (parser/parserstep6 in the teacher repo compiles a SnapSQL directive's
// condition once and evaluates it per row) for exactly the same shape of
// problem: a small boolean expression supplied as data, evaluated many
// times against a small record of named variables.
//
// Chain-state variables visible to a constraint expression:
//
//	chain_index   int    position of this subword in the chain (0-based)
//	chain_length  int    number of subwords chosen so far, including this one
//	seen          list<string>  subwords already chosen before this one
//	residual      string remaining input after this subword is consumed
type Constraint struct {
	source string
	prg    cel.Program
}

// ChainState is the evaluation context for a Constraint, built fresh for
// each candidate placement of a subword in a Stage 7 chain.
type ChainState struct {
	ChainIndex  int
	ChainLength int
	Seen        []string
	Residual    string
}

func constraintEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("chain_index", cel.IntType),
		cel.Variable("chain_length", cel.IntType),
		cel.Variable("seen", cel.ListType(cel.StringType)),
		cel.Variable("residual", cel.StringType),
	)
}

// NewConstraint compiles a CEL boolean expression into a Constraint. An
// expression must evaluate to a bool; a non-bool result is a compile-time
// error.
func NewConstraint(expr string) (*Constraint, error) {
	env, err := constraintEnv()
	if err != nil {
		return nil, fmt.Errorf("affix: building CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("affix: compiling constraint %q: %w", expr, issues.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("affix: constraint %q must evaluate to bool, got %s", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("affix: building CEL program for %q: %w", expr, err)
	}
	return &Constraint{source: expr, prg: prg}, nil
}

// Allows evaluates the constraint against state, returning true if the
// subword placement is permitted.
func (c *Constraint) Allows(state ChainState) (bool, error) {
	if c == nil {
		return true, nil
	}
	out, _, err := c.prg.Eval(map[string]any{
		"chain_index":  int64(state.ChainIndex),
		"chain_length": int64(state.ChainLength),
		"seen":         state.Seen,
		"residual":     state.Residual,
	})
	if err != nil {
		return false, fmt.Errorf("affix: evaluating constraint %q: %w", c.source, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("affix: constraint %q produced non-bool result %v", c.source, out.Value())
	}
	return b, nil
}

// String returns the original CEL source, for diagnostics.
func (c *Constraint) String() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Common constraint expressions shipped with the Hebrew bundle (see
// testdata/hebrew.affix.yaml): expressed as data, not Go code, per §9.
const (
	// ChainInitialOnly permits a subword only as the very first element of
	// a chain (spec: "the subword 'ו' may appear only as the first
	// prefix").
	ChainInitialOnly = `chain_index == 0`
)

// RejectResidualBareCopyOf builds the CEL expression for the second Hebrew
// guard: a non-"ו" prefix is rejected when the residual it leaves behind is
// exactly a second, bare copy of vav — spec: "a non-'ו' prefix followed by
// a single 'ו' in the residual is rejected". vav is interpolated as a CEL
// string literal, keeping the rule data rather than a Go
// `if subword == "ו"` branch. Load (loader.go) does not call this; the
// Hebrew YAML bundle spells out the equivalent expression itself.
//
// The third Hebrew guard ("a non-'ו' prefix followed by 'וו...' strips one
// leading 'ו' from the residual before further matching") is a residual
// *rewrite*, which a bool-returning Constraint cannot express; it is
// implemented instead as MPREEntry.CollapseDuplicate, applied directly in
// wordsep's Stage 7 walk (mprefix.go) before a constraint ever sees the
// residual.
func RejectResidualBareCopyOf(vav string) string {
	return fmt.Sprintf("residual != %q", strings.ReplaceAll(vav, `"`, `\"`))
}
