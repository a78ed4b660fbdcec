package world

import (
	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// EvalBoolean, EvalInteger, EvalFloat and EvalString evaluate a Command
// expression tree against this world's uberState store and variable
// scratchpad (spec.md §3 "Command: typed expression tree... fetches from
// uberStates, per-tick variable gets").

func (w *World) EvalBoolean(b *command.CommandBoolean, output *command.CompilerOutput) bool {
	if b == nil {
		return false
	}
	switch b.Kind {
	case command.BoolConstant:
		return b.Value
	case command.BoolFetch:
		v := w.UberStates.Get(b.UberIdentifier)
		return v.Kind == uberstate.Boolean && v.Boolean
	case command.BoolCompareInteger:
		return compare(w.EvalInteger(b.Left, output), w.EvalInteger(b.Right, output), b.Comparator)
	case command.BoolCompareFloat:
		return compareFloat(w.EvalFloat(b.LeftF, output), w.EvalFloat(b.RightF, output), b.Comparator)
	case command.BoolLogic:
		switch b.Operator {
		case command.LogicAnd:
			for _, c := range b.Children {
				if !w.EvalBoolean(c, output) {
					return false
				}
			}
			return true
		case command.LogicOr:
			for _, c := range b.Children {
				if w.EvalBoolean(c, output) {
					return true
				}
			}
			return false
		}
		return false
	case command.BoolGetVariable:
		return w.vars.booleans[b.VariableID]
	default:
		return false
	}
}

func compare[T int32 | float64](left, right T, cmp command.Comparator) bool {
	switch cmp {
	case command.Equal:
		return left == right
	case command.NotEqual:
		return left != right
	case command.Less:
		return left < right
	case command.LessOrEqual:
		return left <= right
	case command.Greater:
		return left > right
	case command.GreaterOrEqual:
		return left >= right
	default:
		return false
	}
}

func compareFloat(left, right float64, cmp command.Comparator) bool {
	return compare(left, right, cmp)
}

func (w *World) EvalInteger(i *command.CommandInteger, output *command.CompilerOutput) int32 {
	if i == nil {
		return 0
	}
	switch i.Kind {
	case command.IntConstant:
		return i.Value
	case command.IntFetch:
		v := w.UberStates.Get(i.UberIdentifier)
		return v.Integer
	case command.IntArithmetic:
		return arith(w.EvalInteger(i.Left, output), w.EvalInteger(i.Right, output), i.Operator)
	case command.IntGetVariable:
		return w.vars.integers[i.VariableID]
	default:
		return 0
	}
}

func arith[T int32 | float64](left, right T, op command.ArithmeticOperator) T {
	switch op {
	case command.Add:
		return left + right
	case command.Subtract:
		return left - right
	case command.Multiply:
		return left * right
	case command.Divide:
		if right == 0 {
			return 0
		}
		return left / right
	default:
		return 0
	}
}

func (w *World) EvalFloat(f *command.CommandFloat, output *command.CompilerOutput) float64 {
	if f == nil {
		return 0
	}
	switch f.Kind {
	case command.FloatConstant:
		return f.Value
	case command.FloatFetch:
		v := w.UberStates.Get(f.UberIdentifier)
		return v.Float
	case command.FloatArithmetic:
		return arith(w.EvalFloat(f.Left, output), w.EvalFloat(f.Right, output), f.Operator)
	case command.FloatGetVariable:
		return w.vars.floats[f.VariableID]
	default:
		return 0
	}
}

func (w *World) EvalString(s *command.CommandString, output *command.CompilerOutput) string {
	if s == nil {
		return ""
	}
	switch s.Kind {
	case command.StringConstant:
		return s.Value
	case command.StringConcat:
		out := ""
		for _, c := range s.Children {
			out += w.EvalString(c, output)
		}
		return out
	case command.StringGetVariable:
		return w.vars.strings[s.VariableID]
	default:
		return ""
	}
}
