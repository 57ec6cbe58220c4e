// This file is part of llama - https://github.com/Renelvon/llama
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package script

import (
	"github.com/Renelvon/llama/rt"
	"github.com/pkg/errors"
)

// binding calls a primitive with resolved arguments.
type binding func(r *rt.Runtime, a []*slot) (slot, error)

func unit(err error) (slot, error) { return slot{}, err }

func intFn(f func(int32) int32) binding {
	return func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{i: f(a[0].i)}, nil }
}

func floatFn(f func(float64) float64) binding {
	return func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{f: f(a[0].f)}, nil }
}

var bindings = map[string]binding{
	"print_int":    func(r *rt.Runtime, a []*slot) (slot, error) { return unit(r.PrintInt(a[0].i)) },
	"print_bool":   func(r *rt.Runtime, a []*slot) (slot, error) { return unit(r.PrintBool(a[0].b)) },
	"print_char":   func(r *rt.Runtime, a []*slot) (slot, error) { return unit(r.PrintChar(a[0].c)) },
	"print_float":  func(r *rt.Runtime, a []*slot) (slot, error) { return unit(r.PrintFloat(a[0].f)) },
	"print_string": func(r *rt.Runtime, a []*slot) (slot, error) { return unit(r.PrintString(a[0].buf)) },

	"read_int": func(r *rt.Runtime, _ []*slot) (slot, error) {
		n, err := r.ReadInt()
		return slot{i: n}, err
	},
	"read_bool": func(r *rt.Runtime, _ []*slot) (slot, error) {
		b, err := r.ReadBool()
		return slot{b: b}, err
	},
	"read_char": func(r *rt.Runtime, _ []*slot) (slot, error) {
		c, err := r.ReadChar()
		return slot{c: c}, err
	},
	"read_float": func(r *rt.Runtime, _ []*slot) (slot, error) {
		f, err := r.ReadFloat()
		return slot{f: f}, err
	},
	"read_string": func(r *rt.Runtime, a []*slot) (slot, error) {
		buf, n := a[0].buf, a[1].i
		if n < 1 || int(n) > len(buf) {
			return slot{}, errors.Errorf("read_string: capacity %d out of range [1, %d]", n, len(buf))
		}
		return unit(r.ReadString(buf[:n]))
	},

	"abs":  intFn(rt.Abs),
	"fabs": floatFn(rt.Fabs),
	"sqrt": floatFn(rt.Sqrt),
	"sin":  floatFn(rt.Sin),
	"cos":  floatFn(rt.Cos),
	"tan":  floatFn(rt.Tan),
	"atan": floatFn(rt.Atan),
	"exp":  floatFn(rt.Exp),
	"ln":   floatFn(rt.Ln),
	"pi":   func(*rt.Runtime, []*slot) (slot, error) { return slot{f: rt.Pi()}, nil },

	"incr": func(_ *rt.Runtime, a []*slot) (slot, error) { rt.Incr(&a[0].i); return slot{}, nil },
	"decr": func(_ *rt.Runtime, a []*slot) (slot, error) { rt.Decr(&a[0].i); return slot{}, nil },

	"float_of_int": func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{f: rt.FloatOfInt(a[0].i)}, nil },
	"int_of_float": func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{i: rt.IntOfFloat(a[0].f)}, nil },
	"round":        func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{i: rt.Round(a[0].f)}, nil },
	"int_of_char":  func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{i: rt.IntOfChar(a[0].c)}, nil },
	"char_of_int":  func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{c: rt.CharOfInt(a[0].i)}, nil },

	"strlen": func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{i: rt.Strlen(a[0].buf)}, nil },
	"strcmp": func(_ *rt.Runtime, a []*slot) (slot, error) { return slot{i: rt.Strcmp(a[0].buf, a[1].buf)}, nil },
	"strcpy": func(_ *rt.Runtime, a []*slot) (slot, error) { rt.Strcpy(a[0].buf, a[1].buf); return slot{}, nil },
	"strcat": func(_ *rt.Runtime, a []*slot) (slot, error) { rt.Strcat(a[0].buf, a[1].buf); return slot{}, nil },
}

// Exec runs the program against r. Each run starts with fresh variables.
// Execution stops at the first failed statement; the returned error is
// prefixed with the statement position and rt.Op still reports the failed
// primitive.
func (p *Program) Exec(r *rt.Runtime) error {
	env := make([]slot, len(p.vars))
	args := make([]*slot, 0, 2)
	for i := range p.stmts {
		st := &p.stmts[i]
		if st.sym == nil {
			p.declare(env, st)
			continue
		}
		args = args[:0]
		for j := range st.args {
			if v := st.args[j].v; v != nil {
				args = append(args, &env[v.idx])
				continue
			}
			lit := st.args[j].lit
			args = append(args, &lit)
		}
		res, err := bindings[st.sym.Name](r, args)
		if err != nil {
			return errors.Wrapf(err, "%s", st.pos)
		}
		if st.dst != nil {
			env[st.dst.idx] = res
		}
	}
	return nil
}

func (p *Program) declare(env []slot, st *stmt) {
	v := st.dst
	s := slot{}
	if st.init != nil {
		s = st.init.lit
	}
	if v.Cap > 0 {
		s.buf = make([]byte, v.Cap)
		if st.init != nil {
			rt.Strcpy(s.buf, st.init.lit.buf)
		}
	}
	env[v.idx] = s
}
