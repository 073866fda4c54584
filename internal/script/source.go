package script

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"leapseek/internal/hint"
	"leapseek/internal/match"
)

// Errors returned by script sources.
var (
	ErrNoScanFunction = errors.New("script: scan function not defined")
	ErrBadCandidate   = errors.New("script: candidate table malformed")
)

// DefaultTimeout bounds a single scan execution.
const DefaultTimeout = 2 * time.Second

// Source is a Lua-backed hint source. The script source is compiled
// lazily on first Scan; each Scan runs in its own state so scripts
// cannot accumulate global state between invocations.
type Source struct {
	name    string
	body    string
	timeout time.Duration
}

// NewSource wraps a Lua script body as a hint source.
func NewSource(name, body string) *Source {
	return &Source{name: name, body: body, timeout: DefaultTimeout}
}

// WithTimeout overrides the per-scan execution timeout.
func (s *Source) WithTimeout(d time.Duration) *Source {
	s.timeout = d
	return s
}

func (s *Source) Name() string { return s.name }

// Scan executes the script's scan function over the visible portions
// of text. Lua sees rune strings and reports 1-based rune offsets;
// candidates are converted to the 0-based convention and clipped to
// the visible ranges.
func (s *Source) Scan(text string, visible match.Ranges) ([]hint.Candidate, error) {
	runes := []rune(text)
	ranges := visible.Normalize(len(runes))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	L := newState()
	defer L.Close()
	L.SetContext(ctx)

	if err := L.DoString(s.body); err != nil {
		return nil, fmt.Errorf("script %q: load: %w", s.name, err)
	}
	scan := L.GetGlobal("scan")
	if scan.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%w: %q", ErrNoScanFunction, s.name)
	}

	var cands []hint.Candidate
	for _, r := range ranges {
		seg := string(runes[r.From:r.To])
		segCands, err := s.callScan(L, scan, seg)
		if err != nil {
			return nil, err
		}
		for _, c := range segCands {
			end := r.To - r.From
			if c.Index < 0 || c.Index >= end {
				continue
			}
			if c.Index+c.Length > end {
				c.Length = end - c.Index
			}
			c.Index += r.From
			cands = append(cands, c)
		}
	}
	return cands, nil
}

// callScan invokes scan(seg) and decodes the returned table.
func (s *Source) callScan(L *lua.LState, fn lua.LValue, seg string) ([]hint.Candidate, error) {
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LString(seg)); err != nil {
		return nil, fmt.Errorf("script %q: scan: %w", s.name, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	if ret == lua.LNil {
		return nil, nil
	}
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: scan returned %s", ErrBadCandidate, ret.Type())
	}

	var cands []hint.Candidate
	var decodeErr error
	tbl.ForEach(func(_, v lua.LValue) {
		if decodeErr != nil {
			return
		}
		entry, ok := v.(*lua.LTable)
		if !ok {
			decodeErr = fmt.Errorf("%w: entry is %s", ErrBadCandidate, v.Type())
			return
		}
		c, err := decodeCandidate(entry)
		if err != nil {
			decodeErr = err
			return
		}
		cands = append(cands, c)
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return cands, nil
}

// decodeCandidate reads {index=…, length=…, text=…} with Lua's
// 1-based index convention.
func decodeCandidate(t *lua.LTable) (hint.Candidate, error) {
	idx, ok := t.RawGetString("index").(lua.LNumber)
	if !ok {
		return hint.Candidate{}, fmt.Errorf("%w: missing index", ErrBadCandidate)
	}
	length, ok := t.RawGetString("length").(lua.LNumber)
	if !ok {
		return hint.Candidate{}, fmt.Errorf("%w: missing length", ErrBadCandidate)
	}
	c := hint.Candidate{Index: int(idx) - 1, Length: int(length)}
	if txt, ok := t.RawGetString("text").(lua.LString); ok {
		c.Text = string(txt)
	}
	if c.Length < 0 {
		return hint.Candidate{}, fmt.Errorf("%w: negative length", ErrBadCandidate)
	}
	return c, nil
}

// newState opens a Lua state with only the side-effect-free standard
// libraries. Scripts get string manipulation but no io, os, or
// package loading.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, mod := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.TabLibName, lua.OpenTable},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(mod.fn))
		L.Push(lua.LString(mod.name))
		L.Call(1, 0)
	}
	// OpenBase restores some loaders; drop them again.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
