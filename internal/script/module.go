package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/fixbuf/internal/failure"
	"github.com/dshills/fixbuf/internal/fixedstr"
)

// ModuleName is the name scripts use for the module.
const ModuleName = "fixbuf"

const bufferType = "fixbuf.buffer"

type module struct {
	state *State
	mod   *lua.LTable
}

func newModule(s *State) *module {
	return &module{state: s}
}

// loader is the require entry point.
func (m *module) loader(L *lua.LState) int {
	L.Push(m.table(L))
	return 1
}

func (m *module) table(L *lua.LState) *lua.LTable {
	if m.mod != nil {
		return m.mod
	}
	mt := L.NewTypeMetatable(bufferType)
	methods := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"assign":          bufAssign,
		"append":          bufAppend,
		"insert":          bufInsert,
		"erase":           bufErase,
		"replace":         bufReplace,
		"self_replace":    bufSelfReplace,
		"push_back":       bufPushBack,
		"pop_back":        bufPopBack,
		"clear":           bufClear,
		"text":            bufText,
		"len":             bufLen,
		"cap":             bufCap,
		"available":       bufAvailable,
		"truncated":       bufTruncated,
		"reset_truncated": bufResetTruncated,
		"find":            bufFind,
	})
	L.SetField(mt, "__index", methods)
	L.SetField(mt, "__tostring", L.NewFunction(bufText))
	L.SetField(mt, "__len", L.NewFunction(bufLen))

	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(m.newBuffer))
	L.SetField(mod, "npos", lua.LNumber(fixedstr.Npos))
	m.mod = mod
	return mod
}

// new(capacity [, text]) -> buffer
func (m *module) newBuffer(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > m.state.maxCapacity {
		L.ArgError(1, "capacity out of range")
		return 0
	}
	s := fixedstr.New[byte](n, m.state.strOpts...)
	if L.GetTop() >= 2 {
		text := L.CheckString(2)
		if raised, err := invoke(func() error { return s.AssignString(text) }); raised {
			L.RaiseError("%s", err.Error())
			return 0
		}
	}

	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(bufferType))
	L.Push(ud)
	return 1
}

func checkBuffer(L *lua.LState) *fixedstr.Bytes {
	ud := L.CheckUserData(1)
	if s, ok := ud.Value.(*fixedstr.Bytes); ok {
		return s
	}
	L.ArgError(1, "fixbuf buffer expected")
	return nil
}

// invoke runs fn and reports whether the failure reporter raised.
func invoke(fn func() error) (raised bool, err error) {
	raised = true
	defer failure.Recover(&err)
	err = fn()
	raised = false
	return raised, err
}

// result pushes true, or false and the message. A raised failure becomes a
// Lua error.
func result(L *lua.LState, fn func() error) int {
	raised, err := invoke(fn)
	switch {
	case raised:
		L.RaiseError("%s", err.Error())
		return 0
	case err != nil:
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	default:
		L.Push(lua.LTrue)
		return 1
	}
}

// assign(text)
func bufAssign(L *lua.LState) int {
	s, text := checkBuffer(L), L.CheckString(2)
	return result(L, func() error { return s.AssignString(text) })
}

// append(text)
func bufAppend(L *lua.LState) int {
	s, text := checkBuffer(L), L.CheckString(2)
	return result(L, func() error { return s.AppendString(text) })
}

// insert(pos, text)
func bufInsert(L *lua.LState) int {
	s, pos, text := checkBuffer(L), L.CheckInt(2), L.CheckString(3)
	return result(L, func() error { return s.InsertString(pos, text) })
}

// erase(first, last)
func bufErase(L *lua.LState) int {
	s, first, last := checkBuffer(L), L.CheckInt(2), L.CheckInt(3)
	return result(L, func() error { return s.Erase(first, last) })
}

// replace(first, last, text)
func bufReplace(L *lua.LState) int {
	s, first, last, text := checkBuffer(L), L.CheckInt(2), L.CheckInt(3), L.CheckString(4)
	return result(L, func() error { return s.ReplaceString(first, last, text) })
}

// self_replace(first, last, src_first, src_last) replaces a range with
// another range of the same buffer.
func bufSelfReplace(L *lua.LState) int {
	s := checkBuffer(L)
	first, last := L.CheckInt(2), L.CheckInt(3)
	srcFirst, srcLast := L.CheckInt(4), L.CheckInt(5)
	return result(L, func() error {
		src, err := s.Substr(srcFirst, -1)
		if err != nil {
			return err
		}
		if _, err := s.Substr(srcLast, 0); err != nil {
			return err
		}
		return s.Replace(first, last, src[:max(srcLast-srcFirst, 0)])
	})
}

// push_back(char)
func bufPushBack(L *lua.LState) int {
	s, c := checkBuffer(L), L.CheckString(2)
	if len(c) != 1 {
		L.ArgError(2, "single byte expected")
		return 0
	}
	return result(L, func() error { return s.PushBack(c[0]) })
}

// pop_back()
func bufPopBack(L *lua.LState) int {
	s := checkBuffer(L)
	return result(L, s.PopBack)
}

// clear()
func bufClear(L *lua.LState) int {
	checkBuffer(L).Clear()
	return 0
}

// text() -> string
func bufText(L *lua.LState) int {
	L.Push(lua.LString(checkBuffer(L).String()))
	return 1
}

// len() -> number
func bufLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkBuffer(L).Size()))
	return 1
}

// cap() -> number
func bufCap(L *lua.LState) int {
	L.Push(lua.LNumber(checkBuffer(L).Capacity()))
	return 1
}

// available() -> number
func bufAvailable(L *lua.LState) int {
	L.Push(lua.LNumber(checkBuffer(L).Available()))
	return 1
}

// truncated() -> bool
func bufTruncated(L *lua.LState) int {
	L.Push(lua.LBool(checkBuffer(L).Truncated()))
	return 1
}

// reset_truncated()
func bufResetTruncated(L *lua.LState) int {
	checkBuffer(L).ClearTruncated()
	return 0
}

// find(sub [, pos]) -> index or nil
func bufFind(L *lua.LState) int {
	s, sub, pos := checkBuffer(L), L.CheckString(2), L.OptInt(3, 0)
	if i := s.FindString(sub, pos); i != fixedstr.Npos {
		L.Push(lua.LNumber(i))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}
