// Package script runs Lua scripts that build and edit fixed strings.
//
// Scripts see a preloaded module named fixbuf, also bound to the global of
// the same name:
//
//	local s = fixbuf.new(16, "Hello")
//	s:append(", World")      -- true
//	s:insert(99, "x")        -- false, "Insert: position out of range: ..."
//	s:replace(0, 5, "Howdy")
//	print(s:text(), s:len(), s:truncated())
//
// Positions are zero-based and ranges are half-open, as in Go. Mutators
// return true on success and false plus a message on failure. When the
// strings are configured with the raise reporter, a failure is raised as a
// Lua error instead and ends the script unless caught with pcall.
//
// Only the base, table, string and math libraries are opened. dofile,
// loadfile, load and loadstring are removed.
//
// A State is not safe for concurrent use.
package script
