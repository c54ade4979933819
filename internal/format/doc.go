// Package format renders slider values as label strings.
//
// Label formatting is a pure pass-through concern: the core hands a
// domain value to a Func and displays whatever comes back. Default trims
// insignificant decimals; hosts supply their own Func for units,
// thousands separators, and similar.
//
// For configuration-driven labels, LuaFormatter compiles a user-supplied
// script that defines a format(value) function:
//
//	f, err := format.NewLuaFormatter(`function format(value)
//	    return string.format("%.0f%%", value)
//	end`)
//
// Script errors never surface to the render path; a failing script falls
// back to Default.
package format
