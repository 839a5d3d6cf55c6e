// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package infer

import "strings"

// builtinClasses holds the builtin classes by name. They are immutable and shared by all runs.
var builtinClasses = make(map[string]*Class)

// builtinNames holds the values bound in the builtins namespace.
var builtinNames = make(map[string]Value)

// Builtin returns the builtin class with the given name, or nil.
func Builtin(name string) *Class { return builtinClasses[name] }

// builtinHierarchy lists builtin classes after their bases, as class / bases.
var builtinHierarchy = [...][2]string{
	{"object", ""},
	{"type", "object"},
	{"int", "object"},
	{"bool", "int"},
	{"float", "object"},
	{"complex", "object"},
	{"str", "object"},
	{"bytes", "object"},
	{"bytearray", "object"},
	{"list", "object"},
	{"tuple", "object"},
	{"dict", "object"},
	{"set", "object"},
	{"frozenset", "object"},
	{"range", "object"},
	{"slice", "object"},
	{"memoryview", "object"},
	{"property", "object"},
	{"staticmethod", "object"},
	{"classmethod", "object"},
	{"super", "object"},
	{"enumerate", "object"},
	{"zip", "object"},
	{"map", "object"},
	{"filter", "object"},
	{"reversed", "object"},
	{"NoneType", "object"},
	{"NotImplementedType", "object"},
	{"ellipsis", "object"},
	{"function", "object"},
	{"builtin_function_or_method", "object"},
	{"method", "object"},
	{"module", "object"},
	{"generator", "object"},
	{"coroutine", "object"},

	{"BaseException", "object"},
	{"BaseExceptionGroup", "BaseException"},
	{"GeneratorExit", "BaseException"},
	{"KeyboardInterrupt", "BaseException"},
	{"SystemExit", "BaseException"},
	{"Exception", "BaseException"},
	{"ArithmeticError", "Exception"},
	{"FloatingPointError", "ArithmeticError"},
	{"OverflowError", "ArithmeticError"},
	{"ZeroDivisionError", "ArithmeticError"},
	{"AssertionError", "Exception"},
	{"AttributeError", "Exception"},
	{"BufferError", "Exception"},
	{"EOFError", "Exception"},
	{"ExceptionGroup", "BaseExceptionGroup Exception"},
	{"ImportError", "Exception"},
	{"ModuleNotFoundError", "ImportError"},
	{"LookupError", "Exception"},
	{"IndexError", "LookupError"},
	{"KeyError", "LookupError"},
	{"MemoryError", "Exception"},
	{"NameError", "Exception"},
	{"UnboundLocalError", "NameError"},
	{"OSError", "Exception"},
	{"BlockingIOError", "OSError"},
	{"ChildProcessError", "OSError"},
	{"ConnectionError", "OSError"},
	{"BrokenPipeError", "ConnectionError"},
	{"ConnectionAbortedError", "ConnectionError"},
	{"ConnectionRefusedError", "ConnectionError"},
	{"ConnectionResetError", "ConnectionError"},
	{"FileExistsError", "OSError"},
	{"FileNotFoundError", "OSError"},
	{"InterruptedError", "OSError"},
	{"IsADirectoryError", "OSError"},
	{"NotADirectoryError", "OSError"},
	{"PermissionError", "OSError"},
	{"ProcessLookupError", "OSError"},
	{"TimeoutError", "OSError"},
	{"ReferenceError", "Exception"},
	{"RuntimeError", "Exception"},
	{"NotImplementedError", "RuntimeError"},
	{"RecursionError", "RuntimeError"},
	{"StopAsyncIteration", "Exception"},
	{"StopIteration", "Exception"},
	{"SyntaxError", "Exception"},
	{"IndentationError", "SyntaxError"},
	{"TabError", "IndentationError"},
	{"SystemError", "Exception"},
	{"TypeError", "Exception"},
	{"ValueError", "Exception"},
	{"UnicodeError", "ValueError"},
	{"UnicodeDecodeError", "UnicodeError"},
	{"UnicodeEncodeError", "UnicodeError"},
	{"UnicodeTranslateError", "UnicodeError"},
	{"Warning", "Exception"},
	{"BytesWarning", "Warning"},
	{"DeprecationWarning", "Warning"},
	{"EncodingWarning", "Warning"},
	{"FutureWarning", "Warning"},
	{"ImportWarning", "Warning"},
	{"PendingDeprecationWarning", "Warning"},
	{"ResourceWarning", "Warning"},
	{"RuntimeWarning", "Warning"},
	{"SyntaxWarning", "Warning"},
	{"UnicodeWarning", "Warning"},
	{"UserWarning", "Warning"},
}

// hiddenClasses are builtin classes not bound to a name in the builtins namespace.
var hiddenClasses = map[string]struct{}{
	"NoneType": {}, "NotImplementedType": {}, "ellipsis": {}, "function": {},
	"builtin_function_or_method": {}, "method": {}, "module": {}, "generator": {}, "coroutine": {},
}

// classAliases are additional builtin names for existing classes.
var classAliases = map[string]string{
	"EnvironmentError": "OSError",
	"IOError":          "OSError",
}

// builtinFunctions maps builtin functions to their result class; "" is unknown.
var builtinFunctions = map[string]string{
	"abs": "", "all": "bool", "any": "bool", "ascii": "str", "bin": "str", "callable": "bool",
	"chr": "str", "delattr": "NoneType", "dir": "list", "divmod": "tuple", "eval": "", "exec": "NoneType",
	"format": "str", "getattr": "", "globals": "dict", "hasattr": "bool", "hash": "int", "hex": "str",
	"id": "int", "input": "str", "isinstance": "bool", "issubclass": "bool", "iter": "", "len": "int",
	"locals": "dict", "max": "", "min": "", "next": "", "oct": "str", "open": "", "ord": "int",
	"pow": "", "print": "NoneType", "repr": "str", "round": "", "setattr": "NoneType",
	"sorted": "list", "sum": "", "vars": "dict",
}

// builtinMethods maps methods of builtin classes to their result class; "" is unknown.
var builtinMethods = map[string]map[string]string{
	"str": {
		"capitalize": "str", "casefold": "str", "center": "str", "count": "int", "encode": "bytes",
		"endswith": "bool", "expandtabs": "str", "find": "int", "format": "str", "index": "int",
		"isalnum": "bool", "isalpha": "bool", "isascii": "bool", "isdecimal": "bool", "isdigit": "bool",
		"isidentifier": "bool", "islower": "bool", "isnumeric": "bool", "isprintable": "bool",
		"isspace": "bool", "istitle": "bool", "isupper": "bool", "join": "str", "ljust": "str",
		"lower": "str", "lstrip": "str", "partition": "tuple", "removeprefix": "str",
		"removesuffix": "str", "replace": "str", "rfind": "int", "rindex": "int", "rjust": "str",
		"rpartition": "tuple", "rsplit": "list", "rstrip": "str", "split": "list", "splitlines": "list",
		"startswith": "bool", "strip": "str", "swapcase": "str", "title": "str", "upper": "str",
		"zfill": "str",
	},
	"bytes": {
		"count": "int", "decode": "str", "endswith": "bool", "find": "int", "hex": "str",
		"index": "int", "join": "bytes", "lower": "bytes", "replace": "bytes", "split": "list",
		"startswith": "bool", "strip": "bytes", "upper": "bytes",
	},
	"list": {
		"append": "NoneType", "clear": "NoneType", "copy": "list", "count": "int", "extend": "NoneType",
		"index": "int", "insert": "NoneType", "pop": "", "remove": "NoneType", "reverse": "NoneType",
		"sort": "NoneType",
	},
	"dict": {
		"clear": "NoneType", "copy": "dict", "get": "", "items": "", "keys": "", "pop": "",
		"popitem": "tuple", "setdefault": "", "update": "NoneType", "values": "",
	},
	"set": {
		"add": "NoneType", "clear": "NoneType", "copy": "set", "difference": "set",
		"discard": "NoneType", "intersection": "set", "isdisjoint": "bool", "issubset": "bool",
		"issuperset": "bool", "pop": "", "remove": "NoneType", "symmetric_difference": "set",
		"union": "set", "update": "NoneType",
	},
	"int": {"bit_length": "int", "bit_count": "int", "conjugate": "int", "to_bytes": "bytes"},
	"float": {"is_integer": "bool", "hex": "str", "conjugate": "float"},
}

func init() {
	for _, entry := range builtinHierarchy {
		name := entry[0]
		c := &Class{Name: name, QName: "builtins." + name}

		for _, base := range strings.Fields(entry[1]) {
			c.bases = append(c.bases, builtinClasses[base])
		}

		builtinClasses[name] = c

		if _, hidden := hiddenClasses[name]; !hidden {
			builtinNames[name] = c
		}
	}

	for alias, name := range classAliases {
		builtinNames[alias] = builtinClasses[name]
	}

	for name, result := range builtinFunctions {
		builtinNames[name] = &Function{Name: name, Result: builtinClasses[result]}
	}
}
