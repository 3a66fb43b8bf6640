package constant

// LuaModule is the name scripts pass to require() to obtain the stack module.
const LuaModule = "stack"

// LuaTemplate is a Go text/template for scaffolding new Lua stack scripts.
const LuaTemplate = `{{ $divider := repeat "-" (plus (len .Name) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @created {{ .Created }}
{{ $divider }}

local stack = require("{{ .Module }}")

local s = stack.new()

s:push(1)
s:push(2)
s:push(3)

print(s:dump())

while not s:is_empty() do
	print("popped", s:pop())
end

-- ex: ts=4 sw=4 et filetype=lua
`
