package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Push
	Pop
	Peek
	Empty
	Lua
	Mark
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💥",
		nerd:    "",
		plain:   "✖",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・;)",
		squares: "🟦",
	},
	Push: {
		emoji:   "📥",
		nerd:    "",
		plain:   "↑",
		kaomoji: "(＾▽＾)っ",
		squares: "🟩",
	},
	Pop: {
		emoji:   "📤",
		nerd:    "",
		plain:   "↓",
		kaomoji: "⊂(・▽・⊂)",
		squares: "🟧",
	},
	Peek: {
		emoji:   "👀",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "🟨",
	},
	Empty: {
		emoji:   "🫙",
		nerd:    "",
		plain:   "∅",
		kaomoji: "(¬_¬)",
		squares: "⬜",
	},
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "lua",
		kaomoji: "☾",
		squares: "🟪",
	},
	Mark: {
		emoji:   "👉",
		nerd:    "",
		plain:   ">",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "▪",
	},
}
