// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/miru-cli/miru/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Watched
	Bell
	Sub
	Dub
	Link
	Play
	Key
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", kaomoji: "(╯°□°)╯", squares: "▨"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・_・;)", squares: "▤"},
	Watched:  {emoji: "👁", nerd: "", plain: "*", kaomoji: "(◕‿◕)", squares: "■"},
	Bell:     {emoji: "🔔", nerd: "", plain: "!", kaomoji: "(°ロ°)", squares: "▲"},
	Sub:      {emoji: "💬", nerd: "", plain: "SUB", kaomoji: "(´・ω・)", squares: "▥"},
	Dub:      {emoji: "🎙", nerd: "", plain: "DUB", kaomoji: "(ﾟ∀ﾟ)", squares: "▦"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(っ˘ω˘ς)", squares: "▧"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(ノ◕ヮ◕)ノ", squares: "▶"},
	Key:      {emoji: "🔑", nerd: "", plain: "#", kaomoji: "(¬‿¬)", squares: "▩"},
}

// Get renders i, or returns an empty string for an unknown icon or variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get()
}
