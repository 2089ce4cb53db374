package resetflow

import "github.com/raphi011/grh/internal/git"

// modeChoices are listed before asking for the reset mode, in menu order.
var modeChoices = []string{
	"1. Soft reset (keeps changes staged)",
	"2. Mixed reset (keeps changes unstaged) [default]",
	"3. Hard reset (discards all changes) ⚠️",
}

// ParseMode maps a menu answer to a reset mode. The answer is compared
// verbatim: "1" is soft, "3" is hard, anything else (including "" and " 3")
// is the mixed default.
func ParseMode(answer string) git.ResetMode {
	switch answer {
	case "1":
		return git.ResetSoft
	case "3":
		return git.ResetHard
	default:
		return git.ResetMixed
	}
}
