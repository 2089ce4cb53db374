package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/grh/internal/ui/styles"
)

// ErrNoItems is returned by Select for an empty list.
var ErrNoItems = errors.New("nothing to select from")

// maxHints caps the fuzzy suggestions shown after an invalid answer.
const maxHints = 3

// Selection is the item chosen in Select.
type Selection struct {
	Index int // zero-based
	Value string
}

// Select prints label and the items numbered from 1, then asks for a number
// until one in range is entered. There is no retry limit.
func (p *Prompter) Select(label string, items []string) (Selection, error) {
	if len(items) == 0 {
		return Selection{}, ErrNoItems
	}

	p.out.Println()
	p.out.Line(styles.Cyan, label)
	for i, item := range items {
		p.printItem(i, item)
	}

	for {
		answer, err := p.Ask(fmt.Sprintf("\nEnter number (1-%d): ", len(items)))
		if err != nil {
			return Selection{}, err
		}

		if n, ok := parseChoice(answer, len(items)); ok {
			return Selection{Index: n - 1, Value: items[n-1]}, nil
		}

		p.out.Line(styles.Red, "Invalid selection. Please try again.")
		p.printHints(answer, items)
	}
}

// parseChoice accepts a 1-based index within [1, count].
func parseChoice(answer string, count int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n, true
}

func (p *Prompter) printItem(i int, item string) {
	num := fmt.Sprintf("%d.", i+1)
	if p.width > 0 {
		item = ansi.Truncate(item, max(p.width-len(num)-1, 1), "…")
	}
	p.out.Printf("%s %s\n", styles.Render(styles.Yellow, num), item)
}

// printHints suggests items fuzzily matching a non-numeric answer.
func (p *Prompter) printHints(answer string, items []string) {
	query := strings.TrimSpace(answer)
	if query == "" {
		return
	}
	if _, err := strconv.Atoi(query); err == nil {
		return
	}

	matches := fuzzy.Find(query, items)
	if len(matches) == 0 {
		return
	}
	p.out.Line(styles.Dim, "Did you mean:")
	for _, m := range matches[:min(len(matches), maxHints)] {
		p.out.Linef(styles.Dim, "  %d. %s", m.Index+1, m.Str)
	}
}
