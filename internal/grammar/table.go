package grammar

import (
	"strings"

	"github.com/dekarrin/rosed"
)

// Table returns a text table giving whether each named rule is nullable along
// with its FIRST and FOLLOW sets, wrapped to width columns. With no rules
// named, every rule of the grammar is included.
func (a *Analysis) Table(width int, rules ...string) string {
	if len(rules) == 0 {
		for _, r := range a.g.rules {
			rules = append(rules, r.Name)
		}
	}

	data := [][]string{{"Rule", "Nullable", "FIRST", "FOLLOW"}}
	for _, name := range rules {
		if _, ok := a.g.Rule(name); !ok {
			continue
		}

		nullable := "no"
		if a.ruleNullable(name) {
			nullable = "yes"
		}

		first := a.FirstOfRule(name)
		first.Remove(Epsilon)

		data = append(data, []string{
			name,
			nullable,
			strings.Join(first.Ordered(), " "),
			strings.Join(a.Follow(name).Ordered(), " "),
		})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, width, rosed.Options{
			TableHeaders:             true,
			TableBorders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
