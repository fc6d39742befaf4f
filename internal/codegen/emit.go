package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/internal/util"
	"github.com/dekarrin/rosed"
)

const (
	// width of the rule text in the comment above each routine
	commentWidth = 74

	// width of one line of a token kind list
	listWidth = 64

	// alternations with more distinct starts than this report the rule name
	// in their error message instead of listing what was expected.
	maxExpectedListed = 5
)

type emitter struct {
	a        *grammar.Analysis
	cfg      Config
	source   string
	tokNames map[string]string
	tokPkg   string
	treePkg  string
	starts   util.KeySet[string]

	sb     strings.Builder
	indent int
	rule   grammar.Rule
}

func (em *emitter) line(s string) {
	if s != "" {
		em.sb.WriteString(strings.Repeat("\t", em.indent))
		em.sb.WriteString(s)
	}
	em.sb.WriteRune('\n')
}

func (em *emitter) header(pkg string) {
	em.sb.Reset()
	em.indent = 0
	em.line(fmt.Sprintf("// Code generated by mrlgen from %s. DO NOT EDIT.", em.source))
	em.line("")
	em.line("package " + pkg)
}

func (em *emitter) rulesFile() string {
	em.header(em.cfg.Packages.Parser)
	em.line("")
	em.line("import (")
	em.line("\t" + strconv.Quote(em.cfg.Packages.Syntax))
	em.line("\t" + strconv.Quote(em.cfg.Packages.Token))
	em.line(")")

	for _, r := range em.a.Grammar().Rules() {
		em.line("")
		em.ruleFunc(r)
	}
	return em.sb.String()
}

func (em *emitter) treeKindsFile() string {
	em.header("syntax")

	rules := em.a.Grammar().Rules()

	em.line("")
	em.line("const (")
	em.indent++
	em.line("ErrorTree Kind = iota")
	for _, r := range rules {
		em.line(treeConstName(r.Name))
	}
	em.line("kindCount")
	em.indent--
	em.line(")")

	em.line("")
	em.line("var kindNames = [...]string{")
	em.indent++
	em.line(strconv.Quote("ErrorTree") + ",")
	for _, r := range rules {
		em.line(strconv.Quote(r.Name) + ",")
	}
	em.indent--
	em.line("}")

	return em.sb.String()
}

func (em *emitter) tokenKindsFile() string {
	em.header("token")

	byConst := map[string]string{}
	var consts []string
	for term, c := range em.tokNames {
		byConst[c] = term
		consts = append(consts, c)
	}
	consts = util.SortBy(consts, func(l, r string) bool { return l < r })

	em.line("")
	em.line("const (")
	em.indent++
	em.line("EOF Kind = iota")
	em.line("ERROR")
	for _, c := range consts {
		em.line(c)
	}
	em.line("kindCount")
	em.indent--
	em.line(")")

	em.line("")
	em.line("var kindNames = [...]string{")
	em.indent++
	em.line(strconv.Quote("EOF") + ",")
	em.line(strconv.Quote("ErrorToken") + ",")
	for _, c := range consts {
		em.line(strconv.Quote(byConst[c]) + ",")
	}
	em.indent--
	em.line("}")

	em.line("")
	em.line("var caseSensitiveKeywords = []string{")
	em.indent++
	for _, kw := range em.cfg.CaseSensitive {
		em.line(strconv.Quote(kw) + ",")
	}
	em.indent--
	em.line("}")

	return em.sb.String()
}

func (em *emitter) ruleFunc(r grammar.Rule) {
	em.rule = r

	wrapped := rosed.Edit(r.String()).Wrap(commentWidth).String()
	for _, l := range strings.Split(wrapped, "\n") {
		em.line("// " + l)
	}

	em.line(fmt.Sprintf("func %s(p *Parser) {", funcName(r.Name)))
	em.indent++
	em.line("m := p.open()")
	em.term(r.Body)
	if em.starts.Has(r.Name) {
		em.line("for !p.eof() {")
		em.indent++
		em.line(`p.advanceWithError("expected end of input")`)
		em.indent--
		em.line("}")
	}
	em.line(fmt.Sprintf("p.close(m, %s.%s)", em.treePkg, treeConstName(r.Name)))
	em.indent--
	em.line("}")
}

func (em *emitter) term(t grammar.Term) {
	switch t := t.(type) {
	case grammar.Terminal:
		em.line(fmt.Sprintf("p.expect(%s)", em.qualify(em.tokNames[t.Name])))
	case grammar.NonTerminal:
		em.line(funcName(t.Name) + "(p)")
	case grammar.Labeled:
		em.term(t.Inner)
	case grammar.Sequence:
		for _, it := range t.Items {
			em.term(it)
		}
	case grammar.Optional:
		consts := em.firstConsts(t.Inner)
		if len(consts) == 0 {
			return
		}
		em.openCond("if ", consts)
		em.indent++
		em.term(t.Inner)
		em.indent--
		em.line("}")
	case grammar.Rep0:
		consts := em.firstConsts(t.Inner)
		if len(consts) == 0 {
			return
		}
		em.openCond("for ", consts)
		em.indent++
		em.term(t.Inner)
		em.indent--
		em.line("}")
	case grammar.Rep1:
		consts := em.firstConsts(t.Inner)
		if len(consts) == 0 {
			em.term(t.Inner)
			return
		}
		em.line("for {")
		em.indent++
		em.term(t.Inner)
		em.openCond("if !", consts)
		em.indent++
		em.line("break")
		em.indent--
		em.line("}")
		em.indent--
		em.line("}")
	case grammar.Alternation:
		em.alternation(t)
	default:
		panic(fmt.Sprintf("unknown term type %T", t))
	}
}

// alternation writes a switch on the next token. Each arm gets the tokens of
// its FIRST set not already taken by an earlier arm. The first nullable arm
// is parsed for any token no other arm takes, since it can match nothing;
// without one, such a token is consumed as an error.
func (em *emitter) alternation(alt grammar.Alternation) {
	em.line("switch p.nth(0) {")

	claimed := util.NewKeySet[string]()
	var nullArm grammar.Term
	for _, arm := range alt.Arms {
		first := util.KeySetOf(em.a.FirstTerminals(arm)).Difference(claimed)
		claimed.AddAll(first)

		if nullArm == nil && em.a.Nullable(arm) {
			nullArm = arm
			continue
		}
		if first.Empty() {
			continue
		}

		em.caseClause(em.sortedConsts(first.Elements()))
		em.indent++
		em.term(arm)
		em.indent--
	}

	em.line(fmt.Sprintf("case %s:", em.qualify("EOF")))
	em.indent++
	em.line("p.closeEarly(m)")
	em.line("return")
	em.indent--

	em.line("default:")
	em.indent++
	if nullArm != nil {
		em.term(nullArm)
	} else {
		em.line(fmt.Sprintf("p.advanceWithError(%s)", strconv.Quote(em.expectedMessage(alt))))
	}
	em.indent--

	em.line("}")
}

func (em *emitter) expectedMessage(alt grammar.Alternation) string {
	var expected []string
	for _, arm := range alt.Arms {
		expected = append(expected, describe(arm)...)
	}
	expected = util.Dedupe(expected)

	if len(expected) > maxExpectedListed {
		return "expected " + em.rule.Name
	}
	return "expected " + util.MakeTextList(expected, "or")
}

// describe names what a term starts with for error messages.
func describe(t grammar.Term) []string {
	switch t := t.(type) {
	case grammar.Terminal:
		return []string{t.Name}
	case grammar.NonTerminal:
		return []string{t.Name}
	case grammar.Labeled:
		return describe(t.Inner)
	case grammar.Optional:
		return describe(t.Inner)
	case grammar.Rep0:
		return describe(t.Inner)
	case grammar.Rep1:
		return describe(t.Inner)
	case grammar.Sequence:
		return describe(t.Items[0])
	case grammar.Alternation:
		var all []string
		for _, arm := range t.Arms {
			all = append(all, describe(arm)...)
		}
		return all
	default:
		return nil
	}
}

func (em *emitter) firstConsts(t grammar.Term) []string {
	return em.sortedConsts(em.a.FirstTerminals(t))
}

func (em *emitter) qualify(constName string) string {
	return em.tokPkg + "." + constName
}

func (em *emitter) qualifyAll(consts []string) []string {
	items := make([]string, len(consts))
	for i := range consts {
		items[i] = em.qualify(consts[i])
	}
	return items
}

// openCond writes the head of an if or for statement that tests whether the
// next token is one of consts. prefix is everything before the test.
func (em *emitter) openCond(prefix string, consts []string) {
	items := em.qualifyAll(consts)

	if len(items) == 1 {
		em.line(fmt.Sprintf("%sp.at(%s) {", prefix, items[0]))
		return
	}

	joined := strings.Join(items, ", ")
	if len(joined) <= listWidth {
		em.line(fmt.Sprintf("%sp.atAny(%s) {", prefix, joined))
		return
	}

	em.line(prefix + "p.atAny(")
	em.indent++
	for _, l := range wrapList(items, listWidth) {
		em.line(strings.Join(l, ", ") + ",")
	}
	em.indent--
	em.line(") {")
}

func (em *emitter) caseClause(consts []string) {
	lines := wrapList(em.qualifyAll(consts), listWidth)

	for i, l := range lines {
		text := strings.Join(l, ", ")
		if i+1 < len(lines) {
			text += ","
		} else {
			text += ":"
		}

		if i == 0 {
			em.line("case " + text)
		} else {
			em.indent++
			em.line(text)
			em.indent--
		}
	}
}

// wrapList splits items into lines of at most width characters, counting the
// ", " between items and one trailing character. An item longer than width
// gets a line of its own.
func wrapList(items []string, width int) [][]string {
	var lines [][]string
	var cur []string
	curLen := 0

	for _, it := range items {
		added := len(it) + 1
		if len(cur) > 0 {
			added = len(it) + 2
		}
		if len(cur) > 0 && curLen+added > width {
			lines = append(lines, cur)
			cur = nil
			curLen = 0
			added = len(it) + 1
		}
		cur = append(cur, it)
		curLen += added
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}
