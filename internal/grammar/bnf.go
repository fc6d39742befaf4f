package grammar

import (
	"fmt"
	"strings"
	"unicode"

	icgrammar "github.com/dekarrin/ictiobus/grammar"
	iclex "github.com/dekarrin/ictiobus/lex"
	icparse "github.com/dekarrin/ictiobus/parse"
	"github.com/dekarrin/marlin/internal/util"
)

var digitNames = [...]string{"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE"}

// BNF is a grammar rewritten into plain BNF for one start rule. Each rule of
// a BNF is a list of productions and each production is a list of symbols;
// optional and repeated terms and groups inside a sequence have been replaced
// by helper rules.
type BNF struct {
	cfg   icgrammar.CFG
	order []string
}

// ToBNF rewrites the rules of g that can be reached from start into plain
// BNF.
//
// Rule names are spelled in capitals, with digits spelled out, so Update1
// becomes UPDATE_ONE. Helper rules are named after the rule they came from,
// as in UPDATE_ONE-OPT. Terminal names are spelled in lower case, so 'SELECT'
// becomes select and VAR1 becomes var1, and the characters that plain BNF
// reserves are spelled out, so '.' becomes dot.
//
// Each production of a rule with more than one is a single symbol, apart from
// the recursive production of a repetition helper, so the production to take
// can always be told from the FIRST set of its first symbol.
func ToBNF(g *Grammar, start string) (*BNF, error) {
	if _, ok := g.Rule(start); !ok {
		return nil, fmt.Errorf("no rule named %q", start)
	}

	b := &bnfBuilder{
		g:         g,
		rules:     map[string]string{},
		terms:     map[string]string{},
		usedRules: util.NewKeySet[string](),
		usedTerms: util.NewKeySet[string](),
	}
	b.cfg.Start = b.rule(start)

	for len(b.pending) > 0 {
		name := b.pending[0]
		b.pending = b.pending[1:]
		b.addAlternatives(b.rules[name], b.g.mustRule(name).Body, false)
	}

	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return &BNF{cfg: b.cfg, order: b.order}, nil
}

// Start returns the name of the start rule.
func (b *BNF) Start() string {
	return b.cfg.StartSymbol()
}

// Rules returns the names of all rules in the order they were first
// referenced.
func (b *BNF) Rules() []string {
	return append([]string(nil), b.order...)
}

// IsLL1 returns whether one token of lookahead always decides which
// production of a rule to take. The grammar must not be left-recursive.
func (b *BNF) IsLL1() bool {
	return icparse.IsLL1(b.cfg)
}

// String gives one rule per line as "NAME -> a b | ε ;".
func (b *BNF) String() string {
	var sb strings.Builder
	for _, name := range b.order {
		r := b.cfg.Rule(name)
		prods := make([]string, len(r.Productions))
		for i, p := range r.Productions {
			if len(p) == 1 && p[0] == "" {
				prods[i] = "ε"
			} else {
				prods[i] = strings.Join(p, " ")
			}
		}
		fmt.Fprintf(&sb, "%s -> %s ;\n", name, strings.Join(prods, " | "))
	}
	return sb.String()
}

type bnfBuilder struct {
	g   *Grammar
	cfg icgrammar.CFG

	// rule and terminal names of g mapped to their BNF names
	rules map[string]string
	terms map[string]string

	usedRules util.KeySet[string]
	usedTerms util.KeySet[string]

	order   []string
	pending []string
}

// rule returns the BNF name of the rule of g called name, queueing the rule to
// be rewritten the first time it is seen.
func (b *bnfBuilder) rule(name string) string {
	if sym, ok := b.rules[name]; ok {
		return sym
	}

	var sb strings.Builder
	letters := false
	for _, ch := range name {
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z':
			sb.WriteRune(unicode.ToUpper(ch))
			letters = true
		case '0' <= ch && ch <= '9':
			sb.WriteString("_" + digitNames[ch-'0'])
			letters = true
		default:
			sb.WriteRune('_')
		}
	}
	base := sb.String()
	if !letters {
		base = "RULE" + base
	}

	sym := b.newRule(base)
	b.rules[name] = sym
	b.pending = append(b.pending, name)
	return sym
}

// helper names a new rule that stands for part of the rule called owner.
func (b *bnfBuilder) helper(owner, kind string) string {
	return b.newRule(owner + "-" + kind)
}

func (b *bnfBuilder) newRule(base string) string {
	sym := base
	for n := 2; b.usedRules.Has(sym); n++ {
		sym = base + "-" + letterSuffix(n)
	}
	b.usedRules.Add(sym)
	b.order = append(b.order, sym)
	return sym
}

// letterSuffix gives B for 2, C for 3, and so on past Z to AA.
func letterSuffix(n int) string {
	var s []byte
	for n > 0 {
		n--
		s = append([]byte{byte('A' + n%26)}, s...)
		n /= 26
	}
	return string(s)
}

func (b *bnfBuilder) terminal(t Terminal) string {
	if sym, ok := b.terms[t.Name]; ok {
		return sym
	}

	text := t.Name
	if t.IsLiteral() {
		text = t.Literal()
	}
	var sb strings.Builder
	for _, ch := range strings.ToLower(text) {
		switch {
		case ch == '.':
			sb.WriteString("dot")
		case ch == '|':
			sb.WriteString("bar")
		case ch == '$':
			sb.WriteString("dollar")
		case unicode.IsSpace(ch):
			sb.WriteRune('_')
		default:
			sb.WriteRune(ch)
		}
	}
	base := sb.String()

	sym := base
	for n := 2; b.usedTerms.Has(sym); n++ {
		sym = fmt.Sprintf("%s%d", base, n)
	}
	b.usedTerms.Add(sym)
	b.terms[t.Name] = sym
	b.cfg.AddTerm(sym, iclex.NewTokenClass(sym, t.Name))
	return sym
}

// addAlternatives adds one production to the rule called name for each arm of
// t, and an empty production if withEmpty is set.
func (b *bnfBuilder) addAlternatives(name string, t Term, withEmpty bool) {
	t = unlabel(t)

	arms := []Term{t}
	if alt, ok := t.(Alternation); ok {
		arms = alt.Arms
	}

	many := len(arms) > 1 || withEmpty
	for _, arm := range arms {
		syms := b.symbols(arm, name)
		if many && len(syms) > 1 {
			part := b.helper(name, "ARM")
			b.cfg.AddRule(part, syms)
			syms = []string{part}
		}
		b.cfg.AddRule(name, syms)
	}
	if withEmpty {
		b.cfg.AddRule(name, icgrammar.Epsilon)
	}
}

// symbols gives the symbols matching t in sequence. Helper rules created on
// the way are named after owner.
func (b *bnfBuilder) symbols(t Term, owner string) []string {
	switch t := t.(type) {
	case Labeled:
		return b.symbols(t.Inner, owner)
	case Sequence:
		var syms []string
		for _, it := range t.Items {
			syms = append(syms, b.symbols(it, owner)...)
		}
		return syms
	default:
		return []string{b.symbol(t, owner)}
	}
}

// symbol gives a single symbol matching t.
func (b *bnfBuilder) symbol(t Term, owner string) string {
	switch t := t.(type) {
	case Terminal:
		return b.terminal(t)
	case NonTerminal:
		return b.rule(t.Name)
	case Labeled:
		return b.symbol(t.Inner, owner)
	case Sequence, Alternation:
		group := b.helper(owner, "GROUP")
		b.addAlternatives(group, t, false)
		return group
	case Optional:
		opt := b.helper(owner, "OPT")
		b.addAlternatives(opt, t.Inner, true)
		return opt
	case Rep0:
		return b.repeat(b.single(t.Inner, owner), owner)
	case Rep1:
		once := b.helper(owner, "REP")
		inner := b.single(t.Inner, owner)
		b.cfg.AddRule(once, []string{inner, b.repeat(inner, owner)})
		return once
	default:
		panic(fmt.Sprintf("unknown term type %T", t))
	}
}

// single gives one symbol matching t, grouping a sequence into a helper rule.
func (b *bnfBuilder) single(t Term, owner string) string {
	syms := b.symbols(t, owner)
	if len(syms) == 1 {
		return syms[0]
	}
	group := b.helper(owner, "GROUP")
	b.cfg.AddRule(group, syms)
	return group
}

// repeat names a new rule matching sym zero or more times.
func (b *bnfBuilder) repeat(sym, owner string) string {
	rep := b.helper(owner, "REP")
	b.cfg.AddRule(rep, []string{sym, rep})
	b.cfg.AddRule(rep, icgrammar.Epsilon)
	return rep
}

func unlabel(t Term) Term {
	for {
		l, ok := t.(Labeled)
		if !ok {
			return t
		}
		t = l.Inner
	}
}

// CheckLL1 rewrites the grammar into plain BNF once for each start rule and
// runs the LL(1) test of the ictiobus parser generator on each, as a check on
// Conflicts that shares none of its code. It returns the start rules whose
// BNF is not LL(1).
//
// Left-recursive grammars are not tested and give an error.
func (a *Analysis) CheckLL1() ([]string, error) {
	if lr := a.LeftRecursive(); len(lr) > 0 {
		return nil, fmt.Errorf("left-recursive rules: %s", strings.Join(lr, ", "))
	}

	var failed []string
	for _, s := range a.starts {
		bnf, err := ToBNF(a.g, s)
		if err != nil {
			return nil, fmt.Errorf("start rule %s: %w", s, err)
		}
		if !bnf.IsLL1() {
			failed = append(failed, s)
		}
	}
	return failed, nil
}
