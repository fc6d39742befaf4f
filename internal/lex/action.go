package lex

type ActionType int

const (
	ActionNone ActionType = iota
	ActionScan
	ActionClassify
)

// Action is what the lexer does with text matched by a pattern.
type Action[K any] struct {
	Type     ActionType
	Kind     K
	Classify func(text string) K
}

// Scan makes the matched text a token of the given kind.
func Scan[K any](kind K) Action[K] {
	return Action[K]{
		Type: ActionScan,
		Kind: kind,
	}
}

// Classify makes the matched text a token whose kind is decided by fn.
func Classify[K any](fn func(text string) K) Action[K] {
	return Action[K]{
		Type:     ActionClassify,
		Classify: fn,
	}
}

// Discard drops the matched text without producing a token.
func Discard[K any]() Action[K] {
	return Action[K]{}
}
