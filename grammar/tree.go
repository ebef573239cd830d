package grammar

// Tree is the value produced by a successful match: nil (the zero-length
// match of Opt/Look/NLook), a Leaf (a terminal match), a List (a Seq or Mult
// result), or a Choice (an Alt result, carrying the 1-based precedence of the
// branch that matched). It lives here, rather than in the root pika package,
// so that both the bottomup and topdown drivers can construct and consume it
// without an import cycle.
type Tree interface{}

// Leaf is the matched text of a Str or Rgx terminal.
type Leaf string

// List is the ordered result of a Seq or Mult match.
type List []Tree

// Choice wraps the value produced by the winning branch of an Alt match with
// that branch's 1-based precedence (lower is higher priority).
type Choice struct {
	Prec  int
	Value Tree
}
