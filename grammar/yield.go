package grammar

// Yield strips the precedence tag from every Choice in a Tree, recursing into
// List values, producing the bare nested-list shape a grammar's surface
// syntax would suggest. It is a display/testing convenience; the tagged form
// returned by the matchers is authoritative and retains the information
// needed to tell which Alt branch actually matched.
func Yield(t Tree) interface{} {
	switch v := t.(type) {
	case Choice:
		return Yield(v.Value)
	case List:
		out := make([]interface{}, len(v))
		for i, sub := range v {
			out[i] = Yield(sub)
		}
		return out
	case Leaf:
		return string(v)
	default:
		return v
	}
}
