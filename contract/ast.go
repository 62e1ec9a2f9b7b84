// Package contract defines the contract-expression AST that the Calor
// compiler's parser hands to the verifier. The types here are pure data:
// beyond a few naming and classification methods they have no behavior, and
// no dependency on the SMT layer. They are the external collaborator
// named in the verifier spec — the parser that produces them is out of scope.
package contract

// Span locates an expression in source for diagnostics.
type Span struct {
	File      string
	Line, Col int
}

// Expr is the sum of all contract-expression node kinds.
type Expr interface {
	Span() Span
	exprNode()
}

// BinOp names a binary operator.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
	Implies
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "mod"
	case Eq:
		return "="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case And:
		return "&&"
	case Or:
		return "||"
	case Implies:
		return "=>"
	default:
		return "?binop?"
	}
}

// IsArithmetic reports whether op requires integer operands and yields an
// integer result.
func (op BinOp) IsArithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div, Mod:
		return true
	}
	return false
}

// IsComparison reports whether op requires operands of matching kind and
// yields a boolean.
func (op BinOp) IsComparison() bool {
	switch op {
	case Eq, Ne, Lt, Le, Gt, Ge:
		return true
	}
	return false
}

// IsLogical reports whether op requires boolean operands.
func (op BinOp) IsLogical() bool {
	switch op {
	case And, Or, Implies:
		return true
	}
	return false
}

// UnOp names a unary operator.
type UnOp int

const (
	Not UnOp = iota
	Neg
)

func (op UnOp) String() string {
	if op == Not {
		return "!"
	}
	return "-"
}

// QuantKind distinguishes universal from existential quantification.
type QuantKind int

const (
	ForAll QuantKind = iota
	Exists
)

// BoundVar is one (name, type) pair in a quantifier's bound-variable list.
type BoundVar struct {
	Name string
	Type Type
}

// StringOpKind enumerates the fixed set of string operations a contract may
// invoke (spec.md §3/§6). The last block is strictly unsupported and always
// translates to a diagnostic.
type StringOpKind int

const (
	StrLength StringOpKind = iota
	StrContains
	StrStartsWith
	StrEndsWith
	StrEquals
	StrIsEmpty
	StrConcat
	StrIndexOf
	StrSubstring
	StrSubstringFrom
	StrReplace

	// Unsupported tail.
	StrToUpper
	StrToLower
	StrTrim
	StrRegexTest
	StrSplit
	StrIsBlank
)

// Supported reports whether this operation is in the translatable set.
func (k StringOpKind) Supported() bool {
	return k <= StrReplace
}

func (k StringOpKind) String() string {
	names := [...]string{
		"length", "contains", "startsWith", "endsWith", "equals", "isEmpty",
		"concat", "indexOf", "substring", "substringFrom", "replace",
		"toUpper", "toLower", "trim", "regexTest", "split", "isBlank",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?stringop?"
}

// ComparisonMode is an optional attribute on string operations. Only Ordinal
// changes translation; every other mode is accepted syntactically, collapses
// to ordinal comparison, and produces a translator warning (spec.md §4.B).
type ComparisonMode int

const (
	Ordinal ComparisonMode = iota
	IgnoreCase
	InvariantIgnoreCase
	CurrentCulture
	CurrentCultureIgnoreCase
)

func (m ComparisonMode) String() string {
	switch m {
	case Ordinal:
		return "Ordinal"
	case IgnoreCase:
		return "IgnoreCase"
	case InvariantIgnoreCase:
		return "InvariantIgnoreCase"
	case CurrentCulture:
		return "CurrentCulture"
	case CurrentCultureIgnoreCase:
		return "CurrentCultureIgnoreCase"
	default:
		return "?mode?"
	}
}

// IntLit is an integer literal. Value carries the arbitrary 64-bit signed
// source value; the translator renders it into the target bit width.
type IntLit struct {
	Value int64
	Sp    Span
}

func (l *IntLit) Span() Span { return l.Sp }
func (*IntLit) exprNode()    {}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
	Sp    Span
}

func (l *BoolLit) Span() Span { return l.Sp }
func (*BoolLit) exprNode()    {}

// StringLit is a string literal.
type StringLit struct {
	Value string
	Sp    Span
}

func (l *StringLit) Span() Span { return l.Sp }
func (*StringLit) exprNode()    {}

// FloatLit is a floating-point literal. Calor supports f32/f64 at the
// surface, but the verifier core never translates them (spec.md §1
// non-goals); FloatLit exists only so the translator can reject them with a
// precise diagnostic rather than an "unknown node" error.
type FloatLit struct {
	Value float64
	Sp    Span
}

func (l *FloatLit) Span() Span { return l.Sp }
func (*FloatLit) exprNode()    {}

// Ref is a bare identifier: a declared parameter, a bound quantifier
// variable, or the pseudo-name "result".
type Ref struct {
	Name string
	Sp   Span
}

func (r *Ref) Span() Span { return r.Sp }
func (*Ref) exprNode()    {}

// ResultName is the reserved identifier referring to a function's result.
const ResultName = "result"

// Binary is a binary operator application.
type Binary struct {
	Op          BinOp
	Left, Right Expr
	Sp          Span
}

func (b *Binary) Span() Span { return b.Sp }
func (*Binary) exprNode()    {}

// Unary is a unary operator application.
type Unary struct {
	Op      UnOp
	Operand Expr
	Sp      Span
}

func (u *Unary) Span() Span { return u.Sp }
func (*Unary) exprNode()    {}

// Quantified is a forall/exists with a nonempty bound-variable list.
type Quantified struct {
	Kind  QuantKind
	Bound []BoundVar
	Body  Expr
	Sp    Span
}

func (q *Quantified) Span() Span { return q.Sp }
func (*Quantified) exprNode()    {}

// If is `if c then a else b`.
type If struct {
	Cond, Then, Else Expr
	Sp               Span
}

func (i *If) Span() Span { return i.Sp }
func (*If) exprNode()    {}

// Index is `a[i]`.
type Index struct {
	Array, At Expr
	Sp        Span
}

func (x *Index) Span() Span { return x.Sp }
func (*Index) exprNode()    {}

// Len is `len(a)`.
type Len struct {
	Array Expr
	Sp    Span
}

func (l *Len) Span() Span { return l.Sp }
func (*Len) exprNode()    {}

// StringOp is a call to one of the fixed string operations, carrying the
// optional comparison-mode attribute.
type StringOp struct {
	Op   StringOpKind
	Args []Expr
	Mode ComparisonMode
	Sp   Span
}

func (s *StringOp) Span() Span { return s.Sp }
func (*StringOp) exprNode()    {}

// Call is an invocation of a named external function. Always unsupported in
// contracts (spec.md §3); retained as a node kind so the translator can name
// the function in its diagnostic instead of failing on an unknown node.
type Call struct {
	Name string
	Args []Expr
	Sp   Span
}

func (c *Call) Span() Span { return c.Sp }
func (*Call) exprNode()    {}
