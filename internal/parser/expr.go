package parser

// Expr is a compiled filter expression. The variant set is closed:
// only the types in this package implement it.
type Expr interface {
	filterExpr()
}

// Identity yields its input unchanged.
type Identity struct{}

// Field accesses an object member by name, yielding null when the
// input is not an object or the key is absent.
type Field struct {
	Name string
}

// Index accesses an array element by position. Negative values count
// from the end.
type Index struct {
	N int
}

// Slice extracts a sub-array. Nil bounds were not specified and take
// their defaults at evaluation time.
type Slice struct {
	Start *int
	End   *int
	Step  *int
}

// Pipe feeds every output of Left into Right.
type Pipe struct {
	Left  Expr
	Right Expr
}

// Iterate yields each element of an array, or each member value of an
// object, as a separate output.
type Iterate struct {
	Inner Expr
}

// Map applies Inner to each element of an array, splicing the results
// into one output stream.
type Map struct {
	Inner Expr
}

// Select yields the input unchanged when Cond's first result is
// truthy, and nothing otherwise.
type Select struct {
	Cond Expr
}

func (Identity) filterExpr() {}
func (Field) filterExpr()    {}
func (Index) filterExpr()    {}
func (Slice) filterExpr()    {}
func (Pipe) filterExpr()     {}
func (Iterate) filterExpr()  {}
func (Map) filterExpr()      {}
func (Select) filterExpr()   {}
