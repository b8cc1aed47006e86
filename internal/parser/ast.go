package parser

import "github.com/leonardinius/gospi/internal/token"

// Node is a syntax tree node.
//
// Every node owns its children exclusively: the parser never shares
// a node between two parents.
type Node interface {
	Accept(v Visitor) error
}

// UnaryOp is a prefix '+' or '-' applied to one operand.
type UnaryOp struct {
	Operator *token.Token
	Operand  Node
}

var _ Node = (*UnaryOp)(nil)

func (n *UnaryOp) Accept(v Visitor) error {
	return v.VisitUnaryOp(n)
}

// BinaryOp is one of '+', '-', '*', '/' applied to two operands.
type BinaryOp struct {
	Left     Node
	Operator *token.Token
	Right    Node
}

var _ Node = (*BinaryOp)(nil)

func (n *BinaryOp) Accept(v Visitor) error {
	return v.VisitBinaryOp(n)
}

// Num is an integer literal.
type Num struct {
	Token *token.Token
	Value int32
}

var _ Node = (*Num)(nil)

func (n *Num) Accept(v Visitor) error {
	return v.VisitNum(n)
}

// Variable is a reference to a global variable.
type Variable struct {
	Token *token.Token
	Name  string
}

var _ Node = (*Variable)(nil)

func (n *Variable) Accept(v Visitor) error {
	return v.VisitVariable(n)
}

// Assign stores the value of an expression under the target's name.
type Assign struct {
	Target   *Variable
	Operator *token.Token
	Value    Node
}

var _ Node = (*Assign)(nil)

func (n *Assign) Accept(v Visitor) error {
	return v.VisitAssign(n)
}

// Compound is an ordered list of statements.
type Compound struct {
	Statements []Node
}

var _ Node = (*Compound)(nil)

func (n *Compound) Accept(v Visitor) error {
	return v.VisitCompound(n)
}

// NoOp is an empty statement.
type NoOp struct{}

var _ Node = (*NoOp)(nil)

func (n *NoOp) Accept(v Visitor) error {
	return v.VisitNoOp(n)
}
