package parser

// Visitor is the interface that wraps one Visit method per node kind.
//
// A consumer that only cares about a few node kinds embeds Walker and
// overrides just those methods; the rest fall back to structural recursion.
type Visitor interface {
	VisitUnaryOp(node *UnaryOp) error
	VisitBinaryOp(node *BinaryOp) error
	VisitNum(node *Num) error
	VisitVariable(node *Variable) error
	VisitAssign(node *Assign) error
	VisitCompound(node *Compound) error
	VisitNoOp(node *NoOp) error
}

// Walk visits the children of node with v, in source order.
// It stops at the first error.
func Walk(v Visitor, node Node) error {
	switch n := node.(type) {
	case *UnaryOp:
		return n.Operand.Accept(v)
	case *BinaryOp:
		if err := n.Left.Accept(v); err != nil {
			return err
		}
		return n.Right.Accept(v)
	case *Assign:
		if err := n.Target.Accept(v); err != nil {
			return err
		}
		return n.Value.Accept(v)
	case *Compound:
		for _, stmt := range n.Statements {
			if err := stmt.Accept(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Walker implements Visitor by walking into children.
//
// Self is the outermost visitor; children are dispatched to it so overridden
// methods of an embedding type are honoured. A type embedding Walker must set
// Self to itself, preferably with NewWalker; left nil, the Walker dispatches
// to itself and the embedding type's overrides are never called below the root.
type Walker struct {
	Self Visitor
}

// NewWalker returns a Walker dispatching children to self.
func NewWalker(self Visitor) Walker {
	return Walker{Self: self}
}

func (w Walker) self() Visitor {
	if w.Self != nil {
		return w.Self
	}
	return w
}

// VisitUnaryOp implements Visitor.
func (w Walker) VisitUnaryOp(node *UnaryOp) error {
	return Walk(w.self(), node)
}

// VisitBinaryOp implements Visitor.
func (w Walker) VisitBinaryOp(node *BinaryOp) error {
	return Walk(w.self(), node)
}

// VisitNum implements Visitor.
func (w Walker) VisitNum(node *Num) error {
	return nil
}

// VisitVariable implements Visitor.
func (w Walker) VisitVariable(node *Variable) error {
	return nil
}

// VisitAssign implements Visitor.
func (w Walker) VisitAssign(node *Assign) error {
	return Walk(w.self(), node)
}

// VisitCompound implements Visitor.
func (w Walker) VisitCompound(node *Compound) error {
	return Walk(w.self(), node)
}

// VisitNoOp implements Visitor.
func (w Walker) VisitNoOp(node *NoOp) error {
	return nil
}

var _ Visitor = Walker{}
