package parser

import (
	"strconv"
	"strings"
)

// AstPrinter renders a tree in parenthesized prefix form,
// e.g. "(:= x (+ 1 (- 2)))".
type AstPrinter struct {
	out *strings.Builder
}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinaryOp implements Visitor.
func (p *AstPrinter) VisitBinaryOp(node *BinaryOp) error {
	return p.parenthesize(node.Operator.Lexeme, node.Left, node.Right)
}

// VisitUnaryOp implements Visitor.
func (p *AstPrinter) VisitUnaryOp(node *UnaryOp) error {
	return p.parenthesize(node.Operator.Lexeme, node.Operand)
}

// VisitNum implements Visitor.
func (p *AstPrinter) VisitNum(node *Num) error {
	_, _ = p.out.WriteString(strconv.FormatInt(int64(node.Value), 10))
	return nil
}

// VisitVariable implements Visitor.
func (p *AstPrinter) VisitVariable(node *Variable) error {
	_, _ = p.out.WriteString(node.Name)
	return nil
}

// VisitAssign implements Visitor.
func (p *AstPrinter) VisitAssign(node *Assign) error {
	return p.parenthesize(node.Operator.Lexeme, node.Target, node.Value)
}

// VisitCompound implements Visitor.
func (p *AstPrinter) VisitCompound(node *Compound) error {
	return p.parenthesize("compound", node.Statements...)
}

// VisitNoOp implements Visitor.
func (p *AstPrinter) VisitNoOp(node *NoOp) error {
	_, _ = p.out.WriteString("noop")
	return nil
}

func (p *AstPrinter) parenthesize(name string, nodes ...Node) error {
	_, _ = p.out.WriteString("(")
	_, _ = p.out.WriteString(name)
	for _, node := range nodes {
		_, _ = p.out.WriteString(" ")
		if err := node.Accept(p); err != nil {
			return err
		}
	}
	_, _ = p.out.WriteString(")")
	return nil
}

func (p *AstPrinter) Print(node Node) string {
	p.out = new(strings.Builder)
	if node == nil {
		return "<nil>"
	}
	_ = node.Accept(p)
	return p.out.String()
}

var _ Visitor = (*AstPrinter)(nil)
