package parser

import (
	"strconv"
	"strings"

	"github.com/leonardinius/gospi/internal/token"
)

// RPNPrinter renders a tree in reverse Polish notation, e.g. "x 1 2 + :=".
// Negation prints as "~", unary plus is dropped, statements are joined by "; ".
type RPNPrinter struct {
	out []string
}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinaryOp implements Visitor.
func (p *RPNPrinter) VisitBinaryOp(node *BinaryOp) error {
	return p.reverse(node.Operator.Lexeme, node.Left, node.Right)
}

// VisitUnaryOp implements Visitor.
func (p *RPNPrinter) VisitUnaryOp(node *UnaryOp) error {
	operator := ""
	if node.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, node.Operand)
}

// VisitNum implements Visitor.
func (p *RPNPrinter) VisitNum(node *Num) error {
	p.out = append(p.out, strconv.FormatInt(int64(node.Value), 10))
	return nil
}

// VisitVariable implements Visitor.
func (p *RPNPrinter) VisitVariable(node *Variable) error {
	p.out = append(p.out, node.Name)
	return nil
}

// VisitAssign implements Visitor.
func (p *RPNPrinter) VisitAssign(node *Assign) error {
	return p.reverse(node.Operator.Lexeme, node.Target, node.Value)
}

// VisitCompound implements Visitor.
func (p *RPNPrinter) VisitCompound(node *Compound) error {
	var statements []string
	for _, stmt := range node.Statements {
		if s := NewRPNPrinter().Print(stmt); s != "" {
			statements = append(statements, s)
		}
	}
	if len(statements) > 0 {
		p.out = append(p.out, strings.Join(statements, "; "))
	}
	return nil
}

// VisitNoOp implements Visitor.
func (p *RPNPrinter) VisitNoOp(node *NoOp) error {
	return nil
}

func (p *RPNPrinter) reverse(name string, nodes ...Node) error {
	for _, node := range nodes {
		if err := node.Accept(p); err != nil {
			return err
		}
	}
	if name != "" {
		p.out = append(p.out, name)
	}
	return nil
}

func (p *RPNPrinter) Print(node Node) string {
	p.out = nil
	if node == nil {
		return "<nil>"
	}
	_ = node.Accept(p)
	return strings.Join(p.out, " ")
}

var _ Visitor = (*RPNPrinter)(nil)
