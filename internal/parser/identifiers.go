package parser

type identifierCollector struct {
	Walker
	reads, writes []string
	seen          map[string]bool
}

// Identifiers returns the variable names read and assigned in node,
// each list in order of first occurrence.
func Identifiers(node Node) (reads, writes []string, err error) {
	c := &identifierCollector{seen: make(map[string]bool)}
	c.Walker = NewWalker(c)
	if err := node.Accept(c); err != nil {
		return nil, nil, err
	}
	return c.reads, c.writes, nil
}

// VisitVariable implements Visitor.
func (c *identifierCollector) VisitVariable(node *Variable) error {
	if !c.seen["r:"+node.Name] {
		c.seen["r:"+node.Name] = true
		c.reads = append(c.reads, node.Name)
	}
	return nil
}

// VisitAssign implements Visitor.
func (c *identifierCollector) VisitAssign(node *Assign) error {
	// Right-hand side is evaluated before the store happens.
	if err := node.Value.Accept(c); err != nil {
		return err
	}
	if !c.seen["w:"+node.Target.Name] {
		c.seen["w:"+node.Target.Name] = true
		c.writes = append(c.writes, node.Target.Name)
	}
	return nil
}

var _ Visitor = (*identifierCollector)(nil)
