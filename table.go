package htmldoc

// buildTable groups the table element's row candidates into a Table.
// A thead/tbody wrapper child is flattened one level; any other child is
// treated as a row candidate directly.
func (b *builder) buildTable(id NodeID, depth int) (*Table, error) {
	n := b.tree.Node(id)

	table := &Table{}
	for _, child := range n.Children {
		c := b.tree.Node(child)
		if c.Kind == KindElement && (c.Tag == "tbody" || c.Tag == "thead") {
			for _, row := range c.Children {
				if err := b.buildTableRow(table, row, depth+1); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := b.buildTableRow(table, child, depth); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// buildTableRow appends a row to the table if it produced at least one
// surviving cell. A child is a cell only if its tag is td or th; cells
// with no child nodes at all are skipped entirely.
func (b *builder) buildTableRow(table *Table, id NodeID, depth int) error {
	n := b.tree.Node(id)

	var row TableRow
	for _, child := range n.Children {
		c := b.tree.Node(child)
		if c.Kind != KindElement || (c.Tag != "td" && c.Tag != "th") {
			continue
		}
		if len(c.Children) == 0 {
			continue
		}
		if err := b.buildTableCell(&row, child, depth+1); err != nil {
			return err
		}
	}

	if len(row.Cells) > 0 {
		table.Rows = append(table.Rows, row)
	}
	return nil
}

// buildTableCell parses the cell's inline content and records it together
// with the cell's resolved width.
func (b *builder) buildTableCell(row *TableRow, id NodeID, depth int) error {
	n := b.tree.Node(id)

	var paragraph Paragraph
	for _, child := range n.Children {
		if _, _, err := b.buildInline(child, &paragraph, depth+1); err != nil {
			return err
		}
	}
	width, _ := widthHeight(n)
	row.Cells = append(row.Cells, TableCell{
		Content: paragraph.Take(),
		Width:   width,
	})
	return nil
}
