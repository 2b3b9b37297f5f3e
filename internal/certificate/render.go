package certificate

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/models"
)

// Table geometry, in points. The table sits inside a frame that starts
// 250pt from the left edge and is centred horizontally within it.
const (
	marginLeft   = 250.0
	marginRight  = 72.0
	marginTop    = 72.0
	topSpacer    = 20.0
	labelWidth   = 100.0
	valueWidth   = 200.0
	rowHeight    = 16.0
	cellPadding  = 6.0
	fontSize     = 8.0
	borderWidth  = 1.0
	tableColumns = 2
)

// Row labels, in print order.
const (
	LabelName            = "氏名"
	LabelModel           = "型式"
	LabelSerialNo        = "シリアルNo."
	LabelSaleDate        = "販売日"
	LabelWarrantyEndDate = "保証終了日"
)

// Table is a rendered single-page table document.
type Table struct {
	Rows  [][tableColumns]string
	PDF   []byte
	Pages int
}

// TableRows lays out the display fields as label/value pairs.
func TableRows(f models.DisplayFields) [][tableColumns]string {
	return [][tableColumns]string{
		{LabelName, f.Name},
		{LabelModel, f.Model},
		{LabelSerialNo, f.SerialNo},
		{LabelSaleDate, f.SaleDate},
		{LabelWarrantyEndDate, f.WarrantyEndDate},
	}
}

// RenderTable draws the bordered, left-aligned five-row table on a landscape
// A4 page using font for every glyph. Empty fields render as blank cells.
func RenderTable(font *Font, f models.DisplayFields) (t *Table, err error) {
	if font == nil {
		return nil, fmt.Errorf("%w: no font", common.ErrRender)
	}

	// fpdf's TrueType parser panics on some malformed tables.
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("%w: %v", common.ErrRender, r)
		}
	}()

	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(marginLeft, marginTop+topSpacer, marginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(font.family, "", font.data)
	if pdf.Err() {
		return nil, fmt.Errorf("%w: register font %q: %v", common.ErrRender, font.family, pdf.Error())
	}

	pdf.AddPage()
	pdf.SetFont(font.family, "", fontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(borderWidth)
	pdf.SetCellMargin(cellPadding)

	pageWidth, _ := pdf.GetPageSize()
	frameWidth := pageWidth - marginLeft - marginRight
	x := marginLeft + (frameWidth-labelWidth-valueWidth)/2
	y := marginTop + topSpacer

	rows := TableRows(f)
	for _, row := range rows {
		pdf.SetXY(x, y)
		pdf.CellFormat(labelWidth, rowHeight, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidth, rowHeight, row[1], "1", 0, "L", false, 0, "")
		y += rowHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRender, err)
	}

	return &Table{Rows: rows, PDF: buf.Bytes(), Pages: pdf.PageCount()}, nil
}
