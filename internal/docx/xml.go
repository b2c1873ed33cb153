// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Page geometry in twentieths of a point (US Letter, 1" top/bottom,
// 1.25" left/right).
const (
	pageWidth   = 12240
	pageHeight  = 15840
	marginTop   = 1440
	marginSide  = 1800
	textWidth   = pageWidth - 2*marginSide
	headerSpace = 720
)

func wName(local string) xml.Name {
	return xml.Name{Local: "w:" + local}
}

func wAttr(local, value string) xml.Attr {
	return xml.Attr{Name: wName(local), Value: value}
}

// emptyElement writes a self-closing w: element with the given attributes.
func emptyElement(e *xml.Encoder, local string, attrs ...xml.Attr) error {
	start := xml.StartElement{Name: wName(local), Attr: attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// MarshalXML writes the spacing as a w:spacing element with both attributes.
func (s Spacing) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return emptyElement(e, "spacing",
		wAttr("before", strconv.Itoa(s.Before)),
		wAttr("after", strconv.Itoa(s.After)),
	)
}

// MarshalXML writes the paragraph as w:p.
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wName("p")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != "" || p.Spacing != nil {
		pPr := xml.StartElement{Name: wName("pPr")}
		if err := e.EncodeToken(pPr); err != nil {
			return err
		}
		if p.Style != "" {
			if err := emptyElement(e, "pStyle", wAttr("val", p.Style)); err != nil {
				return err
			}
		}
		if p.Spacing != nil {
			if err := e.Encode(p.Spacing); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(pPr.End()); err != nil {
			return err
		}
	}

	if p.Text != "" {
		if err := encodeRun(e, p.Text); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// encodeRun writes text as a single w:r, turning newlines into w:br and
// tabs into w:tab.
func encodeRun(e *xml.Encoder, text string) error {
	run := xml.StartElement{Name: wName("r")}
	if err := e.EncodeToken(run); err != nil {
		return err
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if err := emptyElement(e, "br"); err != nil {
				return err
			}
		}
		for j, chunk := range strings.Split(line, "\t") {
			if j > 0 {
				if err := emptyElement(e, "tab"); err != nil {
					return err
				}
			}
			if chunk == "" {
				continue
			}
			t := xml.StartElement{
				Name: wName("t"),
				Attr: []xml.Attr{{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}},
			}
			if err := e.EncodeToken(t); err != nil {
				return err
			}
			if err := e.EncodeToken(xml.CharData(chunk)); err != nil {
				return err
			}
			if err := e.EncodeToken(t.End()); err != nil {
				return err
			}
		}
	}
	return e.EncodeToken(run.End())
}

// MarshalXML writes the row as w:tr. Each cell gets a fixed width so the
// columns split the text area evenly.
func (r Row) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wName("tr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties.SpacingAfter != nil {
		trPr := xml.StartElement{Name: wName("trPr")}
		if err := e.EncodeToken(trPr); err != nil {
			return err
		}
		if err := emptyElement(e, "spacing", wAttr("after", strconv.Itoa(*r.Properties.SpacingAfter))); err != nil {
			return err
		}
		if err := e.EncodeToken(trPr.End()); err != nil {
			return err
		}
	}

	width := strconv.Itoa(columnWidth(len(r.Cells)))
	for _, text := range r.Cells {
		tc := xml.StartElement{Name: wName("tc")}
		if err := e.EncodeToken(tc); err != nil {
			return err
		}
		tcPr := xml.StartElement{Name: wName("tcPr")}
		if err := e.EncodeToken(tcPr); err != nil {
			return err
		}
		if err := emptyElement(e, "tcW", wAttr("type", "dxa"), wAttr("w", width)); err != nil {
			return err
		}
		if err := e.EncodeToken(tcPr.End()); err != nil {
			return err
		}
		// A cell must contain at least one paragraph, even when empty.
		if err := e.Encode(Paragraph{Text: text}); err != nil {
			return err
		}
		if err := e.EncodeToken(tc.End()); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// MarshalXML writes the table as w:tbl with its properties and grid.
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wName("tbl")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	tblPr := xml.StartElement{Name: wName("tblPr")}
	if err := e.EncodeToken(tblPr); err != nil {
		return err
	}
	if t.Style != "" {
		if err := emptyElement(e, "tblStyle", wAttr("val", t.Style)); err != nil {
			return err
		}
	}
	if err := emptyElement(e, "tblW", wAttr("type", "auto"), wAttr("w", "0")); err != nil {
		return err
	}
	if err := emptyElement(e, "tblLook",
		wAttr("val", "04A0"),
		wAttr("firstRow", "1"),
		wAttr("lastRow", "0"),
		wAttr("firstColumn", "1"),
		wAttr("lastColumn", "0"),
		wAttr("noHBand", "0"),
		wAttr("noVBand", "1"),
	); err != nil {
		return err
	}
	if err := e.EncodeToken(tblPr.End()); err != nil {
		return err
	}

	grid := xml.StartElement{Name: wName("tblGrid")}
	if err := e.EncodeToken(grid); err != nil {
		return err
	}
	width := strconv.Itoa(columnWidth(t.cols))
	for i := 0; i < t.cols; i++ {
		if err := emptyElement(e, "gridCol", wAttr("w", width)); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(grid.End()); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := e.Encode(row); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

func columnWidth(cols int) int {
	if cols <= 0 {
		return textWidth
	}
	return textWidth / cols
}

// encodeSectionProperties writes the trailing w:sectPr that sets page size
// and margins. Word expects it as the last child of w:body.
func encodeSectionProperties(e *xml.Encoder) error {
	sectPr := xml.StartElement{Name: wName("sectPr")}
	if err := e.EncodeToken(sectPr); err != nil {
		return err
	}
	if err := emptyElement(e, "pgSz", wAttr("w", strconv.Itoa(pageWidth)), wAttr("h", strconv.Itoa(pageHeight))); err != nil {
		return err
	}
	if err := emptyElement(e, "pgMar",
		wAttr("top", strconv.Itoa(marginTop)),
		wAttr("right", strconv.Itoa(marginSide)),
		wAttr("bottom", strconv.Itoa(marginTop)),
		wAttr("left", strconv.Itoa(marginSide)),
		wAttr("header", strconv.Itoa(headerSpace)),
		wAttr("footer", strconv.Itoa(headerSpace)),
		wAttr("gutter", "0"),
	); err != nil {
		return err
	}
	return e.EncodeToken(sectPr.End())
}

// marshalBody renders word/document.xml.
func (d *Document) marshalBody() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	e := xml.NewEncoder(&buf)
	root := xml.StartElement{
		Name: wName("document"),
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:w"}, Value: nsW},
			{Name: xml.Name{Local: "xmlns:r"}, Value: nsR},
		},
	}
	if err := e.EncodeToken(root); err != nil {
		return nil, err
	}
	body := xml.StartElement{Name: wName("body")}
	if err := e.EncodeToken(body); err != nil {
		return nil, err
	}

	for _, b := range d.blocks {
		if err := e.Encode(b); err != nil {
			return nil, err
		}
	}

	if err := encodeSectionProperties(e); err != nil {
		return nil, err
	}
	if err := e.EncodeToken(body.End()); err != nil {
		return nil, err
	}
	if err := e.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := e.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
