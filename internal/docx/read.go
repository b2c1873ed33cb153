// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Open reads the .docx package at path and decodes its body.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()
	return readPackage(&zr.Reader)
}

// Read decodes a .docx package held in r.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("reading package: %w", err)
	}
	return readPackage(zr)
}

func readPackage(zr *zip.Reader) (*Document, error) {
	for _, f := range zr.File {
		if f.Name != partDocument {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", partDocument, err)
		}
		defer rc.Close()
		doc, err := decodeDocument(rc)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", partDocument, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("package has no %s part", partDocument)
}

// decodeDocument walks word/document.xml and rebuilds the body-level
// paragraphs and tables. Formatting this package does not write is skipped.
func decodeDocument(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)
	doc := New()
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "p":
			p, err := decodeParagraph(d)
			if err != nil {
				return nil, err
			}
			doc.blocks = append(doc.blocks, p)
		case "tbl":
			t, err := decodeTable(d)
			if err != nil {
				return nil, err
			}
			doc.blocks = append(doc.blocks, t)
		case "sectPr":
			if err := d.Skip(); err != nil {
				return nil, err
			}
		}
	}
}

func attrValue(start xml.StartElement, local string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func attrInt(start xml.StartElement, local string) (int, bool) {
	v, ok := attrValue(start, local)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeParagraph reads a w:p whose start token has been consumed.
func decodeParagraph(d *xml.Decoder) (*Paragraph, error) {
	p := &Paragraph{}
	var text strings.Builder
	inText := false
	depth := 0 // nesting below w:p
	pPrDepth := -1
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "pPr":
				pPrDepth = depth
			case "pStyle":
				if pPrDepth > 0 && depth == pPrDepth+1 {
					p.Style, _ = attrValue(t, "val")
				}
			case "spacing":
				if pPrDepth > 0 && depth == pPrDepth+1 {
					before, _ := attrInt(t, "before")
					after, _ := attrInt(t, "after")
					p.Spacing = &Spacing{Before: before, After: after}
				}
			case "t":
				inText = true
			case "br":
				text.WriteByte('\n')
			case "tab":
				if pPrDepth < 0 || depth <= pPrDepth {
					text.WriteByte('\t')
				}
			}
		case xml.EndElement:
			if depth == 0 {
				p.Text = text.String()
				return p, nil
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "pPr":
				pPrDepth = -1
			}
			depth--
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		}
	}
}

// decodeTable reads a w:tbl whose start token has been consumed.
func decodeTable(d *xml.Decoder) (*Table, error) {
	t := &Table{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tblStyle":
				t.Style, _ = attrValue(el, "val")
			case "gridCol":
				t.cols++
			case "tr":
				row, err := decodeRow(d)
				if err != nil {
					return nil, err
				}
				t.rows = append(t.rows, row)
			}
		case xml.EndElement:
			if el.Name.Local == "tbl" {
				if t.cols == 0 && len(t.rows) > 0 {
					t.cols = len(t.rows[0].Cells)
				}
				return t, nil
			}
		}
	}
}

// decodeRow reads a w:tr whose start token has been consumed. Cell text is
// the cell's paragraphs joined by newlines.
func decodeRow(d *xml.Decoder) (*Row, error) {
	r := &Row{}
	inTrPr := false
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "trPr":
				inTrPr = true
			case "spacing":
				if inTrPr {
					if v, ok := attrInt(el, "after"); ok {
						r.SetSpacingAfter(v)
					}
				}
			case "tc":
				text, err := decodeCell(d)
				if err != nil {
					return nil, err
				}
				r.Cells = append(r.Cells, text)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "trPr":
				inTrPr = false
			case "tr":
				return r, nil
			}
		}
	}
}

func decodeCell(d *xml.Decoder) (string, error) {
	var lines []string
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "p" {
				p, err := decodeParagraph(d)
				if err != nil {
					return "", err
				}
				lines = append(lines, p.Text)
			}
		case xml.EndElement:
			if el.Name.Local == "tc" {
				return strings.Join(lines, "\n"), nil
			}
		}
	}
}
