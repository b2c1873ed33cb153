// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Package part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRels         = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
)

// Parts lists every part Write emits, in write order.
var Parts = []string{
	partContentTypes,
	partRels,
	partDocument,
	partDocumentRels,
	partStyles,
	partNumbering,
	partCore,
	partApp,
}

const contentTypesXML = `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const packageRelsXML = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

// bulletNumID is the w:numId the ListBullet style points at.
const bulletNumID = 1

const numberingXML = `<w:numbering xmlns:w="` + nsW + `">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0">` +
	`<w:start w:val="1"/>` +
	`<w:numFmt w:val="bullet"/>` +
	`<w:lvlText w:val="•"/>` +
	`<w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

// headingSizes are the run sizes (half-points) for Heading1..Heading9.
var headingSizes = [maxHeadingLevel]int{28, 26, 24, 22, 22, 22, 22, 22, 22}

// stylesXML renders word/styles.xml with the Normal, Title, HeadingN,
// ListBullet and TableGrid styles.
func stylesXML() string {
	var b strings.Builder
	b.WriteString(`<w:styles xmlns:w="` + nsW + `">`)
	b.WriteString(`<w:docDefaults>` +
		`<w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/>` +
		`<w:sz w:val="22"/><w:szCs w:val="22"/><w:lang w:val="pt-BR"/></w:rPr></w:rPrDefault>` +
		`<w:pPrDefault><w:pPr><w:spacing w:after="200" w:line="276" w:lineRule="auto"/></w:pPr></w:pPrDefault>` +
		`</w:docDefaults>`)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)

	b.WriteString(`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/>` +
		`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
		`<w:pPr><w:pBdr><w:bottom w:val="single" w:sz="8" w:space="4" w:color="4F81BD"/></w:pBdr>` +
		`<w:spacing w:after="300" w:line="240" w:lineRule="auto"/><w:contextualSpacing/></w:pPr>` +
		`<w:rPr><w:color w:val="17365D"/><w:spacing w:val="5"/><w:kern w:val="28"/>` +
		`<w:sz w:val="52"/><w:szCs w:val="52"/></w:rPr></w:style>`)

	for i, size := range headingSizes {
		level := i + 1
		fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="Heading%d"><w:name w:val="heading %d"/>`+
			`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="9"/><w:qFormat/>`+
			`<w:pPr><w:keepNext/><w:keepLines/><w:spacing w:before="480" w:after="0"/><w:outlineLvl w:val="%d"/></w:pPr>`+
			`<w:rPr><w:b/><w:bCs/><w:color w:val="365F91"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:style>`,
			level, level, i, size, size)
	}

	fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/>`+
		`<w:basedOn w:val="Normal"/><w:uiPriority w:val="99"/><w:qFormat/>`+
		`<w:pPr><w:numPr><w:numId w:val="%d"/></w:numPr><w:contextualSpacing/></w:pPr></w:style>`, bulletNumID)

	b.WriteString(`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/>` +
		`<w:uiPriority w:val="59"/><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr>` +
		`<w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`</w:tblBorders></w:tblPr></w:style>`)

	b.WriteString(`</w:styles>`)
	return b.String()
}

// coreXML renders docProps/core.xml.
func coreXML(props CoreProperties) (string, error) {
	created := props.Created
	if created.IsZero() {
		created = time.Now()
	}
	var b strings.Builder
	b.WriteString(`<cp:coreProperties` +
		` xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/"` +
		` xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	for _, f := range []struct{ tag, value string }{
		{"dc:title", props.Title},
		{"dc:creator", props.Creator},
		{"cp:lastModifiedBy", props.Creator},
		{"dc:identifier", props.Identifier},
	} {
		if f.value == "" {
			continue
		}
		b.WriteString("<" + f.tag + ">")
		if err := xml.EscapeText(&b, []byte(f.value)); err != nil {
			return "", err
		}
		b.WriteString("</" + f.tag + ">")
	}
	ts := created.UTC().Format(time.RFC3339)
	b.WriteString(`<dcterms:created xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:created>`)
	b.WriteString(`<dcterms:modified xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:modified>`)
	b.WriteString(`</cp:coreProperties>`)
	return b.String(), nil
}

const appXML = `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
	`<Application>syllabus</Application>` +
	`</Properties>`

// Write encodes the document as a .docx package.
func (d *Document) Write(w io.Writer) error {
	body, err := d.marshalBody()
	if err != nil {
		return fmt.Errorf("encoding document body: %w", err)
	}
	core, err := coreXML(d.Properties)
	if err != nil {
		return fmt.Errorf("encoding core properties: %w", err)
	}

	parts := map[string][]byte{
		partContentTypes: []byte(xml.Header + contentTypesXML),
		partRels:         []byte(xml.Header + packageRelsXML),
		partDocument:     body,
		partDocumentRels: []byte(xml.Header + documentRelsXML),
		partStyles:       []byte(xml.Header + stylesXML()),
		partNumbering:    []byte(xml.Header + numberingXML),
		partCore:         []byte(xml.Header + core),
		partApp:          []byte(xml.Header + appXML),
	}

	zw := zip.NewWriter(w)
	for _, name := range Parts {
		f, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("creating part %s: %w", name, err)
		}
		if _, err := io.Copy(f, bytes.NewReader(parts[name])); err != nil {
			return fmt.Errorf("writing part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing package: %w", err)
	}
	return nil
}

// Save writes the document to path, creating or truncating the file.
func (d *Document) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return d.Write(f)
}
