package docx

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
// Paragraphs and Tables only hold direct children of <w:body>; paragraphs
// inside tables or content controls belong to those containers.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}

// paragraphXML represents a paragraph element (<w:p>).
// Runs and hyperlink runs are kept in document order.
type paragraphXML struct {
	Runs []runXML
}

// hyperlinkXML represents a hyperlink (<w:hyperlink>).
type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}

// UnmarshalXML walks the paragraph children in order so that text inside
// hyperlinks lands between the surrounding runs.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return fmt.Errorf("reading paragraph: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "r":
				var run runXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, run)
			case "hyperlink":
				var link hyperlinkXML
				if err := d.DecodeElement(&link, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, link.Runs...)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// Text returns the concatenated text of all runs.
func (p paragraphXML) Text() string {
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// runXML represents a text run (<w:r>).
// Text holds the run content with tabs, line breaks and non-breaking
// hyphens rendered in the order they appear.
type runXML struct {
	Text string
}

// UnmarshalXML collects the textual children of a run in document order.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder

	for {
		tok, err := d.Token()
		if err != nil {
			return fmt.Errorf("reading run: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				var text string
				if err := d.DecodeElement(&text, &t); err != nil {
					return err
				}
				sb.WriteString(text)
				continue
			case "tab", "ptab":
				sb.WriteString("\t")
			case "br":
				// Page and column breaks carry no text.
				switch attrVal(t, "type") {
				case "", "textWrapping":
					sb.WriteString("\n")
				}
			case "cr":
				sb.WriteString("\n")
			case "noBreakHyphen":
				sb.WriteString("-")
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			r.Text = sb.String()
			return nil
		}
	}
}

// attrVal returns the value of the attribute with the given local name.
func attrVal(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name      `xml:"tbl"`
	Rows    []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName    xml.Name       `xml:"tr"`
	Properties rowPropsXML    `xml:"trPr"`
	Cells      []tableCellXML `xml:"tc"`
}

// rowPropsXML represents row properties.
type rowPropsXML struct {
	GridBefore gridCountXML `xml:"gridBefore"`
}

// gridCountXML represents a count of grid columns.
type gridCountXML struct {
	Val string `xml:"val,attr"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	GridSpan gridCountXML `xml:"gridSpan"`
	VMerge   *vMergeXML   `xml:"vMerge"`
}

// vMergeXML represents vertical merge.
type vMergeXML struct {
	Val string `xml:"val,attr"` // "restart", "continue" or empty (continue)
}

// continues reports whether the cell continues a vertical merge from the
// row above.
func (c cellPropsXML) continues() bool {
	return c.VMerge != nil && c.VMerge.Val != "restart"
}

// Text returns the text of the cell's own paragraphs joined by newlines.
// Paragraphs of nested tables are not included.
func (c tableCellXML) Text() string {
	parts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// contentTypesXML represents [Content_Types].xml.
type contentTypesXML struct {
	Defaults  []contentTypeDefaultXML  `xml:"Default"`
	Overrides []contentTypeOverrideXML `xml:"Override"`
}

type contentTypeDefaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypeOverrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// lookup returns the content type of the named part: its override, or
// the default for its extension.
func (c contentTypesXML) lookup(part string) string {
	for _, o := range c.Overrides {
		if strings.EqualFold(strings.TrimPrefix(o.PartName, "/"), part) {
			return o.ContentType
		}
	}
	ext := strings.TrimPrefix(path.Ext(part), ".")
	for _, d := range c.Defaults {
		if strings.EqualFold(d.Extension, ext) {
			return d.ContentType
		}
	}
	return ""
}

// relationshipsXML represents a relationships part such as _rels/.rels.
type relationshipsXML struct {
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}
