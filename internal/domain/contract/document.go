package contract

import (
	"regexp"
	"strings"
)

// The template body is parsed once, at authoring time, into a typed node tree.
// Rendering and placeholder inventory both walk the tree; nothing scrapes
// rendered HTML after the fact.

type NodeKind int

const (
	NodeText NodeKind = iota
	NodePlaceholder
	NodeCheckboxGroup
)

type Node struct {
	Kind NodeKind

	// NodeText
	Text string

	// NodePlaceholder
	Key string

	// NodeCheckboxGroup
	Group   string
	Options []string
}

type Document struct {
	Nodes []Node
}

// Token syntax: {{contract.province}}, {{custom.my_key}}, {{fee_key}} for
// placeholders and {{checkbox.consent:Option A|Option B}} for checkbox groups.
var tokenRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)(?::([^}]*))?\s*\}\}`)

const checkboxPrefix = "checkbox."

func ParseDocument(htmlContent string) *Document {
	doc := &Document{}
	rest := htmlContent

	for {
		loc := tokenRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}

		if loc[0] > 0 {
			doc.Nodes = append(doc.Nodes, Node{Kind: NodeText, Text: rest[:loc[0]]})
		}

		key := rest[loc[2]:loc[3]]
		if strings.HasPrefix(key, checkboxPrefix) {
			var options []string
			if loc[4] >= 0 {
				for _, opt := range strings.Split(rest[loc[4]:loc[5]], "|") {
					if opt = strings.TrimSpace(opt); opt != "" {
						options = append(options, opt)
					}
				}
			}
			doc.Nodes = append(doc.Nodes, Node{
				Kind:    NodeCheckboxGroup,
				Group:   strings.TrimPrefix(key, checkboxPrefix),
				Options: options,
			})
		} else {
			doc.Nodes = append(doc.Nodes, Node{Kind: NodePlaceholder, Key: key})
		}

		rest = rest[loc[1]:]
	}

	if rest != "" {
		doc.Nodes = append(doc.Nodes, Node{Kind: NodeText, Text: rest})
	}

	return doc
}

// Placeholders returns the distinct variable keys referenced by the document.
func (d *Document) Placeholders() KeySet {
	out := NewKeySet()
	for _, n := range d.Nodes {
		if n.Kind == NodePlaceholder {
			out.Add(n.Key)
		}
	}
	return out
}

// CheckboxGroups returns the group names in document order.
func (d *Document) CheckboxGroups() []string {
	var out []string
	for _, n := range d.Nodes {
		if n.Kind == NodeCheckboxGroup {
			out = append(out, n.Group)
		}
	}
	return out
}

// Render substitutes variable values and checkbox selections into the node
// tree. A placeholder with no value keeps its raw token so a half-rendered
// document is visibly incomplete rather than silently blank.
func (d *Document) Render(values map[string]string, checked map[string][]string) string {
	var b strings.Builder

	for _, n := range d.Nodes {
		switch n.Kind {
		case NodeText:
			b.WriteString(n.Text)

		case NodePlaceholder:
			if v, ok := values[n.Key]; ok {
				b.WriteString(v)
			} else {
				b.WriteString("{{" + n.Key + "}}")
			}

		case NodeCheckboxGroup:
			selected := NewKeySet(checked[n.Group]...)
			b.WriteString(`<span class="checkbox-group" data-group="` + n.Group + `">`)
			for _, opt := range n.Options {
				mark := `<input type="checkbox" disabled> `
				if selected.Has(opt) {
					mark = `<input type="checkbox" checked disabled> `
				}
				b.WriteString(`<label>` + mark + opt + `</label>`)
			}
			b.WriteString(`</span>`)
		}
	}

	return b.String()
}
