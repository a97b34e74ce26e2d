package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_NodeTree(t *testing.T) {
	doc := ParseDocument(`<p>Hello {{contract.province}}, rate is {{hourly_rate}}.</p>`)

	require.Len(t, doc.Nodes, 5)

	assert.Equal(t, NodeText, doc.Nodes[0].Kind)
	assert.Equal(t, "<p>Hello ", doc.Nodes[0].Text)

	assert.Equal(t, NodePlaceholder, doc.Nodes[1].Kind)
	assert.Equal(t, "contract.province", doc.Nodes[1].Key)

	assert.Equal(t, NodeText, doc.Nodes[2].Kind)
	assert.Equal(t, ", rate is ", doc.Nodes[2].Text)

	assert.Equal(t, NodePlaceholder, doc.Nodes[3].Kind)
	assert.Equal(t, "hourly_rate", doc.Nodes[3].Key)

	assert.Equal(t, NodeText, doc.Nodes[4].Kind)
	assert.Equal(t, ".</p>", doc.Nodes[4].Text)
}

func TestParseDocument_CheckboxGroup(t *testing.T) {
	doc := ParseDocument(`{{checkbox.consent:I agree | I decline}}`)

	require.Len(t, doc.Nodes, 1)
	n := doc.Nodes[0]

	assert.Equal(t, NodeCheckboxGroup, n.Kind)
	assert.Equal(t, "consent", n.Group)
	assert.Equal(t, []string{"I agree", "I decline"}, n.Options)

	assert.Equal(t, []string{"consent"}, doc.CheckboxGroups())
	assert.Equal(t, 0, doc.Placeholders().Len())
}

func TestRender_SubstitutesValues(t *testing.T) {
	doc := ParseDocument(`Province: {{contract.province}}`)

	out := doc.Render(map[string]string{"contract.province": "Ontario"}, nil)
	assert.Equal(t, "Province: Ontario", out)
}

func TestRender_MissingValueKeepsToken(t *testing.T) {
	doc := ParseDocument(`Rate: {{hourly_rate}}`)

	out := doc.Render(nil, nil)
	assert.Equal(t, "Rate: {{hourly_rate}}", out)
}

func TestRender_CheckboxSelection(t *testing.T) {
	doc := ParseDocument(`{{checkbox.consent:Yes|No}}`)

	out := doc.Render(nil, map[string][]string{"consent": {"Yes"}})

	assert.Contains(t, out, `data-group="consent"`)
	assert.Contains(t, out, `<input type="checkbox" checked disabled> Yes`)
	assert.Contains(t, out, `<input type="checkbox" disabled> No`)
}
