package xmlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Bytes(t *testing.T) {
	t.Parallel()

	doc := NewDocument("ENVELOPE")
	header := doc.Root.AddChild("HEADER")
	header.AddText("TALLYREQUEST", "Import Data")
	body := doc.Root.AddChild("BODY")
	msg := body.AddChild("TALLYMESSAGE")
	msg.SetAttr("xmlns:UDF", "TallyUDF")
	voucher := msg.AddChild("VOUCHER")
	voucher.SetAttr("VCHTYPE", "Retail Sale").SetAttr("ACTION", "Create")
	voucher.AddText("PARTYNAME", "Cash")

	want := `<?xml version="1.0" encoding="UTF-8"?>
<ENVELOPE><HEADER><TALLYREQUEST>Import Data</TALLYREQUEST></HEADER><BODY><TALLYMESSAGE xmlns:UDF="TallyUDF"><VOUCHER VCHTYPE="Retail Sale" ACTION="Create"><PARTYNAME>Cash</PARTYNAME></VOUCHER></TALLYMESSAGE></BODY></ENVELOPE>`

	assert.Equal(t, want, doc.String())
}

func TestDocument_PreservesChildOrder(t *testing.T) {
	t.Parallel()

	doc := NewDocument("root")
	doc.Root.AddText("b", "1")
	doc.Root.AddText("a", "2")
	doc.Root.AddText("c", "3")

	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<root><b>1</b><a>2</a><c>3</c></root>", doc.String())
}

func TestDocument_EscapesSpecialCharacters(t *testing.T) {
	t.Parallel()

	doc := NewDocument("root")
	doc.Root.AddText("name", `M&S "Premium" <Deluxe>`)
	doc.Root.AddChild("tag").SetAttr("value", "a&b")

	out := doc.String()
	assert.Contains(t, out, "<name>M&amp;S &quot;Premium&quot; &lt;Deluxe&gt;</name>")
	assert.Contains(t, out, `<tag value="a&amp;b"/>`)
}

func TestDocument_LeadingSpaceTextSurvives(t *testing.T) {
	t.Parallel()

	// Quantity fields carry a schema-mandated leading space.
	doc := NewDocument("root")
	doc.Root.AddText("ACTUALQTY", " 2 Pcs")

	assert.Contains(t, doc.String(), "<ACTUALQTY> 2 Pcs</ACTUALQTY>")
}

func TestDocument_EmptyElementSelfCloses(t *testing.T) {
	t.Parallel()

	doc := NewDocument("root")
	doc.Root.AddChild("EMPTY")

	assert.Contains(t, doc.String(), "<EMPTY/>")
}
