package tally

import (
	"github.com/shopspring/decimal"

	"github.com/sangkips/tally-bridge/internal/domain/entity"
	"github.com/sangkips/tally-bridge/pkg/xmlbuilder"
)

// Tally's import schema fixes these values for a retail sale voucher.
const (
	voucherType    = "Retail Sale"
	objView        = "Invoice Voucher View"
	entryMode      = "Item Invoice"
	salesLedger    = "SALES GST"
	roundOffLedger = "Round Up/Down"
	godownName     = "Main Location"
	batchName      = "Primary Batch"
	stateName      = "Maharashtra"
	countryName    = "India"
	tallyDateFmt   = "20060102"
)

// roundOffThreshold suppresses the round-off ledger entry when the
// adjustment is negligible, to avoid zero-value noise in the ledger.
var roundOffThreshold = decimal.RequireFromString("0.001")

var two = decimal.NewFromInt(2)

// booleanFlags are schema-mandated constants for this voucher type. Only
// ISINVOICE is Yes. Order matters: Tally expects the fields in this
// sequence.
var booleanFlags = []struct {
	name  string
	value string
}{
	{"DIFFACTUALQTY", "No"},
	{"ISMSTFROMSYNC", "No"},
	{"ISDELETED", "No"},
	{"ISSECURITYONWHENENTERED", "No"},
	{"ASORIGINAL", "No"},
	{"AUDITED", "No"},
	{"FORJOBCOSTING", "No"},
	{"ISOPTIONAL", "No"},
	{"USEFOREXCISE", "No"},
	{"ISFORJOBWORKIN", "No"},
	{"ALLOWCONSUMPTION", "No"},
	{"USEFORINTEREST", "No"},
	{"USEFORGAINLOSS", "No"},
	{"USEFORGODOWNTRANSFER", "No"},
	{"USEFORCOMPOUND", "No"},
	{"ISREVERSECHARGEAPPLICABLE", "No"},
	{"ISINVOICE", "Yes"},
	{"ISOVERSEASTOURISTTRANS", "No"},
}

// formatAmount renders a monetary value as a plain 2-decimal string,
// e.g. "847.46".
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatRate renders a per-unit rate with the unit token, e.g. "847.46/Pcs".
func formatRate(d decimal.Decimal) string {
	return d.StringFixed(2) + "/Pcs"
}

// formatQuantity renders a quantity the way Tally's importer wants it:
// leading space, whole-number display, unit token, e.g. " 2 Pcs". Halves
// round to even.
func formatQuantity(d decimal.Decimal) string {
	return " " + d.RoundBank(0).String() + " Pcs"
}

// formatGSTRate renders a duty-head rate as a leading-space whole-number
// percentage, e.g. " 9". Halves round to even, so the 2.5 half of the 5%
// slab renders " 2", agreeing with the truncated ledger name "CGST 2%".
func formatGSTRate(d decimal.Decimal) string {
	return " " + d.RoundBank(0).String()
}

// BuildVoucherXML assembles the full import envelope for a computed
// voucher. The caller guarantees a fully populated voucher; no domain
// validation happens here.
func BuildVoucherXML(v *entity.Voucher) []byte {
	doc := xmlbuilder.NewDocument("ENVELOPE")

	header := doc.Root.AddChild("HEADER")
	header.AddText("TALLYREQUEST", "Import Data")

	body := doc.Root.AddChild("BODY")
	importData := body.AddChild("IMPORTDATA")

	requestDesc := importData.AddChild("REQUESTDESC")
	requestDesc.AddText("REPORTNAME", "Vouchers")
	staticVars := requestDesc.AddChild("STATICVARIABLES")
	if v.CompanyName != "" {
		staticVars.AddText("SVCURRENTCOMPANY", v.CompanyName)
	}

	requestData := importData.AddChild("REQUESTDATA")
	msg := requestData.AddChild("TALLYMESSAGE")
	msg.SetAttr("xmlns:UDF", "TallyUDF")

	voucher := msg.AddChild("VOUCHER")
	voucher.SetAttr("REMOTEID", "")
	voucher.SetAttr("VCHKEY", "")
	voucher.SetAttr("VCHTYPE", voucherType)
	voucher.SetAttr("ACTION", "Create")
	voucher.SetAttr("OBJVIEW", objView)

	if v.Address != "" || v.Phone != "" {
		addrList := voucher.AddChild("ADDRESS.LIST").SetAttr("TYPE", "String")
		if v.Address != "" {
			addrList.AddText("ADDRESS", v.Address)
		}
		if v.Phone != "" {
			addrList.AddText("ADDRESS", v.Phone)
		}
	}

	if v.Address != "" {
		buyerAddr := voucher.AddChild("BASICBUYERADDRESS.LIST").SetAttr("TYPE", "String")
		buyerAddr.AddText("BASICBUYERADDRESS", v.Address)
	}

	oldAudit := voucher.AddChild("OLDAUDITENTRYIDS.LIST").SetAttr("TYPE", "Number")
	oldAudit.AddText("OLDAUDITENTRYIDS", "-1")

	tallyDate := v.Date.Format(tallyDateFmt)
	voucher.AddText("DATE", tallyDate)
	voucher.AddText("VCHSTATUSDATE", tallyDate)
	voucher.AddText("GSTREGISTRATIONTYPE", "Unregistered/Consumer")
	voucher.AddText("STATENAME", stateName)
	voucher.AddText("COUNTRYOFRESIDENCE", countryName)
	voucher.AddText("PLACEOFSUPPLY", stateName)
	voucher.AddText("VOUCHERTYPENAME", voucherType)
	voucher.AddText("PARTYNAME", v.CustomerName)
	voucher.AddText("PARTYLEDGERNAME", v.PartyName)
	voucher.AddText("VOUCHERNUMBER", v.VoucherNumber)
	voucher.AddText("BASICBUYERNAME", v.PartyName)
	voucher.AddText("PARTYMAILINGNAME", v.CustomerName)
	voucher.AddText("CONSIGNEEMAILINGNAME", v.PartyName)
	voucher.AddText("CONSIGNEESTATENAME", stateName)
	voucher.AddText("CONSIGNEECOUNTRYNAME", countryName)
	voucher.AddText("BASICBASEPARTYNAME", v.PartyName)
	voucher.AddText("PERSISTEDVIEW", objView)
	voucher.AddText("VCHENTRYMODE", entryMode)
	voucher.AddText("EFFECTIVEDATE", tallyDate)

	for _, flag := range booleanFlags {
		voucher.AddText(flag.name, flag.value)
	}

	for i := range v.Items {
		addInventoryEntry(voucher, &v.Items[i], v.VoucherNumber)
	}

	addLedgerEntries(voucher, v)

	return doc.Bytes()
}

func addInventoryEntry(voucher *xmlbuilder.Element, item *entity.VoucherItemResult, voucherNumber string) {
	entry := voucher.AddChild("ALLINVENTORYENTRIES.LIST")

	if item.IMEI != "" {
		desc := entry.AddChild("BASICUSERDESCRIPTION.LIST").SetAttr("TYPE", "String")
		desc.AddText("BASICUSERDESCRIPTION", item.IMEI)
	}

	entry.AddText("STOCKITEMNAME", item.Name)
	entry.AddText("ISDEEMEDPOSITIVE", "No")
	entry.AddText("RATE", formatRate(item.BaseRate))
	entry.AddText("AMOUNT", formatAmount(item.BaseAmount))
	entry.AddText("ACTUALQTY", formatQuantity(item.Quantity))
	entry.AddText("BILLEDQTY", formatQuantity(item.Quantity))
	entry.AddText("INCLVATRATE", formatRate(item.Rate))

	batch := entry.AddChild("BATCHALLOCATIONS.LIST")
	batch.AddText("GODOWNNAME", godownName)
	batch.AddText("BATCHNAME", batchName)
	batch.AddText("DESTINATIONGODOWNNAME", godownName)
	batch.AddText("TRACKINGNUMBER", voucherNumber)
	batch.AddText("AMOUNT", formatAmount(item.BaseAmount))
	batch.AddText("ACTUALQTY", formatQuantity(item.Quantity))
	batch.AddText("BILLEDQTY", formatQuantity(item.Quantity))
	batch.AddText("INCLVATRATE", formatRate(item.Rate))

	alloc := entry.AddChild("ACCOUNTINGALLOCATIONS.LIST")
	alloc.AddText("LEDGERNAME", salesLedger)
	alloc.AddText("ISDEEMEDPOSITIVE", "No")
	alloc.AddText("AMOUNT", formatAmount(item.BaseAmount))

	// All three duty heads go out on every line; Tally applies whichever
	// matches the company's jurisdiction configuration.
	halfRate := item.GSTRate.Div(two)
	for _, head := range []struct {
		name string
		rate decimal.Decimal
	}{
		{"CGST", halfRate},
		{"SGST/UTGST", halfRate},
		{"IGST", item.GSTRate},
	} {
		detail := entry.AddChild("RATEDETAILS.LIST")
		detail.AddText("GSTRATEDUTYHEAD", head.name)
		detail.AddText("GSTRATEVALUATIONTYPE", "Based on Value")
		detail.AddText("GSTRATE", formatGSTRate(head.rate))
	}
}

func addLedgerEntries(voucher *xmlbuilder.Element, v *entity.Voucher) {
	party := voucher.AddChild("LEDGERENTRIES.LIST")
	party.AddText("LEDGERNAME", v.PartyName)
	party.AddText("ISDEEMEDPOSITIVE", "Yes")
	party.AddText("ISPARTYLEDGER", "Yes")
	party.AddText("AMOUNT", "-"+formatAmount(v.Totals.RoundedTotal))

	// Ledger names must match the GST ledgers pre-created in Tally, which
	// carry the truncated whole-number half rate (e.g. "CGST 9%").
	halfRatePct := ""
	if len(v.Items) > 0 {
		halfRatePct = v.Items[0].GSTRate.Div(two).Truncate(0).String()
	}

	if v.Totals.CGST.IsPositive() {
		cgst := voucher.AddChild("LEDGERENTRIES.LIST")
		cgst.AddText("LEDGERNAME", "CGST "+halfRatePct+"%")
		cgst.AddText("METHODTYPE", "GST")
		cgst.AddText("ISDEEMEDPOSITIVE", "No")
		cgst.AddText("AMOUNT", formatAmount(v.Totals.CGST))
		cgst.AddText("VATEXPAMOUNT", formatAmount(v.Totals.CGST))
	}

	if v.Totals.SGST.IsPositive() {
		sgst := voucher.AddChild("LEDGERENTRIES.LIST")
		sgst.AddText("LEDGERNAME", "SGST "+halfRatePct+"%")
		sgst.AddText("METHODTYPE", "GST")
		sgst.AddText("ISDEEMEDPOSITIVE", "No")
		sgst.AddText("AMOUNT", formatAmount(v.Totals.SGST))
		sgst.AddText("VATEXPAMOUNT", formatAmount(v.Totals.SGST))
	}

	if v.Totals.RoundOff.Abs().GreaterThan(roundOffThreshold) {
		roundOff := voucher.AddChild("LEDGERENTRIES.LIST")
		roundOff.AddText("ROUNDTYPE", "Normal Rounding")
		roundOff.AddText("LEDGERNAME", roundOffLedger)
		roundOff.AddText("METHODTYPE", "As Total Amount Rounding")
		roundOff.AddText("ISDEEMEDPOSITIVE", "No")
		roundOff.AddText("ROUNDLIMIT", " 1")
		roundOff.AddText("AMOUNT", formatAmount(v.Totals.RoundOff))
		roundOff.AddText("VATEXPAMOUNT", formatAmount(v.Totals.RoundOff))
	}
}
