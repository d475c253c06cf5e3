package invoice2pdf

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// amountPrinter formats the invoice total with English digit grouping
// ($12,345.67). Line-item cells use plain fmt formatting to keep the
// table columns aligned in the raw markdown.
var amountPrinter = message.NewPrinter(language.English)

// Fixed column formats for the services table. Widths match the header
// row so the intermediate markdown stays readable as plain text.
const (
	tableHeader = "| Description                  | Hours | Rate    | Amount    |\n" +
		"|------------------------------|-------|---------|-----------|\n"
	tableRowFormat = "| %-28s | %5.1f | $%6.2f/hr | $%8.2f |\n"
)

// BuildMarkdown substitutes invoice fields into the fixed invoice
// template. The output is deterministic: the same invoice always yields
// byte-identical markdown. The recipient contact line is emitted only
// when the record carries one.
func BuildMarkdown(inv *Invoice) string {
	var b strings.Builder

	b.WriteString("# INVOICE\n\n")
	fmt.Fprintf(&b, "**Invoice Number:** %s  \n", inv.Number)
	fmt.Fprintf(&b, "**Invoice Date:** %s  \n", inv.Date)
	fmt.Fprintf(&b, "**Due Date:** %s  \n\n", inv.DueDate)

	b.WriteString("## From\n")
	fmt.Fprintf(&b, "%s  \n", inv.FromName)
	fmt.Fprintf(&b, "Email: %s  \n\n", inv.FromEmail)

	b.WriteString("## To\n")
	fmt.Fprintf(&b, "%s  \n", inv.ToName)
	if inv.ToEmail != "" {
		fmt.Fprintf(&b, "Email: %s  \n", inv.ToEmail)
	}
	b.WriteString("\n")

	b.WriteString("## Description of Services\n")
	b.WriteString("For professional services rendered:\n\n")
	b.WriteString(tableHeader)
	for _, item := range inv.Services {
		fmt.Fprintf(&b, tableRowFormat, item.Description, item.Hours, item.Rate, item.Amount)
	}

	fmt.Fprintf(&b, "\n**Total Hours:** %.1f  \n", inv.TotalHours())
	fmt.Fprintf(&b, "**Total Amount Due:** $%s\n\n", amountPrinter.Sprintf("%.2f", inv.TotalAmount))

	b.WriteString("## Payment Instructions\n")
	fmt.Fprintf(&b, "%s\n\n", inv.PaymentInstructions)

	b.WriteString("## Terms\n")
	fmt.Fprintf(&b, "%s\n", inv.Terms)

	return b.String()
}
