package invoice

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"artisan-market/internal/models"

	"github.com/signintech/gopdf"
)

const fontFamily = "invoice"

// PDFRenderer lays an invoice out on a single A4 page
type PDFRenderer struct {
	fontPath string
}

// NewPDFRenderer creates a renderer using the TrueType font at fontPath
func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

// LoadPDFRenderer creates a renderer after checking that fontPath is a
// readable regular file, so a missing font is reported at startup rather
// than on the first invoice download.
func LoadPDFRenderer(fontPath string) (*PDFRenderer, error) {
	info, err := os.Stat(fontPath)
	if err != nil {
		return nil, fmt.Errorf("invoice: font %s: %w", fontPath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("invoice: font %s is not a regular file", fontPath)
	}
	return NewPDFRenderer(fontPath), nil
}

// FileName is the attachment name offered to clients
func FileName(inv models.Invoice) string {
	return "invoice-" + inv.ListingID + ".pdf"
}

// Render produces the PDF bytes of inv
func (r *PDFRenderer) Render(inv models.Invoice) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFont(fontFamily, r.fontPath); err != nil {
		return nil, fmt.Errorf("invoice: failed to load font: %w", err)
	}
	if err := pdf.SetFont(fontFamily, "", 18); err != nil {
		return nil, fmt.Errorf("invoice: failed to set font: %w", err)
	}

	pdf.SetX(40)
	pdf.SetY(40)
	if err := pdf.Cell(nil, "AUCTION INVOICE"); err != nil {
		return nil, fmt.Errorf("invoice: failed to write header: %w", err)
	}

	if err := pdf.SetFont(fontFamily, "", 12); err != nil {
		return nil, fmt.Errorf("invoice: failed to set font: %w", err)
	}
	pdf.SetX(40)
	pdf.SetY(90)
	if err := writeRows(pdf, itemRows(inv)); err != nil {
		return nil, err
	}

	pdf.SetX(40)
	pdf.SetY(pdf.GetY() + 20)
	if err := writeRows(pdf, amountRows(inv)); err != nil {
		return nil, err
	}

	pdf.SetX(40)
	pdf.SetY(pdf.GetY() + 30)
	if err := pdf.Cell(nil, "Issued "+inv.IssuedAt.Format("2006-01-02 15:04 MST")); err != nil {
		return nil, fmt.Errorf("invoice: failed to write footer: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Write(&buf); err != nil {
		return nil, fmt.Errorf("invoice: failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type row struct {
	label string
	value string
}

func itemRows(inv models.Invoice) []row {
	return []row{
		{"Listing", inv.ListingID},
		{"Title", inv.Title},
		{"Category", inv.Category},
		{"Condition", inv.Condition},
		{"Auction ended", inv.EndDate.Format("2006-01-02 15:04")},
		{"Seller", inv.SellerName + " (" + inv.SellerIdentity + ")"},
		{"Winner", inv.WinnerName + " (" + inv.WinnerIdentity + ")"},
	}
}

func amountRows(inv models.Invoice) []row {
	return []row{
		{"Winning bid", money(inv.FinalAmount)},
		{"Platform fee (" + strconv.FormatFloat(inv.FeeRate*100, 'f', -1, 64) + "%)", money(inv.PlatformFee)},
		{"Total", money(inv.TotalAmount)},
	}
}

func money(v float64) string {
	return "¤" + strconv.FormatFloat(v, 'f', 2, 64)
}

func writeRows(pdf *gopdf.GoPdf, rows []row) error {
	x := pdf.GetX()
	for _, r := range rows {
		pdf.SetX(x)
		if err := pdf.Cell(nil, r.label+":"); err != nil {
			return fmt.Errorf("invoice: failed to write %s: %w", r.label, err)
		}
		pdf.SetX(x + 150)
		if err := pdf.Cell(nil, r.value); err != nil {
			return fmt.Errorf("invoice: failed to write %s: %w", r.label, err)
		}
		pdf.Br(20)
	}
	return nil
}
