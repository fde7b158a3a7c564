package labelpdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/rorado/colistrack/internal/services/labels"
)

// Square label page, one parcel per page.
const (
	pageSize = 100.0 // mm
	border   = 2.0

	headerH  = 10.0
	routeH   = 10.0
	cityH    = 6.0
	senderH  = 14.0
	recipH   = 18.0
	chipH    = 6.0
	codH     = 10.0
	thanksH  = 6.0
	footerH  = 4.0
	qrSide   = 26.0
	padX     = 2.0
	lineStep = 4.0
)

// Brand blue used when no theme color is configured.
const defaultBrandHex = "#1F4EA0"

type Renderer struct {
	brandR, brandG, brandB int
}

// New builds a renderer using themeHex for chips and bands. An empty or
// unparseable value falls back to the brand blue.
func New(themeHex string) *Renderer {
	r, g, b, err := parseHexColor(themeHex)
	if err != nil {
		r, g, b, _ = parseHexColor(defaultBrandHex)
	}
	return &Renderer{brandR: r, brandG: g, brandB: b}
}

// Render draws the fixed label layout for one payload and writes the
// finished document to w.
func (rd *Renderer) Render(w io.Writer, p *labels.Payload) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageSize, Ht: pageSize},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	fit := func(s string, maxW float64) string { return fitTranslated(pdf, tr, s, maxW) }

	left := border
	right := pageSize - border
	innerW := right - left

	// Outer border.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Rect(left, border, innerW, pageSize-2*border, "D")

	y := border

	// Header band: two-tone wordmark, delivery kind on the right.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetXY(left+padX, y+2)
	pdf.CellFormat(pdf.GetStringWidth("Colis"), 6, "Colis", "", 0, "L", false, 0, "")
	pdf.SetTextColor(rd.brandR, rd.brandG, rd.brandB)
	pdf.CellFormat(pdf.GetStringWidth("Track"), 6, "Track", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(right-padX-30, y+3)
	pdf.CellFormat(30, 4, tr("LIVRAISON EXPRESS"), "", 0, "R", false, 0, "")
	y += headerH
	pdf.Line(left, y, right, y)

	// Route-code band: big city code, centered.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(left, y+1.5)
	pdf.CellFormat(innerW, 7, tr(zoneCode(p.City)), "", 0, "C", false, 0, "")
	y += routeH
	pdf.Line(left, y, right, y)

	// City band.
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(left, y+1)
	pdf.CellFormat(innerW, 4, fit(p.City, innerW-2*padX), "", 0, "C", false, 0, "")
	y += cityH
	pdf.Line(left, y, right, y)

	// Sender box on the left, zone chip on the right.
	senderW := innerW * 0.6
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(left+padX, y+1)
	pdf.CellFormat(senderW, 3, tr("EXPÉDITEUR"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	senderCol := senderW - 2*padX
	for i, line := range []string{
		p.Sender,
		p.SenderPhone,
		p.CreatedAt + " " + p.CreatedAtTime,
	} {
		pdf.SetXY(left+padX, y+4.5+float64(i)*3.5)
		pdf.CellFormat(senderCol, 3, fit(line, senderCol), "", 0, "L", false, 0, "")
	}
	chipW := innerW - senderW - padX
	pdf.SetFillColor(rd.brandR, rd.brandG, rd.brandB)
	pdf.Rect(left+senderW, y+1.5, chipW, senderH-3, "F")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(left+senderW, y+4)
	pdf.CellFormat(chipW, 7, tr(zoneCode(p.City)), "", 0, "C", false, 0, "")
	y += senderH
	pdf.Line(left, y, right, y)

	// Recipient box with the QR code to its right.
	recipW := innerW - qrSide - 3*padX
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(left+padX, y+1)
	pdf.CellFormat(recipW, 3, tr("DESTINATAIRE"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	recipCol := recipW - padX
	ry := y + 4.5
	for _, line := range []string{p.Recipient, p.RecipientPhone, p.City} {
		pdf.SetXY(left+padX, ry)
		pdf.CellFormat(recipCol, 3, fit(line, recipCol), "", 0, "L", false, 0, "")
		ry += 3.5
	}
	// Address is the only wrapped field, capped at two lines.
	for _, line := range wrapAddress(pdf, tr(p.Address), recipCol) {
		pdf.SetXY(left+padX, ry)
		pdf.CellFormat(recipCol, 3, line, "", 0, "L", false, 0, "")
		ry += 3.5
	}
	qrX := right - padX - qrSide
	pdf.Rect(qrX, y+1, qrSide, qrSide, "D")
	if err := embedDataURI(pdf, "label-qr", p.QRCode, qrX+1, y+2, qrSide-2, qrSide-2); err != nil {
		return err
	}
	y += recipH

	// Delivery-mode chip.
	pdf.SetFillColor(235, 238, 245)
	pdf.Rect(left+padX, y, recipW, chipH-1, "F")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(left+padX, y+1)
	pdf.CellFormat(recipW, 3.5, tr("Livraison à domicile"), "", 0, "C", false, 0, "")
	y += chipH

	// Cash-on-delivery box.
	pdf.Line(left, y, right, y)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(left+padX, y+2.5)
	pdf.CellFormat(innerW-2*padX, 5, fit("CRBT : "+p.Price, innerW-2*padX), "", 0, "L", false, 0, "")
	y += codH

	// Thank-you box.
	pdf.Line(left, y, right, y)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(left, y+1.5)
	pdf.CellFormat(innerW, 3.5, tr("Merci pour votre confiance !"), "", 0, "C", false, 0, "")
	y += thanksH

	// Barcode strip, tracking code right-aligned under it.
	pdf.Line(left, y, right, y)
	bcW := innerW - 2*padX
	bcH := pageSize - border - footerH - y - 6
	if err := embedDataURI(pdf, "label-code128", p.Barcode, left+padX, y+1, bcW, bcH); err != nil {
		return err
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(left, y+1+bcH)
	pdf.CellFormat(innerW-padX, 3.5, tr(p.TrackingNumber), "", 0, "R", false, 0, "")

	// Footer band.
	fy := pageSize - border - footerH
	pdf.SetFillColor(rd.brandR, rd.brandG, rd.brandB)
	pdf.Rect(left, fy, innerW, footerH, "F")
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(left, fy+0.5)
	pdf.CellFormat(innerW, 3, "www.colistrack.ma", "", 0, "C", false, 0, "")

	if pdf.Err() {
		return errors.Wrap(pdf.Error(), "draw label")
	}
	return errors.Wrap(pdf.Output(w), "write label pdf")
}

// wrapAddress splits the address over the column width, keeping at most
// two lines.
func wrapAddress(pdf *gofpdf.Fpdf, addr string, colW float64) []string {
	if addr == "" {
		return nil
	}
	lines := pdf.SplitText(addr, colW)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	return lines
}

// zoneCode reduces a city to the three-letter code printed large on the
// label. Placeholder or too-short cities come out as "ZON".
func zoneCode(city string) string {
	var letters []rune
	for _, r := range city {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	if len(letters) < 3 {
		return "ZON"
	}
	return string(letters)
}

func embedDataURI(pdf *gofpdf.Fpdf, name, dataURI string, x, y, w, h float64) error {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		return errors.Errorf("%s: not a png data uri", name)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
	if err != nil {
		return errors.Wrapf(err, "%s: decode", name)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if pdf.Err() {
		return errors.Wrapf(pdf.Error(), "%s: embed", name)
	}
	return nil
}

func parseHexColor(s string) (r, g, b int, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("bad hex color %q", s)
	}
	var rv, gv, bv uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("bad hex color %q", s)
	}
	return int(rv), int(gv), int(bv), nil
}
