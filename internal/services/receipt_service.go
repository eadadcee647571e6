package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"luggagebill/internal/domain"
	"luggagebill/internal/utils"
)

// BillGetter loads a bill view scoped to the actor.
type BillGetter interface {
	Get(ctx context.Context, actor domain.Actor, id int64) (BillView, error)
}

// ReceiptService renders printable bill receipts.
type ReceiptService struct {
	Bills     BillGetter
	RequestID string
}

func (s ReceiptService) BillReceipt(ctx context.Context, actor domain.Actor, id int64) ([]byte, string, error) {
	bill, err := s.Bills.Get(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}
	data, name, err := buildReceiptPDF(bill)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render receipt", Err: err}
	}
	utils.LogEvent(s.RequestID, "luggage_bill", "receipt", "id="+idStr(id))
	return data, name, nil
}

func buildReceiptPDF(b BillView) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Luggage Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LUGGAGE RECEIPT")
	pdf.Ln(12)

	customer, trip, bus, journey, issuer := "-", "-", "-", "-", "-"
	if b.Customer != nil {
		customer = safe(b.Customer.Fullname, "-")
	}
	if b.Trip != nil {
		trip = safe(b.Trip.Name, "-")
		journey = utils.FormatExportDate(b.Trip.DateOfJourney)
		if b.Trip.Bus != nil {
			bus = safe(b.Trip.Bus.PlateNumber, "-")
		}
	}
	if b.AddedBy != nil {
		issuer = safe(b.AddedBy.Username, "-")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No   : LB-%06d", b.ID),
		fmt.Sprintf("Date         : %s", utils.FormatExportDate(b.Created)),
		fmt.Sprintf("Customer     : %s", customer),
		fmt.Sprintf("Trip         : %s", trip),
		fmt.Sprintf("Bus          : %s", bus),
		fmt.Sprintf("Journey date : %s", journey),
		fmt.Sprintf("Issued by    : %s", issuer),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	widths := []float64{60, 35, 20, 35, 35}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"Bag", "Weight", "Qty", "Unit price", "Amount"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, it := range b.Items {
		bag, tier, unit := "-", "-", "-"
		if it.BagType != nil {
			bag = it.BagType.String()
		}
		if it.Weight != nil {
			tier = it.Weight.Name
			unit = utils.FormatNaira(int64(it.Weight.Price))
		}
		cells := []string{bag, tier, fmt.Sprintf("%d", it.Quantity), unit, utils.FormatNaira(int64(it.Amount))}
		for i, c := range cells {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatNaira(int64(b.TotalAmount)))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total weight: %d kg", b.TotalWeightPerCustomer))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please keep this receipt and present it when collecting your luggage.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", b.ID, utils.SafeFilenamePart(customer))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
