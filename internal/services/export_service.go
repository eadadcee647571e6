package services

import (
	"bytes"
	"context"
	"encoding/csv"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/utils"
)

// BillExportFilename is the attachment name of the bill CSV export.
const BillExportFilename = "Luggage Bill.csv"

// BillExportHeader holds the column labels; item collections are not exported.
var BillExportHeader = []string{"ID", "Created", "Updated", "Customer", "Trip", "Added by"}

type ExportService struct {
	Bills     BillStore
	RequestID string
}

// ExportBills renders the selected bills actor may view as CSV.
// Unknown ids and bills of other staff users are skipped.
func (s ExportService) ExportBills(ctx context.Context, actor domain.Actor, ids []int64) ([]byte, string, error) {
	if err := requireActor(actor); err != nil {
		return nil, "", err
	}
	if len(ids) == 0 {
		return nil, "", domain.ValidationError{Field: "ids", Msg: "select at least one bill"}
	}
	bills, err := s.Bills.ListByIDs(ctx, ids)
	if err != nil {
		return nil, "", err
	}
	bills = models.VisibleBills(actor, bills)

	data, err := writeBillsCSV(bills)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "luggage_bill", "export", "rows="+idStr(int64(len(bills))))
	return data, BillExportFilename, nil
}

func writeBillsCSV(bills []models.LuggageBill) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(BillExportHeader); err != nil {
		return nil, err
	}
	for _, b := range bills {
		if err := w.Write(billRecord(b)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func billRecord(b models.LuggageBill) []string {
	customer, trip, addedBy := "", "", ""
	if b.Customer != nil {
		customer = b.Customer.Fullname
	}
	if b.Trip != nil {
		trip = b.Trip.Name
	}
	if b.AddedBy != nil {
		addedBy = b.AddedBy.Username
	}
	return []string{
		idStr(b.ID),
		utils.FormatExportDate(b.Created),
		utils.FormatExportDate(b.Updated),
		customer,
		trip,
		addedBy,
	}
}
