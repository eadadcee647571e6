package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/services"
	"luggagebill/internal/utils"
)

type exportRequest struct {
	IDs []int64 `json:"ids"`
}

// GET /api/admin/bills?q=&created_from=&created_to=
// Staff users only see the bills they added.
func ListBills(c *gin.Context) {
	f, ok := listFilter(c, "created_from", "created_to")
	if !ok {
		return
	}
	out, err := billService(c).List(c.Request.Context(), actorOf(c), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/bills/:id
func GetBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := billService(c).Get(c.Request.Context(), actorOf(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/bills with inline items.
func CreateBill(c *gin.Context) {
	var in services.BillInput
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := billService(c).Create(c.Request.Context(), actorOf(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/bills/:id. Omitting "items" keeps the stored items.
func UpdateBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.BillInput
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := billService(c).Update(c.Request.Context(), actorOf(c), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/bills/:id
func DeleteBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := billService(c).Delete(c.Request.Context(), actorOf(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/admin/bills/export {"ids":[...]}
// GET  /api/admin/bills/export?ids=1,2,3
func ExportBills(c *gin.Context) {
	var ids []int64
	if c.Request.Method == http.MethodGet {
		ids = utils.SplitIDList(c.Query("ids"))
	} else {
		var req exportRequest
		if !BindJSONOrError(c, &req) {
			return
		}
		ids = req.IDs
	}
	data, filename, err := exportService(c).ExportBills(c.Request.Context(), actorOf(c), ids)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "text/csv; charset=utf-8", filename, data)
}

// GET /admin/luggages/luggagebill/:id/receipt
func GetBillReceipt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pdfBytes, filename, err := receiptService(c).BillReceipt(c.Request.Context(), actorOf(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
