package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tally-bridge/internal/application/service"
	"github.com/sangkips/tally-bridge/internal/domain/entity"
	"github.com/sangkips/tally-bridge/internal/presentation/http/dto/request"
	"github.com/sangkips/tally-bridge/internal/presentation/http/dto/response"
	"github.com/sangkips/tally-bridge/pkg/money"
)

// VoucherHandler handles voucher-related HTTP requests
type VoucherHandler struct {
	voucherService *service.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// Create handles creating a retail sale voucher in Tally
func (h *VoucherHandler) Create(c *gin.Context) {
	var req request.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	items := make([]entity.VoucherItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.VoucherItem{
			Name:     item.Name,
			IMEI:     item.IMEI,
			Quantity: item.Quantity,
			Rate:     item.Rate,
			GSTRate:  item.GSTRate,
		}
	}

	result, err := h.voucherService.CreateVoucher(c.Request.Context(), &service.CreateVoucherInput{
		CompanyName:  req.CompanyName,
		PartyName:    req.PartyName,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Phone:        req.Phone,
		Date:         date,
		Items:        items,
	})
	if err != nil {
		// Contract violations in the monetary decomposition are client
		// faults; everything else keeps its own status.
		if errors.Is(err, service.ErrNoItems) ||
			errors.Is(err, money.ErrNonPositiveQuantity) ||
			errors.Is(err, money.ErrNonPositiveRate) ||
			errors.Is(err, money.ErrNegativeTaxRate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Retail Sale voucher created successfully", gin.H{
		"voucherNumber": result.VoucherNumber,
		"verified":      result.Verified,
	})
}
