package handler

import (
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	purchasingapp "github.com/pobuilder/backend/internal/application/purchasing"
	"github.com/pobuilder/backend/internal/domain/purchasing"
	"github.com/pobuilder/backend/internal/interfaces/http/dto"
)

// PurchaseOrderHandler handles the purchase order editing session endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	editorService *purchasingapp.EditorService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(editorService *purchasingapp.EditorService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		editorService: editorService,
	}
}

// EditFieldRequest represents a single field edit
// @Description Field edit. Numeric fields accept a JSON number or a numeric string; text that is not a number becomes NaN.
type EditFieldRequest struct {
	Field string          `json:"field" binding:"required,max=64" example:"supplier"`
	Value *dto.FieldValue `json:"value" swaggertype:"string" example:"Acme Industrial Supply Co."`
}

func (r EditFieldRequest) toInput() purchasingapp.EditInput {
	value := dto.FieldValue{Number: math.NaN()}
	if r.Value != nil {
		value = *r.Value
	}
	return purchasingapp.EditInput{Field: r.Field, Text: value.Text, Number: value.Number}
}

// ResetRequest represents a request to clear the order
// @Description Reset request. The order is only cleared when confirm is true.
type ResetRequest struct {
	Confirm bool `json:"confirm" example:"true"`
}

// LineItemResponse represents a line item in API responses
// @Description Purchase order line item
type LineItemResponse struct {
	No        int        `json:"no" example:"1"`
	ID        string     `json:"id" example:"k3j9x0a"`
	Name      string     `json:"name" example:"Industrial Cable"`
	Spec      string     `json:"spec" example:"10mm x 100m"`
	Qty       dto.Number `json:"qty" swaggertype:"number" example:"2"`
	UnitPrice dto.Number `json:"unit_price" swaggertype:"number" example:"450"`
	Amount    dto.Number `json:"amount" swaggertype:"number" example:"900"`
	Remarks   string     `json:"remarks" example:"Urgent"`
}

// OrderFieldsResponse represents the order snapshot in API responses
// @Description Purchase order snapshot
type OrderFieldsResponse struct {
	PONumber     string             `json:"po_number" example:"PO-2024-1001"`
	Date         string             `json:"date" example:"2024-03-15"`
	DeliveryDate string             `json:"delivery_date" example:""`
	Supplier     string             `json:"supplier" example:"Global Tech Solutions Inc."`
	Buyer        string             `json:"buyer" example:"Acme Corp Purchasing Dept."`
	Currency     CurrencyResponse   `json:"currency"`
	Items        []LineItemResponse `json:"items"`
	VATRate      dto.Number         `json:"vat_rate" swaggertype:"number" example:"10"`
	OtherCosts   dto.Number         `json:"other_costs" swaggertype:"number" example:"0"`
	Terms        string             `json:"terms" example:"Payment within 30 days of delivery."`
}

// TotalsResponse represents raw order totals
// @Description Order totals. Non-finite values are sent as "NaN", "Infinity" or "-Infinity".
type TotalsResponse struct {
	Subtotal   dto.Number `json:"subtotal" swaggertype:"number" example:"2880"`
	VATAmount  dto.Number `json:"vat_amount" swaggertype:"number" example:"288"`
	GrandTotal dto.Number `json:"grand_total" swaggertype:"number" example:"3168"`
}

// OrderResponse represents an editing session in API responses
// @Description Editing session state: snapshot, totals and printable document
type OrderResponse struct {
	SessionID string                     `json:"session_id" example:"3f1c2a4e-8b7d-4c1e-9a55-0d2b6f9e1a77"`
	Order     OrderFieldsResponse        `json:"order"`
	Totals    TotalsResponse             `json:"totals"`
	Document  purchasingapp.DocumentView `json:"document"`
}

// AddItemResponse represents the result of appending a line item
// @Description Appended item and the session state after the append
type AddItemResponse struct {
	Item  LineItemResponse `json:"item"`
	Order OrderResponse    `json:"order"`
}

// Start godoc
// @ID           startPurchaseOrderSession
// @Summary      Start an editing session
// @Description  Opens a session seeded with the sample purchase order dated today
// @Tags         purchase-orders
// @Produce      json
// @Success      201 {object} APIResponse[OrderResponse]
// @Failure      503 {object} ErrorResponse
// @Router       /orders [post]
func (h *PurchaseOrderHandler) Start(c *gin.Context) {
	view, err := h.editorService.StartSession(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toOrderResponse(view))
}

// Get godoc
// @ID           getPurchaseOrderSession
// @Summary      Get an editing session
// @Description  Returns the current snapshot, its totals and the printable document
// @Tags         purchase-orders
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} APIResponse[OrderResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /orders/{session_id} [get]
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	view, err := h.editorService.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(view))
}

// UpdateField godoc
// @ID           updatePurchaseOrderField
// @Summary      Edit an order field
// @Description  Sets one header field: po_number, date, delivery_date, supplier, buyer, currency, vat_rate, other_costs or terms
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Param        request body EditFieldRequest true "Field edit"
// @Success      200 {object} APIResponse[OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /orders/{session_id} [patch]
func (h *PurchaseOrderHandler) UpdateField(c *gin.Context) {
	var req EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	view, err := h.editorService.UpdateField(c.Request.Context(), c.Param("session_id"), req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(view))
}

// AddItem godoc
// @ID           addPurchaseOrderItem
// @Summary      Append a line item
// @Description  Appends an empty line item with quantity and unit price 0
// @Tags         purchase-orders
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      201 {object} APIResponse[AddItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /orders/{session_id}/items [post]
func (h *PurchaseOrderHandler) AddItem(c *gin.Context) {
	view, item, err := h.editorService.AddItem(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, AddItemResponse{
		Item:  toLineItemResponse(len(view.Order.Items), *item),
		Order: toOrderResponse(view),
	})
}

// UpdateItem godoc
// @ID           updatePurchaseOrderItem
// @Summary      Edit a line item
// @Description  Sets one column of a line item: name, spec, qty, unit_price or remarks
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Param        item_id path string true "Line item ID"
// @Param        request body EditFieldRequest true "Item edit"
// @Success      200 {object} APIResponse[OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /orders/{session_id}/items/{item_id} [patch]
func (h *PurchaseOrderHandler) UpdateItem(c *gin.Context) {
	var req EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	view, err := h.editorService.UpdateItem(c.Request.Context(), c.Param("session_id"), c.Param("item_id"), req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(view))
}

// DeleteItem godoc
// @ID           deletePurchaseOrderItem
// @Summary      Delete a line item
// @Description  Removes a line item. Removing the last remaining item requires confirm=true.
// @Tags         purchase-orders
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Param        item_id path string true "Line item ID"
// @Param        confirm query bool false "Confirm deleting the last item" default(false)
// @Success      200 {object} APIResponse[OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      428 {object} ErrorResponse
// @Router       /orders/{session_id}/items/{item_id} [delete]
func (h *PurchaseOrderHandler) DeleteItem(c *gin.Context) {
	confirm, ok := h.confirmQuery(c)
	if !ok {
		return
	}

	view, err := h.editorService.DeleteItem(c.Request.Context(), c.Param("session_id"), c.Param("item_id"), confirm)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(view))
}

// Reset godoc
// @ID           resetPurchaseOrder
// @Summary      Reset the order
// @Description  Clears PO number, delivery date, supplier, buyer, terms and items. Requires confirm=true in the body or query.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Param        request body ResetRequest false "Reset confirmation"
// @Param        confirm query bool false "Confirm the reset" default(false)
// @Success      200 {object} APIResponse[OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      428 {object} ErrorResponse
// @Router       /orders/{session_id}/reset [post]
func (h *PurchaseOrderHandler) Reset(c *gin.Context) {
	confirm, ok := h.confirmQuery(c)
	if !ok {
		return
	}
	if c.Request.ContentLength != 0 {
		var req ResetRequest
		// a chunked request may still carry an empty body
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			h.BindError(c, err)
			return
		}
		confirm = confirm || req.Confirm
	}

	view, err := h.editorService.Reset(c.Request.Context(), c.Param("session_id"), confirm)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toOrderResponse(view))
}

// End godoc
// @ID           endPurchaseOrderSession
// @Summary      End an editing session
// @Description  Discards the session and its order
// @Tags         purchase-orders
// @Param        session_id path string true "Session ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /orders/{session_id} [delete]
func (h *PurchaseOrderHandler) End(c *gin.Context) {
	if err := h.editorService.EndSession(c.Request.Context(), c.Param("session_id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// confirmQuery reads the optional confirm query parameter. It writes a 400
// and returns false when the value is not a boolean.
func (h *PurchaseOrderHandler) confirmQuery(c *gin.Context) (bool, bool) {
	raw, present := c.GetQuery("confirm")
	if !present || raw == "" {
		return false, true
	}
	confirm, err := strconv.ParseBool(raw)
	if err != nil {
		h.BadRequest(c, "confirm must be true or false")
		return false, false
	}
	return confirm, true
}

func toOrderResponse(view *purchasingapp.OrderView) OrderResponse {
	order := view.Order
	items := make([]LineItemResponse, 0, len(order.Items))
	for i, item := range order.Items {
		items = append(items, toLineItemResponse(i+1, item))
	}

	return OrderResponse{
		SessionID: view.SessionID,
		Order: OrderFieldsResponse{
			PONumber:     order.PONumber,
			Date:         order.Date,
			DeliveryDate: order.DeliveryDate,
			Supplier:     order.Supplier,
			Buyer:        order.Buyer,
			Currency:     toCurrencyResponse(order.CurrencyInfo()),
			Items:        items,
			VATRate:      dto.Number(order.VATRate),
			OtherCosts:   dto.Number(order.OtherCosts),
			Terms:        order.Terms,
		},
		Totals:   toTotalsResponse(view.Totals),
		Document: view.Document,
	}
}

func toLineItemResponse(no int, item purchasing.LineItem) LineItemResponse {
	return LineItemResponse{
		No:        no,
		ID:        item.ID,
		Name:      item.Name,
		Spec:      item.Spec,
		Qty:       dto.Number(item.Qty),
		UnitPrice: dto.Number(item.UnitPrice),
		Amount:    dto.Number(item.LineTotal()),
		Remarks:   item.Remarks,
	}
}

func toTotalsResponse(t purchasing.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:   dto.Number(t.Subtotal),
		VATAmount:  dto.Number(t.VATAmount),
		GrandTotal: dto.Number(t.GrandTotal),
	}
}
