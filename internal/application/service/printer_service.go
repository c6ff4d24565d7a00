package service

import (
	"context"
	"fmt"
	"log"

	"github.com/izaplantas/floricultura-api/internal/config"
	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
	"github.com/izaplantas/floricultura-api/pkg/printer"
	"github.com/izaplantas/floricultura-api/pkg/utils"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	orderRepo   repository.OrderRepository
	store       config.StoreConfig
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	store config.StoreConfig,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		orderRepo:   orderRepo,
		store:       store,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Address:   s.store.Address,
			Phone:     s.store.WhatsAppDisplay,
		},
		OrderNo: "TEST-001",
		Date:    "Test Date",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		Total: 20.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintOrderReceipt fetches an order and prints its receipt.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID string) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.store.Name,
			Address:   s.store.Address,
			Phone:     s.store.WhatsAppDisplay,
		},
		OrderNo:       utils.ShortID(order.ID),
		Date:          order.Date.Format("2006-01-02 15:04"),
		Customer:      order.CustomerName,
		PaymentMethod: order.PaymentMethod,
		Total:         order.GetTotalDecimal(),
		FooterLines: []string{
			"Obrigado pela preferência!",
			"Volte sempre.",
		},
	}

	for i := range order.Items {
		item := &order.Items[i]
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.GetSalePriceDecimal(),
			Total:     float64(item.Subtotal()) / 100,
		})
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Order info
	doc.KeyValue("Pedido:", r.OrderNo).
		KeyValue("Data:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Cliente:", r.Customer)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Pagamento:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f cada", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Total
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("R$ %.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed()
	for _, line := range r.FooterLines {
		doc.Text(line)
	}
	doc.LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
