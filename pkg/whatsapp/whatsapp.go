// Package whatsapp builds the pre-filled conversation links the
// storefront hands to the customer after checkout.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
)

// OrderMessage renders the order summary sent to the store's WhatsApp
func OrderMessage(storeName string, order *entity.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Pedido via %s*\n\n", storeName)
	b.WriteString("🌼 *Itens do Pedido:*\n")
	for i := range order.Items {
		item := &order.Items[i]
		fmt.Fprintf(&b, "• %s – Qtd: %d – Preço: R$ %.2f – Subtotal: R$ %.2f\n",
			item.Name, item.Quantity, item.GetSalePriceDecimal(), float64(item.Subtotal())/100)
	}
	fmt.Fprintf(&b, "\n*Total: R$ %.2f*", order.GetTotalDecimal())

	if order.CustomerName != "" {
		fmt.Fprintf(&b, "\n\nCliente: %s", order.CustomerName)
	}

	return b.String()
}

// Link builds a wa.me URL that opens a chat with the given phone number
// and the message pre-filled. Phone must be in international format with
// no punctuation (e.g. "5573999535407").
func Link(phone, message string) string {
	// url.QueryEscape encodes spaces as '+', which WhatsApp renders
	// literally; percent-encode them instead.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}
