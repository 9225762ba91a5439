package receipt

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"oceanbrew/internal/order"
	"oceanbrew/internal/settings"
)

// chunkSize bounds each transport write.
const chunkSize = 512

// Transport is the single capability a printer must provide.
// Hardware discovery and pairing live entirely outside this package.
type Transport interface {
	Send(ctx context.Context, data []byte) error
}

// PrintResult reports what happened to a print request. Text always
// carries the formatted receipt so callers can display it when the
// transport failed or none is attached.
type PrintResult struct {
	Printed bool   `json:"printed"`
	Text    string `json:"text"`
}

type Printer struct {
	transport Transport
}

// NewPrinter wires a print service. transport may be nil, in which
// case every print degrades to display.
func NewPrinter(transport Transport) *Printer {
	return &Printer{transport: transport}
}

// Print formats the order, encodes it as ESC/POS and writes it to the
// transport in bounded chunks. Transport failure is not retried: the
// receipt text comes back for display instead.
func (p *Printer) Print(ctx context.Context, o *order.Order, s *settings.StoreSettings) (*PrintResult, error) {

	text := Format(o, s)

	if p.transport == nil {
		return &PrintResult{Printed: false, Text: text}, nil
	}

	commands := Encode(text)
	for _, chunk := range Chunk(commands, chunkSize) {
		if err := p.transport.Send(ctx, chunk); err != nil {
			logrus.WithError(err).Warn("printer transport failed, falling back to display")
			return &PrintResult{Printed: false, Text: text}, fmt.Errorf("print receipt: %w", err)
		}
	}

	return &PrintResult{Printed: true, Text: text}, nil
}
