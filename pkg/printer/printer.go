package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

const (
	dialTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
	pingTimeout  = 2 * time.Second
)

// Printer sends raw ESC/POS data to a thermal receipt printer.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// Close releases the printer connection or handle.
	Close() error
	// IsConnected reports whether the printer is reachable.
	IsConnected() bool
}

// usbPrinter writes to a USB device file. The counter printer at the
// shop shows up as /dev/usb/lp0.
type usbPrinter struct {
	path string
}

// NewUSBPrinter creates a printer backed by a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(data []byte) error {
	// Opened per print job; holding the device open blocks other writers.
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open usb device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write to usb device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error {
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// networkPrinter dials a raw TCP printer, e.g. "192.168.1.100:9100".
type networkPrinter struct {
	address string
}

// NewNetworkPrinter creates a printer reached over TCP. The address
// must include the port, usually 9100.
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{address: address}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, pingTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// nullPrinter swallows all output. Used in development and whenever
// PRINTER_TYPE is "none".
type nullPrinter struct{}

// NewNullPrinter creates a no-op printer for environments without hardware.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) error {
	return nil
}

func (p *nullPrinter) Close() error {
	return nil
}

func (p *nullPrinter) IsConnected() bool {
	return false
}

// NewPrinterFromConfig builds the printer selected by the PRINTER_TYPE
// setting: "usb" with a device path, "network" with a TCP address, or
// "none" for a no-op printer.
func NewPrinterFromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: usb printer needs PRINTER_USB_PATH")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: network printer needs PRINTER_ADDRESS")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", printerType)
	}
}
