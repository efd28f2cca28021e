package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// Printer client error constants
var (
	ErrPrinterUnreachable = errors.New("printer unreachable")
	ErrPrinterWriteFailed = errors.New("printer write failed")
)

// PrinterClient dispatches rendered command streams to a network printer.
// TSC printers accept raw byte streams on TCP port 9100; there is no
// acknowledgement protocol, a completed write is the success signal.
type PrinterClient interface {
	// Send writes the payload to the printer at addr (host:port)
	Send(ctx context.Context, addr string, payload []byte) error
}

// RawPrinterClientImpl implements PrinterClient over a plain TCP socket
type RawPrinterClientImpl struct {
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

// NewRawPrinterClient creates a printer client with the given socket timeouts
func NewRawPrinterClient(dialTimeout, writeTimeout time.Duration) PrinterClient {
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &RawPrinterClientImpl{
		dialTimeout:  dialTimeout,
		writeTimeout: writeTimeout,
	}
}

// Send dials the printer and writes the full payload
func (c *RawPrinterClientImpl) Send(ctx context.Context, addr string, payload []byte) error {
	dialer := net.Dialer{Timeout: c.dialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPrinterUnreachable, addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.writeTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("%w: %v", ErrPrinterWriteFailed, err)
	}

	written := 0
	for written < len(payload) {
		n, err := conn.Write(payload[written:])
		if err != nil {
			return fmt.Errorf("%w: %s after %d bytes: %v", ErrPrinterWriteFailed, addr, written, err)
		}
		written += n
	}

	return nil
}

// MockPrinterClient records dispatched payloads for tests
type MockPrinterClient struct {
	mu       sync.Mutex
	payloads map[string][][]byte
	FailWith error
}

// NewMockPrinterClient creates an in-memory printer client
func NewMockPrinterClient() *MockPrinterClient {
	return &MockPrinterClient{
		payloads: make(map[string][][]byte),
	}
}

// Send records the payload, or fails with the configured error
func (c *MockPrinterClient) Send(ctx context.Context, addr string, payload []byte) error {
	if c.FailWith != nil {
		return c.FailWith
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	buf := make([]byte, len(payload))
	copy(buf, payload)
	c.payloads[addr] = append(c.payloads[addr], buf)
	return nil
}

// Sent returns the payloads recorded for an address
func (c *MockPrinterClient) Sent(addr string) [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payloads[addr]
}
