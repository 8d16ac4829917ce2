// Package jsonrpc2 implements a JSON-RPC 2.0 client/server over an LSP
// (Content-Length framed) byte stream.
//
// Incoming notifications are handled one at a time on the reading goroutine,
// in the order they arrive. Incoming requests are handled concurrently, each
// on its own goroutine, so a slow request never delays later edits. A panic
// in a handler is recovered; the request is answered with a null result.
package jsonrpc2

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
)

// Error codes defined by JSON-RPC 2.0 and the LSP base protocol.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	CodeServerNotInitialized = -32002
)

// Error is a JSON-RPC 2.0 response error.
type Error struct {
	Code    int64            `json:"code"`
	Message string           `json:"message"`
	Data    *json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc2: code %d message: %s", e.Code, e.Message)
}

// ErrClosed indicates that the connection is closed.
var ErrClosed = errors.New("jsonrpc2: connection is closed")

// ID is a JSON-RPC 2.0 request ID (number or string).
type ID struct {
	Num      uint64
	Str      string
	IsString bool
}

func (id ID) String() string {
	if id.IsString {
		return strconv.Quote(id.Str)
	}
	return strconv.FormatUint(id.Num, 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsString {
		return json.Marshal(id.Str)
	}
	return json.Marshal(id.Num)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID{Num: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = ID{Str: s, IsString: true}
	return nil
}

// Request is an incoming JSON-RPC 2.0 request or notification.
type Request struct {
	Method string           `json:"method"`
	Params *json.RawMessage `json:"params,omitempty"`
	ID     ID               `json:"id"`
	Notif  bool             `json:"-"` // true if this is a notification (no id)
}

// UnmarshalParams decodes the request parameters into v. Missing or
// malformed parameters are reported as CodeInvalidParams.
func (r *Request) UnmarshalParams(v any) error {
	if r.Params == nil {
		return &Error{Code: CodeInvalidParams, Message: r.Method + ": missing params"}
	}
	if err := json.Unmarshal(*r.Params, v); err != nil {
		return &Error{Code: CodeInvalidParams, Message: fmt.Sprintf("%s: %v", r.Method, err)}
	}
	return nil
}

// wireRequest is used for JSON marshaling (adds jsonrpc field).
type wireRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	Method  string           `json:"method"`
	Params  *json.RawMessage `json:"params,omitempty"`
	ID      *ID              `json:"id,omitempty"`
}

func (r *Request) UnmarshalJSON(data []byte) error {
	// Use a map to detect presence/absence of "id".
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if m, ok := raw["method"]; ok {
		if err := json.Unmarshal(m, &r.Method); err != nil {
			return err
		}
	}
	if p, ok := raw["params"]; ok {
		r.Params = &p
	}
	if idRaw, ok := raw["id"]; ok && string(idRaw) != "null" {
		if err := json.Unmarshal(idRaw, &r.ID); err != nil {
			return err
		}
		r.Notif = false
	} else {
		r.Notif = true
	}
	return nil
}

// response is an outgoing JSON-RPC 2.0 response. Result is always written
// on success, as null when the handler returned nothing.
type response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      ID               `json:"id"`
	Result  *json.RawMessage `json:"result,omitempty"`
	Error   *Error           `json:"error,omitempty"`
}

// incomingResponse is the wire format for a response we receive.
type incomingResponse struct {
	ID     ID               `json:"id"`
	Result *json.RawMessage `json:"result,omitempty"`
	Error  *Error           `json:"error,omitempty"`
}

var nullResult = json.RawMessage("null")

// Handler handles incoming JSON-RPC requests.
type Handler interface {
	Handle(ctx context.Context, conn *Conn, req *Request)
}

// HandlerFunc adapts a function to the Handler interface. The function returns
// (result, error); the Conn automatically sends the appropriate response.
type HandlerFunc func(ctx context.Context, conn *Conn, req *Request) (any, error)

func (f HandlerFunc) Handle(ctx context.Context, conn *Conn, req *Request) {
	result, err := f(ctx, conn, req)
	if req.Notif {
		if err != nil {
			conn.logger.Warn("notification failed", "method", req.Method, "error", err)
		}
		return // notifications don't get responses
	}
	if err != nil {
		var rpcErr *Error
		if !errors.As(err, &rpcErr) {
			rpcErr = &Error{Code: CodeInternalError, Message: err.Error()}
		}
		_ = conn.sendResponse(&response{JSONRPC: "2.0", ID: req.ID, Error: rpcErr})
		return
	}
	raw, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		_ = conn.sendResponse(&response{
			JSONRPC: "2.0", ID: req.ID,
			Error: &Error{Code: CodeInternalError, Message: marshalErr.Error()},
		})
		return
	}
	rm := json.RawMessage(raw)
	_ = conn.sendResponse(&response{JSONRPC: "2.0", ID: req.ID, Result: &rm})
}

// Conn is a bidirectional JSON-RPC 2.0 connection.
type Conn struct {
	r      *bufio.Reader
	wc     io.WriteCloser
	h      Handler
	logger *slog.Logger
	wmu    sync.Mutex // guards writes
	mu     sync.Mutex
	seq    uint64
	pend   map[uint64]*pending
	active sync.WaitGroup // in-flight request handlers
	done   chan struct{}
	once   sync.Once
}

type pending struct {
	ch chan *incomingResponse
}

// Option configures a Conn.
type Option func(*Conn)

// WithLogger sets the logger used for recovered panics and failed
// notifications. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Conn) { c.logger = logger }
}

// NewConn creates a new JSON-RPC connection over the given stream. It
// immediately starts reading messages in a background goroutine. The handler
// is called for each incoming request.
func NewConn(ctx context.Context, rwc io.ReadWriteCloser, h Handler, opts ...Option) *Conn {
	c := &Conn{
		r:      bufio.NewReaderSize(rwc, 4096),
		wc:     rwc,
		h:      h,
		logger: slog.New(slog.DiscardHandler),
		pend:   make(map[uint64]*pending),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.readLoop(ctx)
	return c
}

// Close closes the connection.
func (c *Conn) Close() error {
	c.once.Do(func() { close(c.done) })
	return c.wc.Close()
}

// DisconnectNotify returns a channel that is closed when the connection is
// closed (either by Close or by the remote end).
func (c *Conn) DisconnectNotify() <-chan struct{} {
	return c.done
}

// Wait blocks until the connection is closed and every request handler has
// returned.
func (c *Conn) Wait() {
	<-c.done
	c.active.Wait()
}

// Call sends a request and waits for the response. result should be a pointer.
func (c *Conn) Call(ctx context.Context, method string, params, result any) error {
	c.mu.Lock()
	id := c.seq
	c.seq++
	p := &pending{ch: make(chan *incomingResponse, 1)}
	c.pend[id] = p
	c.mu.Unlock()

	forget := func() {
		c.mu.Lock()
		delete(c.pend, id)
		c.mu.Unlock()
	}

	raw, err := json.Marshal(params)
	if err != nil {
		forget()
		return err
	}
	rm := json.RawMessage(raw)
	reqID := ID{Num: id}

	if err := c.writeMessage(&wireRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  &rm,
		ID:      &reqID,
	}); err != nil {
		forget()
		return err
	}

	select {
	case <-ctx.Done():
		forget()
		return ctx.Err()
	case resp := <-p.ch:
		if resp == nil {
			return ErrClosed
		}
		if resp.Error != nil {
			return resp.Error
		}
		if result != nil && resp.Result != nil {
			return json.Unmarshal(*resp.Result, result)
		}
		return nil
	}
}

// Notify sends a notification (no response expected).
func (c *Conn) Notify(ctx context.Context, method string, params any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	rm := json.RawMessage(raw)
	return c.writeMessage(&wireRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  &rm,
		// no ID → notification
	})
}

func (c *Conn) sendResponse(resp *response) error {
	if resp.Error == nil && resp.Result == nil {
		resp.Result = &nullResult
	}
	return c.writeMessage(resp)
}

func (c *Conn) writeMessage(v any) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(data))
	if _, err := io.WriteString(c.wc, header); err != nil {
		return err
	}
	_, err = c.wc.Write(data)
	return err
}

// dispatch runs the handler for req, recovering from panics. A request whose
// handler panicked is answered with a null result.
func (c *Conn) dispatch(ctx context.Context, req *Request) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("handler panicked",
				"method", req.Method,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			if !req.Notif {
				_ = c.sendResponse(&response{JSONRPC: "2.0", ID: req.ID})
			}
		}
	}()
	c.h.Handle(ctx, c, req)
}

func (c *Conn) readLoop(ctx context.Context) {
	defer func() {
		c.once.Do(func() { close(c.done) })
		// Wake all pending calls.
		c.mu.Lock()
		for id, p := range c.pend {
			close(p.ch)
			delete(c.pend, id)
		}
		c.mu.Unlock()
	}()

	for {
		data, err := readFrame(c.r)
		if err != nil {
			return
		}

		// Determine if this is a request or response by checking for "method".
		var probe struct {
			Method *string          `json:"method"`
			ID     *json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			continue
		}

		if probe.Method != nil {
			var req Request
			if err := json.Unmarshal(data, &req); err != nil {
				continue
			}
			if req.Notif {
				c.dispatch(ctx, &req)
				continue
			}
			c.active.Go(func() { c.dispatch(ctx, &req) })
		} else {
			// It's a response.
			var resp incomingResponse
			if err := json.Unmarshal(data, &resp); err != nil {
				continue
			}
			c.mu.Lock()
			p := c.pend[resp.ID.Num]
			delete(c.pend, resp.ID.Num)
			c.mu.Unlock()
			if p != nil {
				p.ch <- &resp
			}
		}
	}
}

// readFrame reads one Content-Length–framed message from r. Header names
// are matched case-insensitively.
func readFrame(r *bufio.Reader) ([]byte, error) {
	contentLength := -1
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // end of headers
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			continue // ignore other headers (Content-Type, etc.)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad Content-Length %q", value)
		}
		contentLength = n
	}
	if contentLength <= 0 {
		return nil, errors.New("missing Content-Length header")
	}
	body := make([]byte, contentLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}
