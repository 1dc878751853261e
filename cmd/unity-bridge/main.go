// unity-bridge exposes a running Unity editor over JSON-RPC on stdio.
// It forwards each unity/* method to the HTTP server the editor-side
// plugin listens on, so tools that speak JSON-RPC can drive the editor
// without knowing its HTTP surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.lsp.dev/jsonrpc2"
)

func main() {
	var (
		host    = flag.String("host", "localhost", "editor HTTP host")
		port    = flag.Int("port", 6850, "editor HTTP port")
		timeout = flag.Duration("timeout", 5*time.Second, "editor HTTP timeout")
	)
	flag.Parse()

	ctx := context.Background()
	client := NewClient(*host, *port, *timeout)
	if !client.IsConnected(ctx) {
		fmt.Fprintf(os.Stderr, "unity-bridge: editor not reachable at %s:%d, will retry per request\n", *host, *port)
	}
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := &Server{client: client}
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, server.handle)
	<-conn.Done()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

type Server struct {
	conn   jsonrpc2.Conn
	client *Client
}
