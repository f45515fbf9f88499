package handler

import (
	"context"
	"net"
	"net/http"
	"time"
)

// NewServer wraps h in an http.Server whose request contexts are cancelled
// as soon as Shutdown starts. Open notification streams watch that context,
// so they end and let the drain finish.
func NewServer(addr string, h http.Handler) *http.Server {
	baseCtx, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}
	srv.RegisterOnShutdown(cancel)

	return srv
}
