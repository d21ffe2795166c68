// Command d3feedd serves the polled feed: a coil store rewritten every tick
// with the current time and sin(t), exposed as GET / ({x, y}) and GET /reset
// (sample log rotation).
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/McClunatic/modbus-d3/internal/coil"
	"github.com/McClunatic/modbus-d3/internal/server"
)

func main() {
	addr := flag.String("addr", ":8000", "Listen address")
	tick := flag.Duration("tick", coil.DefaultTickInterval, "Coil update interval")
	logDir := flag.String("log-dir", ".", "Directory for sample log files")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := coil.NewStore()
	go store.Run(ctx, *tick)

	bridge := server.NewBridge(store, *logDir)
	srv := &http.Server{
		Addr:    *addr,
		Handler: bridge.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("d3feedd listening on %s (tick %s)", *addr, *tick)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
