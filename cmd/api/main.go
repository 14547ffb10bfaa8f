package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/JackWithOneEye/innerer/internal/config"
	"github.com/JackWithOneEye/innerer/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.NewConfig()
	s := server.NewServer(cfg, ctx)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.ListenAndServe()
	}()
	log.Printf("listening on %s", s.Addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("could not serve: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("terminating: %v", sig)
	}

	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel2()

	err := s.Shutdown(ctx2)
	if err != nil {
		log.Printf("could not shut down cleanly: %v", err)
	}
}
