package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/goproduct/internal/app"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start serving and listen for SIGINT/SIGTERM
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx) // Drain requests and release resources within the timeout
}
