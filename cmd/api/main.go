package main

import (
	"context"
	"log"

	"kitchenpos/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("kitchenpos api: %v", err)
	}
}
