package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/config"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/handler"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

var (
	cities    = []string{"Kazan", "Moscow", "Samara", "Perm"}
	customers = []string{"Anna Petrova", "Oleg Ivanov", "Maria Sidorova", "Pavel Smirnov"}
	goods     = []string{"Tea", "Coffee", "Bread", "Milk", "Cheese", "Apples"}
	statuses  = []string{"Pending", "In Progress", "On The Way"}
)

func generateAssignment(driverID string) handler.Assignment {
	products := make([]handler.Product, 0, 3)
	for range rand.Intn(3) + 1 {
		products = append(products, handler.Product{
			Name:     goods[rand.Intn(len(goods))],
			Quantity: rand.Intn(5) + 1,
			UnitCost: int64(rand.Intn(1000) + 50),
		})
	}

	city := cities[rand.Intn(len(cities))]
	address := fmt.Sprintf("Street %d, %d", rand.Intn(100)+1, rand.Intn(200)+1)

	return handler.Assignment{
		ID:           uuid.NewString(),
		DriverID:     driverID,
		CustomerName: customers[rand.Intn(len(customers))],
		Status:       statuses[rand.Intn(len(statuses))],
		CreatedAt:    time.Now().UTC(),
		ShippingInfo: handler.ShippingInfo{
			City:           city,
			Address:        address,
			GoogleMapsLink: "https://maps.google.com/?q=" + city,
			Phone:          fmt.Sprintf("+7999%07d", rand.Intn(9999999)),
		},
		Products: products,
	}
}

func main() {
	godotenv.Load()

	driverID := flag.String("driver", "", "driver id to assign orders to")
	interval := flag.Duration("interval", 2*time.Second, "delay between assignments")
	flag.Parse()

	if *driverID == "" {
		log.Fatal("driver id is required")
	}

	conf := config.New()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(conf.Kafka.Brokers...),
		Topic:    conf.Kafka.AssignmentsTopic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			assignment := generateAssignment(*driverID)
			data, err := json.Marshal(assignment)
			if err != nil {
				log.Println("failed to marshal assignment:", err)
				continue
			}
			msg := kafka.Message{Key: []byte(assignment.DriverID), Value: data}
			if err := writer.WriteMessages(ctx, msg); err != nil {
				log.Println("failed to publish assignment:", err)
				continue
			}
			log.Println("assignment published", assignment.ID)
		case <-ctx.Done():
			return
		}
	}
}
