package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"tailorapp_echo/internal/services"
)

// Sends a single WhatsApp message through the configured WAHA gateway.
// Useful to verify the gateway session before enabling reminders.
func main() {
	phone := flag.String("phone", "", "Phone number to send to (mandatory)")
	msg := flag.String("msg", "Test message from tailor shop", "Message to send")
	flag.Parse()

	if *phone == "" {
		fmt.Println("Usage: test_whatsapp -phone <number> [-msg <message>]")
		flag.PrintDefaults()
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	wa := services.NewWhatsAppService()
	if err := wa.SendMessage(*phone, *msg); err != nil {
		log.Fatalf("Failed to send message: %v", err)
	}

	fmt.Println("Message sent")
}
