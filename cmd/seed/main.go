package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubradar/internal/database"
	"clubradar/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "clubradar.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payment_orders")
	db.Exec("DELETE FROM payouts")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	mustUser(db, "admin@clubradar.in", "admin123", domain.RoleAdmin, "Platform Admin")
	owner1 := mustUser(db, "rohan@skybar.in", "owner123", domain.RoleVenueOwner, "Rohan Mehta")
	owner2 := mustUser(db, "priya@pulse.in", "owner123", domain.RoleVenueOwner, "Priya Nair")

	users := make([]domain.User, 0, 5)
	for i := 1; i <= 5; i++ {
		u := mustUser(db, fmt.Sprintf("guest%d@example.com", i), "guest123", domain.RoleUser, fmt.Sprintf("Guest %d", i))
		users = append(users, u)
	}

	// ================== VENUES ==================
	log.Println("Creating venues...")

	skybar := domain.Venue{
		OwnerID:           owner1.ID,
		Name:              "Skybar",
		Description:       "Rooftop lounge with a city view",
		Address:           "14 Marine Drive",
		City:              "Mumbai",
		Status:            domain.VenueApproved,
		BankAccountNumber: "001122334455",
		IFSCCode:          "HDFC0001234",
		AccountHolderName: "Skybar Hospitality Pvt Ltd",
	}
	pulse := domain.Venue{
		OwnerID:           owner2.ID,
		Name:              "Pulse",
		Description:       "Underground techno club",
		Address:           "3 Residency Road",
		City:              "Bengaluru",
		Status:            domain.VenueApproved,
		BankAccountNumber: "998877665544",
		IFSCCode:          "ICIC0004321",
		AccountHolderName: "Pulse Nightlife LLP",
	}
	pending := domain.Venue{
		OwnerID:           owner2.ID,
		Name:              "Velvet Room",
		Description:       "Cocktail bar, awaiting review",
		City:              "Bengaluru",
		Status:            domain.VenuePending,
		BankAccountNumber: "112233445566",
		IFSCCode:          "SBIN0009876",
		AccountHolderName: "Velvet Room Ventures",
	}
	for _, v := range []*domain.Venue{&skybar, &pulse, &pending} {
		if err := db.Create(v).Error; err != nil {
			log.Fatal("Create venue failed:", err)
		}
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")

	events := []domain.Event{
		{VenueID: skybar.ID, Title: "Neon Nights", Description: "House and disco all night", StartsAt: time.Now().AddDate(0, 0, 14), TicketPrice: decimal.RequireFromString("500.00"), Capacity: 200},
		{VenueID: skybar.ID, Title: "Sundowner Sessions", StartsAt: time.Now().AddDate(0, 0, 21), TicketPrice: decimal.RequireFromString("750.00"), Capacity: 150},
		{VenueID: pulse.ID, Title: "Warehouse 03", Description: "Techno marathon", StartsAt: time.Now().AddDate(0, 0, 10), TicketPrice: decimal.RequireFromString("1200.00"), Capacity: 400},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			log.Fatal("Create event failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	statuses := []domain.PaymentStatus{
		domain.PaymentCompleted,
		domain.PaymentCompleted,
		domain.PaymentCompleted,
		domain.PaymentPending,
		domain.PaymentFailed,
	}
	for i, u := range users {
		e := events[rand.Intn(len(events))]
		b := domain.Booking{
			EventID:       e.ID,
			UserID:        u.ID,
			Amount:        e.TicketPrice,
			PaymentStatus: statuses[i%len(statuses)],
		}
		if b.PaymentStatus == domain.PaymentCompleted {
			b.PassCode = uuid.NewString()
		}
		if err := db.Create(&b).Error; err != nil {
			log.Fatal("Create booking failed:", err)
		}
		// Spread bookings across the past month so payout periods
		// have something to aggregate.
		createdAt := time.Now().AddDate(0, 0, -rand.Intn(28))
		db.Model(&domain.Booking{}).Where("id = ?", b.ID).Update("created_at", createdAt)
	}

	log.Println("Seed complete.")
	log.Println("  admin:  admin@clubradar.in / admin123")
	log.Println("  owner:  rohan@skybar.in / owner123")
	log.Println("  guest:  guest1@example.com / guest123")
}

func mustUser(db *gorm.DB, email, password string, role domain.UserRole, name string) domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	u := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatal("Create user failed:", err)
	}
	return u
}
