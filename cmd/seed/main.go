package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"travelapp/internal/config"
	"travelapp/internal/database"
	"travelapp/internal/domain"
	"travelapp/internal/modules/booking"
	"travelapp/internal/repository"
)

var locations = []string{
	"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX",
	"Phoenix, AZ", "Philadelphia, PA", "San Antonio, TX", "San Diego, CA",
	"Dallas, TX", "San Jose, CA", "Austin, TX", "Jacksonville, FL",
	"San Francisco, CA", "Seattle, WA", "Denver, CO", "Washington, DC",
}

var propertyTypes = []string{
	"Apartment", "House", "Condo", "Villa", "Cottage", "Studio",
	"Loft", "Townhouse", "Penthouse", "Cabin",
}

var amenityLists = [][]string{
	{"WiFi", "Kitchen", "Parking", "Pool"},
	{"WiFi", "Kitchen", "Gym", "Balcony"},
	{"WiFi", "Kitchen", "Hot Tub", "Garden"},
	{"WiFi", "Kitchen", "Pool", "Gym", "Balcony"},
	{"WiFi", "Kitchen", "Parking", "Garden", "Hot Tub"},
}

var descriptions = []string{
	"Beautiful and spacious property in a prime location. Perfect for both business and leisure travelers.",
	"Modern and well-appointed accommodation with all the amenities you need for a comfortable stay.",
	"Charming property with character and modern conveniences. Ideal for families and groups.",
	"Luxurious accommodation with stunning views and top-notch amenities.",
	"Cozy and comfortable space in a great neighborhood. Close to all major attractions.",
}

var specialRequests = []string{
	"", "", "",
	"Late check-in requested",
	"Please provide extra towels",
	"Vegetarian breakfast preferred",
	"Quiet room preferred",
}

var reviewTitles = []string{
	"Amazing stay!", "Great location", "Perfect for families",
	"Beautiful property", "Highly recommended", "Excellent host",
	"Clean and comfortable", "Great value", "Will stay again",
}

var reviewComments = []string{
	"The property was exactly as described. Clean, comfortable, and in a great location.",
	"Host was very responsive and helpful. The place had everything we needed.",
	"Beautiful property with amazing amenities. Would definitely stay again.",
	"Great location, easy access to attractions. The place was spotless.",
	"Perfect for our family vacation. Kids loved the pool and garden.",
}

func main() {
	clear := flag.Bool("clear", false, "clear existing data before seeding")
	numListings := flag.Int("listings", 10, "number of listings to create")
	numGuests := flag.Int("users", 5, "number of guest users to create")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	cfg := config.Load()
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	if *clear {
		log.Println("Cleaning old data...")
		db.Exec("DELETE FROM reviews")
		db.Exec("DELETE FROM bookings")
		db.Exec("DELETE FROM listings")
		db.Exec("DELETE FROM users")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	listings := repository.NewListingRepository(db)
	bookings := repository.NewBookingRepository(db)
	reviews := repository.NewReviewRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	hostNames := []string{"john_host", "sarah_host", "mike_host"}
	hosts := make([]*domain.User, 0, len(hostNames))
	for _, name := range hostNames {
		u := &domain.User{
			Username:     name,
			Email:        name + "@example.com",
			PasswordHash: string(hash),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("create host:", err)
		}
		hosts = append(hosts, u)
	}

	guests := make([]*domain.User, 0, *numGuests)
	for i := 0; i < *numGuests; i++ {
		u := &domain.User{
			Username:     fmt.Sprintf("user_%d", i+1),
			Email:        fmt.Sprintf("user%d@example.com", i+1),
			PasswordHash: string(hash),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("create guest:", err)
		}
		guests = append(guests, u)
	}

	// ================== LISTINGS ==================
	log.Println("Creating listings...")

	created := make([]*domain.Listing, 0, *numListings)
	for i := 0; i < *numListings; i++ {
		location := locations[rand.Intn(len(locations))]
		l := &domain.Listing{
			Title:         fmt.Sprintf("%s in %s", propertyTypes[rand.Intn(len(propertyTypes))], location),
			Description:   descriptions[rand.Intn(len(descriptions))],
			Location:      location,
			PricePerNight: float64(rand.Intn(45000)+5000) / 100, // 50.00 .. 500.00
			MaxGuests:     rand.Intn(8) + 1,
			Bedrooms:      rand.Intn(5) + 1,
			Bathrooms:     rand.Intn(4) + 1,
			Amenities:     amenityLists[rand.Intn(len(amenityLists))],
			IsActive:      rand.Intn(4) != 0, // 75% active
			HostID:        hosts[rand.Intn(len(hosts))].ID,
		}
		if err := listings.Create(ctx, l); err != nil {
			log.Fatal("create listing:", err)
		}
		created = append(created, l)
	}

	active := make([]*domain.Listing, 0, len(created))
	for _, l := range created {
		if l.IsActive {
			active = append(active, l)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	statuses := []domain.BookingStatus{
		domain.BookingPending, domain.BookingConfirmed, domain.BookingCompleted,
	}

	seeded := make([]*domain.Booking, 0, 15)
	for i := 0; i < 15 && len(active) > 0 && len(guests) > 0; i++ {
		l := active[rand.Intn(len(active))]
		guest := guests[rand.Intn(len(guests))]

		checkIn := booking.Today(time.Now()).AddDate(0, 0, rand.Intn(30)+1)
		checkOut := checkIn.AddDate(0, 0, rand.Intn(7)+1)

		maxForBooking := l.MaxGuests
		if maxForBooking > 4 {
			maxForBooking = 4
		}

		b := &domain.Booking{
			ListingID:       l.ID,
			GuestID:         guest.ID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  rand.Intn(maxForBooking) + 1,
			TotalPrice:      booking.TotalPrice(l.PricePerNight, checkIn, checkOut),
			Status:          statuses[rand.Intn(len(statuses))],
			SpecialRequests: specialRequests[rand.Intn(len(specialRequests))],
		}
		if err := bookings.Create(ctx, b); err != nil {
			log.Fatal("create booking:", err)
		}
		seeded = append(seeded, b)
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	reviewed := 0
	for _, b := range seeded {
		if b.Status != domain.BookingCompleted || reviewed >= 8 {
			continue
		}
		rv := &domain.Review{
			ListingID:  b.ListingID,
			GuestID:    b.GuestID,
			BookingID:  b.ID,
			Rating:     rand.Intn(3) + 3, // mostly positive
			Title:      reviewTitles[rand.Intn(len(reviewTitles))],
			Comment:    reviewComments[rand.Intn(len(reviewComments))],
			IsVerified: true,
		}
		if err := reviews.Create(ctx, rv); err != nil {
			log.Fatal("create review:", err)
		}
		reviewed++
	}

	log.Printf("Seeded %d users, %d listings, %d bookings, %d reviews",
		len(hosts)+len(guests), len(created), len(seeded), reviewed)
}
