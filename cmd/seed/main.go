package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
)

const hotelID = "HM-IND-0001"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Customer{},
		&domain.Room{},
		&domain.Service{},
		&domain.Staff{},
		&domain.Booking{},
		&domain.BookingService{},
		&domain.BookingStaff{},
		&domain.Payment{},
		&domain.ParkingSpot{},
		&domain.ParkingBooking{},
		&domain.ServiceBooking{},
		&domain.Membership{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children before parents to keep FKs happy)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM booking_services")
	db.Exec("DELETE FROM booking_staff")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM parking_bookings")
	db.Exec("DELETE FROM service_bookings")
	db.Exec("DELETE FROM memberships")
	db.Exec("DELETE FROM parking_spots")
	db.Exec("DELETE FROM staff")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM customers")

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{RoomNo: "R101", HotelID: hotelID, Status: domain.RoomAvailable, Price: 189, Capacity: 2, Type: "Deluxe", Rating: 4.7, Location: "East Wing, Level 10", ImageURL: "https://images.unsplash.com/photo-1501117716987-c8e4b1bd7a5c?q=80&w=800&auto=format&fit=crop"},
		{RoomNo: "R102", HotelID: hotelID, Status: domain.RoomBooked, Price: 329, Capacity: 4, Type: "Suite", Rating: 4.9, Location: "North Tower, Level 18", ImageURL: "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?q=80&w=800&auto=format&fit=crop"},
		{RoomNo: "R103", HotelID: hotelID, Status: domain.RoomAvailable, Price: 239, Capacity: 4, Type: "Family", Rating: 4.5, Location: "Garden Annex, Level 3", ImageURL: "https://images.unsplash.com/photo-1595576508898-0ad5c879a061?q=80&w=800&auto=format&fit=crop"},
		{RoomNo: "R104", HotelID: hotelID, Status: domain.RoomAvailable, Price: 129, Capacity: 2, Type: "Standard", Rating: 4.2, Location: "Main, Level 6", ImageURL: "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?q=80&w=800&auto=format&fit=crop"},
		{RoomNo: "R105", HotelID: hotelID, Status: domain.RoomBooked, Price: 599, Capacity: 2, Type: "Suite", Rating: 5.0, Location: "Skyline, Level 30", ImageURL: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=800&auto=format&fit=crop"},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.Service{
		{ServiceID: "S-food", Name: "In-Room Dining", Charges: 25, Category: "Food", Description: "24/7 curated menu delivered to your door.", ImageURL: "https://picsum.photos/seed/food/800/480"},
		{ServiceID: "S-spa", Name: "Spa & Wellness", Charges: 49, Category: "Membership", Description: "Access to sauna, pool, and gym.", ImageURL: "https://picsum.photos/seed/spa/800/480"},
		{ServiceID: "S-parking", Name: "Valet Parking", Charges: 200, Category: "Transport", Description: "Secure parking with valet service.", ImageURL: "https://picsum.photos/seed/parking/800/480"},
		{ServiceID: "S-laundry", Name: "Laundry Service", Charges: 15, Category: "Housekeeping", Description: "Professional laundry and dry cleaning.", ImageURL: "https://picsum.photos/seed/laundry/800/480"},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== STAFF ==================
	log.Println("Creating staff...")
	hireDate := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	staff := []domain.Staff{
		{StaffID: "ST001", Name: "Santhosh", ContactNo: "+91 98765 43210", Email: "santhosh@hotelmahi.in", Salary: 45000, HireDate: hireDate(2023, time.January, 15), Role: "Chef", Skill: "Gourmet Dining", ImageURL: "assets/staff/santhosh.jpg"},
		{StaffID: "ST002", Name: "Pankaj", ContactNo: "+91 98765 43211", Email: "pankaj@hotelmahi.in", Salary: 35000, HireDate: hireDate(2023, time.February, 1), Role: "Concierge", Skill: "City Assistance", ImageURL: "assets/staff/pankaj.jpg"},
		{StaffID: "ST003", Name: "Soumya", ContactNo: "+91 98765 43212", Email: "soumya@hotelmahi.in", Salary: 40000, HireDate: hireDate(2023, time.January, 20), Role: "Spa Therapist", Skill: "Wellness & Massage", ImageURL: "assets/staff/soumya.jpg"},
		{StaffID: "ST004", Name: "Amit", ContactNo: "+91 98765 43213", Email: "amit@hotelmahi.in", Salary: 30000, HireDate: hireDate(2023, time.February, 15), Role: "Housekeeping", Skill: "Room Care", ImageURL: "assets/staff/amit.jpg"},
	}
	for i := range staff {
		db.Create(&staff[i])
	}

	// ================== PARKING SPOTS ==================
	log.Println("Creating parking spots...")
	for i := 1; i <= 20; i++ {
		spot := domain.ParkingSpot{
			SpotID:   fmt.Sprintf("P%02d", i),
			Location: "Ground Floor",
			Type:     "Standard",
			Status:   domain.SpotAvailable,
			Price:    200,
		}
		if i > 10 {
			spot.Location = "Basement"
		}
		if i <= 5 {
			spot.Type = "Premium"
		}
		if rand.Float64() <= 0.3 {
			spot.Status = domain.SpotBooked
		}
		db.Create(&spot)
	}

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Customer{
		CustomerID:   "CUST-000000-admin",
		Name:         "Hotel Admin",
		Email:        "admin@hotelmahi.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@hotelmahi.in / admin123")

	clientEmails := []string{"ravi@mail.in", "priya@gmail.com", "arjun@yahoo.in"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := domain.Customer{
			CustomerID:   fmt.Sprintf("CUST-00000%d-demo", i+1),
			Name:         fmt.Sprintf("Guest %d", i+1),
			Email:        email,
			PhoneNo:      fmt.Sprintf("+91 90000 000%02d", i+10),
			City:         "Chennai",
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
		}
		db.Create(&client)
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@hotelmahi.in / admin123")
	log.Println("Clients: ravi@mail.in, priya@gmail.com, arjun@yahoo.in / client123")
}
