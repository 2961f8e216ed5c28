package sqlite

import (
	"context"
	"fmt"
)

// seedRow replica los reportes demo de la app original, tal cual,
// para que el primer arranque no muestre una pantalla vacía.
type seedRow struct {
	name, typ, species, breed, color string
	lastSeen, location               string
	latitude, longitude              float64
	description                      string
	contactName, contactEmail        string
	contactPhone, imageURI, userID   string
}

var seedData = []seedRow{
	{
		name:         "Buddy",
		typ:          "Lost",
		species:      "Dog",
		breed:        "Pomeranian",
		color:        "Orange and White",
		lastSeen:     "2025-11-01T14:30:00",
		location:     "High Park, Toronto",
		latitude:     43.6465,
		longitude:    -79.4637,
		description:  "Very friendly small dog, answers to Buddy. Has a small scar on left ear.",
		contactName:  "John Doe",
		contactEmail: "john.doe@email.com",
		contactPhone: "(416) 555-0123",
		imageURI:     "@/assets/demo_images/ASSET_1.jpg",
		userID:       "demo_user",
	},
	{
		name:         "Whiskers",
		typ:          "Found",
		species:      "Cat",
		breed:        "Maine Coon",
		color:        "Gray and White",
		lastSeen:     "2025-10-30T09:15:00",
		location:     "Distillery District, Toronto",
		latitude:     43.6503,
		longitude:    -79.3592,
		description:  "Large fluffy cat with distinctive white chest marking. Found wandering, very friendly.",
		contactName:  "Jane Smith",
		contactEmail: "jane.smith@email.com",
		contactPhone: "(416) 555-0456",
		imageURI:     "@/assets/demo_images/ASSET_1.jpg",
		userID:       "demo_user_2",
	},
	{
		name:         "Charlie",
		typ:          "Lost",
		species:      "Dog",
		breed:        "Golden Retriever",
		color:        "Golden",
		lastSeen:     "2025-11-02T16:45:00",
		location:     "Queen's Park, Toronto",
		latitude:     43.6596,
		longitude:    -79.3925,
		description:  "Medium-sized golden retriever, very energetic and friendly.",
		contactName:  "Mike Johnson",
		contactEmail: "mike.johnson@email.com",
		contactPhone: "(647) 555-0789",
		imageURI:     "@/assets/demo_images/ASSET_1.jpg",
		userID:       "demo_user_3",
	},
	{
		name:         "Luna",
		typ:          "Found",
		species:      "Cat",
		breed:        "Siamese",
		color:        "Cream and Brown",
		lastSeen:     "2025-10-29T20:00:00",
		location:     "Kensington Market, Toronto",
		latitude:     43.6542,
		longitude:    -79.4006,
		description:  "Siamese cat with blue eyes, wearing a red collar. Found in good condition.",
		contactName:  "Sarah Wilson",
		contactEmail: "sarah.wilson@email.com",
		contactPhone: "(416) 555-0321",
		imageURI:     "@/assets/demo_images/ASSET_1.jpg",
		userID:       "demo_user_4",
	},
	{
		name:         "Max",
		typ:          "Lost",
		species:      "Dog",
		breed:        "German Shepherd",
		color:        "Black and Tan",
		lastSeen:     "2025-11-01T11:20:00",
		location:     "Harbourfront, Toronto",
		latitude:     43.6426,
		longitude:    -79.3780,
		description:  "Large German Shepherd, well-trained but may be scared.",
		contactName:  "Robert Brown",
		contactEmail: "robert.brown@email.com",
		contactPhone: "(905) 555-0654",
		imageURI:     "@/assets/demo_images/ASSET_1.jpg",
		userID:       "demo_user_5",
	},
	{
		name:         "Bella",
		typ:          "Lost",
		species:      "Dog",
		breed:        "Labrador",
		color:        "Golden",
		lastSeen:     "2025-11-02T18:30:00",
		location:     "Scarborough, Toronto",
		latitude:     43.7731,
		longitude:    -79.2578,
		description:  "Friendly golden lab, very social with people and other dogs.",
		contactName:  "Jason M",
		contactEmail: "jayjay123@gmail.com",
		contactPhone: "+1 (555) 123-4567",
		imageURI:     "@/assets/demo_images/ASSET_1.jpg",
		userID:       "current_user",
	},
}

// seedIfEmpty inserta los demos una única vez: solo cuando la tabla está
// vacía. Llamadas posteriores no vuelven a sembrar.
func (s *Store) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&count); err != nil {
		return fmt.Errorf("count pets: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, row := range seedData {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO pets (
				name, type, species, breed, color, last_seen, location,
				latitude, longitude, description, contact_name, contact_email,
				contact_phone, image_uri, user_id
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			row.name, row.typ, row.species, row.breed, row.color,
			row.lastSeen, row.location, row.latitude, row.longitude,
			row.description, row.contactName, row.contactEmail,
			row.contactPhone, row.imageURI, row.userID,
		)
		if err != nil {
			return fmt.Errorf("insert seed %q: %w", row.name, err)
		}
	}

	return nil
}
