package booking

import "time"

// SampleBookings returns the demo booking set, dated relative to today
// so the calendar always has something to show on first run.
func SampleBookings(today Date) []Booking {
	now := time.Now()

	return []Booking{
		{
			ID:              "1",
			TrainerID:       "1",
			TrainerName:     "Sarah Johnson",
			TrainerPhotoURL: "https://randomuser.me/api/portraits/women/44.jpg",
			Date:            today,
			Time:            "10:00",
			Status:          StatusCurrent,
			SessionType:     "Personal Training",
			Duration:        60,
			CreatedAt:       now,
		},
		{
			ID:              "2",
			TrainerID:       "2",
			TrainerName:     "Mike Chen",
			TrainerPhotoURL: "https://randomuser.me/api/portraits/men/32.jpg",
			Date:            today.AddDays(3),
			Time:            "14:30",
			Status:          StatusUpcoming,
			SessionType:     "Strength Training",
			Duration:        60,
			CreatedAt:       now,
		},
		{
			ID:              "3",
			TrainerID:       "3",
			TrainerName:     "Emily Rodriguez",
			TrainerPhotoURL: "https://randomuser.me/api/portraits/women/65.jpg",
			Date:            today.AddDays(5),
			Time:            "09:00",
			Status:          StatusUpcoming,
			SessionType:     "Yoga",
			Duration:        90,
			CreatedAt:       now,
		},
		{
			ID:              "4",
			TrainerID:       "1",
			TrainerName:     "Sarah Johnson",
			TrainerPhotoURL: "https://randomuser.me/api/portraits/women/44.jpg",
			Date:            today.AddDays(7),
			Time:            "16:00",
			Status:          StatusUpcoming,
			SessionType:     "Personal Training",
			Duration:        60,
			CreatedAt:       now,
		},
		{
			ID:              "5",
			TrainerID:       "4",
			TrainerName:     "David Kim",
			TrainerPhotoURL: "https://randomuser.me/api/portraits/men/22.jpg",
			Date:            today.AddDays(10),
			Time:            "11:00",
			Status:          StatusUpcoming,
			SessionType:     "HIIT",
			Duration:        45,
			CreatedAt:       now,
		},
		{
			ID:              "6",
			TrainerID:       "5",
			TrainerName:     "Lisa Anderson",
			TrainerPhotoURL: "https://randomuser.me/api/portraits/women/68.jpg",
			Date:            today.AddDays(-2),
			Time:            "15:00",
			Status:          StatusCancelled,
			SessionType:     "Pilates",
			Duration:        60,
			CreatedAt:       now,
		},
		{
			ID:              "7",
			TrainerID:       "2",
			TrainerName:     "Mike Chen",
			TrainerPhotoURL: "https://randomuser.me/api/portraits/men/32.jpg",
			Date:            today.AddDays(1),
			Time:            "18:00",
			Status:          StatusCancelled,
			SessionType:     "Boxing",
			Duration:        60,
			CreatedAt:       now,
		},
	}
}
