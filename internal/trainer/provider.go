package trainer

// Provider is the read-only source of trainer data. The current build
// serves a static sample set; a future backend satisfies the same
// interface.
type Provider interface {
	ListTrainers() []Trainer
	GetTrainer(id string) (*Trainer, bool)
}

type staticProvider struct {
	trainers []Trainer
}

func NewStaticProvider() Provider {
	return &staticProvider{trainers: sampleTrainers()}
}

func (p *staticProvider) ListTrainers() []Trainer {
	out := make([]Trainer, len(p.trainers))
	copy(out, p.trainers)
	return out
}

func (p *staticProvider) GetTrainer(id string) (*Trainer, bool) {
	for i := range p.trainers {
		if p.trainers[i].ID == id {
			t := p.trainers[i]
			return &t, true
		}
	}
	return nil, false
}

func strPtr(s string) *string { return &s }

func sampleTrainers() []Trainer {
	return []Trainer{
		{
			ID:               "1",
			Name:             "John Smith",
			PhotoURL:         "https://i.pravatar.cc/300?img=12",
			ShortDescription: "Certified personal trainer with 10+ years of experience in strength training and body transformation.",
			Specialization:   "Personal Trainer",
			Rating:           4.8,
			Comments: []Comment{
				{
					ID:             "c1",
					MemberName:     "Alex Johnson",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=1"),
					Comment:        "John helped me lose 20kg in 6 months. His personalized approach and motivation made all the difference!",
					Rating:         5.0,
					Date:           "2024-10-15",
				},
				{
					ID:             "c2",
					MemberName:     "Maria Garcia",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=5"),
					Comment:        "Best trainer I've ever had. Very knowledgeable and patient.",
					Rating:         4.5,
					Date:           "2024-10-08",
				},
				{
					ID:             "c3",
					MemberName:     "Chris Lee",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=8"),
					Comment:        "Great sessions, really pushes you to achieve your goals!",
					Rating:         5.0,
					Date:           "2024-09-22",
				},
			},
			TrainingTypes: []TrainingType{
				{ID: "tt1", Name: "Personal Training", Duration: 60},
				{ID: "tt2", Name: "Strength Training", Duration: 60},
				{ID: "tt3", Name: "Body Transformation", Duration: 90},
			},
		},
		{
			ID:               "2",
			Name:             "Sarah Johnson",
			PhotoURL:         "https://i.pravatar.cc/300?img=47",
			ShortDescription: "Experienced yoga instructor specializing in Vinyasa, Hatha, and meditation for mind-body wellness.",
			Specialization:   "Yoga Instructor",
			Rating:           4.9,
			Comments: []Comment{
				{
					ID:             "c4",
					MemberName:     "Emma Wilson",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=9"),
					Comment:        "Sarah's yoga classes are transformative. I feel more flexible and relaxed.",
					Rating:         5.0,
					Date:           "2024-10-20",
				},
				{
					ID:             "c5",
					MemberName:     "David Chen",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=13"),
					Comment:        "Very calming and professional. Perfect for beginners!",
					Rating:         4.8,
					Date:           "2024-10-12",
				},
			},
			TrainingTypes: []TrainingType{
				{ID: "tt4", Name: "Personal Training", Duration: 60},
				{ID: "tt5", Name: "Yoga", Duration: 75},
				{ID: "tt6", Name: "Meditation", Duration: 30},
			},
		},
		{
			ID:               "3",
			Name:             "Mike Williams",
			PhotoURL:         "https://i.pravatar.cc/300?img=33",
			ShortDescription: "Elite strength and conditioning coach focused on powerlifting and athletic performance.",
			Specialization:   "Strength Coach",
			Rating:           4.7,
			Comments: []Comment{
				{
					ID:             "c6",
					MemberName:     "Robert Taylor",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=14"),
					Comment:        "Mike knows his stuff! My deadlift has improved by 50kg in 3 months.",
					Rating:         5.0,
					Date:           "2024-10-18",
				},
				{
					ID:             "c7",
					MemberName:     "Lisa Anderson",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=10"),
					Comment:        "Intense workouts but great results. Highly recommend!",
					Rating:         4.5,
					Date:           "2024-10-05",
				},
			},
			TrainingTypes: []TrainingType{
				{ID: "tt7", Name: "Powerlifting", Duration: 90},
				{ID: "tt8", Name: "Strength Training", Duration: 60},
			},
		},
		{
			ID:               "4",
			Name:             "Emily Davis",
			PhotoURL:         "https://i.pravatar.cc/300?img=45",
			ShortDescription: "CrossFit Level 3 coach with expertise in functional fitness and HIIT training.",
			Specialization:   "CrossFit Coach",
			Rating:           4.6,
			Comments: []Comment{
				{
					ID:             "c8",
					MemberName:     "James Martinez",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=15"),
					Comment:        "Emily's CrossFit classes are challenging but fun. Great community!",
					Rating:         4.5,
					Date:           "2024-10-10",
				},
				{
					ID:             "c9",
					MemberName:     "Sophie Brown",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=16"),
					Comment:        "Very energetic and motivating trainer!",
					Rating:         4.8,
					Date:           "2024-09-28",
				},
			},
			TrainingTypes: []TrainingType{
				{ID: "tt9", Name: "CrossFit", Duration: 60},
				{ID: "tt10", Name: "HIIT", Duration: 45},
			},
		},
		{
			ID:               "5",
			Name:             "David Brown",
			PhotoURL:         "https://i.pravatar.cc/300?img=51",
			ShortDescription: "Professional swimming instructor with Olympic coaching certification for all skill levels.",
			Specialization:   "Swimming Instructor",
			Rating:           4.9,
			Comments: []Comment{
				{
					ID:             "c10",
					MemberName:     "Oliver White",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=17"),
					Comment:        "David taught my kids to swim. Patient and excellent with children!",
					Rating:         5.0,
					Date:           "2024-10-22",
				},
				{
					ID:             "c11",
					MemberName:     "Isabella Thomas",
					MemberPhotoURL: strPtr("https://i.pravatar.cc/150?img=20"),
					Comment:        "Improved my technique significantly. Highly professional!",
					Rating:         4.8,
					Date:           "2024-10-14",
				},
			},
			TrainingTypes: []TrainingType{
				{ID: "tt11", Name: "Swimming", Duration: 60},
				{ID: "tt12", Name: "Aqua Fitness", Duration: 45},
			},
		},
	}
}
