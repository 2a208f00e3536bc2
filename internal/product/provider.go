package product

// Provider is the read-only source of purchasable packages.
type Provider interface {
	ListProducts() []Product
	GetProduct(id string) (*Product, bool)
	ListByCategory(category Category) []Product
}

type staticProvider struct {
	products []Product
}

func NewStaticProvider() Provider {
	return &staticProvider{products: sampleProducts()}
}

func (p *staticProvider) ListProducts() []Product {
	out := make([]Product, len(p.products))
	copy(out, p.products)
	return out
}

func (p *staticProvider) GetProduct(id string) (*Product, bool) {
	for i := range p.products {
		if p.products[i].ID == id {
			prod := p.products[i]
			return &prod, true
		}
	}
	return nil, false
}

func (p *staticProvider) ListByCategory(category Category) []Product {
	var out []Product
	for _, prod := range p.products {
		if prod.Category == category {
			out = append(out, prod)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }

func sampleProducts() []Product {
	return []Product{
		{
			ID:               "proj_001",
			Name:             "PT Pilates - 24 Classes",
			Description:      "Premium Pilates training package with personalized attention. Perfect for improving core strength, flexibility, and posture. Includes 24 one-on-one sessions with certified Pilates instructors.",
			ImageURL:         "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=800",
			Price:            6072.00,
			Currency:         "SAR",
			NumberOfClasses:  24,
			Category:         CategoryPilates,
			Trainer:          strPtr("Expert Pilates Instructor"),
			DurationPerClass: 60,
			ValidityPeriod:   90,
			Features: []string{
				"24 one-on-one sessions",
				"Personalized training plan",
				"Progress tracking",
				"Equipment included",
				"Valid for 90 days",
			},
		},
		{
			ID:               "proj_002",
			Name:             "Yoga Mastery - 16 Classes",
			Description:      "Comprehensive yoga program for all levels. Enhance flexibility, reduce stress, and find inner peace through guided yoga sessions.",
			ImageURL:         "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=800",
			Price:            3200.00,
			Currency:         "SAR",
			NumberOfClasses:  16,
			Category:         CategoryYoga,
			Trainer:          strPtr("Certified Yoga Master"),
			DurationPerClass: 75,
			ValidityPeriod:   60,
			Features: []string{
				"16 guided sessions",
				"All experience levels welcome",
				"Breathing techniques",
				"Meditation guidance",
				"Valid for 60 days",
			},
		},
		{
			ID:               "proj_003",
			Name:             "Personal Training - 12 Sessions",
			Description:      "Intensive personal training program tailored to your fitness goals. Work one-on-one with expert trainers to achieve remarkable results.",
			ImageURL:         "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=800",
			Price:            4500.00,
			Currency:         "SAR",
			NumberOfClasses:  12,
			Category:         CategoryPersonalTraining,
			Trainer:          strPtr("Elite Personal Trainer"),
			DurationPerClass: 60,
			ValidityPeriod:   45,
			Features: []string{
				"12 personalized sessions",
				"Custom workout plan",
				"Nutrition guidance",
				"Body composition analysis",
				"Valid for 45 days",
			},
		},
		{
			ID:               "proj_004",
			Name:             "Group Training - 20 Classes",
			Description:      "High-energy group training sessions that combine motivation, community, and effective workouts. Perfect for those who thrive in a group setting.",
			ImageURL:         "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800",
			Price:            2800.00,
			Currency:         "SAR",
			NumberOfClasses:  20,
			Category:         CategoryGroupTraining,
			DurationPerClass: 45,
			ValidityPeriod:   60,
			Features: []string{
				"20 group sessions",
				"Max 10 people per class",
				"Varied workout styles",
				"Community support",
				"Valid for 60 days",
			},
		},
		{
			ID:               "proj_005",
			Name:             "Nutrition & Wellness - 8 Sessions",
			Description:      "Complete nutrition and wellness program with personalized meal plans and lifestyle coaching. Transform your health from the inside out.",
			ImageURL:         "https://images.unsplash.com/photo-1490645935967-10de6ba17061?w=800",
			Price:            3500.00,
			Currency:         "SAR",
			NumberOfClasses:  8,
			Category:         CategoryNutrition,
			Trainer:          strPtr("Certified Nutritionist"),
			DurationPerClass: 45,
			ValidityPeriod:   60,
			Features: []string{
				"8 consultation sessions",
				"Personalized meal plans",
				"Supplement guidance",
				"Lifestyle coaching",
				"Valid for 60 days",
			},
		},
		{
			ID:               "proj_006",
			Name:             "Advanced Pilates - 32 Classes",
			Description:      "Extended Pilates program for serious practitioners. Build exceptional core strength and body control through advanced techniques.",
			ImageURL:         "https://images.unsplash.com/photo-1599901860904-17e6ed7083a0?w=800",
			Price:            7680.00,
			Currency:         "SAR",
			NumberOfClasses:  32,
			Category:         CategoryPilates,
			Trainer:          strPtr("Master Pilates Instructor"),
			DurationPerClass: 60,
			ValidityPeriod:   120,
			Features: []string{
				"32 advanced sessions",
				"Progressive difficulty",
				"Equipment mastery",
				"Flexibility training",
				"Valid for 120 days",
			},
		},
	}
}
