package trainer

type Trainer struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	PhotoURL         string         `json:"photo_url"`
	ShortDescription string         `json:"short_description"`
	Specialization   string         `json:"specialization"`
	Rating           float64        `json:"rating"`
	Comments         []Comment      `json:"comments"`
	TrainingTypes    []TrainingType `json:"training_types"`
}

type Comment struct {
	ID             string  `json:"id"`
	MemberName     string  `json:"member_name"`
	MemberPhotoURL *string `json:"member_photo_url,omitempty"`
	Comment        string  `json:"comment"`
	Rating         float64 `json:"rating"`
	Date           string  `json:"date"`
}

// TrainingType is one kind of session a trainer offers, with its
// duration in minutes.
type TrainingType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// TrainingTypeByID looks up one of the trainer's offered types.
func (t *Trainer) TrainingTypeByID(id string) (TrainingType, bool) {
	for _, tt := range t.TrainingTypes {
		if tt.ID == id {
			return tt, true
		}
	}
	return TrainingType{}, false
}
