package models

// Topic is one numbered entry of a subject's syllabus.
type Topic struct {
	Number int    `json:"number" validate:"min=1"`
	Title  string `json:"title" validate:"notblank"`
}

// Subject is a row of the materias table.
type Subject struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name" validate:"notblank"`
	Semester int     `json:"semester" validate:"min=1,max=12"`
	Topics   []Topic `json:"topics" validate:"dive"`
}

// Topic returns the topic with the given number.
func (s *Subject) Topic(number int) (Topic, bool) {
	for _, t := range s.Topics {
		if t.Number == number {
			return t, true
		}
	}
	return Topic{}, false
}

// Semester groups the subjects taught in one semester.
type Semester struct {
	Number   int       `json:"number"`
	Subjects []Subject `json:"subjects"`
}
