package domain

// Manifestation is a goal statement the user revisits until achieved.
type Manifestation struct {
	ID        string
	Text      string
	Achieved  bool
	CreatedAt int64
	UpdatedAt int64
}

// Affirmation is a short repeatable statement shown in daily rotations.
type Affirmation struct {
	ID        string
	Text      string
	Active    bool
	CreatedAt int64
	UpdatedAt int64
}
