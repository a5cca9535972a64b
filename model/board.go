package model

// Board is one Firestore document. Lists and their cards live inside the
// document as a single denormalized array; they have no collection of their
// own. The document id is the board id and is not stored as a field.
type Board struct {
	ID    string `firestore:"-" json:"id"`
	Name  string `firestore:"name,omitempty" json:"name"`
	Owner string `firestore:"owner,omitempty" json:"owner"`
	Lists []List `firestore:"lists" json:"lists"`
}

// List is keyed by its title within a board. No surrogate id.
type List struct {
	Title string `firestore:"title" json:"title"`
	Cards []Card `firestore:"cards" json:"cards"`
}

// Card is keyed by its title within a list.
type Card struct {
	Title         string   `firestore:"title" json:"title"`
	Description   string   `firestore:"description" json:"description"`
	AssignedUsers []string `firestore:"assignedUsers" json:"assignedUsers"`
}
