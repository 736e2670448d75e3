package domain

type Suit string

const (
	SuitHearts   Suit = "HEARTS"
	SuitSpades   Suit = "SPADES"
	SuitClubs    Suit = "CLUBS"
	SuitDiamonds Suit = "DIAMONDS"
)

// Suits lists all suits in the display order used by the undealt views.
func Suits() []Suit {
	return []Suit{SuitHearts, SuitSpades, SuitClubs, SuitDiamonds}
}

type FaceValue string

const (
	FaceAce   FaceValue = "ACE"
	FaceTwo   FaceValue = "TWO"
	FaceThree FaceValue = "THREE"
	FaceFour  FaceValue = "FOUR"
	FaceFive  FaceValue = "FIVE"
	FaceSix   FaceValue = "SIX"
	FaceSeven FaceValue = "SEVEN"
	FaceEight FaceValue = "EIGHT"
	FaceNine  FaceValue = "NINE"
	FaceTen   FaceValue = "TEN"
	FaceJack  FaceValue = "JACK"
	FaceQueen FaceValue = "QUEEN"
	FaceKing  FaceValue = "KING"
)

func FaceValues() []FaceValue {
	return []FaceValue{
		FaceAce, FaceTwo, FaceThree, FaceFour, FaceFive, FaceSix, FaceSeven,
		FaceEight, FaceNine, FaceTen, FaceJack, FaceQueen, FaceKing,
	}
}

// Card is server-owned and immutable; the client never recomputes Value or
// DisplayName.
type Card struct {
	Suit        Suit      `json:"suit"`
	FaceValue   FaceValue `json:"faceValue"`
	Value       int       `json:"value"`
	DisplayName string    `json:"displayName"`
}
