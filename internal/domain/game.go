package domain

type GameID string

type DeckID string

// Game is the server's descriptor for one game. ShoeSize and PlayerCount are
// recomputed server-side; the client only requests and replaces them.
type Game struct {
	ID          GameID `json:"id"`
	Name        string `json:"name"`
	ShoeSize    int    `json:"shoeSize"`
	PlayerCount int    `json:"playerCount"`
}

// Player is a server-owned summary row; hands are fetched separately.
type Player struct {
	Name      string `json:"name"`
	HandValue int    `json:"handValue"`
	HandSize  int    `json:"handSize"`
}

// UndealtBySuit maps each suit to the number of cards still in the shoe.
type UndealtBySuit struct {
	SuitCounts map[Suit]int `json:"suitCounts"`
}

// UndealtByCard breaks the shoe down per suit and face value.
type UndealtByCard struct {
	CardCounts map[Suit]map[FaceValue]int `json:"cardCounts"`
}
