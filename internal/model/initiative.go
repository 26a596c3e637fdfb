package model

// InitiativeEntry is one combatant in the turn order.
type InitiativeEntry struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}
