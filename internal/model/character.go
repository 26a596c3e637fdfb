package model

// Character is a roster entry. JSON names match the browser app's saves.
type Character struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Level     int    `json:"level"`
	MaxHP     int    `json:"maxHp"`
	CurrentHP int    `json:"currentHp"`
	AC        int    `json:"ac"`
}

// CharacterFields is a partial character used for create and edit.
// A nil field means "not supplied".
type CharacterFields struct {
	Name      *string
	Class     *string
	Level     *int
	MaxHP     *int
	CurrentHP *int
	AC        *int
}

// Apply merges the supplied fields over c and returns the result.
func (f CharacterFields) Apply(c Character) Character {
	if f.Name != nil {
		c.Name = *f.Name
	}
	if f.Class != nil {
		c.Class = *f.Class
	}
	if f.Level != nil {
		c.Level = *f.Level
	}
	if f.MaxHP != nil {
		c.MaxHP = *f.MaxHP
	}
	if f.CurrentHP != nil {
		c.CurrentHP = *f.CurrentHP
	}
	if f.AC != nil {
		c.AC = *f.AC
	}
	return c
}

// Empty reports whether no field is supplied.
func (f CharacterFields) Empty() bool {
	return f.Name == nil && f.Class == nil && f.Level == nil &&
		f.MaxHP == nil && f.CurrentHP == nil && f.AC == nil
}
