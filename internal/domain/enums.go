package domain

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// Floor is a tower level, 1 (bottom) to 5 (top).
type Floor int

const (
	First Floor = iota + 1
	Second
	Third
	Fourth
	Fifth
)

// Color values, numbered from 0 so they double as Set bit positions.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Orange
)

// Animal values, numbered from 0 so they double as Set bit positions.
type Animal int

const (
	Frog Animal = iota
	Rabbit
	Grasshopper
	Bird
	Chicken
)

const Size = 5

var (
	Floors  = [Size]Floor{First, Second, Third, Fourth, Fifth}
	Colors  = [Size]Color{Blue, Green, Orange, Red, Yellow}
	Animals = [Size]Animal{Bird, Chicken, Frog, Grasshopper, Rabbit}
)

var (
	colorNames  = [Size]string{"Red", "Green", "Blue", "Yellow", "Orange"}
	animalNames = [Size]string{"Frog", "Rabbit", "Grasshopper", "Bird", "Chicken"}
)

func (f Floor) String() string {
	switch f {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	case Fourth:
		return "Fourth"
	case Fifth:
		return "Fifth"
	}
	return "Floor(?)"
}

func (c Color) String() string {
	if c < 0 || int(c) >= Size {
		return "Color(?)"
	}
	return colorNames[c]
}

func (a Animal) String() string {
	if a < 0 || int(a) >= Size {
		return "Animal(?)"
	}
	return animalNames[a]
}

// Valid reports whether f is inside the tower.
func (f Floor) Valid() bool { return f >= First && f <= Fifth }

// Offset returns the floor d levels above f (below for negative d).
// ok is false when the result falls outside the tower.
func (f Floor) Offset(d int) (Floor, bool) {
	t := f + Floor(d)
	return t, t.Valid()
}
