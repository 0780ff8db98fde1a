package solver

import (
	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
)

type fixture struct {
	name  string
	hints []hint.Hint
	want  int
}

var fixtures = []fixture{
	{"empty", nil, 14400},
	{
		"mixed absolute and neighbor",
		[]hint.Hint{
			hint.NewAbsolute(domain.Rabbit, domain.First),
			hint.NewAbsolute(domain.Chicken, domain.Second),
			hint.NewAbsolute(domain.Third, domain.Red),
			hint.NewAbsolute(domain.Bird, domain.Fifth),
			hint.NewAbsolute(domain.Grasshopper, domain.Orange),
			hint.NewNeighbor(domain.Yellow, domain.Green),
		},
		2,
	},
	{
		"all kinds",
		[]hint.Hint{
			hint.NewAbsolute(domain.Bird, domain.Fifth),
			hint.NewAbsolute(domain.First, domain.Green),
			hint.NewAbsolute(domain.Frog, domain.Yellow),
			hint.NewNeighbor(domain.Frog, domain.Grasshopper),
			hint.NewNeighbor(domain.Red, domain.Orange),
			hint.NewRelative(domain.Chicken, domain.Blue, -4),
		},
		4,
	},
	{
		"single relative",
		[]hint.Hint{hint.NewRelative(domain.Rabbit, domain.Green, -2)},
		1728,
	},
	{
		"redundant absolutes",
		[]hint.Hint{
			hint.NewAbsolute(domain.Rabbit, domain.First),
			hint.NewAbsolute(domain.Chicken, domain.Second),
			hint.NewAbsolute(domain.Third, domain.Bird),
			hint.NewAbsolute(domain.Fourth, domain.Frog),
			hint.NewAbsolute(domain.Fifth, domain.Grasshopper),
			hint.NewAbsolute(domain.Fifth, domain.Green),
			hint.NewAbsolute(domain.Chicken, domain.Blue),
			hint.NewAbsolute(domain.Rabbit, domain.Orange),
			hint.NewAbsolute(domain.Third, domain.Red),
			hint.NewAbsolute(domain.Fourth, domain.Yellow),
		},
		1,
	},
	{
		"single absolute",
		[]hint.Hint{hint.NewAbsolute(domain.Rabbit, domain.First)},
		2880,
	},
	{
		"contradicting absolutes",
		[]hint.Hint{
			hint.NewAbsolute(domain.Rabbit, domain.First),
			hint.NewAbsolute(domain.Bird, domain.First),
		},
		0,
	},
	{
		"zero offset relatives",
		[]hint.Hint{
			hint.NewRelative(domain.Rabbit, domain.First, 0),
			hint.NewRelative(domain.Chicken, domain.Second, 0),
			hint.NewRelative(domain.Third, domain.Bird, 0),
			hint.NewRelative(domain.Fourth, domain.Frog, 0),
			hint.NewRelative(domain.Fifth, domain.Grasshopper, 0),
			hint.NewRelative(domain.Fifth, domain.Green, 0),
			hint.NewRelative(domain.Chicken, domain.Blue, 0),
			hint.NewRelative(domain.Rabbit, domain.Orange, 0),
			hint.NewRelative(domain.Third, domain.Red, 0),
			hint.NewRelative(domain.Fourth, domain.Yellow, 0),
		},
		1,
	},
	{
		"single zero offset relative",
		[]hint.Hint{hint.NewRelative(domain.Rabbit, domain.First, 0)},
		2880,
	},
	{
		"single neighbor",
		[]hint.Hint{hint.NewNeighbor(domain.Rabbit, domain.Green)},
		4608,
	},
}
